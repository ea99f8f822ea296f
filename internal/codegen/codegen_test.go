package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regexvm/regexvm/internal/compiler"
	"github.com/regexvm/regexvm/parser"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"simple", "test"},
		{"alternation", "a|b"},
		{"quantifiers", "ab+c*d?"},
		{"grouped", "(ab|cd)+e"},
		{"escaped", `\(a\|b\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parser.Parse(tt.pattern)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			prog, err := compiler.Compile(root)
			if err != nil {
				t.Fatalf("compile error: %v", err)
			}

			outputFile := filepath.Join(t.TempDir(), "matcher.go")
			g := New(Config{
				Pattern:    tt.pattern,
				Name:       "Test",
				Package:    "testpkg",
				OutputFile: outputFile,
				Program:    prog,
			})

			if err := g.Generate(); err != nil {
				t.Fatalf("generation failed: %v", err)
			}

			src, err := os.ReadFile(outputFile)
			if err != nil {
				t.Fatalf("output file not readable: %v", err)
			}

			for _, want := range []string{
				"package testpkg",
				"func TestMatchString(input string) bool",
				"DO NOT EDIT",
				StepSelectName + ":",
				TryFallbackName + ":",
			} {
				if !strings.Contains(string(src), want) {
					t.Errorf("generated code missing %q", want)
				}
			}

			// One label per instruction must be present.
			for pc := range prog {
				if !strings.Contains(string(src), InstructionName(pc)+":") {
					t.Errorf("generated code missing label for instruction %d", pc)
				}
			}
		})
	}
}

func TestGenerateBadOutputPath(t *testing.T) {
	root, err := parser.Parse("a")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	prog, err := compiler.Compile(root)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	g := New(Config{
		Pattern:    "a",
		Name:       "Test",
		Package:    "testpkg",
		OutputFile: filepath.Join(t.TempDir(), "missing", "dir", "matcher.go"),
		Program:    prog,
	})
	if err := g.Generate(); err == nil {
		t.Error("expected error for unwritable output path")
	}
}

func TestInstructionName(t *testing.T) {
	if got := InstructionName(7); got != "Ins7" {
		t.Errorf("InstructionName(7) = %q, want Ins7", got)
	}
}
