package regexvm

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regexvm/regexvm/parser"
)

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"hel+o", "hello", true},
		{"hel+o", "heo", false},
		{"(go)+gle", "gogogogle", true},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{"a|b|c", "zebra", true},
		{"a|b|c", "xyz", false},
		{`\(\)`, "f()", true},
	}

	for _, tt := range tests {
		re, err := Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", tt.pattern, err)
		}
		if got := re.MatchString(tt.input); got != tt.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
		if got := re.Match([]rune(tt.input)); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile("a)")
	if err == nil {
		t.Fatal("Compile(\"a)\") succeeded, want error")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *parser.ParseError", err)
	}
	if perr.Kind != parser.ErrInvalidRightParen || perr.Pos != 1 {
		t.Errorf("error = %+v, want InvalidRightParen at pos 1", perr)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile on invalid pattern did not panic")
		}
	}()
	MustCompile("(a")
}

func TestRegexpAccessors(t *testing.T) {
	re := MustCompile("a|b")
	if re.Pattern() != "a|b" {
		t.Errorf("Pattern() = %q, want a|b", re.Pattern())
	}
	listing := re.Program()
	for _, want := range []string{"split", "char 'a'", "char 'b'", "match"} {
		if !strings.Contains(listing, want) {
			t.Errorf("Program() listing missing %q:\n%s", want, listing)
		}
	}
}

func TestGenerate(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "greeting.go")
	err := Generate(Options{
		Pattern:    "hel+o",
		Name:       "Greeting",
		OutputFile: outputFile,
		Package:    "patterns",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	src, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("output file not readable: %v", err)
	}
	if !strings.Contains(string(src), "func GreetingMatchString(input string) bool") {
		t.Error("generated code missing matcher function")
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing pattern", Options{Name: "A", OutputFile: "x.go", Package: "p"}},
		{"missing name", Options{Pattern: "a", OutputFile: "x.go", Package: "p"}},
		{"missing output", Options{Pattern: "a", Name: "A", Package: "p"}},
		{"missing package", Options{Pattern: "a", Name: "A", OutputFile: "x.go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Generate(tt.opts); err == nil {
				t.Error("Generate succeeded, want validation error")
			}
		})
	}
}

func TestGenerateParseError(t *testing.T) {
	err := Generate(Options{
		Pattern:    "*a",
		Name:       "Bad",
		OutputFile: filepath.Join(t.TempDir(), "bad.go"),
		Package:    "patterns",
	})
	if err == nil {
		t.Fatal("Generate on invalid pattern succeeded")
	}
	if !strings.Contains(err.Error(), "no previous expression") {
		t.Errorf("error = %v, want parse error mention", err)
	}
}
