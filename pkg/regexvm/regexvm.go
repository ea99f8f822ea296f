// Package regexvm is the public entry point of the engine. It parses
// patterns into ASTs, compiles them into instruction programs that can
// be matched in-process, and generates standalone Go matcher functions
// at build time.
//
// The supported grammar is deliberately small: literal characters,
// concatenation, alternation ('|'), grouping ('(' ')'), the postfix
// quantifiers '+', '*' and '?', and backslash escapes of those seven
// syntax characters.
package regexvm

import (
	"fmt"

	"github.com/regexvm/regexvm/internal/codegen"
	"github.com/regexvm/regexvm/internal/compiler"
	"github.com/regexvm/regexvm/internal/vm"
	"github.com/regexvm/regexvm/parser"
)

// Parse converts a pattern into its abstract syntax tree. Errors are
// *parser.ParseError values carrying the rune index of the problem.
func Parse(pattern string) (parser.Node, error) {
	return parser.Parse(pattern)
}

// Regexp is a pattern compiled for in-process matching.
type Regexp struct {
	pattern string
	prog    compiler.Program
}

// Compile parses and compiles pattern.
func Compile(pattern string) (*Regexp, error) {
	root, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.Compile(root)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return &Regexp{pattern: pattern, prog: prog}, nil
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of package-level variables holding known-good patterns.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexvm: Compile(" + fmt.Sprintf("%q", pattern) + "): " + err.Error())
	}
	return re
}

// MatchString reports whether input contains a match for the pattern.
func (re *Regexp) MatchString(input string) bool {
	return vm.Match(re.prog, []rune(input))
}

// Match reports whether input contains a match for the pattern.
func (re *Regexp) Match(input []rune) bool {
	return vm.Match(re.prog, input)
}

// Pattern returns the source text the Regexp was compiled from.
func (re *Regexp) Pattern() string {
	return re.pattern
}

// Program returns a readable listing of the compiled instructions.
func (re *Regexp) Program() string {
	return re.prog.String()
}

// Options configures ahead-of-time matcher generation.
type Options struct {
	// Pattern is the regular expression to compile.
	Pattern string

	// Name is the prefix for the generated function name (e.g.
	// "Email" generates "EmailMatchString").
	Name string

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Package is the Go package name for the generated code.
	Package string

	// Verbose enables logging of compilation decisions to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles the pattern and writes a standalone Go matcher
// function to the output file.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := compiler.NewLogger(opts.Verbose)

	root, err := parser.Parse(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}
	prog, err := compiler.CompileWithLogger(root, logger)
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	g := codegen.New(codegen.Config{
		Pattern:    opts.Pattern,
		Name:       opts.Name,
		Package:    opts.Package,
		OutputFile: opts.OutputFile,
		Program:    prog,
	})
	g.SetLogger(logger)
	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
