package codegen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/regexvm/regexvm/internal/compiler"
)

// Config holds the settings for one generated matcher.
type Config struct {
	Pattern    string
	Name       string
	Package    string
	OutputFile string
	Program    compiler.Program
	Verbose    bool
}

// Generator emits a Go source file containing
// <Name>MatchString(input string) bool for one compiled program. The
// generated function is self-contained: one goto label per
// instruction, a dispatch switch, and an explicit backtracking stack,
// with a visited bit-vector pruning re-entered split points.
type Generator struct {
	config Config
	file   *jen.File
	logger *compiler.Logger
}

// New creates a generator for the given config.
func New(config Config) *Generator {
	return &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: compiler.NewLogger(config.Verbose),
	}
}

// SetLogger replaces the verbose logger.
func (g *Generator) SetLogger(l *compiler.Logger) {
	g.logger = l
}

// Generate renders the matcher source and writes it to the output file.
func (g *Generator) Generate() error {
	g.logger.Section("Code Generation")
	g.logger.Logf("Pattern: %s", g.config.Pattern)
	g.logger.Logf("Program size: %d instructions", len(g.config.Program))
	g.logger.Logf("Output: %s", g.config.OutputFile)

	g.file.HeaderComment(fmt.Sprintf("Code generated by regexvm for pattern: %s", g.config.Pattern))
	g.file.HeaderComment("DO NOT EDIT.")

	body, err := g.matchFunctionBody()
	if err != nil {
		return fmt.Errorf("failed to generate matcher body: %w", err)
	}

	g.file.Commentf("%sMatchString reports whether input contains a match for the pattern %s.", g.config.Name, g.config.Pattern)
	g.file.Func().
		Id(g.config.Name + "MatchString").
		Params(jen.Id("input").String()).
		Bool().
		Block(body...)

	var buf bytes.Buffer
	if err := g.file.Render(&buf); err != nil {
		return fmt.Errorf("failed to render generated code: %w", err)
	}
	if err := os.WriteFile(g.config.OutputFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.config.OutputFile, err)
	}
	return nil
}

// matchFunctionBody builds the full function body: prologue, dispatch
// switch, one labeled block per instruction, and the fallback block.
func (g *Generator) matchFunctionBody() ([]jen.Code, error) {
	numInst := len(g.config.Program)

	code := []jen.Code{
		jen.Id(InputName).Op(":=").Index().Rune().Call(jen.Id("input")),
		jen.Id(InputLenName).Op(":=").Len(jen.Id(InputName)),
		jen.Id(VisitedName).Op(":=").Make(
			jen.Index().Uint32(),
			jen.Parens(jen.Lit(numInst).Op("*").Parens(jen.Id(InputLenName).Op("+").Lit(1)).Op("+").Lit(31)).Op("/").Lit(32),
		),
		jen.Id(StackName).Op(":=").Index().Index(jen.Lit(2)).Int().Values(),
		jen.Id(StartName).Op(":=").Lit(0),
		jen.Id(OffsetName).Op(":=").Lit(0),
		jen.Id(NextInstructionName).Op(":=").Lit(0),
	}

	code = append(code, g.stepSelector()...)

	for pc, inst := range g.config.Program {
		instCode, err := g.instruction(pc, inst)
		if err != nil {
			return nil, err
		}
		code = append(code, instCode...)
	}

	code = append(code, g.fallback()...)
	return code, nil
}

// stepSelector generates the instruction dispatch switch.
func (g *Generator) stepSelector() []jen.Code {
	cases := []jen.Code{}
	for pc := range g.config.Program {
		cases = append(cases,
			jen.Case(jen.Lit(pc)).Block(jen.Goto().Id(InstructionName(pc))),
		)
	}

	return []jen.Code{
		jen.Id(StepSelectName).Op(":"),
		jen.Switch(jen.Id(NextInstructionName)).Block(cases...),
	}
}

// instruction generates the labeled block for a single instruction.
func (g *Generator) instruction(pc int, inst compiler.Inst) ([]jen.Code, error) {
	label := jen.Id(InstructionName(pc)).Op(":")

	switch inst.Op {
	case compiler.OpMatch:
		return []jen.Code{
			label,
			jen.Block(jen.Return(jen.True())),
		}, nil

	case compiler.OpChar:
		return []jen.Code{
			label,
			jen.Block(
				jen.If(jen.Id(InputLenName).Op("<=").Id(OffsetName)).Block(
					jen.Goto().Id(TryFallbackName),
				),
				jen.If(jen.Id(InputName).Index(jen.Id(OffsetName)).Op("!=").LitRune(inst.R)).Block(
					jen.Goto().Id(TryFallbackName),
				),
				jen.Id(OffsetName).Op("++"),
				jen.Goto().Id(InstructionName(pc+1)),
			),
		}, nil

	case compiler.OpJmp:
		return []jen.Code{
			label,
			jen.Block(
				jen.Goto().Id(InstructionName(inst.X)),
			),
		}, nil

	case compiler.OpSplit:
		// idx = pc*(l+1) + offset; visited splits fail over to the
		// backtracking stack, which keeps empty-width loops finite.
		return []jen.Code{
			label,
			jen.Block(
				jen.Id("idx").Op(":=").Lit(pc).Op("*").Parens(jen.Id(InputLenName).Op("+").Lit(1)).Op("+").Id(OffsetName),
				jen.List(jen.Id("word"), jen.Id("bit")).Op(":=").
					Id("idx").Op("/").Lit(32).Op(",").
					Uint32().Call(jen.Lit(1)).Op("<<").Parens(jen.Id("idx").Op("%").Lit(32)),
				jen.If(jen.Id(VisitedName).Index(jen.Id("word")).Op("&").Id("bit").Op("!=").Lit(0)).Block(
					jen.Goto().Id(TryFallbackName),
				),
				jen.Id(VisitedName).Index(jen.Id("word")).Op("|=").Id("bit"),
				jen.Id(StackName).Op("=").Append(
					jen.Id(StackName),
					jen.Index(jen.Lit(2)).Int().Values(jen.Id(OffsetName), jen.Lit(inst.Y)),
				),
				jen.Goto().Id(InstructionName(inst.X)),
			),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported instruction type: %v", inst.Op)
	}
}

// fallback generates the backtracking block: pop a saved thread if one
// exists, otherwise retry from the next start offset.
func (g *Generator) fallback() []jen.Code {
	return []jen.Code{
		jen.Id(TryFallbackName).Op(":"),
		jen.If(jen.Len(jen.Id(StackName)).Op(">").Lit(0)).Block(
			jen.Id("last").Op(":=").Id(StackName).Index(jen.Len(jen.Id(StackName)).Op("-").Lit(1)),
			jen.Id(OffsetName).Op("=").Id("last").Index(jen.Lit(0)),
			jen.Id(NextInstructionName).Op("=").Id("last").Index(jen.Lit(1)),
			jen.Id(StackName).Op("=").Id(StackName).Index(jen.Empty(), jen.Len(jen.Id(StackName)).Op("-").Lit(1)),
			jen.Goto().Id(StepSelectName),
		).Else().Block(
			jen.If(jen.Id(InputLenName).Op(">").Id(StartName)).Block(
				jen.Id(StartName).Op("++"),
				jen.Id(OffsetName).Op("=").Id(StartName),
				jen.For(jen.Id("i").Op(":=").Range().Id(VisitedName)).Block(
					jen.Id(VisitedName).Index(jen.Id("i")).Op("=").Lit(0),
				),
				jen.Id(NextInstructionName).Op("=").Lit(0),
				jen.Goto().Id(StepSelectName),
			),
			jen.Return(jen.False()),
		),
	}
}
