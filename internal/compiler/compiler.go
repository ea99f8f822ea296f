// Package compiler lowers a parsed pattern AST into the instruction
// program executed by the vm package and emitted as Go source by the
// codegen package.
package compiler

import (
	"fmt"

	"github.com/regexvm/regexvm/parser"
)

// Compile lowers root into a Program. The resulting program always
// ends with an OpMatch instruction and all jump targets stay within
// the program.
func Compile(root parser.Node) (Program, error) {
	return CompileWithLogger(root, NewLogger(false))
}

// CompileWithLogger is Compile with verbose reporting of the lowering
// decisions: node count, program size and the number of split points
// the backtracking stages will have to track.
func CompileWithLogger(root parser.Node, logger *Logger) (Program, error) {
	c := &compiler{}
	if err := c.emit(root); err != nil {
		return nil, err
	}
	c.insts = append(c.insts, Inst{Op: OpMatch})
	prog := Program(c.insts)

	logger.Section("Lowering")
	logger.Logf("AST nodes: %d", c.nodes)
	logger.Logf("Program size: %d instructions", len(prog))
	logger.Logf("Split points: %d", c.splits)
	return prog, nil
}

type compiler struct {
	insts  []Inst
	nodes  int
	splits int
}

func (c *compiler) pc() int {
	return len(c.insts)
}

func (c *compiler) split(inst Inst) {
	c.insts = append(c.insts, inst)
	c.splits++
}

func (c *compiler) emit(n parser.Node) error {
	c.nodes++
	switch n := n.(type) {
	case parser.Char:
		c.insts = append(c.insts, Inst{Op: OpChar, R: rune(n)})

	case parser.Seq:
		for _, child := range n {
			if err := c.emit(child); err != nil {
				return err
			}
		}

	case *parser.Or:
		// split L1, L2; L1: left; jmp L3; L2: right; L3:
		split := c.pc()
		c.split(Inst{Op: OpSplit})
		if err := c.emit(n.Left); err != nil {
			return err
		}
		jmp := c.pc()
		c.insts = append(c.insts, Inst{Op: OpJmp})
		c.insts[split].X = split + 1
		c.insts[split].Y = c.pc()
		if err := c.emit(n.Right); err != nil {
			return err
		}
		c.insts[jmp].X = c.pc()

	case *parser.Plus:
		// L1: child; split L1, L2; L2:
		loop := c.pc()
		if err := c.emit(n.Child); err != nil {
			return err
		}
		c.split(Inst{Op: OpSplit, X: loop, Y: c.pc() + 1})

	case *parser.Star:
		// L1: split L2, L3; L2: child; jmp L1; L3:
		split := c.pc()
		c.split(Inst{Op: OpSplit})
		if err := c.emit(n.Child); err != nil {
			return err
		}
		c.insts = append(c.insts, Inst{Op: OpJmp, X: split})
		c.insts[split].X = split + 1
		c.insts[split].Y = c.pc()

	case *parser.Question:
		// split L1, L2; L1: child; L2:
		split := c.pc()
		c.split(Inst{Op: OpSplit})
		if err := c.emit(n.Child); err != nil {
			return err
		}
		c.insts[split].X = split + 1
		c.insts[split].Y = c.pc()

	default:
		return fmt.Errorf("compiler: unsupported node type %T", n)
	}
	return nil
}
