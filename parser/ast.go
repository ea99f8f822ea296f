package parser

import "strings"

// Node is the interface implemented by every AST node. A node owns its
// children outright: trees produced by Parse share no subtrees and
// contain no cycles.
type Node interface {
	// String renders the node back to pattern text, escaping syntax
	// characters and adding the parentheses needed so that re-parsing
	// the output yields an isomorphic tree.
	String() string

	node()
}

// Char matches a single literal character.
type Char rune

// Seq is an ordered concatenation of sub-patterns. Parse never returns
// an empty Seq, and never a one-element Seq (a lone element stands for
// itself).
type Seq []Node

// Plus matches one or more repetitions of Child.
type Plus struct {
	Child Node
}

// Star matches zero or more repetitions of Child.
type Star struct {
	Child Node
}

// Question matches zero or one occurrence of Child.
type Question struct {
	Child Node
}

// Or matches Left or, failing that, Right. Left is always tried first;
// alternatives written first end up as the outermost left operand.
type Or struct {
	Left  Node
	Right Node
}

func (Char) node()      {}
func (Seq) node()       {}
func (*Plus) node()     {}
func (*Star) node()     {}
func (*Question) node() {}
func (*Or) node()       {}

// Rendering precedence, loosest to tightest. A child whose own level is
// below what its context requires gets wrapped in a group.
const (
	precAlt = iota
	precSeq
	precQuant
)

func (c Char) String() string {
	var b strings.Builder
	writeChar(&b, rune(c))
	return b.String()
}

func (s Seq) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (p *Plus) String() string     { return renderQuant(p.Child, '+') }
func (s *Star) String() string     { return renderQuant(s.Child, '*') }
func (q *Question) String() string { return renderQuant(q.Child, '?') }

func (o *Or) String() string {
	var b strings.Builder
	o.render(&b)
	return b.String()
}

func (s Seq) render(b *strings.Builder) {
	// A nested Seq must keep its parentheses; flattening it would
	// re-parse to a different tree.
	for _, child := range s {
		render(b, child, precQuant)
	}
}

func (o *Or) render(b *strings.Builder) {
	render(b, o.Left, precSeq)
	b.WriteByte('|')
	// A right operand that is itself an Or continues the same
	// alternative list, so it stays unwrapped.
	if r, ok := o.Right.(*Or); ok {
		r.render(b)
	} else {
		render(b, o.Right, precSeq)
	}
}

func render(b *strings.Builder, n Node, min int) {
	if level(n) < min {
		b.WriteByte('(')
	}
	switch n := n.(type) {
	case Char:
		writeChar(b, rune(n))
	case Seq:
		n.render(b)
	case *Plus:
		render(b, n.Child, precQuant)
		b.WriteByte('+')
	case *Star:
		render(b, n.Child, precQuant)
		b.WriteByte('*')
	case *Question:
		render(b, n.Child, precQuant)
		b.WriteByte('?')
	case *Or:
		n.render(b)
	}
	if level(n) < min {
		b.WriteByte(')')
	}
}

func renderQuant(child Node, op byte) string {
	var b strings.Builder
	render(&b, child, precQuant)
	b.WriteByte(op)
	return b.String()
}

func level(n Node) int {
	switch n.(type) {
	case *Or:
		return precAlt
	case Seq:
		return precSeq
	default:
		return precQuant
	}
}

func writeChar(b *strings.Builder, r rune) {
	switch r {
	case '\\', '(', ')', '|', '+', '*', '?':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
