package compiler

import (
	"fmt"
	"strings"
)

// Opcode identifies one of the four VM instructions.
type Opcode int

const (
	// OpChar consumes one input character if it equals R.
	OpChar Opcode = iota
	// OpMatch reports a successful match.
	OpMatch
	// OpJmp continues at instruction X.
	OpJmp
	// OpSplit tries instruction X first, then falls back to Y.
	OpSplit
)

// Inst is a single VM instruction. R is used by OpChar; X by OpJmp and
// OpSplit; Y by OpSplit only.
type Inst struct {
	Op Opcode
	R  rune
	X  int
	Y  int
}

func (i Inst) String() string {
	switch i.Op {
	case OpChar:
		return fmt.Sprintf("char %q", i.R)
	case OpMatch:
		return "match"
	case OpJmp:
		return fmt.Sprintf("jmp %d", i.X)
	case OpSplit:
		return fmt.Sprintf("split %d, %d", i.X, i.Y)
	default:
		return fmt.Sprintf("op(%d)", int(i.Op))
	}
}

// Program is an executable instruction sequence. Execution starts at
// instruction 0; every well-formed program ends in OpMatch.
type Program []Inst

// String returns a numbered listing, one instruction per line.
func (p Program) String() string {
	var b strings.Builder
	for pc, inst := range p {
		fmt.Fprintf(&b, "%04d: %s\n", pc, inst)
	}
	return b.String()
}
