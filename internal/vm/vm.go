// Package vm executes compiled pattern programs against rune slices.
//
// Execution is a depth-first backtracking walk over the instruction
// program driven by an explicit stack of saved (pc, sp) threads, so
// alternation depth never translates into call-stack depth. A visited
// bit-vector keyed on (pc, sp) prunes re-entered split points, which
// keeps patterns with empty-width loops such as "(a?)*" from cycling.
package vm

import "github.com/regexvm/regexvm/internal/compiler"

// thread is a suspended execution point: the instruction to resume at
// and the input offset to resume with.
type thread struct {
	pc int
	sp int
}

// Run evaluates prog against input anchored at start. It reports
// whether some prefix of input[start:] matches.
func Run(prog compiler.Program, input []rune, start int) bool {
	var stack []thread
	// One bit per (pc, sp) pair, set when a split is first entered.
	visited := make([]uint32, (len(prog)*(len(input)+1)+31)/32)
	pc, sp := 0, start

	backtrack := func() bool {
		if len(stack) == 0 {
			return false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pc, sp = top.pc, top.sp
		return true
	}

	for {
		if pc < 0 || pc >= len(prog) {
			// Malformed jump target; treat as a failed thread.
			if !backtrack() {
				return false
			}
			continue
		}

		inst := prog[pc]
		switch inst.Op {
		case compiler.OpMatch:
			return true

		case compiler.OpChar:
			if sp < len(input) && input[sp] == inst.R {
				pc++
				sp++
				continue
			}
			if !backtrack() {
				return false
			}

		case compiler.OpJmp:
			pc = inst.X

		case compiler.OpSplit:
			idx := pc*(len(input)+1) + sp
			word, bit := idx/32, uint32(1)<<(idx%32)
			if visited[word]&bit != 0 {
				if !backtrack() {
					return false
				}
				continue
			}
			visited[word] |= bit
			stack = append(stack, thread{pc: inst.Y, sp: sp})
			pc = inst.X
		}
	}
}

// Match reports whether prog matches anywhere in input, retrying at
// each successive start offset the way an unanchored engine does.
func Match(prog compiler.Program, input []rune) bool {
	for start := 0; start <= len(input); start++ {
		if Run(prog, input, start) {
			return true
		}
	}
	return false
}
