// Package parser turns a regular-expression pattern into an abstract
// syntax tree. The grammar covers literal characters, concatenation,
// alternation ('|'), grouping ('(' ')'), the postfix quantifiers '+',
// '*' and '?', and backslash escapes of those seven syntax characters.
//
// Parsing is a single left-to-right pass with no backtracking. Nesting
// is handled by an explicit stack of suspended accumulator pairs rather
// than recursion, so pattern depth never translates into call-stack
// depth. Errors carry the rune index at which they were detected.
package parser

// MaxNestingDepth bounds group nesting so that adversarial input cannot
// grow the context stack without limit.
const MaxNestingDepth = 1000

// scanState distinguishes ordinary scanning from the character right
// after a backslash.
type scanState int

const (
	scanChar scanState = iota
	scanEscape
)

// context is one suspended grouping level: what had been concatenated
// and which alternatives had been completed before the '(' opened.
type context struct {
	seq  []Node
	alts []Node
}

// Parse converts pattern into an AST. The empty pattern and patterns
// that reduce to nothing (such as "()") yield a *ParseError of kind
// ErrEmpty. A trailing '|' is legal and contributes no alternative,
// so "a|" parses the same as "a".
func Parse(pattern string) (Node, error) {
	var (
		seq   []Node
		alts  []Node
		stack []context
		state = scanChar
	)

	for i, c := range []rune(pattern) {
		if state == scanEscape {
			n, err := parseEscape(i, c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
			state = scanChar
			continue
		}

		switch c {
		case '+', '*', '?':
			if err := applyQuantifier(seq, c, i); err != nil {
				return nil, err
			}
		case '(':
			if len(stack) >= MaxNestingDepth {
				return nil, &ParseError{Kind: ErrNestingTooDeep, Pos: i}
			}
			stack = append(stack, context{seq: seq, alts: alts})
			seq = nil
			alts = nil
		case ')':
			if len(stack) == 0 {
				return nil, &ParseError{Kind: ErrInvalidRightParen, Pos: i}
			}
			prev := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(seq) > 0 {
				alts = append(alts, asNode(seq))
			}
			// An empty group contributes nothing to the outer level.
			if n := foldOr(alts); n != nil {
				prev.seq = append(prev.seq, n)
			}
			seq = prev.seq
			alts = prev.alts
		case '|':
			if len(seq) == 0 {
				return nil, &ParseError{Kind: ErrNoPrev, Pos: i}
			}
			alts = append(alts, asNode(seq))
			seq = nil
		case '\\':
			state = scanEscape
		default:
			seq = append(seq, Char(c))
		}
	}

	if len(stack) > 0 {
		return nil, &ParseError{Kind: ErrNoRightParen}
	}
	if len(seq) > 0 {
		alts = append(alts, asNode(seq))
	}
	if n := foldOr(alts); n != nil {
		return n, nil
	}
	return nil, &ParseError{Kind: ErrEmpty}
}

// parseEscape resolves the character following a backslash. Only the
// seven syntax characters have an escaped form.
func parseEscape(pos int, c rune) (Node, error) {
	switch c {
	case '\\', '(', ')', '|', '+', '*', '?':
		return Char(c), nil
	default:
		return nil, &ParseError{Kind: ErrInvalidEscape, Pos: pos, Char: c}
	}
}

// applyQuantifier wraps the most recently completed subtree in place.
// Postfix quantifiers bind to exactly one node, never to a whole
// sequence.
func applyQuantifier(seq []Node, c rune, pos int) error {
	if len(seq) == 0 {
		return &ParseError{Kind: ErrNoPrev, Pos: pos}
	}
	prev := seq[len(seq)-1]
	switch c {
	case '+':
		seq[len(seq)-1] = &Plus{Child: prev}
	case '*':
		seq[len(seq)-1] = &Star{Child: prev}
	case '?':
		seq[len(seq)-1] = &Question{Child: prev}
	}
	return nil
}

// asNode packages a completed alternative. A single node stands for
// itself; only real concatenations become Seq.
func asNode(seq []Node) Node {
	if len(seq) == 1 {
		return seq[0]
	}
	return Seq(seq)
}

// foldOr collapses completed alternatives into zero or one node: nil
// for none, the element itself for one, and a right-nested chain of
// binary Or nodes for two or more, keeping written order so the first
// alternative is always tried first.
func foldOr(alts []Node) Node {
	if len(alts) == 0 {
		return nil
	}
	n := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		n = &Or{Left: alts[i], Right: n}
	}
	return n
}
