package parser

import "fmt"

// ErrorKind identifies the category of a ParseError.
type ErrorKind int

const (
	// ErrInvalidEscape reports a backslash followed by a character
	// that has no escaped form.
	ErrInvalidEscape ErrorKind = iota

	// ErrInvalidRightParen reports a ')' with no matching '('.
	ErrInvalidRightParen

	// ErrNoPrev reports a '+', '*', '?' or '|' with no preceding
	// expression to apply to.
	ErrNoPrev

	// ErrNoRightParen reports that the pattern ended with one or more
	// groups still open.
	ErrNoRightParen

	// ErrEmpty reports a pattern that reduces to no expression at all.
	ErrEmpty

	// ErrNestingTooDeep reports a '(' that would exceed MaxNestingDepth.
	ErrNestingTooDeep
)

// ParseError describes a rejected pattern. Pos is the 0-based rune
// index at which the problem was detected; Char is the offending
// character for ErrInvalidEscape.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Char rune
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidEscape:
		return fmt.Sprintf("ParseError: invalid escape: pos = %d, char = '%c'", e.Pos, e.Char)
	case ErrInvalidRightParen:
		return fmt.Sprintf("ParseError: invalid right parenthesis: pos = %d", e.Pos)
	case ErrNoPrev:
		return fmt.Sprintf("ParseError: no previous expression: pos = %d", e.Pos)
	case ErrNoRightParen:
		return "ParseError: no right parenthesis"
	case ErrEmpty:
		return "ParseError: empty expression"
	case ErrNestingTooDeep:
		return fmt.Sprintf("ParseError: nesting too deep: pos = %d", e.Pos)
	default:
		return fmt.Sprintf("ParseError: unknown error kind %d", e.Kind)
	}
}
