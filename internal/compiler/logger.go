package compiler

import (
	"fmt"
	"io"
	"os"
)

const logPrefix = "[regexvm] "

// Logger reports lowering and code generation decisions. A quiet
// logger swallows everything by writing to io.Discard, so call sites
// never need to guard their log statements.
type Logger struct {
	out io.Writer
}

// NewLogger returns a logger that writes to stderr when verbose is
// set and discards output otherwise.
func NewLogger(verbose bool) *Logger {
	out := io.Writer(io.Discard)
	if verbose {
		out = os.Stderr
	}
	return &Logger{out: out}
}

// SetOutput redirects the logger to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Logf prints one formatted message line.
func (l *Logger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, logPrefix+format+"\n", args...)
}

// Section prints a section header.
func (l *Logger) Section(name string) {
	fmt.Fprintf(l.out, "\n"+logPrefix+"=== %s ===\n", name)
}
