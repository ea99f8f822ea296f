package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "regexvm",
	Short: "A small regex engine with ahead-of-time Go code generation",
	Long: `regexvm parses a minimal regular-expression dialect (literals,
concatenation, '|', '()', postfix '+', '*', '?', and escapes of those
syntax characters), compiles it to a backtracking VM program, and can
either match inputs directly or emit standalone Go matcher functions.

Commands:
  match  - compile a pattern and match it against inputs
  dump   - print the AST and instruction listing for a pattern
  gen    - generate Go matcher source for one or more patterns`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
