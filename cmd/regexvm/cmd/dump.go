package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexvm/regexvm/pkg/regexvm"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <pattern>",
	Short: "Print the AST rendering and instruction listing for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := regexvm.Parse(args[0])
		if err != nil {
			return err
		}
		re, err := regexvm.Compile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pattern: %s\n", args[0])
		fmt.Fprintf(out, "ast:     %s\n", root)
		fmt.Fprintln(out, "program:")
		fmt.Fprint(out, re.Program())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
