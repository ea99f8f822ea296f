package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexvm/regexvm/pkg/regexvm"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>...",
	Short: "Compile a pattern and match it against inputs",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		re, err := regexvm.Compile(args[0])
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprint(cmd.ErrOrStderr(), re.Program())
		}

		anyMiss := false
		for _, input := range args[1:] {
			if re.MatchString(input) {
				fmt.Fprintf(cmd.OutOrStdout(), "match: %s\n", input)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "no match: %s\n", input)
				anyMiss = true
			}
		}
		if anyMiss {
			return fmt.Errorf("some inputs did not match")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
