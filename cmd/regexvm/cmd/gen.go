package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/regexvm/regexvm/internal/manifest"
	"github.com/regexvm/regexvm/pkg/regexvm"
)

var (
	genPattern  string
	genName     string
	genOut      string
	genPackage  string
	genManifest string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate Go matcher source for one or more patterns",
	Long: `Generate standalone Go matcher functions.

Single pattern:
  regexvm gen --pattern "hel+o" --name Greeting --out greeting.go --pkg patterns

Batch via a TOML manifest:
  regexvm gen --manifest patterns.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genManifest != "" {
			return runManifest(genManifest)
		}
		return regexvm.Generate(regexvm.Options{
			Pattern:    genPattern,
			Name:       genName,
			OutputFile: genOut,
			Package:    genPackage,
			Verbose:    verbose,
		})
	},
}

func runManifest(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(m.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", m.OutputDir, err)
	}

	for _, e := range m.Patterns {
		opts := regexvm.Options{
			Pattern:    e.Pattern,
			Name:       e.Name,
			OutputFile: filepath.Join(m.OutputDir, e.OutputFile()),
			Package:    m.Package,
			Verbose:    verbose,
		}
		if err := regexvm.Generate(opts); err != nil {
			return fmt.Errorf("pattern %s: %w", e.Name, err)
		}
	}
	return nil
}

func init() {
	genCmd.Flags().StringVar(&genPattern, "pattern", "", "pattern to compile")
	genCmd.Flags().StringVar(&genName, "name", "", "function name prefix for the generated matcher")
	genCmd.Flags().StringVar(&genOut, "out", "", "output file path")
	genCmd.Flags().StringVar(&genPackage, "pkg", "", "package name for the generated code")
	genCmd.Flags().StringVar(&genManifest, "manifest", "", "TOML manifest for batch generation")
	rootCmd.AddCommand(genCmd)
}
