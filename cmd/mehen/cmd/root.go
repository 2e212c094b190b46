package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/mehen/internal/adapters/treesitter"
	"github.com/corey/mehen/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "mehen",
	Short: "mehen — source code metrics engine",
	Long:  "Computes per-space code metrics (cyclomatic, cognitive, Halstead, ABC, MI, LOC, ...) for Python, TypeScript, TSX, Rust and Go.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newRunner builds the standard parser/analyzer/runner pipeline shared by
// every subcommand.
func newRunner(jobs int, language string) (*app.Runner, *app.Analyzer) {
	parser := treesitter.NewParser()
	analyzer := app.NewAnalyzer(parser)
	runner := app.NewRunner(analyzer, jobs)
	if language != "" {
		runner.SetLanguageFilter(language)
	}
	return runner, analyzer
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(languagesCmd)
}
