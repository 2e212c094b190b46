package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/mehen/internal/output"
)

var (
	metricsFormat   string
	metricsPretty   bool
	metricsOutDir   string
	metricsLanguage string
	metricsJobs     int
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [paths...]",
	Short: "Compute metrics for files or directories",
	Long:  "Analyzes every supported source file under the given paths (default: cwd) and emits one metrics report per file.",
	RunE:  runMetrics,
}

func init() {
	metricsCmd.Flags().StringVarP(&metricsFormat, "format", "f", "json", "Output format: json, yaml, toml, cbor")
	metricsCmd.Flags().BoolVar(&metricsPretty, "pretty", false, "Indent JSON output")
	metricsCmd.Flags().StringVarP(&metricsOutDir, "output", "o", "", "Write one report file per source file into this directory")
	metricsCmd.Flags().StringVarP(&metricsLanguage, "language", "l", "", "Restrict to one language tag")
	metricsCmd.Flags().IntVarP(&metricsJobs, "jobs", "j", 0, "Worker count (default: number of CPUs)")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(metricsFormat)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		paths = []string{cwd}
	}

	runner, _ := newRunner(metricsJobs, metricsLanguage)
	files, err := runner.Discover(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported source files under %v", paths)
	}

	results := runner.Run(cmd.Context(), files)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "mehen: %s: %v\n", res.Path, res.Err)
			continue
		}
		if metricsOutDir != "" {
			if _, err := output.WriteFile(metricsOutDir, res.Report, format, metricsPretty); err != nil {
				return err
			}
			continue
		}
		if err := output.Write(os.Stdout, res.Report, format, metricsPretty); err != nil {
			return err
		}
	}

	if failed == len(results) {
		return fmt.Errorf("all %d files failed", failed)
	}
	return nil
}
