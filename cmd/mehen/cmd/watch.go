package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/mehen/internal/adapters/fswatch"
	"github.com/corey/mehen/internal/output"
)

var (
	watchFormat string
	watchPretty bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Recompute metrics when source files change",
	Long:  "Watches a directory tree (default: cwd) and re-analyzes each changed file, emitting its fresh report. Runs until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "json", "Output format: json, yaml, toml, cbor")
	watchCmd.Flags().BoolVar(&watchPretty, "pretty", false, "Indent JSON output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(watchFormat)
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	_, analyzer := newRunner(0, "")

	watcher, err := fswatch.NewWatcher(analyzer.Parser().SupportsExtension)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	err = watcher.Watch(root, func(path string) {
		if _, statErr := os.Stat(path); statErr != nil {
			return // deleted; nothing to analyze
		}
		report, err := analyzer.AnalyzeFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mehen: %s: %v\n", path, err)
			return
		}
		if err := output.Write(os.Stdout, report, format, watchPretty); err != nil {
			fmt.Fprintf(os.Stderr, "mehen: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "watching %s — ctrl-c to stop\n", root)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case <-cmd.Context().Done():
	}
	return nil
}
