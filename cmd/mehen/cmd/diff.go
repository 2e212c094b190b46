package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/mehen/internal/adapters/bboltstore"
	"github.com/corey/mehen/internal/app"
)

var (
	diffSave     string
	diffAgainst  string
	diffStore    string
	diffLanguage string
	diffJobs     int
)

var diffCmd = &cobra.Command{
	Use:   "diff [paths...]",
	Short: "Save a metrics baseline or compare against one",
	Long:  "With --save, persists the current per-file metrics as a named baseline. With --against, reports which spaces' metrics moved since that baseline.",
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffSave, "save", "", "Save current metrics as a baseline under this name")
	diffCmd.Flags().StringVar(&diffAgainst, "against", "", "Compare current metrics against this baseline")
	diffCmd.Flags().StringVar(&diffStore, "store", "", "Baseline database path (default: .mehen/baselines.db)")
	diffCmd.Flags().StringVarP(&diffLanguage, "language", "l", "", "Restrict to one language tag")
	diffCmd.Flags().IntVarP(&diffJobs, "jobs", "j", 0, "Worker count (default: number of CPUs)")
}

func storePath() (string, error) {
	if diffStore != "" {
		return diffStore, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cwd, ".mehen")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "baselines.db"), nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	if (diffSave == "") == (diffAgainst == "") {
		return fmt.Errorf("exactly one of --save or --against is required")
	}

	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		paths = []string{cwd}
	}

	runner, _ := newRunner(diffJobs, diffLanguage)
	files, err := runner.Discover(paths)
	if err != nil {
		return err
	}
	results := runner.Run(cmd.Context(), files)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "mehen: %s: %v\n", res.Path, res.Err)
		}
	}

	path, err := storePath()
	if err != nil {
		return err
	}
	store, err := bboltstore.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if diffSave != "" {
		snapshot := app.Snapshot(results)
		if err := store.SaveBaseline(diffSave, snapshot); err != nil {
			return err
		}
		fmt.Printf("saved baseline %q (%d files)\n", diffSave, len(snapshot))
		return nil
	}

	baseline, err := store.LoadBaseline(diffAgainst)
	if err != nil {
		return err
	}
	if baseline == nil {
		return fmt.Errorf("no baseline named %q", diffAgainst)
	}

	deltas, err := app.Compare(baseline, results)
	if err != nil {
		return err
	}
	printDeltas(deltas)
	return nil
}

func printDeltas(deltas []app.FileDelta) {
	for _, fd := range deltas {
		if fd.Status == app.StatusUnchanged {
			continue
		}
		fmt.Printf("%s  %s\n", fd.Status, fd.Path)
		for _, md := range fd.Metrics {
			fmt.Printf("    %-40s %-16s %g -> %g\n", md.Space, md.Metric, md.Before, md.After)
		}
	}
}
