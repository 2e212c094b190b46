package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/corey/mehen/internal/output"
)

// skipDirs lists directories excluded from discovery (matches the fswatch
// ignore set).
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"target":       true,
}

// Result is one file's outcome in a batch run. Exactly one of Report and Err
// is set.
type Result struct {
	Path   string
	Report *output.FileReport
	Err    error
}

// Runner fans a batch of files out over a fixed worker pool.
type Runner struct {
	analyzer *Analyzer
	workers  int
	langTag  string
}

// NewRunner creates a runner with the given pool size; workers <= 0 means
// one worker per CPU.
func NewRunner(analyzer *Analyzer, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{analyzer: analyzer, workers: workers}
}

// SetLanguageFilter restricts discovery to files of one language tag.
func (r *Runner) SetLanguageFilter(tag string) {
	r.langTag = tag
}

// Discover expands the given paths into the sorted list of analyzable files.
// Directories are walked recursively; explicit file arguments bypass the
// extension filter only if the parser supports them.
func (r *Runner) Discover(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		langTag, ok := r.analyzer.parser.Detect(path)
		if !ok {
			return
		}
		if r.langTag != "" && langTag != r.langTag {
			return
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(abs)
			continue
		}
		err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable
			}
			if info.IsDir() {
				if skipDirs[info.Name()] && path != abs {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(info.Name(), ".") {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// Run analyzes every file through the worker pool. A file that fails yields
// a Result with Err set and never aborts the batch; cancellation stops the
// batch at file granularity. Results come back sorted by path.
func (r *Runner) Run(ctx context.Context, files []string) []Result {
	jobs := make(chan string)
	out := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := ctx.Err(); err != nil {
					out <- Result{Path: path, Err: err}
					continue
				}
				report, err := r.analyzer.AnalyzeFile(path)
				out <- Result{Path: path, Report: report, Err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []Result
	for res := range out {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results
}
