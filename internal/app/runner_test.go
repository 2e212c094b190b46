package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/mehen/internal/adapters/treesitter"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestRunner(workers int) *Runner {
	return NewRunner(NewAnalyzer(treesitter.NewParser()), workers)
}

func TestDiscover_WalksAndFilters(t *testing.T) {
	dir := t.TempDir()
	py := writeFile(t, dir, "a.py", "x = 1\n")
	goFile := writeFile(t, dir, "sub/b.go", "package b\n")
	writeFile(t, dir, "README.md", "# not code\n")
	writeFile(t, dir, "node_modules/dep/index.ts", "export {}\n")
	writeFile(t, dir, ".hidden.py", "x = 1\n")

	r := newTestRunner(1)
	files, err := r.Discover([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{py, goFile}, files)
}

func TestDiscover_LanguageFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	rs := writeFile(t, dir, "b.rs", "fn main() {}\n")

	r := newTestRunner(1)
	r.SetLanguageFilter("rust")
	files, err := r.Discover([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{rs}, files)
}

func TestDiscover_ExplicitFileArgument(t *testing.T) {
	dir := t.TempDir()
	py := writeFile(t, dir, "single.py", "x = 1\n")

	r := newTestRunner(1)
	files, err := r.Discover([]string{py})
	require.NoError(t, err)
	assert.Equal(t, []string{py}, files)
}

func TestRun_PerFileErrorIsolation(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.py", "def f():\n    return 1\n")
	missing := filepath.Join(dir, "missing.py")

	r := newTestRunner(2)
	results := r.Run(context.Background(), []string{good, missing})
	require.Len(t, results, 2)

	// Results come back sorted by path.
	assert.Equal(t, good, results[0].Path)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "python", results[0].Report.Language)

	assert.Equal(t, missing, results[1].Path)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Report)
}

func TestRun_Cancellation(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 8; i++ {
		files = append(files, writeFile(t, dir, filepath.Join("f", string(rune('a'+i))+".py"), "x = 1\n"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(2)
	results := r.Run(ctx, files)
	for _, res := range results {
		assert.Error(t, res.Err)
	}
}

func TestAnalyzer_UnsupportedLanguage(t *testing.T) {
	a := NewAnalyzer(treesitter.NewParser())

	_, err := a.AnalyzeSource("x.cob", "cobol", []byte(""))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = a.AnalyzeFile("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestAnalyzer_SyntaxErrorDegradesNotFails(t *testing.T) {
	a := NewAnalyzer(treesitter.NewParser())

	report, err := a.AnalyzeSource("broken.go", "go", []byte("package p\n\nfunc broken( {\n"))
	require.NoError(t, err)
	assert.True(t, report.Degraded)
	assert.True(t, report.Unit.Degraded)
}
