package app

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/corey/mehen/internal/domain/spaces"
	"github.com/corey/mehen/internal/output"
)

// File delta statuses.
const (
	StatusAdded     = "added"
	StatusRemoved   = "removed"
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
)

// MetricDelta is one metric that moved between two runs of the same space.
type MetricDelta struct {
	Space  string
	Metric string
	Before float64
	After  float64
}

// FileDelta summarizes how one file's metrics moved against a baseline.
type FileDelta struct {
	Path    string
	Status  string
	Metrics []MetricDelta
}

// Snapshot serializes successful batch results into the per-file byte map a
// baseline store persists. Failed files are left out: a baseline only ever
// holds analyzable code.
func Snapshot(results []Result) map[string][]byte {
	files := make(map[string][]byte)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		data, err := json.Marshal(res.Report)
		if err != nil {
			continue
		}
		files[res.Path] = data
	}
	return files
}

// Compare reports per-space metric deltas of current results against a saved
// baseline. Spaces are matched by their qualified name path, not by line
// numbers, so unrelated edits above a function do not mark it changed.
func Compare(baseline map[string][]byte, current []Result) ([]FileDelta, error) {
	curReports := make(map[string]*output.FileReport)
	for _, res := range current {
		if res.Err == nil {
			curReports[res.Path] = res.Report
		}
	}

	var deltas []FileDelta

	for path, data := range baseline {
		var base output.FileReport
		if err := json.Unmarshal(data, &base); err != nil {
			return nil, fmt.Errorf("baseline entry %s: %w", path, err)
		}
		cur, ok := curReports[path]
		if !ok {
			deltas = append(deltas, FileDelta{Path: path, Status: StatusRemoved})
			continue
		}
		moved := compareUnits(base.Unit, cur.Unit)
		status := StatusUnchanged
		if len(moved) > 0 {
			status = StatusChanged
		}
		deltas = append(deltas, FileDelta{Path: path, Status: status, Metrics: moved})
	}

	for path := range curReports {
		if _, ok := baseline[path]; !ok {
			deltas = append(deltas, FileDelta{Path: path, Status: StatusAdded})
		}
	}

	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Path < deltas[j].Path })
	return deltas, nil
}

// headline metrics reported by diff; the full record travels in the
// serialized reports for anyone who needs more.
func headlineMetrics(s *spaces.Space) map[string]float64 {
	m := s.Metrics
	return map[string]float64{
		"cyclomatic":      m.Cyclomatic,
		"cognitive":       m.Cognitive,
		"halstead.volume": m.Halstead.Volume,
		"mi":              m.Mi,
		"sloc":            m.Loc.Sloc,
		"lloc":            m.Loc.Lloc,
		"abc.magnitude":   m.Abc.Magnitude,
		"nargs.total":     m.Nargs.Total,
		"nexits":          m.Nexits,
		"nom":             m.Nom,
		"wmc":             m.Wmc,
	}
}

func compareUnits(base, cur *spaces.Space) []MetricDelta {
	baseFlat := flatten(base)
	curFlat := flatten(cur)

	var moved []MetricDelta
	keys := make([]string, 0, len(baseFlat))
	for k := range baseFlat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		b := baseFlat[key]
		c, ok := curFlat[key]
		if !ok {
			continue
		}
		bm, cm := headlineMetrics(b), headlineMetrics(c)
		names := make([]string, 0, len(bm))
		for name := range bm {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if bm[name] != cm[name] {
				moved = append(moved, MetricDelta{
					Space:  key,
					Metric: name,
					Before: bm[name],
					After:  cm[name],
				})
			}
		}
	}
	return moved
}

// flatten indexes every space by its qualified name path. Duplicate names
// (overloads, repeated anonymous closures) get a positional suffix so each
// space keeps a stable identity.
func flatten(root *spaces.Space) map[string]*spaces.Space {
	flat := make(map[string]*spaces.Space)
	var walk func(s *spaces.Space, prefix string)
	walk = func(s *spaces.Space, prefix string) {
		key := prefix + s.Name
		if _, dup := flat[key]; dup {
			key = fmt.Sprintf("%s#%d", key, s.StartLine)
		}
		flat[key] = s
		for _, c := range s.Children {
			walk(c, key+"::")
		}
	}
	walk(root, "")
	return flat
}
