// Package app wires the parser adapter to the domain engine and runs batches
// of files through them. Each file's analysis is independent: its own tree,
// its own space tree, its own report.
package app

import (
	"fmt"
	"os"

	"github.com/corey/mehen/internal/domain/classify"
	"github.com/corey/mehen/internal/domain/spaces"
	"github.com/corey/mehen/internal/output"
	"github.com/corey/mehen/internal/ports"
)

// Analyzer turns one source file into one FileReport.
type Analyzer struct {
	parser ports.Parser
}

// NewAnalyzer creates an analyzer on top of a parser.
func NewAnalyzer(parser ports.Parser) *Analyzer {
	return &Analyzer{parser: parser}
}

// Parser exposes the underlying parser for discovery and language listing.
func (a *Analyzer) Parser() ports.Parser {
	return a.parser
}

// AnalyzeSource analyzes in-memory source under an explicit language tag.
func (a *Analyzer) AnalyzeSource(path, langTag string, source []byte) (*output.FileReport, error) {
	lang, ok := classify.FromTag(langTag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, langTag)
	}

	file, err := a.parser.Parse(langTag, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}
	defer file.Close()

	unit := spaces.Build(lang, source, file.Root(), path)
	return &output.FileReport{
		Path:     path,
		Language: langTag,
		Degraded: unit.Degraded,
		Unit:     unit,
	}, nil
}

// AnalyzeFile reads a file from disk, detects its language and analyzes it.
func (a *Analyzer) AnalyzeFile(path string) (*output.FileReport, error) {
	langTag, ok := a.parser.Detect(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeSource(path, langTag, source)
}
