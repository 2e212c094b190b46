// Package treesitter implements ports.Parser on the tree-sitter runtime.
// The five grammars are compiled in via CGo from the official tree-sitter
// org bindings; there is no dynamic grammar loading, the classifier tables
// are fixed at build time anyway.
package treesitter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ts_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/corey/mehen/internal/ports"
)

// Parser maps language tags to compiled-in grammars. Safe for concurrent use:
// the maps are read-only after construction and each Parse call builds its
// own tree_sitter.Parser.
type Parser struct {
	languages map[string]*tree_sitter.Language
	extToLang map[string]string
}

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// NewParser creates a parser with all five grammars registered.
func NewParser() *Parser {
	p := &Parser{
		languages: make(map[string]*tree_sitter.Language),
		extToLang: make(map[string]string),
	}

	p.addLang("python", langPtr(ts_python.Language()))
	p.addLang("typescript", langPtr(ts_typescript.LanguageTypescript()))
	p.addLang("tsx", langPtr(ts_typescript.LanguageTSX()))
	p.addLang("rust", langPtr(ts_rust.Language()))
	p.addLang("go", langPtr(ts_go.Language()))

	p.addExt("python", ".py")
	p.addExt("typescript", ".ts")
	p.addExt("tsx", ".tsx", ".jsx")
	p.addExt("rust", ".rs")
	p.addExt("go", ".go")
	return p
}

func (p *Parser) addLang(name string, lang *tree_sitter.Language) {
	if lang != nil {
		p.languages[name] = lang
	}
}

func (p *Parser) addExt(lang string, exts ...string) {
	for _, ext := range exts {
		p.extToLang[ext] = lang
	}
}

// Detect maps a file path to a language tag via its extension.
func (p *Parser) Detect(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := p.extToLang[ext]
	return lang, ok
}

// SupportsExtension returns true if the parser recognizes this file extension.
func (p *Parser) SupportsExtension(ext string) bool {
	_, ok := p.extToLang[strings.ToLower(ext)]
	return ok
}

// Languages lists the registered language tags, sorted.
func (p *Parser) Languages() []string {
	tags := make([]string, 0, len(p.languages))
	for tag := range p.languages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ExtensionsFor lists the registered extensions of one language tag, sorted.
func (p *Parser) ExtensionsFor(langTag string) []string {
	var exts []string
	for ext, lang := range p.extToLang {
		if lang == langTag {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Parse builds the syntax tree for source under the given language tag.
// Malformed source still parses: tree-sitter recovers with error nodes and
// the caller decides how to surface the degradation.
func (p *Parser) Parse(langTag string, source []byte) (ports.ParsedFile, error) {
	lang, ok := p.languages[langTag]
	if !ok {
		return nil, fmt.Errorf("treesitter: no grammar for language %q", langTag)
	}

	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		parser.Close()
		return nil, fmt.Errorf("treesitter: set language %q: %w", langTag, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		parser.Close()
		return nil, fmt.Errorf("treesitter: parse failed for language %q", langTag)
	}

	return &parsedFile{parser: parser, tree: tree}, nil
}

// parsedFile keeps the parser alive alongside its tree; both are released on
// Close and every Node handed out is invalid afterwards.
type parsedFile struct {
	parser *tree_sitter.Parser
	tree   *tree_sitter.Tree
}

func (f *parsedFile) Root() ports.Node {
	return wrap(f.tree.RootNode())
}

func (f *parsedFile) Close() {
	f.tree.Close()
	f.parser.Close()
}
