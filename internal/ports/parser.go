package ports

// Parser produces syntax trees for the supported languages.
// The concrete implementation (tree-sitter) lives in internal/adapters/treesitter.
type Parser interface {
	// Detect maps a file path to a language tag ("python", "typescript",
	// "tsx", "rust", "go"). Returns false for unsupported extensions.
	Detect(path string) (string, bool)

	// Parse parses source under the given language tag and returns the root
	// syntax node. The returned ParsedFile owns parser resources; callers
	// must Close it when the file's analysis is done.
	Parse(langTag string, source []byte) (ParsedFile, error)

	// SupportsExtension returns true for extensions the parser recognizes
	// (leading dot included, e.g. ".py").
	SupportsExtension(ext string) bool

	// Languages lists all supported language tags.
	Languages() []string
}

// ParsedFile is one file's parse result.
type ParsedFile interface {
	Root() Node
	Close()
}
