package app

import "errors"

var (
	// ErrUnsupportedLanguage marks files whose extension or requested tag
	// maps to no registered grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrMalformedSource marks files the parser could not turn into a tree
	// at all. Recoverable syntax errors are not this: they produce a
	// degraded unit, not an error.
	ErrMalformedSource = errors.New("malformed source")
)
