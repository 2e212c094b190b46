// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Node is a read-only view over one node of an externally produced concrete
// syntax tree. The concrete implementation (tree-sitter) lives in
// internal/adapters/treesitter. Nodes are valid for the lifetime of one file's
// analysis and are never mutated by the domain.
type Node interface {
	// Kind returns the grammar's node kind string (e.g. "if_statement", "&&").
	Kind() string

	// StartByte and EndByte delimit the node's source slice as [start, end).
	// A node's range is always a superset of all its descendants' ranges.
	StartByte() uint
	EndByte() uint

	// StartRow and EndRow are zero-based line numbers.
	StartRow() uint
	EndRow() uint

	// ChildCount and Child give ordered access to all children, anonymous
	// (punctuation/keyword) nodes included. Child returns nil out of range.
	ChildCount() uint
	Child(i uint) Node

	// ChildByFieldName returns the child bound to a grammar field ("name",
	// "parameters", ...) or nil.
	ChildByFieldName(name string) Node

	// Parent returns the enclosing node, nil at the root.
	Parent() Node

	// IsNamed reports whether this is a semantic (named) node rather than an
	// anonymous token.
	IsNamed() bool

	// IsError and IsMissing identify nodes the parser synthesized while
	// recovering from a syntax error. HasError reports whether any descendant
	// is such a node.
	IsError() bool
	IsMissing() bool
	HasError() bool
}
