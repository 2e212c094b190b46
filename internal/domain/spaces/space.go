// Package spaces reconstructs the logical unit/namespace/type/function
// nesting of one source file from its flat syntax tree and computes every
// metric during that same traversal. A file's Space tree is exclusively owned
// by its analysis: no state is shared across files or runs.
package spaces

import (
	"github.com/corey/mehen/internal/domain/classify"
	"github.com/corey/mehen/internal/domain/metrics"
)

// Space is one lexical scope unit and the owner of one Metrics Record.
// The tree is strict: single parent, one Unit root per file, child byte
// ranges fully contained in their parent's, siblings non-overlapping.
type Space struct {
	Kind      string         `json:"space_kind" yaml:"space_kind" toml:"space_kind" cbor:"space_kind"`
	Name      string         `json:"name" yaml:"name" toml:"name" cbor:"name"`
	StartLine int            `json:"start_line" yaml:"start_line" toml:"start_line" cbor:"start_line"`
	EndLine   int            `json:"end_line" yaml:"end_line" toml:"end_line" cbor:"end_line"`
	Degraded  bool           `json:"degraded" yaml:"degraded" toml:"degraded" cbor:"degraded"`
	Metrics   metrics.Record `json:"metrics" yaml:"metrics" toml:"metrics" cbor:"metrics"`
	Children  []*Space       `json:"children" yaml:"children" toml:"children" cbor:"children"`

	kind       classify.SpaceKind
	visibility classify.Visibility
	nargs      int
	startByte  uint
	endByte    uint
}

// SpaceKind returns the typed kind of this space.
func (s *Space) SpaceKind() classify.SpaceKind { return s.kind }

// Visibility returns the declared visibility of the space's boundary node.
func (s *Space) Visibility() classify.Visibility { return s.visibility }

// Walk visits the space and all descendants depth-first.
func (s *Space) Walk(fn func(*Space)) {
	fn(s)
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

func (s *Space) isFunctionLike() bool {
	return s.kind == classify.Function || s.kind == classify.Closure
}

func (s *Space) isNamedFunction() bool {
	return s.kind == classify.Function && s.Name != anonymousName
}

const anonymousName = "<anonymous>"
