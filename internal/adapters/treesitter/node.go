package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/mehen/internal/ports"
)

// tsNode adapts a *tree_sitter.Node to ports.Node. The zero-cost wrapper is
// created lazily per access; the underlying tree owns all node memory and
// must outlive every wrapper handed out.
type tsNode struct {
	n *tree_sitter.Node
}

// wrap returns nil for nil nodes so callers can chain field lookups safely.
func wrap(n *tree_sitter.Node) ports.Node {
	if n == nil {
		return nil
	}
	return tsNode{n: n}
}

func (t tsNode) Kind() string     { return t.n.Kind() }
func (t tsNode) StartByte() uint  { return uint(t.n.StartByte()) }
func (t tsNode) EndByte() uint    { return uint(t.n.EndByte()) }
func (t tsNode) StartRow() uint   { return t.n.StartPosition().Row }
func (t tsNode) EndRow() uint     { return t.n.EndPosition().Row }
func (t tsNode) ChildCount() uint { return t.n.ChildCount() }
func (t tsNode) IsNamed() bool    { return t.n.IsNamed() }
func (t tsNode) IsError() bool    { return t.n.IsError() }
func (t tsNode) IsMissing() bool  { return t.n.IsMissing() }
func (t tsNode) HasError() bool   { return t.n.HasError() }

func (t tsNode) Child(i uint) ports.Node {
	return wrap(t.n.Child(i))
}

func (t tsNode) ChildByFieldName(name string) ports.Node {
	return wrap(t.n.ChildByFieldName(name))
}

func (t tsNode) Parent() ports.Node {
	return wrap(t.n.Parent())
}
