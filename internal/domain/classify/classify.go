// Package classify maps raw tree-sitter node kinds onto a shared semantic
// vocabulary. Each supported language contributes one static table; tables are
// read-only after init and safe to share across worker goroutines. Unmapped
// kinds classify as Other, never an error.
package classify

import (
	"strings"

	"github.com/corey/mehen/internal/ports"
)

// Language selects a classification table.
type Language int

const (
	Python Language = iota
	Typescript
	Tsx
	Rust
	Go
)

// FromTag resolves a language tag to its table.
func FromTag(tag string) (Language, bool) {
	switch tag {
	case "python":
		return Python, true
	case "typescript":
		return Typescript, true
	case "tsx":
		return Tsx, true
	case "rust":
		return Rust, true
	case "go":
		return Go, true
	}
	return 0, false
}

func (l Language) String() string {
	switch l {
	case Python:
		return "python"
	case Typescript:
		return "typescript"
	case Tsx:
		return "tsx"
	case Rust:
		return "rust"
	case Go:
		return "go"
	}
	return "unknown"
}

// Category is the language-independent classification of a node kind.
type Category int

const (
	Other Category = iota
	Operator
	Operand
	Branch
	Loop
	LogicalAnd
	LogicalOr
	ExitStatement
	FunctionBoundary
	ClosureBoundary
	TypeBoundary
	NamespaceBoundary
	Comment
	StringLiteral
	Call
	Assignment
	Statement
)

// SpaceKind is the kind of lexical scope a boundary node opens.
type SpaceKind int

const (
	NoSpace SpaceKind = iota
	Unit
	Namespace
	Type
	Function
	Closure
)

func (k SpaceKind) String() string {
	switch k {
	case Unit:
		return "unit"
	case Namespace:
		return "namespace"
	case Type:
		return "type"
	case Function:
		return "function"
	case Closure:
		return "closure"
	}
	return "none"
}

// Visibility of a declaration. Rules differ sharply per language:
// capitalization for Go, leading underscore for Python, explicit modifiers
// for Rust and TypeScript.
type Visibility int

const (
	VisUnknown Visibility = iota
	VisPublic
	VisPrivate
)

// HalsteadType is the Halstead axis of classification. It is orthogonal to
// Category: a control keyword like "if" is both a Branch and a Halstead
// operator.
type HalsteadType int

const (
	HalsteadNone HalsteadType = iota
	HalsteadOperator
	HalsteadOperand
)

type set map[string]struct{}

func mkset(kinds ...string) set {
	s := make(set, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s set) has(kind string) bool {
	_, ok := s[kind]
	return ok
}

// table holds one language's complete classification. Control-flow sets exist
// on two levels: token-level (branch/loop, consumed by cyclomatic complexity,
// one token per decision point) and container-level (cogBranch/cogLoop,
// consumed by cognitive complexity, which needs subtree extent for nesting).
type table struct {
	unit        string
	branch      set
	loop        set
	logicalAnd  set
	logicalOr   set
	cogBranch   set
	cogLoop     set
	exit        set
	funcs       set
	closures    set
	types       set
	namespaces  set
	comments    set
	strings     set
	calls       set
	assignments set
	attributes  set
	statements  set
	halOperator set
	halOperand  set
}

var tables = map[Language]*table{
	Python:     pythonTable,
	Typescript: typescriptTable,
	Tsx:        tsxTable,
	Rust:       rustTable,
	Go:         goTable,
}

// Classify returns the primary semantic category of a raw node kind.
// Total and deterministic: exactly one category per kind, Other as fallback.
// Boundary kinds win over control kinds, control over lexical, lexical over
// the Halstead operator/operand fallback.
func Classify(lang Language, kind string) Category {
	t := tables[lang]
	switch {
	case kind == t.unit:
		return Other
	case t.funcs.has(kind):
		return FunctionBoundary
	case t.closures.has(kind):
		return ClosureBoundary
	case t.types.has(kind):
		return TypeBoundary
	case t.namespaces.has(kind):
		return NamespaceBoundary
	case t.branch.has(kind):
		return Branch
	case t.loop.has(kind):
		return Loop
	case t.logicalAnd.has(kind):
		return LogicalAnd
	case t.logicalOr.has(kind):
		return LogicalOr
	case t.exit.has(kind):
		return ExitStatement
	case t.comments.has(kind):
		return Comment
	case t.strings.has(kind):
		return StringLiteral
	case t.calls.has(kind):
		return Call
	case t.assignments.has(kind):
		return Assignment
	case t.statements.has(kind):
		return Statement
	case t.halOperator.has(kind):
		return Operator
	case t.halOperand.has(kind):
		return Operand
	}
	return Other
}

// IsComment reports whether the kind is a comment node.
func IsComment(lang Language, kind string) bool {
	return tables[lang].comments.has(kind)
}

// IsStatement reports whether the kind terminates a logical line (LLOC).
func IsStatement(lang Language, kind string) bool {
	return tables[lang].statements.has(kind)
}

// IsCall reports whether the kind is a call expression (ABC branches).
func IsCall(lang Language, kind string) bool {
	return tables[lang].calls.has(kind)
}

// IsAssignment reports whether the kind is an assignment (ABC assignments).
func IsAssignment(lang Language, kind string) bool {
	return tables[lang].assignments.has(kind)
}

// IsAttribute reports whether the kind declares a type attribute/field.
func IsAttribute(lang Language, kind string) bool {
	return tables[lang].attributes.has(kind)
}

// IsCognitiveBranch reports whether the kind is a container-level branch
// construct for cognitive complexity.
func IsCognitiveBranch(lang Language, kind string) bool {
	return tables[lang].cogBranch.has(kind)
}

// IsCognitiveLoop reports whether the kind is a container-level loop
// construct for cognitive complexity.
func IsCognitiveLoop(lang Language, kind string) bool {
	return tables[lang].cogLoop.has(kind)
}

// SpaceKindOf returns the kind of space a node kind opens, or NoSpace.
func SpaceKindOf(lang Language, kind string) SpaceKind {
	t := tables[lang]
	switch {
	case kind == t.unit:
		return Unit
	case t.funcs.has(kind):
		return Function
	case t.closures.has(kind):
		return Closure
	case t.types.has(kind):
		return Type
	case t.namespaces.has(kind):
		return Namespace
	}
	return NoSpace
}

// UnitKind returns the root node kind for the language.
func UnitKind(lang Language) string {
	return tables[lang].unit
}

// OperatorSymbol normalizes bracket tokens for Halstead operator identity,
// so "(" and ")" collapse into one "()" operator.
func OperatorSymbol(kind string) string {
	switch kind {
	case "(":
		return "()"
	case "[":
		return "[]"
	case "{":
		return "{}"
	}
	return kind
}

// CyclomaticPoint reports whether the node adds a decision point. Most kinds
// resolve through the token tables; Python's loop-else clause needs node
// context (an "else" belonging to a for/while is a decision, an if-else is
// not).
func CyclomaticPoint(lang Language, node ports.Node) bool {
	t := tables[lang]
	kind := node.Kind()
	if t.branch.has(kind) || t.loop.has(kind) {
		return true
	}
	if isLogicalNode(lang, node) {
		return true
	}
	if lang == Python && kind == "else" {
		if p := node.Parent(); p != nil && p.Kind() == "else_clause" {
			if gp := p.Parent(); gp != nil {
				return gp.Kind() == "for_statement" || gp.Kind() == "while_statement"
			}
		}
	}
	return false
}

// LogicalKind returns LogicalAnd or LogicalOr for boolean operator tokens,
// Other for everything else. Rust "||" only counts inside a binary
// expression; bare "||" is an empty closure parameter list.
func LogicalKind(lang Language, node ports.Node) Category {
	t := tables[lang]
	kind := node.Kind()
	switch {
	case t.logicalAnd.has(kind):
		return LogicalAnd
	case t.logicalOr.has(kind):
		if lang == Rust && !parentIs(node, "binary_expression") {
			return Other
		}
		return LogicalOr
	}
	return Other
}

func isLogicalNode(lang Language, node ports.Node) bool {
	return LogicalKind(lang, node) != Other
}

func parentIs(node ports.Node, kind string) bool {
	p := node.Parent()
	return p != nil && p.Kind() == kind
}

// HalsteadKind classifies a node on the Halstead axis. A few kinds need node
// context: Python strings are operands unless they are docstrings, Rust "||"
// and "/" are operators only outside closure-parameter and doc-comment
// positions, Rust "!" is an operator unless it marks an inner doc comment.
func HalsteadKind(lang Language, node ports.Node) HalsteadType {
	t := tables[lang]
	kind := node.Kind()

	switch lang {
	case Python:
		if kind == "string" {
			// A string whose parent is an expression statement with a single
			// child is a docstring, not an operand.
			if p := node.Parent(); p != nil && p.Kind() == "expression_statement" && p.ChildCount() == 1 {
				return HalsteadNone
			}
			return HalsteadOperand
		}
	case Rust:
		switch kind {
		case "||", "/":
			if parentIs(node, "binary_expression") {
				return HalsteadOperator
			}
			return HalsteadNone
		case "!":
			if parentIs(node, "inner_doc_comment_marker") {
				return HalsteadNone
			}
			return HalsteadOperator
		}
	}

	switch {
	case t.halOperator.has(kind):
		return HalsteadOperator
	case t.halOperand.has(kind):
		return HalsteadOperand
	}
	return HalsteadNone
}

// IsExit reports whether the node is an explicit exit point.
func IsExit(lang Language, kind string) bool {
	return tables[lang].exit.has(kind)
}

// ImplicitExit reports whether opening this function boundary contributes an
// implicit exit point. Rust functions with a declared return type return
// through their tail expression.
func ImplicitExit(lang Language, node ports.Node) bool {
	return lang == Rust && node.ChildByFieldName("return_type") != nil
}

// FuncName resolves the best-effort name of a boundary node. Falls back to
// the enclosing pair/declarator for anonymous TypeScript functions and to the
// impl target type for Rust, else "<anonymous>".
func FuncName(lang Language, node ports.Node, source []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return nodeText(name, source)
	}
	if lang == Rust {
		if typ := node.ChildByFieldName("type"); typ != nil {
			return nodeText(typ, source)
		}
	}
	if lang == Typescript || lang == Tsx {
		if p := node.Parent(); p != nil {
			switch p.Kind() {
			case "pair":
				if key := p.ChildByFieldName("key"); key != nil {
					return nodeText(key, source)
				}
			case "variable_declarator":
				if name := p.ChildByFieldName("name"); name != nil {
					return nodeText(name, source)
				}
			}
		}
	}
	return "<anonymous>"
}

// DeclVisibility resolves the visibility of a named declaration node.
func DeclVisibility(lang Language, node ports.Node, name string, source []byte) Visibility {
	switch lang {
	case Go:
		if name == "" || name == "<anonymous>" {
			return VisUnknown
		}
		if c := name[0]; c >= 'A' && c <= 'Z' {
			return VisPublic
		}
		return VisPrivate
	case Rust:
		for i := uint(0); i < node.ChildCount(); i++ {
			if c := node.Child(i); c != nil && c.Kind() == "visibility_modifier" {
				return VisPublic
			}
		}
		return VisPrivate
	case Python:
		if name == "" || name == "<anonymous>" {
			return VisUnknown
		}
		if strings.HasPrefix(name, "_") {
			return VisPrivate
		}
		return VisPublic
	case Typescript, Tsx:
		if strings.HasPrefix(name, "#") {
			return VisPrivate
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			c := node.Child(i)
			if c == nil || c.Kind() != "accessibility_modifier" {
				continue
			}
			if mod := nodeText(c, source); mod == "private" || mod == "protected" {
				return VisPrivate
			}
			return VisPublic
		}
		return VisPublic
	}
	return VisUnknown
}

// CountParams counts the parameter names declared directly under a
// function/closure boundary node.
func CountParams(lang Language, node ports.Node) int {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		// single-argument arrow function without parentheses: x => x
		if (lang == Typescript || lang == Tsx) && node.ChildByFieldName("parameter") != nil {
			return 1
		}
		return 0
	}
	switch lang {
	case Python:
		return countKinds(params, "identifier", "typed_parameter",
			"default_parameter", "typed_default_parameter",
			"list_splat_pattern", "dictionary_splat_pattern")
	case Typescript, Tsx:
		return countKinds(params, "required_parameter", "optional_parameter", "rest_pattern")
	case Rust:
		return countKinds(params, "parameter", "self_parameter", "identifier")
	case Go:
		// a parameter_declaration may bind several names: (a, b int)
		n := 0
		for i := uint(0); i < params.ChildCount(); i++ {
			c := params.Child(i)
			if c == nil {
				continue
			}
			switch c.Kind() {
			case "parameter_declaration", "variadic_parameter_declaration":
				names := countKinds(c, "identifier")
				if names == 0 {
					names = 1 // unnamed parameter, e.g. func(int)
				}
				n += names
			}
		}
		return n
	}
	return 0
}

func countKinds(parent ports.Node, kinds ...string) int {
	want := mkset(kinds...)
	n := 0
	for i := uint(0); i < parent.ChildCount(); i++ {
		if c := parent.Child(i); c != nil && want.has(c.Kind()) {
			n++
		}
	}
	return n
}

func nodeText(n ports.Node, source []byte) string {
	start, end := int(n.StartByte()), int(n.EndByte())
	if start >= len(source) || end > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}
