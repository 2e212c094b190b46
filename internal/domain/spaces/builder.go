package spaces

import (
	"path/filepath"
	"sort"

	"github.com/corey/mehen/internal/domain/classify"
	"github.com/corey/mehen/internal/domain/metrics"
	"github.com/corey/mehen/internal/ports"
)

// Build partitions one file's syntax tree into nested spaces and fills every
// space's Metrics Record. The traversal is iterative with an explicit stack:
// cognitive-complexity nesting depth lives in the space frame, not in the call
// stack, so pathologically deep trees cannot overflow recursion.
//
// Build never fails. A tree containing parser error nodes still yields a
// best-effort space tree with the unit flagged degraded.
func Build(lang classify.Language, source []byte, root ports.Node, path string) *Space {
	b := &builder{
		lang:   lang,
		source: source,
	}

	unit := &Space{
		Kind:      classify.Unit.String(),
		kind:      classify.Unit,
		Name:      filepath.Base(path),
		StartLine: int(root.StartRow()) + 1,
		EndLine:   int(root.EndRow()) + 1,
		startByte: root.StartByte(),
		endByte:   root.EndByte(),
		Children:  []*Space{},
	}
	b.spaces = append(b.spaces, newCollector(unit))

	b.walk(root)

	unit.Degraded = b.degraded || root.HasError()
	b.closeSpace()

	b.finalize(unit)
	return unit
}

// collector accumulates one open space's raw counters during traversal.
type collector struct {
	space *Space

	cyclomatic float64
	cognitive  float64
	depth      int
	boolRun    classify.Category

	operators    map[string]int
	operands     map[string]int
	opTotal      int
	operandTotal int

	abc   metrics.Abc
	exits float64
	npa   float64
}

func newCollector(sp *Space) *collector {
	return &collector{
		space:      sp,
		cyclomatic: 1,
		boolRun:    classify.Other,
		operators:  make(map[string]int),
		operands:   make(map[string]int),
	}
}

type builder struct {
	lang   classify.Language
	source []byte

	spaces []*collector

	commentSpans [][2]uint
	stmtStarts   []uint
	degraded     bool
}

func (b *builder) top() *collector {
	return b.spaces[len(b.spaces)-1]
}

// nodeFrame is one explicit-stack entry: a node, the index of its next
// unvisited child, and the cleanup actions owed when the node is left.
type nodeFrame struct {
	node   ports.Node
	next   uint
	opened bool
	nested bool
}

func (b *builder) walk(root ports.Node) {
	stack := []*nodeFrame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next < f.node.ChildCount() {
			child := f.node.Child(f.next)
			f.next++
			if child == nil {
				continue
			}
			cf := &nodeFrame{node: child}
			b.enter(child, cf)
			stack = append(stack, cf)
			continue
		}

		// Leaving the node: unwind nesting and close its space.
		if f.nested {
			b.top().depth--
		}
		if f.opened {
			b.closeSpace()
		}
		stack = stack[:len(stack)-1]
	}
}

func (b *builder) enter(node ports.Node, f *nodeFrame) {
	if node.IsError() || node.IsMissing() {
		b.degraded = true
	}

	kind := node.Kind()

	if sk := classify.SpaceKindOf(b.lang, kind); sk != classify.NoSpace && sk != classify.Unit {
		b.openSpace(sk, node)
		f.opened = true
	}

	cur := b.top()

	if classify.CyclomaticPoint(b.lang, node) {
		cur.cyclomatic++
	}

	if classify.IsCognitiveBranch(b.lang, kind) || classify.IsCognitiveLoop(b.lang, kind) {
		cur.cognitive += float64(1 + cur.depth)
		cur.depth++
		cur.boolRun = classify.Other
		f.nested = true
	}

	// Boolean-operator sequences: a run of one kind costs 1, each kind
	// change costs 1 more. Runs reset at statement boundaries.
	if lk := classify.LogicalKind(b.lang, node); lk != classify.Other {
		if lk != cur.boolRun {
			cur.cognitive++
			cur.boolRun = lk
		}
	}

	switch classify.HalsteadKind(b.lang, node) {
	case classify.HalsteadOperator:
		cur.operators[classify.OperatorSymbol(kind)]++
		cur.opTotal++
	case classify.HalsteadOperand:
		cur.operands[b.text(node)]++
		cur.operandTotal++
	}

	if classify.IsAssignment(b.lang, kind) {
		cur.abc.Assignments++
	}
	if classify.IsCall(b.lang, kind) {
		cur.abc.Branches++
	}
	if classify.Classify(b.lang, kind) == classify.Branch || classify.LogicalKind(b.lang, node) != classify.Other {
		cur.abc.Conditions++
	}

	if classify.IsExit(b.lang, kind) {
		cur.exits++
	}

	if classify.IsStatement(b.lang, kind) {
		cur.boolRun = classify.Other
		b.stmtStarts = append(b.stmtStarts, node.StartByte())
	}

	if classify.IsComment(b.lang, kind) {
		b.commentSpans = append(b.commentSpans, [2]uint{node.StartByte(), node.EndByte()})
	}

	if classify.IsAttribute(b.lang, kind) && cur.space.kind == classify.Type {
		b.countAttribute(node, cur)
	}
}

func (b *builder) openSpace(sk classify.SpaceKind, node ports.Node) {
	name := classify.FuncName(b.lang, node, b.source)
	sp := &Space{
		Kind:       sk.String(),
		kind:       sk,
		Name:       name,
		StartLine:  int(node.StartRow()) + 1,
		EndLine:    int(node.EndRow()) + 1,
		startByte:  node.StartByte(),
		endByte:    node.EndByte(),
		Children:   []*Space{},
		visibility: classify.DeclVisibility(b.lang, node, name, b.source),
	}

	col := newCollector(sp)
	if sk == classify.Function || sk == classify.Closure {
		sp.nargs = classify.CountParams(b.lang, node)
		if classify.ImplicitExit(b.lang, node) {
			col.exits++
		}
	}
	b.spaces = append(b.spaces, col)
}

// closeSpace finalizes the innermost space's traversal-local metrics and
// hands the space to its parent. Range-derived metrics (LOC, MI) and
// roll-ups (NArgs, NOM, WMC) wait for finalize.
func (b *builder) closeSpace() {
	col := b.top()
	b.spaces = b.spaces[:len(b.spaces)-1]

	sp := col.space
	rec := &sp.Metrics
	rec.Cyclomatic = col.cyclomatic
	rec.Cognitive = col.cognitive
	rec.Halstead = metrics.FinalizeHalstead(
		len(col.operators), col.opTotal,
		len(col.operands), col.operandTotal,
	)
	rec.Abc = col.abc.WithMagnitude()
	rec.Nexits = col.exits
	rec.Npa = col.npa
	if sp.isFunctionLike() {
		rec.Nargs = metrics.NargsOf(sp.nargs)
	}

	if len(b.spaces) > 0 {
		parent := b.top()
		parent.space.Children = append(parent.space.Children, sp)
	}
}

// countAttribute counts a public field/attribute declaration directly under a
// type space.
func (b *builder) countAttribute(node ports.Node, cur *collector) {
	var name string
	switch b.lang {
	case classify.Python:
		left := node.ChildByFieldName("left")
		if left == nil || left.Kind() != "identifier" {
			return
		}
		name = b.text(left)
	default:
		if n := node.ChildByFieldName("name"); n != nil {
			name = b.text(n)
		}
	}
	if classify.DeclVisibility(b.lang, node, name, b.source) == classify.VisPublic {
		cur.npa++
	}
}

func (b *builder) text(node ports.Node) string {
	start, end := int(node.StartByte()), int(node.EndByte())
	if start >= len(b.source) || end > len(b.source) || start > end {
		return ""
	}
	return string(b.source[start:end])
}

// finalize runs the post-traversal passes: range-based LOC, the
// maintainability index (which needs Halstead volume, cyclomatic and SLOC
// final), argument-count roll-ups and the type-level method/attribute
// metrics.
func (b *builder) finalize(unit *Space) {
	lines := buildLineInfo(b.source, b.commentSpans)
	sort.Slice(b.stmtStarts, func(i, j int) bool { return b.stmtStarts[i] < b.stmtStarts[j] })

	b.finalizeSpace(unit, lines, true)
}

func (b *builder) finalizeSpace(sp *Space, lines []lineInfo, isUnit bool) []int {
	// Collect descendant function parameter counts bottom-up.
	var argCounts []int
	for _, c := range sp.Children {
		argCounts = append(argCounts, b.finalizeSpace(c, lines, false)...)
	}
	if sp.isFunctionLike() {
		argCounts = append(argCounts, sp.nargs)
	} else {
		sp.Metrics.Nargs = metrics.AggregateNargs(argCounts)
	}

	sp.Metrics.Loc = b.locFor(sp, lines, isUnit)

	sp.Metrics.Mi = metrics.MaintainabilityIndex(
		sp.Metrics.Halstead.Volume,
		sp.Metrics.Cyclomatic,
		sp.Metrics.Loc.Sloc,
	)

	if sp.kind == classify.Type {
		for _, c := range sp.Children {
			if c.kind != classify.Function {
				continue
			}
			sp.Metrics.Wmc += c.Metrics.Cyclomatic
			if c.isNamedFunction() {
				sp.Metrics.Nom++
				if c.visibility == classify.VisPublic {
					sp.Metrics.Npm++
				}
			}
		}
	}

	return argCounts
}

func (b *builder) locFor(sp *Space, lines []lineInfo, isUnit bool) metrics.Loc {
	start, end := sp.StartLine-1, sp.EndLine-1
	if isUnit {
		start, end = 0, len(lines)-1
	}

	var loc metrics.Loc
	for i := start; i <= end && i < len(lines); i++ {
		if i < 0 {
			continue
		}
		if lines[i].blank {
			continue
		}
		loc.Sloc++
		if lines[i].commentOnly {
			loc.Cloc++
		}
	}
	loc.Ploc = loc.Sloc - loc.Cloc

	lo, hi := sp.startByte, sp.endByte
	if isUnit {
		lo, hi = 0, uint(len(b.source))+1
	}
	first := sort.Search(len(b.stmtStarts), func(i int) bool { return b.stmtStarts[i] >= lo })
	last := sort.Search(len(b.stmtStarts), func(i int) bool { return b.stmtStarts[i] >= hi })
	loc.Lloc = float64(last - first)

	return loc
}

type lineInfo struct {
	blank       bool
	commentOnly bool
}

// buildLineInfo computes per-line blankness twice: once on the raw source and
// once with comment bytes blanked out. A line that is non-blank in the raw
// source but blank after stripping holds nothing but comment text.
func buildLineInfo(source []byte, commentSpans [][2]uint) []lineInfo {
	stripped := make([]byte, len(source))
	copy(stripped, source)
	for _, span := range commentSpans {
		for i := span[0]; i < span[1] && int(i) < len(stripped); i++ {
			if stripped[i] != '\n' {
				stripped[i] = ' '
			}
		}
	}

	var infos []lineInfo
	lineStart := 0
	for i := 0; i <= len(source); i++ {
		if i != len(source) && source[i] != '\n' {
			continue
		}
		rawBlank := isBlank(source[lineStart:i])
		strippedBlank := isBlank(stripped[lineStart:i])
		infos = append(infos, lineInfo{
			blank:       rawBlank,
			commentOnly: !rawBlank && strippedBlank,
		})
		lineStart = i + 1
	}
	return infos
}

func isBlank(line []byte) bool {
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return true
}
