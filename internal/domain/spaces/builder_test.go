package spaces

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/mehen/internal/adapters/treesitter"
	"github.com/corey/mehen/internal/domain/classify"
)

// analyze parses src and builds its space tree.
func analyze(t *testing.T, langTag, path, src string) *Space {
	t.Helper()
	p := treesitter.NewParser()
	file, err := p.Parse(langTag, []byte(src))
	require.NoError(t, err)
	defer file.Close()

	lang, ok := classify.FromTag(langTag)
	require.True(t, ok)
	return Build(lang, []byte(src), file.Root(), path)
}

// child returns the first direct child space with the given name.
func child(t *testing.T, s *Space, name string) *Space {
	t.Helper()
	for _, c := range s.Children {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no child space %q under %q", name, s.Name)
	return nil
}

func TestBuild_EmptyFile(t *testing.T) {
	unit := analyze(t, "python", "empty.py", "")

	assert.Equal(t, "unit", unit.Kind)
	assert.Equal(t, "empty.py", unit.Name)
	assert.Empty(t, unit.Children)
	assert.False(t, unit.Degraded)

	m := unit.Metrics
	assert.Equal(t, 1.0, m.Cyclomatic)
	assert.Zero(t, m.Cognitive)
	assert.Zero(t, m.Halstead.Length)
	assert.Zero(t, m.Halstead.Vocabulary)
	assert.Zero(t, m.Halstead.Volume)
	assert.Zero(t, m.Halstead.Difficulty)
	assert.Zero(t, m.Halstead.Effort)
	assert.Zero(t, m.Halstead.Bugs)
	assert.Zero(t, m.Loc.Sloc)
	assert.Zero(t, m.Loc.Ploc)
	assert.Zero(t, m.Loc.Lloc)
	assert.Zero(t, m.Loc.Cloc)
}

func TestBuild_IfElseCyclomatic(t *testing.T) {
	unit := analyze(t, "python", "branch.py", `def f(x):
    if x:
        return 1
    else:
        return 2
`)
	f := child(t, unit, "f")

	assert.Equal(t, "function", f.Kind)
	assert.Equal(t, 2.0, f.Metrics.Cyclomatic, "one if plus baseline")
	assert.Equal(t, 2.0, f.Metrics.Nexits)
	assert.Equal(t, 1.0, f.Metrics.Nargs.Total)
}

func TestBuild_PythonLoopElseIsDecisionPoint(t *testing.T) {
	unit := analyze(t, "python", "loop.py", `def f(xs):
    for x in xs:
        pass
    else:
        pass
`)
	f := child(t, unit, "f")

	// for contributes 1, the loop's else contributes 1.
	assert.Equal(t, 3.0, f.Metrics.Cyclomatic)
}

func TestBuild_CognitiveSequentialVsNested(t *testing.T) {
	unit := analyze(t, "go", "cog.go", `package p

func seq(a, b bool) {
	if a {
	}
	if b {
	}
}

func nested(a, b bool) {
	if a {
		if b {
		}
	}
}
`)
	assert.Equal(t, 2.0, child(t, unit, "seq").Metrics.Cognitive)
	assert.Equal(t, 3.0, child(t, unit, "nested").Metrics.Cognitive)
}

func TestBuild_ClassMethodAggregates(t *testing.T) {
	unit := analyze(t, "python", "calc.py", `class Calc:
    def one(self):
        return 1

    def two(self, x):
        if x:
            return 1
        return 2

    def three(self, x, y):
        if x:
            return 1
        if y:
            return 2
        return 3
`)
	calc := child(t, unit, "Calc")
	require.Equal(t, "type", calc.Kind)
	require.Len(t, calc.Children, 3)

	assert.Equal(t, 1.0, child(t, calc, "one").Metrics.Cyclomatic)
	assert.Equal(t, 2.0, child(t, calc, "two").Metrics.Cyclomatic)
	assert.Equal(t, 3.0, child(t, calc, "three").Metrics.Cyclomatic)

	assert.Equal(t, 3.0, calc.Metrics.Nom)
	assert.Equal(t, 3.0, calc.Metrics.Npm)
	assert.Equal(t, 6.0, calc.Metrics.Wmc)
	assert.Zero(t, calc.Metrics.Npa)

	// nargs aggregates over the methods: 1 (self), 2, 3.
	assert.Equal(t, 1.0, calc.Metrics.Nargs.Min)
	assert.Equal(t, 3.0, calc.Metrics.Nargs.Max)
	assert.Equal(t, 2.0, calc.Metrics.Nargs.Average)
	assert.Equal(t, 6.0, calc.Metrics.Nargs.Total)
}

func TestBuild_PrivateMethodsExcludedFromNpm(t *testing.T) {
	unit := analyze(t, "python", "vis.py", `class Store:
    def get(self):
        return 1

    def _evict(self):
        return 2
`)
	store := child(t, unit, "Store")
	assert.Equal(t, 2.0, store.Metrics.Nom)
	assert.Equal(t, 1.0, store.Metrics.Npm)
}

func TestBuild_HalsteadGoFunction(t *testing.T) {
	unit := analyze(t, "go", "add.go", `package p

func add(a int, b int) int {
	return a + b
}
`)
	h := child(t, unit, "add").Metrics.Halstead

	// operators: func ( , { return +   operands: add a b a b
	assert.Equal(t, 6.0, h.UniqueOperators)
	assert.Equal(t, 6.0, h.Operators)
	assert.Equal(t, 3.0, h.UniqueOperands)
	assert.Equal(t, 5.0, h.Operands)
	assert.Equal(t, 11.0, h.Length)
	assert.Equal(t, 9.0, h.Vocabulary)
	assert.Greater(t, h.Volume, 0.0)
	assert.GreaterOrEqual(t, h.Length, h.Vocabulary)
}

func TestBuild_RustImplicitExit(t *testing.T) {
	unit := analyze(t, "rust", "lib.rs", `fn double(x: i32) -> i32 {
    x * 2
}

fn log(msg: &str) {
    println!("{}", msg);
}
`)
	assert.Equal(t, 1.0, child(t, unit, "double").Metrics.Nexits, "tail expression return")
	assert.Zero(t, child(t, unit, "log").Metrics.Nexits)
	assert.Equal(t, 1.0, child(t, unit, "double").Metrics.Nargs.Total)
}

func TestBuild_AnonymousClosure(t *testing.T) {
	unit := analyze(t, "typescript", "map.ts", `[1, 2].map(x => x * 2);
`)
	require.Len(t, unit.Children, 1)
	cl := unit.Children[0]

	assert.Equal(t, "closure", cl.Kind)
	assert.Equal(t, "<anonymous>", cl.Name)
	assert.Equal(t, 1.0, cl.Metrics.Nargs.Total)
}

func TestBuild_ClosureNamedFromDeclarator(t *testing.T) {
	unit := analyze(t, "typescript", "decl.ts", `const twice = (x: number) => x * 2;
`)
	require.Len(t, unit.Children, 1)
	assert.Equal(t, "twice", unit.Children[0].Name)
	assert.Equal(t, "closure", unit.Children[0].Kind)
}

func TestBuild_LocFamily(t *testing.T) {
	unit := analyze(t, "python", "loc.py", `# leading comment

def f():
    # inner comment
    x = 1
    return x
`)
	loc := unit.Metrics.Loc
	assert.Equal(t, 5.0, loc.Sloc, "non-blank lines")
	assert.Equal(t, 2.0, loc.Cloc, "comment-only lines")
	assert.Equal(t, 3.0, loc.Ploc)
	assert.Equal(t, 2.0, loc.Lloc, "assignment + return")

	f := child(t, unit, "f")
	assert.Equal(t, 4.0, f.Metrics.Loc.Sloc)
	assert.Equal(t, 1.0, f.Metrics.Loc.Cloc)
	assert.Equal(t, 3.0, f.Metrics.Loc.Ploc)
	assert.Equal(t, 2.0, f.Metrics.Loc.Lloc)
}

func TestBuild_AbcGo(t *testing.T) {
	unit := analyze(t, "go", "abc.go", `package p

func f(a int) int {
	b := a + 1
	if b > 2 {
		b = g(b)
	}
	return b
}
`)
	abc := child(t, unit, "f").Metrics.Abc
	assert.Equal(t, 2.0, abc.Assignments)
	assert.Equal(t, 1.0, abc.Branches)
	assert.Equal(t, 1.0, abc.Conditions)
	assert.InDelta(t, 2.449489742783178, abc.Magnitude, 1e-12) // sqrt(6)
}

func TestBuild_MaintainabilityWithinRange(t *testing.T) {
	unit := analyze(t, "rust", "mi.rs", `fn busy(a: i32, b: i32) -> i32 {
    let mut total = 0;
    for i in 0..a {
        if i % 2 == 0 {
            total += i * b;
        }
    }
    total
}
`)
	unit.Walk(func(s *Space) {
		assert.GreaterOrEqual(t, s.Metrics.Mi, 0.0)
		assert.LessOrEqual(t, s.Metrics.Mi, 171.0)
	})
	assert.Less(t, child(t, unit, "busy").Metrics.Mi, 171.0)
}

func TestBuild_DegradedOnSyntaxError(t *testing.T) {
	unit := analyze(t, "go", "broken.go", "package p\n\nfunc broken( {\n")
	assert.True(t, unit.Degraded)
}

func TestBuild_Deterministic(t *testing.T) {
	src := `class Repo:
    def save(self, item):
        if item:
            self.items.append(item)
        return len(self.items)
`
	a := analyze(t, "python", "repo.py", src)
	b := analyze(t, "python", "repo.py", src)

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aj, bj)
}

func TestBuild_NestedFunctionOwnMetrics(t *testing.T) {
	unit := analyze(t, "python", "nested.py", `def outer(x):
    def inner(y):
        if y:
            return y
        return 0
    return inner(x)
`)
	outer := child(t, unit, "outer")
	inner := child(t, outer, "inner")

	// inner's decision point stays out of outer's cyclomatic count.
	assert.Equal(t, 1.0, outer.Metrics.Cyclomatic)
	assert.Equal(t, 2.0, inner.Metrics.Cyclomatic)
	assert.Equal(t, 1.0, outer.Metrics.Nexits)
	assert.Equal(t, 2.0, inner.Metrics.Nexits)
}

func TestBuild_LineRanges(t *testing.T) {
	unit := analyze(t, "go", "lines.go", `package p

func a() {
}

func b() {
}
`)
	assert.Equal(t, 1, unit.StartLine)
	fa := child(t, unit, "a")
	fb := child(t, unit, "b")
	assert.Equal(t, 3, fa.StartLine)
	assert.Equal(t, 4, fa.EndLine)
	assert.Equal(t, 6, fb.StartLine)
	assert.Equal(t, 7, fb.EndLine)
}
