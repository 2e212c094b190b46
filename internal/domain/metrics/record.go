// Package metrics defines the per-space Metrics Record and the derived-value
// formulas. Records are populated write-once during a single traversal and
// never revised afterwards. All derivations are total: divisions by zero and
// log2 of zero yield 0, so every record is fully populated even for empty
// bodies.
package metrics

import "math"

// Record is one space's full metric set. Every field always serializes with
// its zero/neutral value, never omitted, so diffing two runs never has to
// special-case missing keys.
type Record struct {
	Cyclomatic float64  `json:"cyclomatic" yaml:"cyclomatic" toml:"cyclomatic" cbor:"cyclomatic"`
	Cognitive  float64  `json:"cognitive" yaml:"cognitive" toml:"cognitive" cbor:"cognitive"`
	Halstead   Halstead `json:"halstead" yaml:"halstead" toml:"halstead" cbor:"halstead"`
	Loc        Loc      `json:"loc" yaml:"loc" toml:"loc" cbor:"loc"`
	Abc        Abc      `json:"abc" yaml:"abc" toml:"abc" cbor:"abc"`
	Mi         float64  `json:"mi" yaml:"mi" toml:"mi" cbor:"mi"`
	Nargs      Nargs    `json:"nargs" yaml:"nargs" toml:"nargs" cbor:"nargs"`
	Nom        float64  `json:"nom" yaml:"nom" toml:"nom" cbor:"nom"`
	Npm        float64  `json:"npm" yaml:"npm" toml:"npm" cbor:"npm"`
	Npa        float64  `json:"npa" yaml:"npa" toml:"npa" cbor:"npa"`
	Wmc        float64  `json:"wmc" yaml:"wmc" toml:"wmc" cbor:"wmc"`
	Nexits     float64  `json:"nexits" yaml:"nexits" toml:"nexits" cbor:"nexits"`
}

// Halstead is the Halstead metric suite for one space. N1/N2 are total
// operator/operand occurrences, n1/n2 the distinct counts.
type Halstead struct {
	UniqueOperators float64 `json:"n1" yaml:"n1" toml:"n1" cbor:"n1"`
	Operators       float64 `json:"N1" yaml:"N1" toml:"N1" cbor:"N1"`
	UniqueOperands  float64 `json:"n2" yaml:"n2" toml:"n2" cbor:"n2"`
	Operands        float64 `json:"N2" yaml:"N2" toml:"N2" cbor:"N2"`
	Length          float64 `json:"length" yaml:"length" toml:"length" cbor:"length"`
	Vocabulary      float64 `json:"vocabulary" yaml:"vocabulary" toml:"vocabulary" cbor:"vocabulary"`
	Volume          float64 `json:"volume" yaml:"volume" toml:"volume" cbor:"volume"`
	Difficulty      float64 `json:"difficulty" yaml:"difficulty" toml:"difficulty" cbor:"difficulty"`
	Effort          float64 `json:"effort" yaml:"effort" toml:"effort" cbor:"effort"`
	Time            float64 `json:"time" yaml:"time" toml:"time" cbor:"time"`
	Bugs            float64 `json:"bugs" yaml:"bugs" toml:"bugs" cbor:"bugs"`
}

// Loc is the line-count family for one space's byte range.
type Loc struct {
	Sloc float64 `json:"sloc" yaml:"sloc" toml:"sloc" cbor:"sloc"`
	Ploc float64 `json:"ploc" yaml:"ploc" toml:"ploc" cbor:"ploc"`
	Lloc float64 `json:"lloc" yaml:"lloc" toml:"lloc" cbor:"lloc"`
	Cloc float64 `json:"cloc" yaml:"cloc" toml:"cloc" cbor:"cloc"`
}

// Abc is the ABC size metric: assignments, branches (calls), conditions.
type Abc struct {
	Assignments float64 `json:"assignments" yaml:"assignments" toml:"assignments" cbor:"assignments"`
	Branches    float64 `json:"branches" yaml:"branches" toml:"branches" cbor:"branches"`
	Conditions  float64 `json:"conditions" yaml:"conditions" toml:"conditions" cbor:"conditions"`
	Magnitude   float64 `json:"magnitude" yaml:"magnitude" toml:"magnitude" cbor:"magnitude"`
}

// Nargs holds the argument-count statistics. A function space reports its own
// parameter count; unit and type spaces aggregate over descendant functions.
type Nargs struct {
	Min     float64 `json:"min" yaml:"min" toml:"min" cbor:"min"`
	Max     float64 `json:"max" yaml:"max" toml:"max" cbor:"max"`
	Average float64 `json:"average" yaml:"average" toml:"average" cbor:"average"`
	Total   float64 `json:"total" yaml:"total" toml:"total" cbor:"total"`
}

// log2z is log2 with the 0 -> 0 convention used throughout the engine.
func log2z(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

// lnz is the natural log with the 0 -> 0 convention.
func lnz(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}

// divz is division with the /0 -> 0 convention.
func divz(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// FinalizeHalstead derives the Halstead suite from raw operator/operand
// counts. Volume is measured in bits assuming a uniform binary encoding of
// the vocabulary; time divides effort by the Stroud number 18; bugs follow
// the volume/3000 estimate.
func FinalizeHalstead(uniqueOps, totalOps, uniqueOperands, totalOperands int) Halstead {
	h := Halstead{
		UniqueOperators: float64(uniqueOps),
		Operators:       float64(totalOps),
		UniqueOperands:  float64(uniqueOperands),
		Operands:        float64(totalOperands),
	}
	h.Length = h.Operators + h.Operands
	h.Vocabulary = h.UniqueOperators + h.UniqueOperands
	h.Volume = h.Length * log2z(h.Vocabulary)
	h.Difficulty = h.UniqueOperators / 2 * divz(h.Operands, h.UniqueOperands)
	h.Effort = h.Difficulty * h.Volume
	h.Time = h.Effort / 18
	h.Bugs = h.Volume / 3000
	return h
}

// Magnitude is the ABC vector magnitude sqrt(A² + B² + C²).
func (a Abc) WithMagnitude() Abc {
	a.Magnitude = math.Sqrt(a.Assignments*a.Assignments +
		a.Branches*a.Branches + a.Conditions*a.Conditions)
	return a
}

// MI coefficients: the classic maintainability index weighted-log form.
// Clamped to [0, 171] so pathological inputs stay in the documented range.
const (
	miCeiling      = 171.0
	miVolumeWeight = 5.2
	miCycloWeight  = 0.23
	miSlocWeight   = 16.2
)

// MaintainabilityIndex combines Halstead volume, cyclomatic complexity and
// SLOC for one space. Must be called only after its three inputs are final.
func MaintainabilityIndex(volume, cyclomatic, sloc float64) float64 {
	mi := miCeiling - miVolumeWeight*lnz(volume) - miCycloWeight*cyclomatic - miSlocWeight*lnz(sloc)
	if mi < 0 {
		return 0
	}
	if mi > miCeiling {
		return miCeiling
	}
	return mi
}

// NargsOf builds the statistics for a single function's own parameter count.
func NargsOf(count int) Nargs {
	c := float64(count)
	return Nargs{Min: c, Max: c, Average: c, Total: c}
}

// AggregateNargs summarizes parameter counts across descendant functions.
// An empty slice yields the all-zero record.
func AggregateNargs(counts []int) Nargs {
	if len(counts) == 0 {
		return Nargs{}
	}
	minC, maxC, total := counts[0], counts[0], 0
	for _, c := range counts {
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
		total += c
	}
	return Nargs{
		Min:     float64(minC),
		Max:     float64(maxC),
		Average: float64(total) / float64(len(counts)),
		Total:   float64(total),
	}
}
