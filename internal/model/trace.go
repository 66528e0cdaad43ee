// Package model defines the data structures shared by the coverage reporting stages.
package model

import "slices"

// CoverageStat holds the execution facts recorded for a trace.
type CoverageStat struct {
	Line uint64 `json:"Line" yaml:"line" toml:"line" xml:"line,attr"`
}

// Trace is a single line-level coverage fact.
type Trace struct {
	Line    uint64       `json:"line" yaml:"line" toml:"line" xml:"line,attr"`
	Address []uint64     `json:"address" yaml:"address,omitempty" toml:"address,omitempty" xml:"address,omitempty"`
	Length  int          `json:"length" yaml:"length" toml:"length" xml:"length,attr"`
	Stats   CoverageStat `json:"stats" yaml:"stats" toml:"stats" xml:"stats"`
}

// Hits returns the number of times the traced unit executed.
func (t Trace) Hits() uint64 {
	return t.Stats.Line
}

// IsHit reports whether the traced unit executed at least once.
func (t Trace) IsHit() bool {
	return t.Stats.Line > 0
}

// Clone returns a deep copy of the trace.
func (t Trace) Clone() Trace {
	out := t
	out.Address = slices.Clone(t.Address)

	if out.Address == nil {
		out.Address = []uint64{}
	}

	return out
}

// merge folds other into t. Counts are summed, addresses are unioned and the
// larger length wins.
func (t Trace) merge(other Trace) Trace {
	out := t.Clone()
	out.Stats.Line += other.Stats.Line

	if other.Length > out.Length {
		out.Length = other.Length
	}

	for _, addr := range other.Address {
		if !slices.Contains(out.Address, addr) {
			out.Address = append(out.Address, addr)
		}
	}

	slices.Sort(out.Address)

	return out
}

// CloneTraces deep-copies a trace slice. The result is never nil.
func CloneTraces(traces []Trace) []Trace {
	out := make([]Trace, 0, len(traces))
	for _, trace := range traces {
		out = append(out, trace.Clone())
	}

	return out
}
