package model

import (
	"slices"
	"sort"
	"sync"
)

// TraceStore maps canonical source paths to their line-ordered traces.
//
// Iteration is always in lexicographic path order so that reports built from
// the same store are reproducible. Each line appears at most once per path:
// Insert merges a trace for an already known line into the existing entry.
type TraceStore struct {
	mu     sync.RWMutex
	traces map[Path][]Trace
}

// NewTraceStore returns an empty store.
func NewTraceStore() *TraceStore {
	return &TraceStore{traces: make(map[Path][]Trace)}
}

// AddPath registers a path with no traces. Registering an existing path is a no-op.
func (s *TraceStore) AddPath(path Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.traces[path]; !ok {
		s.traces[path] = []Trace{}
	}
}

// Insert adds a trace for path, keeping the per-path slice sorted by line.
// Lines are 1-based; a trace for line 0 is dropped.
func (s *TraceStore) Insert(path Path, trace Trace) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertLocked(path, trace)
}

// InsertAll adds every trace for path.
func (s *TraceStore) InsertAll(path Path, traces []Trace) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.traces[path]; !ok {
		s.traces[path] = []Trace{}
	}

	for _, trace := range traces {
		s.insertLocked(path, trace)
	}
}

func (s *TraceStore) insertLocked(path Path, trace Trace) {
	if trace.Line == 0 {
		return
	}

	trace = trace.Clone()
	if trace.Length == 0 {
		trace.Length = 1
	}

	slices.Sort(trace.Address)
	trace.Address = slices.Compact(trace.Address)

	existing := s.traces[path]

	idx, found := slices.BinarySearchFunc(existing, trace.Line, func(t Trace, line uint64) int {
		switch {
		case t.Line < line:
			return -1
		case t.Line > line:
			return 1
		default:
			return 0
		}
	})
	if found {
		existing[idx] = existing[idx].merge(trace)
		return
	}

	s.traces[path] = slices.Insert(existing, idx, trace)
}

// Merge folds every path and trace of other into s.
func (s *TraceStore) Merge(other *TraceStore) {
	if other == nil || other == s {
		return
	}

	_ = other.Range(func(path Path, traces []Trace) error {
		s.InsertAll(path, traces)
		return nil
	})
}

// Snapshot returns a deep copy of the store taken under a single read lock.
func (s *TraceStore) Snapshot() *TraceStore {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &TraceStore{traces: make(map[Path][]Trace, len(s.traces))}
	for path, traces := range s.traces {
		out.traces[path] = CloneTraces(traces)
	}

	return out
}

// Len returns the number of paths in the store.
func (s *TraceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.traces)
}

// Contains reports whether path is present, even with no traces.
func (s *TraceStore) Contains(path Path) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.traces[path]

	return ok
}

// Paths returns every path in iteration order.
func (s *TraceStore) Paths() []Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedPathsLocked()
}

func (s *TraceStore) sortedPathsLocked() []Path {
	paths := make([]Path, 0, len(s.traces))
	for path := range s.traces {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i] < paths[j]
	})

	return paths
}

// Traces returns a copy of the traces recorded for path.
func (s *TraceStore) Traces(path Path) []Trace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return CloneTraces(s.traces[path])
}

// Range calls fn for each path in iteration order while holding the read
// lock. The slice passed to fn is the store's own; fn must not retain or
// modify it. Range stops at the first error returned by fn.
func (s *TraceStore) Range(fn func(path Path, traces []Trace) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, path := range s.sortedPathsLocked() {
		if err := fn(path, s.traces[path]); err != nil {
			return err
		}
	}

	return nil
}

// CoveredInPath counts the traces of path that executed at least once.
func (s *TraceStore) CoveredInPath(path Path) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return coveredIn(s.traces[path])
}

// CoverableInPath counts the traces recorded for path.
func (s *TraceStore) CoverableInPath(path Path) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.traces[path])
}

// TotalCovered counts hit traces across all paths.
func (s *TraceStore) TotalCovered() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, traces := range s.traces {
		total += coveredIn(traces)
	}

	return total
}

// TotalCoverable counts traces across all paths.
func (s *TraceStore) TotalCoverable() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, traces := range s.traces {
		total += len(traces)
	}

	return total
}

func coveredIn(traces []Trace) int {
	covered := 0

	for _, trace := range traces {
		if trace.IsHit() {
			covered++
		}
	}

	return covered
}
