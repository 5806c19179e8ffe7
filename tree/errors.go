package tree

import (
	"sort"
	"sync"
)

// ErrorCode identifies a kind of structural defect detected on a node.
// Analyzer packages define their own code constants of this type.
type ErrorCode string

// errorSet is the per-node mutable annotation slot. It is insert-only and
// safe for concurrent use so that multiple analyzers can annotate the same
// tree in parallel.
type errorSet struct {
	mu    sync.Mutex
	codes map[ErrorCode]struct{}
}

func (s *errorSet) add(code ErrorCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codes == nil {
		s.codes = make(map[ErrorCode]struct{})
	}
	s.codes[code] = struct{}{}
}

func (s *errorSet) has(code ErrorCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.codes[code]
	return ok
}

func (s *errorSet) all() []ErrorCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		return nil
	}
	codes := make([]ErrorCode, 0, len(s.codes))
	for c := range s.codes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
