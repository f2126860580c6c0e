package engine

import "sync"

// Store holds the latest result for every probed (host, service) pair.
// Probe goroutines each insert a single key under the write lock; the UI
// reads through snapshots. Entries are never removed, so a pair dropped
// from configuration keeps its last result until the process restarts.
type Store struct {
	mu      sync.RWMutex
	results map[Key]CheckResult
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{results: make(map[Key]CheckResult)}
}

// Put records a result, overwriting any previous entry for the same key.
func (s *Store) Put(result CheckResult) {
	s.mu.Lock()
	s.results[result.Key()] = result
	s.mu.Unlock()
}

// Snapshot returns a copy of the current results. Callers own the copy and
// can hold it across renders without blocking writers.
func (s *Store) Snapshot() map[Key]CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Key]CheckResult, len(s.results))
	for k, v := range s.results {
		out[k] = v
	}
	return out
}

// Len reports how many pairs have a recorded result.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
