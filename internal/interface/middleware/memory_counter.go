package middleware

import (
	"context"
	"sync"
	"time"
)

// MemoryCounterStore keeps sliding-window hit timestamps per key. It is the
// single-instance fallback when Redis is not configured.
type MemoryCounterStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

var _ CounterStore = (*MemoryCounterStore)(nil)

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{hits: make(map[string][]time.Time)}
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	s.hits[key] = kept

	reset := window - now.Sub(kept[0])
	if reset < 0 {
		reset = 0
	}
	return len(kept), reset, nil
}
