// pkg/mem/hit_counter.go
package mem

import (
	"sync"
	"time"
)

// RateLimiterStore tracks request hits per key inside a sliding window.
type RateLimiterStore interface {
	// Allow records a hit for key and reports whether the key stays at or
	// under limit hits within the trailing window.
	Allow(key string, limit int, window time.Duration) bool

	// Remaining reports how many hits key has left in the current window
	// without recording one.
	Remaining(key string, limit int, window time.Duration) int
}

type HitCounters struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewHitCounters() *HitCounters {
	return &HitCounters{
		hits: make(map[string][]time.Time),
	}
}

func (s *HitCounters) Allow(key string, limit int, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	recent := prune(s.hits[key], now.Add(-window))

	if len(recent) >= limit {
		s.hits[key] = recent
		return false
	}

	s.hits[key] = append(recent, now)
	return true
}

func (s *HitCounters) Remaining(key string, limit int, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := prune(s.hits[key], time.Now().Add(-window))
	s.hits[key] = recent

	if remaining := limit - len(recent); remaining > 0 {
		return remaining
	}
	return 0
}

// prune drops hits recorded before cutoff. Entries are appended in time order,
// so the suffix after the first recent hit is kept as-is.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	for i, hit := range hits {
		if hit.After(cutoff) {
			return hits[i:]
		}
	}
	return nil
}
