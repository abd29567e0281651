package tripstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

// MemoryStore keeps trending counters in process memory for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementDestination bumps the counter for key and records its first display string.
func (s *MemoryStore) IncrementDestination(_ context.Context, key, display string) error {
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	if _, exists := s.displays[key]; !exists {
		s.displays[key] = display
	}
	return nil
}

// TopDestinations returns the most requested destinations.
func (s *MemoryStore) TopDestinations(_ context.Context, limit int) ([]itinerary.TrendingDestination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]itinerary.TrendingDestination, 0, len(s.counts))
	for key, count := range s.counts {
		display := s.displays[key]
		if display == "" {
			display = key
		}
		items = append(items, itinerary.TrendingDestination{Destination: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Destination < items[j].Destination
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ itinerary.TrendingStore = (*MemoryStore)(nil)
