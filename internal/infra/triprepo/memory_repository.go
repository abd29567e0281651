package triprepo

import (
	"context"
	"sync"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

const defaultMemoryCapacity = 500

// MemoryRepository is an in-memory HistoryRepository used for tests/dev. It keeps
// the most recent records up to its capacity.
type MemoryRepository struct {
	mu       sync.RWMutex
	capacity int
	records  []itinerary.HistoryRecord
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryRepository{capacity: capacity}
}

// Insert implements itinerary.HistoryRepository.
func (r *MemoryRepository) Insert(_ context.Context, record itinerary.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	if over := len(r.records) - r.capacity; over > 0 {
		r.records = append([]itinerary.HistoryRecord(nil), r.records[over:]...)
	}
	return nil
}

// Recent implements itinerary.HistoryRepository, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]itinerary.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]itinerary.HistoryRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

var _ itinerary.HistoryRepository = (*MemoryRepository)(nil)
