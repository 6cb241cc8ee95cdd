package levels

import (
	"context"
	"math/rand/v2"
	"sync"
)

// MemoryStore is an in-memory Store used when no database is configured
// (dev mode) and by handler tests.
type MemoryStore struct {
	mu     sync.Mutex
	levels []Record
}

// NewMemoryStore constructs a MemoryStore holding the given levels.
func NewMemoryStore(levels ...Record) *MemoryStore {
	return &MemoryStore{levels: append([]Record(nil), levels...)}
}

func (s *MemoryStore) All(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.levels...), nil
}

func (s *MemoryStore) Random(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.levels) == 0 {
		return Record{}, ErrNoLevels
	}
	return s.levels[rand.IntN(len(s.levels))], nil
}
