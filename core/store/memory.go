package store

import (
	"context"
	"sync"

	"github.com/kilianp07/planday/core/model"
)

// MemoryStore keeps tasks in memory. It backs tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	clock model.Clock
	tasks []model.Task
}

// NewMemoryStore creates an empty MemoryStore. A nil clock falls back to the
// system clock.
func NewMemoryStore(clock model.Clock) *MemoryStore {
	if clock == nil {
		clock = model.RealClock{}
	}
	return &MemoryStore{clock: clock}
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) Add(ctx context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = NewID(s.clock.Now(), func(id int64) bool {
		for _, existing := range s.tasks {
			if existing.ID == id {
				return true
			}
		}
		return false
	})
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *MemoryStore) Remove(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.ID == id {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed, nil
}

func (s *MemoryStore) Close() error { return nil }
