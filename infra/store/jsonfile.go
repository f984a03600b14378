package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/kilianp07/planday/core/model"
	corestore "github.com/kilianp07/planday/core/store"
)

// fileDoc is the on-disk layout: a single JSON object wrapping the task
// list, so task files written by earlier versions of the tool load as-is.
type fileDoc struct {
	Tasks []model.Task `json:"tasks"`
}

// JSONStore persists tasks in a single JSON file.
type JSONStore struct {
	path  string
	clock model.Clock
	mu    sync.Mutex
}

// NewJSONStore creates the file if it does not exist yet.
func NewJSONStore(path string, clock model.Clock) (*JSONStore, error) {
	if clock == nil {
		clock = model.RealClock{}
	}
	s := &JSONStore{path: path, clock: clock}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(fileDoc{Tasks: []model.Task{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() (fileDoc, error) {
	var doc fileDoc
	b, err := os.ReadFile(s.path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

func (s *JSONStore) save(doc fileDoc) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0644)
}

func (s *JSONStore) List(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

func (s *JSONStore) Add(ctx context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return model.Task{}, err
	}
	t.ID = corestore.NewID(s.clock.Now(), func(id int64) bool {
		for _, existing := range doc.Tasks {
			if existing.ID == id {
				return true
			}
		}
		return false
	})
	doc.Tasks = append(doc.Tasks, t)
	if err := s.save(doc); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *JSONStore) Remove(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	kept := doc.Tasks[:0]
	removed := 0
	for _, t := range doc.Tasks {
		if t.ID == id {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil
	}
	doc.Tasks = kept
	if err := s.save(doc); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *JSONStore) Close() error { return nil }
