package store

import (
	"context"
	"time"

	"github.com/kilianp07/planday/core/model"
)

// Repository abstracts task persistence. The scheduling core never touches
// storage directly; it only operates on the in-memory lists a repository
// hands out.
type Repository interface {
	// List returns all stored tasks in insertion order.
	List(ctx context.Context) ([]model.Task, error)
	// Add stores the task, assigning its id, and returns the stored copy.
	Add(ctx context.Context, t model.Task) (model.Task, error)
	// Remove deletes the task with the given id and reports how many
	// records were removed.
	Remove(ctx context.Context, id int64) (int, error)
	Close() error
}

// NewID returns a millisecond-timestamp id. Ids already taken are skipped by
// bumping, so two adds within the same millisecond cannot collide.
func NewID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken(id) {
		id++
	}
	return id
}
