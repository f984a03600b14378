package store

import (
	"context"
	"testing"
	"time"

	"github.com/kilianp07/planday/core/model"
)

var fixed = model.FixedClock{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

func TestMemoryStoreAddListRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(fixed)
	a, err := s.Add(ctx, model.Task{Title: "a", Minutes: 30, Impact: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := s.Add(ctx, model.Task{Title: "b", Minutes: 60, Impact: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.ID == 0 || b.ID == 0 {
		t.Fatalf("ids not assigned: %d %d", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("same-millisecond adds must not collide: %d", a.ID)
	}
	tasks, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "a" || tasks[1].Title != "b" {
		t.Fatalf("bad list %+v", tasks)
	}
	removed, err := s.Remove(ctx, a.ID)
	if err != nil || removed != 1 {
		t.Fatalf("remove: %d %v", removed, err)
	}
	removed, err = s.Remove(ctx, a.ID)
	if err != nil || removed != 0 {
		t.Fatalf("second remove should match nothing: %d %v", removed, err)
	}
	tasks, _ = s.List(ctx)
	if len(tasks) != 1 || tasks[0].Title != "b" {
		t.Fatalf("bad list after remove %+v", tasks)
	}
}

func TestMemoryStoreListCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(fixed)
	if _, err := s.Add(ctx, model.Task{Title: "a", Minutes: 30, Impact: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	tasks, _ := s.List(ctx)
	tasks[0].Title = "mutated"
	again, _ := s.List(ctx)
	if again[0].Title != "a" {
		t.Fatalf("store leaked internal slice")
	}
}

func TestNewIDBumpsPastTaken(t *testing.T) {
	now := fixed.T
	taken := map[int64]bool{now.UnixMilli(): true, now.UnixMilli() + 1: true}
	id := NewID(now, func(id int64) bool { return taken[id] })
	if id != now.UnixMilli()+2 {
		t.Fatalf("expected bumped id got %d", id)
	}
}
