package model

import (
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	valid := Task{Title: "write report", Minutes: 60, Impact: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}
	cases := []Task{
		{Minutes: 60, Impact: 2},
		{Title: "   ", Minutes: 60, Impact: 2},
		{Title: "x", Impact: 2},
		{Title: "x", Minutes: -30, Impact: 2},
		{Title: "x", Minutes: 60},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d should be invalid: %+v", i, c)
		}
	}
	// A malformed deadline is not a validation error.
	degraded := Task{Title: "x", Minutes: 60, Impact: 2, Deadline: "soon"}
	if err := degraded.Validate(); err != nil {
		t.Fatalf("malformed deadline must not fail validation: %v", err)
	}
}

func TestTaskDeadlineDate(t *testing.T) {
	task := Task{Deadline: "2025-03-10"}
	d, ok := task.DeadlineDate()
	if !ok || !d.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bad parse: %v %v", d, ok)
	}
	if _, ok := (Task{}).DeadlineDate(); ok {
		t.Fatalf("absent deadline must not parse")
	}
	if _, ok := (Task{Deadline: "10/03/2025"}).DeadlineDate(); ok {
		t.Fatalf("malformed deadline must not parse")
	}
}

func TestTaskSortDeadline(t *testing.T) {
	if got := (Task{Deadline: "2025-03-10"}).SortDeadline(); got != "2025-03-10" {
		t.Fatalf("dated task key %q", got)
	}
	if got := (Task{}).SortDeadline(); got != NoDeadlineSentinel {
		t.Fatalf("undated task key %q", got)
	}
	if (Task{Deadline: "2025-03-10"}).SortDeadline() >= (Task{}).SortDeadline() {
		t.Fatalf("dated tasks must sort before undated tasks")
	}
}
