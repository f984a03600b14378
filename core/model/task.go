package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for deadlines.
const DateLayout = "2006-01-02"

// NoDeadlineSentinel sorts tasks without a deadline after every dated task.
const NoDeadlineSentinel = "9999-12-31"

// Task represents one unit of work the user wants scheduled. Fields are
// immutable once created; the scheduling core only ever reads copies.
type Task struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Minutes  int     `json:"minutes"` // estimated duration, stored as entered
	Impact   float64 `json:"impact"`  // user-assigned importance weight
	Deadline string  `json:"deadline,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// Validate checks the fields a host must reject before storing a task.
// A malformed deadline is deliberately not an error: scheduling degrades
// to "no deadline" instead of failing.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if t.Minutes < 1 {
		return fmt.Errorf("minutes must be a positive number")
	}
	if t.Impact == 0 {
		return fmt.Errorf("impact is required")
	}
	return nil
}

// DeadlineDate parses the deadline. The second return value is false when
// the deadline is absent or does not parse as a calendar date.
func (t Task) DeadlineDate() (time.Time, bool) {
	if t.Deadline == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, t.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// SortDeadline returns the deadline key used for ordering. Tasks without a
// deadline sort after all dated tasks via the far-future sentinel.
func (t Task) SortDeadline() string {
	if t.Deadline == "" {
		return NoDeadlineSentinel
	}
	return t.Deadline
}

// ScheduleBlock represents one allocated slot in the day's plan. Blocks are
// created by the packer and never mutated afterwards.
type ScheduleBlock struct {
	Title    string  `json:"title"`
	Start    string  `json:"start"` // HH:MM
	End      string  `json:"end"`   // HH:MM
	Minutes  int     `json:"minutes"`
	Impact   float64 `json:"impact"`
	Deadline string  `json:"deadline,omitempty"`
}
