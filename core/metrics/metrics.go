package metrics

import "time"

// PlanRecord summarizes one scheduling run for observability purposes.
type PlanRecord struct {
	RunID            string
	Date             string
	Blocks           int
	TasksConsidered  int
	ScheduledMinutes float64
	BudgetMinutes    float64
	Utilization      float64
	Split            bool
	Time             time.Time
}

// Sink records plan runs.
type Sink interface {
	RecordPlan(rec PlanRecord) error
}

// TaskEvent captures a mutation of the task list.
type TaskEvent struct {
	Action string // "add" or "remove"
	TaskID int64
	Time   time.Time
}

// TaskRecorder records task list mutations. Sinks implement it optionally.
type TaskRecorder interface {
	RecordTaskEvent(ev TaskEvent) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordPlan(PlanRecord) error     { return nil }
func (NopSink) RecordTaskEvent(TaskEvent) error { return nil }
