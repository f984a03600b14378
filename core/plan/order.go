package plan

import "github.com/kilianp07/planday/core/model"

// ScoredTask pairs a task with its computed priority score. It only lives
// for the duration of one packing run and is never persisted.
type ScoredTask struct {
	Task  model.Task
	Score float64
}

// LessByPriority is the packing order policy: descending score, ties broken
// by earliest deadline (tasks without one sort last via the far-future
// sentinel), then by shortest duration.
func LessByPriority(a, b ScoredTask) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	ad, bd := a.Task.SortDeadline(), b.Task.SortDeadline()
	if ad != bd {
		return ad < bd
	}
	return a.Task.Minutes < b.Task.Minutes
}
