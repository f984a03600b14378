package eventbus

import (
	"time"

	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/plan"
)

// TaskAdded is published after a task has been stored.
type TaskAdded struct {
	Task model.Task
	Time time.Time
}

// TaskRemoved is published after a remove request, even when nothing matched.
type TaskRemoved struct {
	TaskID  int64
	Removed int
	Time    time.Time
}

// PlanBuilt is published after every successful scheduling run.
type PlanBuilt struct {
	Plan plan.Plan
}

func (TaskAdded) event()   {}
func (TaskRemoved) event() {}
func (PlanBuilt) event()   {}
