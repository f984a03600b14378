package plan

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/planday/core/model"
)

// Stats summarizes one packing run for display and metrics.
type Stats struct {
	TasksConsidered  int     `json:"tasks_considered"`
	TasksPlaced      int     `json:"tasks_placed"`
	ScheduledMinutes float64 `json:"scheduled_minutes"`
	BudgetMinutes    float64 `json:"budget_minutes"`
	Utilization      float64 `json:"utilization"`
	MeanBlockMinutes float64 `json:"mean_block_minutes"`
	MeanImpact       float64 `json:"mean_impact"`
	Split            bool    `json:"split"`
}

// Summarize computes aggregate statistics for a block sequence.
func Summarize(blocks []model.ScheduleBlock, opts Options, considered int) Stats {
	s := Stats{
		TasksConsidered: considered,
		TasksPlaced:     len(blocks),
		BudgetMinutes:   float64(int(opts.DailyMinutes)),
	}
	if len(blocks) == 0 {
		return s
	}
	mins := make([]float64, len(blocks))
	impacts := make([]float64, len(blocks))
	for i, b := range blocks {
		mins[i] = float64(b.Minutes)
		impacts[i] = b.Impact
	}
	s.ScheduledMinutes = floats.Sum(mins)
	s.MeanBlockMinutes = stat.Mean(mins, nil)
	s.MeanImpact = stat.Mean(impacts, nil)
	if s.BudgetMinutes > 0 {
		s.Utilization = s.ScheduledMinutes / s.BudgetMinutes
	}
	s.Split = strings.HasSuffix(blocks[len(blocks)-1].Title, SplitSuffix)
	return s
}
