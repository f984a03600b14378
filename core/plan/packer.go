package plan

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kilianp07/planday/core/model"
)

// SplitSuffix marks a schedule block that covers only part of its task.
const SplitSuffix = " (part)"

// timeLayout is the HH:MM clock format used for block boundaries.
const timeLayout = "15:04"

// ErrInvalidStartTime reports a start time that does not parse as HH:MM.
// It is the only structural error the packer raises; every other input
// anomaly is absorbed by defaulting.
var ErrInvalidStartTime = errors.New("invalid start time")

// Options control a single packing run.
type Options struct {
	DailyMinutes      float64 `json:"daily_minutes"`
	Start             string  `json:"start"`
	AllowSplit        bool    `json:"allow_split"`
	UrgencyWindowDays int     `json:"urgency_window_days"`
}

// Pack scores and sorts the given tasks, then greedily fills the daily
// budget in priority order. Blocks are contiguous from the start time and
// never exceed the budget; at most one block is partial and it is always
// the last one. A zero or negative budget yields an empty schedule. The
// caller's slice is never mutated and "today" is taken from the injected
// instant, keeping the run deterministic.
func Pack(tasks []model.Task, opts Options, today time.Time) ([]model.ScheduleBlock, error) {
	startClock, err := time.Parse(timeLayout, opts.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStartTime, opts.Start)
	}

	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, ScoredTask{Task: t, Score: Score(t, today, opts.UrgencyWindowDays)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return LessByPriority(scored[i], scored[j]) })

	budget := int(opts.DailyMinutes)
	if budget <= 0 {
		return []model.ScheduleBlock{}, nil
	}

	dayStart := time.Date(today.Year(), today.Month(), today.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, today.Location())

	var blocks []model.ScheduleBlock
	elapsed := 0
	leftover := budget
	for _, c := range scored {
		if leftover <= 0 {
			break
		}
		duration := c.Task.Minutes
		if duration <= leftover {
			blocks = append(blocks, newBlock(c.Task, c.Task.Title, dayStart, elapsed, duration))
			elapsed += duration
			leftover -= duration
			continue
		}
		if opts.AllowSplit {
			// The split consumes exactly the remaining budget and ends the run.
			blocks = append(blocks, newBlock(c.Task, c.Task.Title+SplitSuffix, dayStart, elapsed, leftover))
			elapsed += leftover
			leftover = 0
			continue
		}
		// Too large and splitting is off: skip it. A shorter task further
		// down the order may still fit the remaining budget.
	}
	return blocks, nil
}

func newBlock(t model.Task, title string, dayStart time.Time, elapsed, minutes int) model.ScheduleBlock {
	start := dayStart.Add(time.Duration(elapsed) * time.Minute)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return model.ScheduleBlock{
		Title:    title,
		Start:    start.Format(timeLayout),
		End:      end.Format(timeLayout),
		Minutes:  minutes,
		Impact:   t.Impact,
		Deadline: t.Deadline,
	}
}
