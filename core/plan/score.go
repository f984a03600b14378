package plan

import (
	"time"

	"github.com/kilianp07/planday/core/model"
)

// DefaultUrgencyWindowDays is the number of days before a deadline at which
// urgency begins ramping above baseline.
const DefaultUrgencyWindowDays = 7

// DaysUntil returns the number of whole days from today until the deadline,
// clamped at zero so past deadlines carry maximum urgency. ok is false when
// the deadline is absent or does not parse as a calendar date.
func DaysUntil(deadline string, today time.Time) (days int, ok bool) {
	if deadline == "" {
		return 0, false
	}
	d, err := time.Parse(model.DateLayout, deadline)
	if err != nil {
		return 0, false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days = int(d.Sub(day).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

// Urgency computes the deadline pressure multiplier for a task. It is exactly
// 1.0 without a (parseable) deadline and ramps linearly up to 2.0 when the
// deadline is today or already past. Malformed deadlines degrade to 1.0
// rather than failing the run.
func Urgency(t model.Task, today time.Time, windowDays int) float64 {
	if windowDays <= 0 {
		windowDays = DefaultUrgencyWindowDays
	}
	daysLeft, ok := DaysUntil(t.Deadline, today)
	if !ok {
		return 1.0
	}
	ramp := float64(windowDays-daysLeft) / float64(windowDays)
	if ramp < 0 {
		ramp = 0
	}
	return 1.0 + ramp
}

// Score converts a task into a single comparable priority value: value
// density (impact per minute) scaled by deadline urgency. Higher is better.
// Minutes below 1 are clamped and a non-positive impact falls back to 1 so
// malformed records never poison a run. Pure function of its inputs.
func Score(t model.Task, today time.Time, windowDays int) float64 {
	minutes := t.Minutes
	if minutes < 1 {
		minutes = 1
	}
	impact := t.Impact
	if impact <= 0 {
		impact = 1
	}
	return (impact / float64(minutes)) * Urgency(t, today, windowDays)
}
