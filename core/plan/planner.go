package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/planday/core/model"
)

// Plan is the result of one scheduling run.
type Plan struct {
	RunID   string                `json:"run_id"`
	Date    string                `json:"date"`
	Options Options               `json:"options"`
	Blocks  []model.ScheduleBlock `json:"blocks"`
	Stats   Stats                 `json:"stats"`
	BuiltAt time.Time             `json:"built_at"`
}

// Planner binds the injected clock and configured default options. It holds
// no mutable state; every call is a pure function of its inputs and the
// clock's current date.
type Planner struct {
	clock model.Clock
	cfg   Config
}

// New creates a Planner. A nil clock falls back to the system clock.
func New(clock model.Clock, cfg Config) *Planner {
	if clock == nil {
		clock = model.RealClock{}
	}
	cfg.SetDefaults()
	return &Planner{clock: clock, cfg: cfg}
}

// DefaultOptions returns the configured packing defaults.
func (p *Planner) DefaultOptions() Options { return p.cfg.Options() }

// Score computes the priority score of a single task as of today.
func (p *Planner) Score(t model.Task) float64 {
	return Score(t, p.clock.Now(), p.cfg.UrgencyWindowDays)
}

// BuildDay packs the given tasks into one day using the provided options.
func (p *Planner) BuildDay(tasks []model.Task, opts Options) (Plan, error) {
	now := p.clock.Now()
	blocks, err := Pack(tasks, opts, now)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		RunID:   uuid.NewString(),
		Date:    now.Format(model.DateLayout),
		Options: opts,
		Blocks:  blocks,
		Stats:   Summarize(blocks, opts, len(tasks)),
		BuiltAt: now,
	}, nil
}
