package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	coreplan "github.com/kilianp07/planday/core/plan"
	"github.com/kilianp07/planday/core/store"
	"github.com/kilianp07/planday/internal/eventbus"
	"github.com/kilianp07/planday/pkg/export"
)

// planRequest overrides the configured packing defaults. Pointer fields
// distinguish "absent" from zero values.
type planRequest struct {
	Hours         *float64 `json:"hours"`
	Start         *string  `json:"start"`
	AllowSplit    *bool    `json:"allow_split"`
	UrgencyWindow *int     `json:"urgency_window"`
}

// NewHandler returns an HTTP handler that builds a day plan via
// POST /api/plan. An unparseable start time yields 400; a zero or negative
// budget yields an empty block list, not an error.
func NewHandler(repo store.Repository, planner *coreplan.Planner, bus eventbus.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		opts := planner.DefaultOptions()
		if r.Body != nil && r.ContentLength != 0 {
			var req planRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			if req.Hours != nil {
				opts.DailyMinutes = *req.Hours * 60
			}
			if req.Start != nil {
				opts.Start = *req.Start
			}
			if req.AllowSplit != nil {
				opts.AllowSplit = *req.AllowSplit
			}
			if req.UrgencyWindow != nil {
				opts.UrgencyWindowDays = *req.UrgencyWindow
			}
		}
		tasks, err := repo.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		p, err := planner.BuildDay(tasks, opts)
		if err != nil {
			if errors.Is(err, coreplan.ErrInvalidStartTime) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if bus != nil {
			bus.Publish(eventbus.PlanBuilt{Plan: p})
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewExportHandler serves CSV exports of the stored tasks and of a plan
// built with the configured defaults, mirroring the JSON API's data.
func NewExportHandler(repo store.Repository, planner *coreplan.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		tasks, err := repo.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/api/export/tasks.csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="tasks_export.csv"`)
			if err := export.WriteTasksCSV(w, tasks); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		case "/api/export/schedule.csv":
			p, err := planner.BuildDay(tasks, planner.DefaultOptions())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="schedule_%s.csv"`, p.Date))
			if err := export.WriteCSV(w, p.Blocks); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		default:
			http.NotFound(w, r)
		}
	})
}
