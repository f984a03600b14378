package tasks

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/store"
	"github.com/kilianp07/planday/internal/eventbus"
)

// NewHandler returns an HTTP handler for the task list under /api/tasks.
// GET lists tasks sorted by deadline, POST adds one, DELETE /api/tasks/{id}
// removes one. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty.
func NewHandler(repo store.Repository, bus eventbus.Publisher, clock model.Clock, token string) http.Handler {
	if clock == nil {
		clock = model.RealClock{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" {
			auth := r.Header.Get("Authorization")
			if auth != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks"), "/")
		switch {
		case r.Method == http.MethodDelete:
			removeTask(w, r, repo, bus, clock, rest)
		case rest != "":
			// Only DELETE addresses a single task.
			http.NotFound(w, r)
		case r.Method == http.MethodGet:
			listTasks(w, r, repo)
		case r.Method == http.MethodPost:
			addTask(w, r, repo, bus, clock)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func listTasks(w http.ResponseWriter, r *http.Request, repo store.Repository) {
	tasks, err := repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].SortDeadline() < tasks[j].SortDeadline()
	})
	if tasks == nil {
		tasks = []model.Task{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tasks); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func addTask(w http.ResponseWriter, r *http.Request, repo store.Repository, bus eventbus.Publisher, clock model.Clock) {
	var t model.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	t.ID = 0 // ids are assigned by the repository
	t.Title = strings.TrimSpace(t.Title)
	if err := t.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stored, err := repo.Add(r.Context(), t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bus != nil {
		bus.Publish(eventbus.TaskAdded{Task: stored, Time: clock.Now()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(stored); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func removeTask(w http.ResponseWriter, r *http.Request, repo store.Repository, bus eventbus.Publisher, clock model.Clock, raw string) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	removed, err := repo.Remove(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bus != nil {
		bus.Publish(eventbus.TaskRemoved{TaskID: id, Removed: removed, Time: clock.Now()})
	}
	if removed == 0 {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{"removed": removed}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
