package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/store"
	"github.com/kilianp07/planday/internal/eventbus"
)

var fixed = model.FixedClock{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

func newTestHandler(t *testing.T) (*store.MemoryStore, *eventbus.Bus, http.Handler) {
	t.Helper()
	repo := store.NewMemoryStore(fixed)
	bus := eventbus.New()
	return repo, bus, NewHandler(repo, bus, fixed, "")
}

func TestAddAndListTasks(t *testing.T) {
	_, bus, h := newTestHandler(t)
	events, cancel := bus.Subscribe()
	defer cancel()

	body := `{"title":"write report","minutes":60,"impact":2,"deadline":"2025-03-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}
	var created model.Task
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Title != "write report" {
		t.Fatalf("bad created task %+v", created)
	}
	select {
	case e := <-events:
		if _, ok := e.(eventbus.TaskAdded); !ok {
			t.Fatalf("expected TaskAdded got %T", e)
		}
	default:
		t.Fatalf("no event published")
	}

	// An undated task must list after the dated one.
	body = `{"title":"someday","minutes":30,"impact":1}`
	req = httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var listed []model.Task
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 || listed[0].Title != "write report" || listed[1].Title != "someday" {
		t.Fatalf("bad order %+v", listed)
	}
}

func TestAddTaskValidation(t *testing.T) {
	_, _, h := newTestHandler(t)
	cases := []string{
		`{"minutes":60,"impact":2}`,
		`{"title":"x","impact":2}`,
		`{"title":"x","minutes":60}`,
		`{"title":"x","minutes":"sixty","impact":2}`,
		`not json`,
	}
	for i, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400 got %d", i, rr.Code)
		}
	}
}

func TestRemoveTask(t *testing.T) {
	repo, _, h := newTestHandler(t)
	added, err := repo.Add(context.Background(), model.Task{Title: "x", Minutes: 10, Impact: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", added.ID), nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", added.ID), nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/not-a-number", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestBearerToken(t *testing.T) {
	repo := store.NewMemoryStore(fixed)
	h := NewHandler(repo, eventbus.New(), fixed, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	_, _, h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPut, "/api/tasks", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestIDPathOnlyAcceptsDelete(t *testing.T) {
	repo, _, h := newTestHandler(t)
	added, err := repo.Add(context.Background(), model.Task{Title: "x", Minutes: 10, Impact: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Reading or posting to a single task's path is not a thing; it must
	// not fall through to the collection handlers.
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, fmt.Sprintf("/api/tasks/%d", added.ID), nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s on id path: expected 404 got %d", method, rr.Code)
		}
	}

	tasks, err := repo.List(context.Background())
	if err != nil || len(tasks) != 1 {
		t.Fatalf("task list must be untouched: %d %v", len(tasks), err)
	}
}
