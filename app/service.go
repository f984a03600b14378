package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apiplan "github.com/kilianp07/planday/api/plan"
	apitasks "github.com/kilianp07/planday/api/tasks"
	"github.com/kilianp07/planday/config"
	coremetrics "github.com/kilianp07/planday/core/metrics"
	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/plan"
	corestore "github.com/kilianp07/planday/core/store"
	"github.com/kilianp07/planday/infra/logger"
	"github.com/kilianp07/planday/infra/metrics"
	infrastore "github.com/kilianp07/planday/infra/store"
	"github.com/kilianp07/planday/internal/eventbus"
)

// Service wires the task repository, planner, event bus, metrics sinks and
// HTTP API together.
type Service struct {
	Repo     corestore.Repository
	Planner  *plan.Planner
	bus      *eventbus.Bus
	sink     coremetrics.Sink
	log      logger.Logger
	srv      *http.Server
	promAddr string
}

// NewRepository builds the task repository selected by the store config.
func NewRepository(cfg config.StoreConfig, clock model.Clock) (corestore.Repository, error) {
	switch cfg.Backend {
	case "memory":
		return corestore.NewMemoryStore(clock), nil
	case "json":
		return infrastore.NewJSONStore(cfg.Path, clock)
	case "sqlite":
		return infrastore.NewSQLiteStore(cfg.Path, clock)
	default:
		return nil, fmt.Errorf("unknown store backend %s", cfg.Backend)
	}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	clock := model.RealClock{}

	repo, err := NewRepository(cfg.Store, clock)
	if err != nil {
		return nil, fmt.Errorf("task store: %w", err)
	}

	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	planner := plan.New(clock, cfg.Planner)
	bus := eventbus.New()

	mux := http.NewServeMux()
	mux.Handle("/api/tasks", apitasks.NewHandler(repo, bus, clock, cfg.API.Token))
	mux.Handle("/api/tasks/", apitasks.NewHandler(repo, bus, clock, cfg.API.Token))
	mux.Handle("/api/plan", apiplan.NewHandler(repo, planner, bus))
	mux.Handle("/api/export/", apiplan.NewExportHandler(repo, planner))

	return &Service{
		Repo:     repo,
		Planner:  planner,
		bus:      bus,
		sink:     sink,
		log:      logg,
		srv:      &http.Server{Addr: cfg.API.Addr, Handler: mux},
		promAddr: cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run starts the HTTP API, the metrics collector and, when configured, the
// Prometheus server. It blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.collect(ctx)
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("api listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// collect forwards bus events to the configured metrics sinks.
func (s *Service) collect(ctx context.Context) {
	sub, cancel := s.bus.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub:
			if !ok {
				return
			}
			s.record(e)
		}
	}
}

func (s *Service) record(e eventbus.Event) {
	switch ev := e.(type) {
	case eventbus.PlanBuilt:
		rec := coremetrics.PlanRecord{
			RunID:            ev.Plan.RunID,
			Date:             ev.Plan.Date,
			Blocks:           len(ev.Plan.Blocks),
			TasksConsidered:  ev.Plan.Stats.TasksConsidered,
			ScheduledMinutes: ev.Plan.Stats.ScheduledMinutes,
			BudgetMinutes:    ev.Plan.Stats.BudgetMinutes,
			Utilization:      ev.Plan.Stats.Utilization,
			Split:            ev.Plan.Stats.Split,
			Time:             ev.Plan.BuiltAt,
		}
		s.log.Debugw("plan built", map[string]any{
			"run_id":            rec.RunID,
			"blocks":            rec.Blocks,
			"scheduled_minutes": rec.ScheduledMinutes,
			"utilization":       rec.Utilization,
			"split":             rec.Split,
		})
		if err := s.sink.RecordPlan(rec); err != nil {
			s.log.Errorf("record plan: %v", err)
		}
	case eventbus.TaskAdded:
		s.recordTask(coremetrics.TaskEvent{Action: "add", TaskID: ev.Task.ID, Time: ev.Time})
	case eventbus.TaskRemoved:
		s.recordTask(coremetrics.TaskEvent{Action: "remove", TaskID: ev.TaskID, Time: ev.Time})
	}
}

func (s *Service) recordTask(ev coremetrics.TaskEvent) {
	if rec, ok := s.sink.(coremetrics.TaskRecorder); ok {
		if err := rec.RecordTaskEvent(ev); err != nil {
			s.log.Errorf("record task event: %v", err)
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return s.Repo.Close()
}
