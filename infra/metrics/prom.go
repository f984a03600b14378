package metrics

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/kilianp07/planday/core/metrics"
)

// PromSink records plan runs and task mutations in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	taskEvents  *prometheus.CounterVec
	utilization prometheus.Histogram
	minutes     prometheus.Histogram
	blocks      prometheus.Gauge
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
// The Prometheus server should be started separately via StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of scheduling runs",
	}, []string{"split"})
	taskEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "task_events_total",
		Help: "Total number of task list mutations",
	}, []string{"action"})
	utilization := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_budget_utilization",
		Help:    "Fraction of the daily budget covered by scheduled blocks",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})
	minutes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_scheduled_minutes",
		Help:    "Minutes allocated per scheduling run",
		Buckets: prometheus.LinearBuckets(0, 60, 13),
	})
	blocks := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_blocks_last",
		Help: "Number of blocks produced by the most recent scheduling run",
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(taskEvents); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			taskEvents = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utilization); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utilization = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(minutes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			minutes = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(blocks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			blocks = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		runs:        runs,
		taskEvents:  taskEvents,
		utilization: utilization,
		minutes:     minutes,
		blocks:      blocks,
	}, nil
}

// RecordPlan increments the run counter and observes plan aggregates.
func (s *PromSink) RecordPlan(rec coremetrics.PlanRecord) error {
	s.runs.WithLabelValues(strconv.FormatBool(rec.Split)).Inc()
	s.utilization.Observe(rec.Utilization)
	s.minutes.Observe(rec.ScheduledMinutes)
	s.blocks.Set(float64(rec.Blocks))
	return nil
}

// RecordTaskEvent increments the mutation counter for the given action.
func (s *PromSink) RecordTaskEvent(ev coremetrics.TaskEvent) error {
	s.taskEvents.WithLabelValues(ev.Action).Inc()
	return nil
}

// StartPromServer starts an HTTP server exposing Prometheus metrics on the
// given address. The server runs until the provided context is canceled.
// A dedicated ServeMux is used to avoid interfering with other handlers.
func StartPromServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("prom server shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
