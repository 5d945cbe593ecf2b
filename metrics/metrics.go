// Package metrics exports hill-climbing runs as Prometheus metrics.
//
// A Collector implements evolve.Observer. Every series carries a constant
// "problem" label, so several collectors can share one registry as long as
// their problem names differ.
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.NewCollector(reg, "onemax")
//	eng, err := evolve.New[onemax.Bits](m, evolve.WithObserver(col))
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/climb/evolve"
)

const namespace = "climb"

// Run statuses used as the "status" label of climb_runs_total.
const (
	StatusSolved   = "solved"
	StatusLimit    = "limit"
	StatusCanceled = "canceled"
	StatusError    = "error"
)

// ErrEmptyProblem is returned when NewCollector gets an empty problem name.
var ErrEmptyProblem = errors.New("metrics: problem name is empty")

// Collector records runs of one problem.
type Collector struct {
	iterations *prometheus.CounterVec
	bestScore  prometheus.Gauge
	runs       *prometheus.CounterVec
	duration   prometheus.Histogram
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(reg prometheus.Registerer, problem string) (*Collector, error) {
	if problem == "" {
		return nil, ErrEmptyProblem
	}
	labels := prometheus.Labels{"problem": problem}

	c := &Collector{
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "iterations_total",
			Help:        "Mutations evaluated, by outcome (accepted or rejected).",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "best_score",
			Help:        "Fitness of the current best member.",
			ConstLabels: labels,
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "runs_total",
			Help:        "Finished runs, by status.",
			ConstLabels: labels,
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "run_duration_seconds",
			Help:        "Wall-clock duration of finished runs.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	registered := make([]prometheus.Collector, 0, 4)
	for _, col := range []prometheus.Collector{c.iterations, c.bestScore, c.runs, c.duration} {
		if err := reg.Register(col); err != nil {
			// leave reg as it was
			for _, done := range registered {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("metrics: register %s: %w", problem, err)
		}
		registered = append(registered, col)
	}

	return c, nil
}

// OnStart implements evolve.Observer.
func (c *Collector) OnStart(initial float64) {
	c.bestScore.Set(initial)
}

// OnIteration implements evolve.Observer.
func (c *Collector) OnIteration(accepted bool, best float64) {
	if !accepted {
		c.iterations.WithLabelValues("rejected").Inc()
		return
	}
	c.iterations.WithLabelValues("accepted").Inc()
	c.bestScore.Set(best)
}

// OnFinish implements evolve.Observer.
func (c *Collector) OnFinish(s evolve.Summary, err error) {
	c.bestScore.Set(s.Score)
	c.duration.Observe(s.Elapsed.Seconds())
	c.runs.WithLabelValues(Status(s, err)).Inc()
}

// Status classifies how a run ended.
func Status(s evolve.Summary, err error) string {
	switch {
	case err == nil && s.Solved:
		return StatusSolved
	case errors.Is(err, evolve.ErrIterationLimit), errors.Is(err, evolve.ErrTimeLimit):
		return StatusLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

var _ evolve.Observer = (*Collector)(nil)
