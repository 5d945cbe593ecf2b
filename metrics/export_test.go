package metrics

import "github.com/prometheus/client_golang/prometheus"

// Accessors for white-box assertions in metrics_test.

func (c *Collector) Iterations(outcome string) prometheus.Counter {
	return c.iterations.WithLabelValues(outcome)
}

func (c *Collector) Runs(status string) prometheus.Counter {
	return c.runs.WithLabelValues(status)
}

func (c *Collector) BestScore() prometheus.Gauge { return c.bestScore }
