package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/climb/evolve"
	"github.com/katalvlaran/climb/metrics"
)

// runSearch runs one climb over p and prints the final best score on its own
// line. When a guard stops the run, the best-so-far score is still printed
// before the error is returned.
func runSearch[M any](cmd *cobra.Command, a *app, problem string, p evolve.Provider[M]) error {
	log := a.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("problem", problem),
	)

	cfg, err := a.cfg.EngineConfig()
	if err != nil {
		return err
	}

	seed := a.cfg.Seed
	for seed == 0 {
		seed = rand.Int63()
	}

	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg, problem)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	eng, err := evolve.New(p,
		evolve.WithSeed(seed),
		evolve.WithObserver(col),
		evolve.WithReporter(evolve.MultiReporter(
			evolve.NewWriterReporter(out),
			evolve.NewLogReporter(log),
		)),
	)
	if err != nil {
		return err
	}

	log.Info("search started",
		zap.Int64("seed", seed),
		zap.Float64("max_fitness", eng.MaxFitness()),
		zap.Int("max_iterations", cfg.MaxIterations),
		zap.Duration("time_limit", cfg.TimeLimit),
	)

	res, runErr := eng.Run(cmd.Context(), cfg)

	fields := []zap.Field{
		zap.Float64("score", res.Score),
		zap.Int("iterations", res.Iterations),
		zap.Int("accepted", res.Accepted),
		zap.Duration("elapsed", res.Elapsed),
		zap.String("status", metrics.Status(res.Summary, runErr)),
	}
	if runErr != nil {
		log.Warn("search stopped", append(fields, zap.Error(runErr))...)
	} else {
		log.Info("search finished", fields...)
	}
	logMetrics(log, reg)

	if _, err = fmt.Fprintln(out, res.Score); err != nil {
		return err
	}

	return runErr
}

// logMetrics dumps the run's metric families at debug level.
func logMetrics(log *zap.Logger, g prometheus.Gatherer) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	families, err := g.Gather()
	if err != nil {
		log.Warn("gather metrics", zap.Error(err))
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "problem" {
					continue
				}
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			}
			log.Debug("metric", fields...)
		}
	}
}
