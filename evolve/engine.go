// Package evolve - hill-climbing engine.
//
// Run performs first-improvement hill climbing on a single lineage:
//
//	Init:     best = Generate(rng); bestScore = Fitness(best)
//	Climbing: challenger = Mutate(best, rng); score = Fitness(challenger)
//	          score >  bestScore → best, bestScore = challenger, score
//	          score <= bestScore → discard (ties never replace the incumbent)
//	Done:     bestScore >= max fitness
//
// Design:
//   - Acceptance is written as !(score > bestScore) so a NaN challenger is
//     always rejected and can never become the incumbent.
//   - The solved check runs before every mutation, so an initial candidate that
//     already scores the maximum ends the run with zero iterations.
//   - Context and deadline checks are throttled to one in every guardEvery steps.
//
// Complexity: O(iterations · (cost(Mutate) + cost(Fitness))) time; O(1) extra
// space beyond the two live members (incumbent and challenger).
package evolve

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// guardEvery must be a power of two; see Engine.guard.
const guardEvery = 1024

// Engine runs hill climbs over one Provider.
type Engine[M any] struct {
	provider   Provider[M]
	rng        *rand.Rand
	maxFitness float64
	reporter   Reporter
	observer   Observer
	now        func() time.Time
}

// New builds an Engine over p.
//
// The maximum fitness is resolved once, here: WithMaxFitness wins, then
// p.MaxFitness() when p implements MaxFitnesser, then DefaultMaxFitness.
//
// Errors: ErrNilProvider, ErrOptionViolation.
func New[M any](p Provider[M], opts ...Option) (*Engine[M], error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	maxFitness := DefaultMaxFitness
	if mf, ok := p.(MaxFitnesser); ok {
		maxFitness = mf.MaxFitness()
	}
	if o.hasMax {
		maxFitness = o.maxFitness
	}
	if !validMaxFitness(maxFitness) {
		return nil, fmt.Errorf("%w: provider max fitness must be finite and positive (%v)", ErrOptionViolation, maxFitness)
	}

	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.seed)
	}

	return &Engine[M]{
		provider:   p,
		rng:        rng,
		maxFitness: maxFitness,
		reporter:   o.reporter,
		observer:   o.observer,
		now:        o.now,
	}, nil
}

// MaxFitness returns the score at which runs stop.
func (e *Engine[M]) MaxFitness() float64 {
	return e.maxFitness
}

// Evolve runs with DefaultConfig.
func (e *Engine[M]) Evolve() (Result[M], error) {
	return e.Run(context.Background(), DefaultConfig())
}

// EvolveWithConfig runs with cfg and no cancellation.
func (e *Engine[M]) EvolveWithConfig(cfg Config) (Result[M], error) {
	return e.Run(context.Background(), cfg)
}

// Run climbs until the best score reaches MaxFitness, or until one of the
// opt-in guards fires. On a guard the best-so-far Result is returned together
// with ErrIterationLimit, ErrTimeLimit or ctx.Err(); on an invalid score
// (cfg.ValidateScores) with ErrScoreOutOfRange.
func (e *Engine[M]) Run(ctx context.Context, cfg Config) (Result[M], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateConfig(cfg); err != nil {
		return Result[M]{}, err
	}

	start := e.now()
	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	var reporter Reporter
	if cfg.Verbose {
		reporter = e.reporter
		if reporter == nil {
			reporter = NewWriterReporter(os.Stdout)
		}
	}

	best := e.provider.Generate(e.rng)
	bestScore := e.provider.Fitness(best)
	e.observer.OnStart(bestScore)
	if reporter != nil {
		reporter.Report(Event{Member: best, Score: bestScore})
	}

	var (
		res Result[M]
		err error
	)
	if cfg.ValidateScores {
		err = checkScore(bestScore, e.maxFitness)
	}

	for err == nil && !(bestScore >= e.maxFitness) {
		if err = e.guard(ctx, cfg, res.Iterations, deadline); err != nil {
			break
		}

		challenger := e.provider.Mutate(best, e.rng)
		score := e.provider.Fitness(challenger)
		res.Iterations++

		if cfg.ValidateScores {
			if err = checkScore(score, e.maxFitness); err != nil {
				break
			}
		}

		if !(score > bestScore) {
			e.observer.OnIteration(false, bestScore)
			continue
		}

		best, bestScore = challenger, score
		res.Accepted++
		e.observer.OnIteration(true, bestScore)
		if reporter != nil {
			reporter.Report(Event{
				Member:    best,
				Score:     bestScore,
				Elapsed:   e.now().Sub(start),
				Iteration: res.Iterations,
			})
		}
	}

	res.Member = best
	res.Score = bestScore
	res.Solved = bestScore >= e.maxFitness
	res.Elapsed = e.now().Sub(start)
	e.observer.OnFinish(res.Summary, err)

	return res, err
}

// guard enforces the opt-in limits before each mutation. The iteration cap is
// exact; context and deadline are polled on every guardEvery-th step only.
func (e *Engine[M]) guard(ctx context.Context, cfg Config, iterations int, deadline time.Time) error {
	if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations {
		return fmt.Errorf("%w: %d mutations", ErrIterationLimit, iterations)
	}
	if iterations&(guardEvery-1) != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !deadline.IsZero() && !e.now().Before(deadline) {
		return fmt.Errorf("%w: %v", ErrTimeLimit, cfg.TimeLimit)
	}

	return nil
}

// Evolve builds an Engine over p and runs it with DefaultConfig.
func Evolve[M any](p Provider[M], opts ...Option) (Result[M], error) {
	return EvolveWithConfig(p, DefaultConfig(), opts...)
}

// EvolveWithConfig builds an Engine over p and runs it with cfg.
func EvolveWithConfig[M any](p Provider[M], cfg Config, opts ...Option) (Result[M], error) {
	eng, err := New(p, opts...)
	if err != nil {
		return Result[M]{}, err
	}

	return eng.EvolveWithConfig(cfg)
}
