package evolve

import (
	"fmt"
	"math/rand"
	"time"
)

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*engineOptions)

// engineOptions holds everything New resolves before the first run.
type engineOptions struct {
	seed       int64
	rng        *rand.Rand
	maxFitness float64
	hasMax     bool
	reporter   Reporter
	observer   Observer
	now        func() time.Time

	// first error recorded while applying options
	err error
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		observer: nopObserver{},
		now:      time.Now,
	}
}

// WithSeed seeds the engine's random source. 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *engineOptions) {
		o.seed = seed
	}
}

// WithRand hands the engine an existing random source; it takes precedence
// over WithSeed. The engine becomes its only user for the duration of a run.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxFitness overrides the provider's maximum fitness.
//
//	finite v > 0:      climb until best >= v
//	v <= 0, NaN, ±Inf: invalid option → ErrOptionViolation
func WithMaxFitness(v float64) Option {
	return func(o *engineOptions) {
		if !validMaxFitness(v) {
			o.setErr(fmt.Errorf("%w: max fitness must be finite and positive (%v)", ErrOptionViolation, v))
			return
		}
		o.maxFitness = v
		o.hasMax = true
	}
}

// WithReporter sets the Reporter used when Config.Verbose is true.
// Without it, verbose runs write FormatReport lines to standard output.
func WithReporter(r Reporter) Option {
	return func(o *engineOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithObserver registers an Observer notified of every step.
func WithObserver(obs Observer) Option {
	return func(o *engineOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithClock replaces time.Now for elapsed-time reporting and TimeLimit checks.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func (o *engineOptions) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
