package evolve

import (
	"errors"
	"math/rand"
	"time"
)

// DefaultMaxFitness is the score at which a provider's search space counts as
// solved unless the provider implements MaxFitnesser.
const DefaultMaxFitness = 1.0

// Sentinel errors returned by the engine.
var (
	// ErrNilProvider is returned by New when no provider is supplied.
	ErrNilProvider = errors.New("evolve: provider is nil")

	// ErrOptionViolation is returned by New when an Option carries an invalid value.
	ErrOptionViolation = errors.New("evolve: invalid option supplied")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("evolve: invalid config")

	// ErrIterationLimit is returned with the best-so-far result when
	// Config.MaxIterations mutations ran without reaching the maximum fitness.
	ErrIterationLimit = errors.New("evolve: iteration limit reached")

	// ErrTimeLimit is returned with the best-so-far result when Config.TimeLimit
	// elapsed without reaching the maximum fitness.
	ErrTimeLimit = errors.New("evolve: time limit reached")

	// ErrScoreOutOfRange is returned when Config.ValidateScores is set and the
	// provider produced a NaN, infinite, negative or above-maximum score.
	ErrScoreOutOfRange = errors.New("evolve: score out of range")
)

// Provider defines a search space for the hill climber.
//
// Contracts:
//   - Generate returns one candidate drawn from the provider's distribution,
//     consuming randomness only from rng.
//   - Fitness is pure and deterministic, in [0, max fitness] for well-formed members.
//   - Mutate returns a new candidate derived from member by a small perturbation.
//     member itself must be left unchanged: the engine keeps using it when the
//     challenger is rejected.
type Provider[M any] interface {
	Generate(rng *rand.Rand) M
	Fitness(member M) float64
	Mutate(member M, rng *rand.Rand) M
}

// MaxFitnesser is implemented by providers whose solved score is not
// DefaultMaxFitness.
type MaxFitnesser interface {
	MaxFitness() float64
}

// ProviderFuncs adapts three plain functions to Provider.
// Max, when non-zero, is reported through MaxFitness.
type ProviderFuncs[M any] struct {
	GenerateFunc func(rng *rand.Rand) M
	FitnessFunc  func(member M) float64
	MutateFunc   func(member M, rng *rand.Rand) M
	Max          float64
}

// Generate calls GenerateFunc.
func (f ProviderFuncs[M]) Generate(rng *rand.Rand) M { return f.GenerateFunc(rng) }

// Fitness calls FitnessFunc.
func (f ProviderFuncs[M]) Fitness(member M) float64 { return f.FitnessFunc(member) }

// Mutate calls MutateFunc.
func (f ProviderFuncs[M]) Mutate(member M, rng *rand.Rand) M { return f.MutateFunc(member, rng) }

// MaxFitness returns Max, or DefaultMaxFitness when Max is zero.
func (f ProviderFuncs[M]) MaxFitness() float64 {
	if f.Max == 0 {
		return DefaultMaxFitness
	}

	return f.Max
}

// Config controls a single run.
//
// Fields:
//   - Verbose        - report the initial candidate and every accepted improvement.
//   - MaxIterations  - stop after this many mutations; 0 means unbounded.
//   - TimeLimit      - stop once this much wall-clock time elapsed; 0 means none.
//   - ValidateScores - reject NaN/infinite/out-of-range scores with ErrScoreOutOfRange.
type Config struct {
	Verbose        bool
	MaxIterations  int
	TimeLimit      time.Duration
	ValidateScores bool
}

// DefaultConfig returns the quiet, unbounded configuration used by Evolve.
func DefaultConfig() Config {
	return Config{}
}

// Summary describes how a run ended.
type Summary struct {
	// Score is the fitness of the best member found.
	Score float64
	// Iterations counts Mutate calls.
	Iterations int
	// Accepted counts challengers that replaced the incumbent.
	Accepted int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// Solved reports whether Score reached the maximum fitness.
	Solved bool
}

// Result is the best member of a run together with its Summary.
type Result[M any] struct {
	Member M
	Summary
}
