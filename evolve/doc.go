// Package evolve provides a generic single-lineage hill climber: one incumbent
// candidate, one mutation per step, strict-improvement acceptance.
//
// What
//
//   - Provider[M] describes a search space through three calls:
//   - Generate: draw a random candidate
//   - Fitness:  score a candidate (higher is better)
//   - Mutate:   derive a neighbour without touching the input
//   - Engine[M] owns the climb: it generates once, then mutates the current
//     best, keeps a challenger only if its score is strictly higher, and stops
//     as soon as the best score reaches the provider's maximum fitness.
//   - Reporter receives one Event at the initial generation and one at every
//     accepted improvement when Config.Verbose is set. Rejected challengers are
//     never reported.
//   - Observer receives every step regardless of Verbose (see package metrics).
//
// Termination
//
//	By default the climb is unbounded: a landscape with no strictly-improving
//	path to the maximum blocks forever. Config.MaxIterations, Config.TimeLimit
//	and context cancellation (Engine.Run) are opt-in guards; hitting one returns
//	the best-so-far Result together with ErrIterationLimit, ErrTimeLimit or
//	ctx.Err().
//
// Determinism
//
//	All randomness flows through the *rand.Rand the engine hands to Generate and
//	Mutate. WithSeed(0) (the default) uses a fixed seed, so two engines built
//	with the same seed over the same provider produce identical runs.
//
// Concurrency
//
//	An Engine is not safe for concurrent use. It runs synchronously in the
//	caller's goroutine and starts no goroutines of its own.
//
// Usage
//
//	eng, err := evolve.New[phrase.Phrase](guesser, evolve.WithSeed(42))
//	if err != nil {
//		// ErrNilProvider or ErrOptionViolation
//	}
//	res, err := eng.EvolveWithConfig(evolve.Config{Verbose: true})
//	fmt.Println(res.Member, res.Score)
package evolve
