// Package climb is a small toolkit for single-lineage hill climbing: keep one
// candidate, mutate it, and keep the mutant only when it scores strictly higher.
//
// Under the hood, everything is organized in flat subpackages:
//
//	evolve/  - Provider contract, Engine (the climb loop), Reporter and Observer hooks
//	genes/   - Alphabet[G]: the gene set providers draw symbols from
//	phrase/  - provider that reconstructs a target string
//	onemax/  - provider that maximizes the set bits of a bit vector
//	metrics/ - Prometheus Observer for runs
//	config/  - YAML configuration for the CLI
//	cmd/climb - command-line entry point
//
// Quick example:
//
//	g, _ := phrase.New("Hello World!")
//	res, _ := evolve.Evolve[phrase.Phrase](g, evolve.WithSeed(42))
//	fmt.Println(res.Member, res.Score) // Hello World! 1
//
// The engine is a hill climber, not a genetic algorithm: no population, no
// crossover, one mutation per step. It fits separable landscapes where every
// single-position improvement moves toward the optimum; on multimodal ones it
// can stall, which is what the opt-in iteration and time limits are for.
package climb
