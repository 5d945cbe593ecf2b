package evolve_test

import (
	"math/rand"

	"github.com/katalvlaran/climb/evolve"
)

// step is a scripted member: Fitness returns Score verbatim.
type step struct {
	ID    int
	Score float64
}

// scripted hands out a fixed start and then script[i] on the i-th Mutate call,
// recording which member each mutation was derived from.
type scripted struct {
	start  step
	script []step
	inputs []int
	next   int
}

func (s *scripted) Generate(*rand.Rand) step { return s.start }

func (s *scripted) Fitness(m step) float64 { return m.Score }

func (s *scripted) Mutate(m step, _ *rand.Rand) step {
	s.inputs = append(s.inputs, m.ID)
	out := s.script[s.next]
	s.next++

	return out
}

// counter climbs 0,1,2,... and is solved at target.
func counter(target int) evolve.ProviderFuncs[int] {
	return evolve.ProviderFuncs[int]{
		GenerateFunc: func(*rand.Rand) int { return 0 },
		FitnessFunc:  func(m int) float64 { return float64(m) / float64(target) },
		MutateFunc:   func(m int, _ *rand.Rand) int { return m + 1 },
	}
}

// stuck never improves on its initial member.
func stuck() evolve.ProviderFuncs[int] {
	return evolve.ProviderFuncs[int]{
		GenerateFunc: func(*rand.Rand) int { return 3 },
		FitnessFunc:  func(int) float64 { return 0.3 },
		MutateFunc:   func(m int, _ *rand.Rand) int { return m },
	}
}

// bits is a small randomized provider: a vector of coin flips scored by the
// fraction of set bits.
func bits(n int) evolve.ProviderFuncs[[]bool] {
	return evolve.ProviderFuncs[[]bool]{
		GenerateFunc: func(rng *rand.Rand) []bool {
			out := make([]bool, n)
			for i := range out {
				out[i] = rng.Intn(2) == 1
			}
			return out
		},
		FitnessFunc: func(m []bool) float64 {
			c := 0
			for _, v := range m {
				if v {
					c++
				}
			}
			return float64(c) / float64(n)
		},
		MutateFunc: func(m []bool, rng *rand.Rand) []bool {
			out := append([]bool(nil), m...)
			i := rng.Intn(len(out))
			out[i] = !out[i]
			return out
		},
	}
}

// recorder is an Observer and a Reporter that keeps everything it sees.
type recorder struct {
	initial  float64
	accepted []bool
	bests    []float64
	summary  evolve.Summary
	err      error
	finished int
	events   []evolve.Event
}

func (r *recorder) OnStart(initial float64) { r.initial = initial }

func (r *recorder) OnIteration(accepted bool, best float64) {
	r.accepted = append(r.accepted, accepted)
	r.bests = append(r.bests, best)
}

func (r *recorder) OnFinish(s evolve.Summary, err error) {
	r.summary = s
	r.err = err
	r.finished++
}

func (r *recorder) Report(ev evolve.Event) { r.events = append(r.events, ev) }
