package evolve_test

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/katalvlaran/climb/evolve"
)

// ExampleEvolve climbs a tiny search space: lowercase words of a fixed length,
// scored by how many letters already match "go".
func ExampleEvolve() {
	const target = "go"
	const alphabet = "abcdefghijklmnopqrstuvwxyz"

	p := evolve.ProviderFuncs[string]{
		GenerateFunc: func(rng *rand.Rand) string {
			b := make([]byte, len(target))
			for i := range b {
				b[i] = alphabet[rng.Intn(len(alphabet))]
			}
			return string(b)
		},
		FitnessFunc: func(m string) float64 {
			hits := 0
			for i := range target {
				if m[i] == target[i] {
					hits++
				}
			}
			return float64(hits) / float64(len(target))
		},
		MutateFunc: func(m string, rng *rand.Rand) string {
			b := []byte(m)
			b[rng.Intn(len(b))] = alphabet[rng.Intn(len(alphabet))]
			return string(b)
		},
	}

	res, err := evolve.Evolve[string](p, evolve.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Member, res.Score, res.Solved)
	// Output:
	// go 1 true
}

// ExampleFormatReport shows the verbose trace line layout.
func ExampleFormatReport() {
	line := evolve.FormatReport("Hello", 0.8, 0)
	fmt.Println(strings.ReplaceAll(line, "\t", " | "))
	// Output:
	// Hello | 0.8000 | 0s
}

// ExampleEngine_EvolveWithConfig prints the initial member and every improvement.
func ExampleEngine_EvolveWithConfig() {
	p := evolve.ProviderFuncs[int]{
		GenerateFunc: func(*rand.Rand) int { return 0 },
		FitnessFunc:  func(m int) float64 { return float64(m) / 4 },
		MutateFunc:   func(m int, _ *rand.Rand) int { return m + 1 },
	}
	report := evolve.ReporterFunc(func(ev evolve.Event) {
		fmt.Printf("%v %.2f\n", ev.Member, ev.Score)
	})

	eng, err := evolve.New[int](p, evolve.WithReporter(report))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	res, _ := eng.EvolveWithConfig(evolve.Config{Verbose: true})
	fmt.Println("iterations:", res.Iterations)
	// Output:
	// 0 0.00
	// 1 0.25
	// 2 0.50
	// 3 0.75
	// 4 1.00
	// iterations: 4
}
