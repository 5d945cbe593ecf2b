// Package genes provides the gene alphabet that hill-climbing providers build
// candidates from.
//
// An Alphabet is an immutable, non-empty list of atomic symbols (runes, bits,
// small integers...). Providers draw from it when generating and mutating; the
// engine itself never looks at genes.
package genes

import (
	"errors"
	"math/rand"
	"slices"
)

// ErrEmptyAlphabet is returned when an alphabet would contain no genes.
var ErrEmptyAlphabet = errors.New("genes: alphabet is empty")

// Alphabet is a fixed set of genes of type G.
// The zero value is empty; build one with New or FromString.
type Alphabet[G comparable] struct {
	genes []G
}

// New returns an Alphabet over a copy of genes, in the given order.
func New[G comparable](genes ...G) (Alphabet[G], error) {
	if len(genes) == 0 {
		return Alphabet[G]{}, ErrEmptyAlphabet
	}

	return Alphabet[G]{genes: slices.Clone(genes)}, nil
}

// FromString returns an Alphabet over the runes of s.
func FromString(s string) (Alphabet[rune], error) {
	return New([]rune(s)...)
}

// Len returns the number of genes.
func (a Alphabet[G]) Len() int { return len(a.genes) }

// Genes returns a copy of the genes.
func (a Alphabet[G]) Genes() []G { return slices.Clone(a.genes) }

// Contains reports whether g is one of the genes.
func (a Alphabet[G]) Contains(g G) bool { return slices.Contains(a.genes, g) }

// Random draws one gene uniformly. It panics on an empty alphabet.
func (a Alphabet[G]) Random(rng *rand.Rand) G {
	return a.genes[rng.Intn(len(a.genes))]
}

// RandomOther draws a replacement for prev: one uniform draw, and a second one
// if the first equals prev. The second draw is kept as is, so prev can still
// come back (always, for a one-gene alphabet).
func (a Alphabet[G]) RandomOther(rng *rand.Rand, prev G) G {
	g := a.Random(rng)
	alt := a.Random(rng)
	if g == prev {
		return alt
	}

	return g
}

// Sample returns n independent uniform draws.
func (a Alphabet[G]) Sample(rng *rand.Rand, n int) []G {
	out := make([]G, n)
	for i := range out {
		out[i] = a.Random(rng)
	}

	return out
}
