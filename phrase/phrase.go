// Package phrase is a hill-climbing provider that reconstructs a target string.
//
// Members are Phrases of the target's length. Fitness is the fraction of
// positions holding the target rune; a mutation substitutes one position with
// another gene from the alphabet. Every improvement fixes one more position,
// so the climb always reaches 1.0 when the alphabet covers the target.
package phrase

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/climb/genes"
)

// DefaultGenes is the alphabet used unless WithGenes is given.
const DefaultGenes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_=+[{]};:'\",<.>/?|\\`~ "

var (
	// ErrEmptyTarget is returned for an empty target; its score would be 0/0.
	ErrEmptyTarget = errors.New("phrase: target is empty")

	// ErrUnreachableTarget is returned when the target uses a rune outside the
	// alphabet, which would leave the climb stuck below 1.0 forever.
	ErrUnreachableTarget = errors.New("phrase: target not expressible in alphabet")
)

// Phrase is a candidate string.
type Phrase []rune

// String returns the phrase text.
func (p Phrase) String() string { return string(p) }

// Clone returns an independent copy.
func (p Phrase) Clone() Phrase { return slices.Clone(p) }

// Option configures a Guesser.
type Option func(*Guesser) error

// WithGenes replaces the alphabet with the runes of s.
func WithGenes(s string) Option {
	return func(g *Guesser) error {
		a, err := genes.FromString(s)
		if err != nil {
			return fmt.Errorf("phrase: genes: %w", err)
		}
		g.genes = a

		return nil
	}
}

// Guesser guesses a fixed target string.
type Guesser struct {
	target Phrase
	genes  genes.Alphabet[rune]
}

// New returns a Guesser for target.
//
// Errors: ErrEmptyTarget, ErrUnreachableTarget, or an alphabet error from WithGenes.
func New(target string, opts ...Option) (*Guesser, error) {
	g := &Guesser{}
	a, err := genes.FromString(DefaultGenes)
	if err != nil {
		return nil, err
	}
	g.genes = a

	for _, opt := range opts {
		if err = opt(g); err != nil {
			return nil, err
		}
	}

	return g.withTarget(target)
}

// WithTarget returns a Guesser for target that keeps g's alphabet.
func (g *Guesser) WithTarget(target string) (*Guesser, error) {
	return (&Guesser{genes: g.genes}).withTarget(target)
}

func (g *Guesser) withTarget(target string) (*Guesser, error) {
	t := Phrase(target)
	if len(t) == 0 {
		return nil, ErrEmptyTarget
	}
	for i, r := range t {
		if !g.genes.Contains(r) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnreachableTarget, r, i)
		}
	}
	g.target = t

	return g, nil
}

// Target returns the target string.
func (g *Guesser) Target() string { return g.target.String() }

// Genes returns the alphabet as a string.
func (g *Guesser) Genes() string { return string(g.genes.Genes()) }

// Generate returns a random phrase as long as the target.
func (g *Guesser) Generate(rng *rand.Rand) Phrase {
	return Phrase(g.genes.Sample(rng, len(g.target)))
}

// Fitness returns the fraction of target positions matched by member.
// Positions beyond the shorter of the two never match.
func (g *Guesser) Fitness(member Phrase) float64 {
	n := min(len(member), len(g.target))
	hits := 0
	for i := 0; i < n; i++ {
		if member[i] == g.target[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(g.target))
}

// Mutate returns a copy of member with one random position re-drawn.
// member is left untouched.
func (g *Guesser) Mutate(member Phrase, rng *rand.Rand) Phrase {
	out := member.Clone()
	if len(out) == 0 {
		return out
	}
	i := rng.Intn(len(out))
	out[i] = g.genes.RandomOther(rng, out[i])

	return out
}
