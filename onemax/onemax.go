// Package onemax is a hill-climbing provider that maximizes the number of set
// bits in a fixed-length bit vector.
package onemax

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/katalvlaran/climb/genes"
)

// DefaultSize is the vector length used by Default.
const DefaultSize = 100

// ErrInvalidSize is returned for a non-positive vector length.
var ErrInvalidSize = errors.New("onemax: size must be positive")

// Bits is a candidate bit vector.
type Bits []bool

// String renders the vector as '0'/'1' characters in index order.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Count returns the number of set bits.
func (b Bits) Count() int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}

	return n
}

// Clone returns an independent copy.
func (b Bits) Clone() Bits { return slices.Clone(b) }

// Maximizer searches for the all-ones vector of a fixed size.
type Maximizer struct {
	size  int
	genes genes.Alphabet[bool]
}

// New returns a Maximizer for vectors of the given size.
func New(size int) (*Maximizer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	a, err := genes.New(true, false)
	if err != nil {
		return nil, err
	}

	return &Maximizer{size: size, genes: a}, nil
}

// Default returns a Maximizer of DefaultSize.
func Default() *Maximizer {
	m, _ := New(DefaultSize)

	return m
}

// Size returns the vector length.
func (m *Maximizer) Size() int { return m.size }

// Generate returns size fair coin flips.
func (m *Maximizer) Generate(rng *rand.Rand) Bits {
	return Bits(m.genes.Sample(rng, m.size))
}

// Fitness returns the set-bit count divided by size.
func (m *Maximizer) Fitness(member Bits) float64 {
	return float64(member.Count()) / float64(m.size)
}

// Mutate returns a copy of member with one random bit flipped.
func (m *Maximizer) Mutate(member Bits, rng *rand.Rand) Bits {
	out := member.Clone()
	if len(out) == 0 {
		return out
	}
	i := rng.Intn(len(out))
	out[i] = !out[i]

	return out
}
