package evolve

import (
	"fmt"
	"math"
)

// validateConfig rejects negative limits. Zero means "no limit" for both.
func validateConfig(cfg Config) error {
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrInvalidConfig, cfg.MaxIterations)
	}
	if cfg.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrInvalidConfig, cfg.TimeLimit)
	}

	return nil
}

// checkScore enforces 0 ≤ score ≤ max with a finite score.
func checkScore(score, max float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 || score > max {
		return fmt.Errorf("%w: %v not in [0, %v]", ErrScoreOutOfRange, score, max)
	}

	return nil
}

// validMaxFitness reports whether v can serve as a stopping score.
func validMaxFitness(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
