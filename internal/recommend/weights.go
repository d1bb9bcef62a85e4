package recommend

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights is returned when weights are negative or do not sum to 1.
var ErrInvalidWeights = errors.New("invalid recommendation weights")

const weightTolerance = 1e-6

// Weights are the per-dimension coefficients of the match score.
type Weights struct {
	Goal   float64
	Tag    float64
	Career float64
	Style  float64
	Region float64
}

// DefaultWeights returns the product defaults.
func DefaultWeights() Weights {
	return Weights{
		Goal:   0.40,
		Tag:    0.30,
		Career: 0.15,
		Style:  0.10,
		Region: 0.05,
	}
}

// Validate checks that every weight is in [0,1] and that they sum to 1, which
// keeps Score inside [0,100].
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"goal": w.Goal, "tag": w.Tag, "career": w.Career, "style": w.Style, "region": w.Region,
	} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s weight %v out of [0,1]", ErrInvalidWeights, name, v)
		}
	}
	if sum := w.sum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidWeights, sum)
	}
	return nil
}

func (w Weights) sum() float64 {
	return w.Goal + w.Tag + w.Career + w.Style + w.Region
}

// Score combines the dimension scores into a 0-100 match score. Each dimension
// is clamped to [0,1] first.
func (w Weights) Score(b Breakdown) float64 {
	total := clamp01(b.Goal)*w.Goal +
		clamp01(b.Tag)*w.Tag +
		clamp01(b.Career)*w.Career +
		clamp01(b.Style)*w.Style +
		clamp01(b.Region)*w.Region
	return total * 100
}
