package world

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyPalette is returned when a template must be picked from an empty palette.
	ErrEmptyPalette = errors.New("world: empty palette")
	// ErrInvalidRange is returned for count ranges with min > max or negative bounds.
	ErrInvalidRange = errors.New("world: invalid count range")
)

// Rand is the uniform random integer source used for generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// Palette is a non-empty ordered set of interchangeable templates for one role.
type Palette []Template

// Pick returns a template chosen uniformly at random.
func (p Palette) Pick(rng Rand) (Template, error) {
	if len(p) == 0 {
		return Template{}, ErrEmptyPalette
	}
	return p[rng.Intn(len(p))], nil
}

// CountRange is a closed integer interval [Min, Max].
type CountRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Exactly returns the degenerate range [n, n].
func Exactly(n int) CountRange {
	return CountRange{Min: n, Max: n}
}

// Validate checks that 0 <= Min <= Max < MaxInt.
func (r CountRange) Validate() error {
	if r.Min < 0 || r.Min > r.Max || r.Max == math.MaxInt {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Roll returns a count drawn uniformly from the range, both bounds inclusive.
func (r CountRange) Roll(rng Rand) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.Min + rng.Intn(r.Max-r.Min+1), nil
}
