package dixon

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when the in-phase and out-of-phase images
// passed to Separate do not share the same spatial grid. The separator never
// resamples; dimension equality is a hard precondition.
var ErrDimensionMismatch = errors.New("in-phase and out-of-phase images have different dimensions")

// SeparationResult holds the water-dominant and fat-dominant estimates
// produced by one separation call. Both grids carry unclamped float64
// samples; the fat channel in particular can be negative until enhancement
// rescales it.
type SeparationResult struct {
	Water *Grid
	Fat   *Grid
}

// Separate applies the two-point Dixon computation to a co-registered
// in-phase/out-of-phase pair:
//
//	water = (inPhase + outPhase) / 2
//	fat   = (inPhase - outPhase) / 2
//
// All arithmetic is float64, so odd sums keep their fractional half rather
// than truncating; rounding happens later, during enhancement. The inputs
// are not modified and the outputs are not clamped or normalized.
//
// Separate fails fast with ErrDimensionMismatch (wrapped with both shapes)
// before touching any pixel data if the grids differ in size.
func Separate(inPhase, outPhase *Grid) (SeparationResult, error) {
	if !inPhase.SameSize(outPhase) {
		return SeparationResult{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch,
			inPhase.Width, inPhase.Height,
			outPhase.Width, outPhase.Height)
	}

	water := NewGrid(inPhase.Width, inPhase.Height)
	fat := NewGrid(inPhase.Width, inPhase.Height)

	for i := range inPhase.Data {
		water.Data[i] = (inPhase.Data[i] + outPhase.Data[i]) / 2
		fat.Data[i] = (inPhase.Data[i] - outPhase.Data[i]) / 2
	}

	return SeparationResult{Water: water, Fat: fat}, nil
}
