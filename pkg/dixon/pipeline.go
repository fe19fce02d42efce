package dixon

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// Params holds the pipeline configuration.
type Params struct {
	// KernelSize is the Gaussian kernel size used for the pre-smoothed
	// branch. Must be a positive odd integer.
	KernelSize int

	// Sigma is the Gaussian standard deviation; 0 derives it from the
	// kernel size (see Blur).
	Sigma float64

	// Parallel runs the raw and smoothed branches concurrently. The two
	// branches are data-independent, so this is purely a performance
	// option and never changes the output.
	Parallel bool
}

// DefaultParams returns the standard pipeline configuration: a 5x5 kernel
// with derived sigma and parallel branch execution.
func DefaultParams() *Params {
	return &Params{
		KernelSize: 5,
		Sigma:      0,
		Parallel:   true,
	}
}

// Result holds the six output images of one pipeline run: the two
// normalized inputs plus the four enhanced separation outputs. All images
// are 8-bit grayscale, ready for display.
type Result struct {
	InPhase  *image.Gray
	OutPhase *image.Gray

	Water *image.Gray
	Fat   *image.Gray

	SmoothedWater *image.Gray
	SmoothedFat   *image.Gray
}

// Pipeline sequences the full fat/water separation for one study:
// normalization of both inputs, Dixon separation of the normalized pair and
// of a Gaussian-smoothed variant, and contrast enhancement of all four
// separated images. Each run is stateless; a Pipeline can be reused across
// studies.
type Pipeline struct {
	params *Params
}

// NewPipeline creates a pipeline with the provided parameters. Passing nil
// uses DefaultParams.
func NewPipeline(params *Params) *Pipeline {
	if params == nil {
		params = DefaultParams()
	}
	return &Pipeline{params: params}
}

// Run executes the pipeline on a co-registered in-phase/out-of-phase pair
// and returns all six result images. Errors from any stage abort the whole
// run; there is no partial result.
func (p *Pipeline) Run(inPhase, outPhase *Grid) (*Result, error) {
	if !inPhase.SameSize(outPhase) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch,
			inPhase.Width, inPhase.Height,
			outPhase.Width, outPhase.Height)
	}

	// Stage 1: normalize both acquisitions independently. The normalized
	// grids stay float64 so the smoothing and separation stages keep full
	// precision.
	normIn := NormalizeGrid(inPhase)
	normOut := NormalizeGrid(outPhase)

	result := &Result{
		InPhase:  normIn.ToGray(),
		OutPhase: normOut.ToGray(),
	}

	// Stages 2-4 split into two independent branches: separation of the
	// normalized pair as-is, and separation of a smoothed variant. Each
	// branch reads only its own inputs and writes only its own result
	// fields.
	rawBranch := func() error {
		sep, err := Separate(normIn, normOut)
		if err != nil {
			return err
		}
		result.Water = Enhance(sep.Water)
		result.Fat = Enhance(sep.Fat)
		return nil
	}

	smoothedBranch := func() error {
		smoothIn, err := Blur(normIn, p.params.KernelSize, p.params.Sigma)
		if err != nil {
			return fmt.Errorf("smoothing in-phase image: %w", err)
		}
		smoothOut, err := Blur(normOut, p.params.KernelSize, p.params.Sigma)
		if err != nil {
			return fmt.Errorf("smoothing out-of-phase image: %w", err)
		}

		sep, err := Separate(smoothIn, smoothOut)
		if err != nil {
			return err
		}
		result.SmoothedWater = Enhance(sep.Water)
		result.SmoothedFat = Enhance(sep.Fat)
		return nil
	}

	if p.params.Parallel {
		var group errgroup.Group
		group.Go(rawBranch)
		group.Go(smoothedBranch)
		if err := group.Wait(); err != nil {
			return nil, err
		}
	} else {
		if err := rawBranch(); err != nil {
			return nil, err
		}
		if err := smoothedBranch(); err != nil {
			return nil, err
		}
	}

	return result, nil
}
