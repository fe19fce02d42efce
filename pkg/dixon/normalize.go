package dixon

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizeGrid rescales the grid linearly so its samples span [0, 255]
// using min-max normalization. The samples stay float64 so downstream
// arithmetic (smoothing, separation) keeps full precision; use Normalize to
// obtain the 8-bit image form.
//
// A constant grid has zero dynamic range, which makes the min-max formula
// degenerate (division by zero). The policy here is to recover locally and
// return an all-zero grid of the same dimensions rather than fail.
func NormalizeGrid(g *Grid) *Grid {
	out := NewGrid(g.Width, g.Height)
	if len(g.Data) == 0 {
		return out
	}

	min := floats.Min(g.Data)
	max := floats.Max(g.Data)
	if min == max {
		// Degenerate range: all pixels equal. Keep the zero grid.
		return out
	}

	scale := 255 / (max - min)
	for i, v := range g.Data {
		out.Data[i] = math.Round((v - min) * scale)
	}

	return out
}

// Normalize rescales the grid to the full 8-bit range and returns it as a
// grayscale image. For any non-constant input the output spans exactly
// [0, 255]; a constant input yields an all-zero image (see NormalizeGrid).
// Normalization is idempotent: normalizing an already-normalized image
// leaves it unchanged.
func Normalize(g *Grid) *image.Gray {
	return NormalizeGrid(g).ToGray()
}
