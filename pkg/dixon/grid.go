// Package dixon implements the two-point Dixon fat/water separation pipeline
// for MRI: min-max normalization, Gaussian pre-smoothing, pixelwise
// water/fat separation, and histogram-equalization contrast enhancement.
//
// The package operates on in-memory intensity grids and knows nothing about
// DICOM files or display; loading and visualization are handled by
// collaborating packages.
package dixon

import (
	"image"
	"image/color"
	"math"
)

// Grid is a 2D intensity image stored as a flat row-major float64 array.
// float64 is wide enough to hold the raw DICOM dynamic range as well as the
// signed intermediate values produced by separation (the fat channel can be
// negative before enhancement).
type Grid struct {
	// Width and Height are the grid dimensions in pixels, fixed at creation.
	Width  int
	Height int

	// Data holds the intensity samples in row-major order,
	// indexed as Data[y*Width+x].
	Data []float64
}

// NewGrid creates a zero-valued grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// At returns the sample at (x, y). No bounds checking is performed.
func (g *Grid) At(x, y int) float64 {
	return g.Data[y*g.Width+x]
}

// Set stores a sample at (x, y). No bounds checking is performed.
func (g *Grid) Set(x, y int, v float64) {
	g.Data[y*g.Width+x] = v
}

// SameSize reports whether two grids cover the same spatial dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Width, g.Height)
	copy(out.Data, g.Data)
	return out
}

// GridFromImage converts an image to an intensity grid using the luma
// component of each pixel. 16-bit grayscale sources keep their full
// dynamic range.
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r, _, _, _ := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).RGBA()
			grid.Set(x, y, float64(r))
		}
	}

	return grid
}

// ToGray converts the grid to an 8-bit grayscale image, rounding each sample
// half away from zero and clamping to [0, 255]. The grid is expected to
// already be in (or near) the 8-bit range; values outside it are clamped,
// not rescaled.
func (g *Grid) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := math.Round(g.At(x, y))
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// GridFromGray converts an 8-bit grayscale image back to a grid. This is the
// inverse of ToGray for in-range values and is used when a normalized image
// re-enters float arithmetic (smoothing, separation).
func GridFromGray(img *image.Gray) *Grid {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.Set(x, y, float64(img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y))
		}
	}

	return grid
}
