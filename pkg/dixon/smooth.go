package dixon

import (
	"fmt"
	"math"
)

// Blur applies a 2D Gaussian convolution to the grid and returns the
// smoothed copy. The kernel is separable, so the blur runs as a horizontal
// pass followed by a vertical pass.
//
// kernelSize must be odd and >= 1. sigma must be >= 0; a sigma of 0 derives
// the standard deviation from the kernel size with the usual Gaussian-kernel
// formula:
//
//	sigma = 0.3*((kernelSize-1)*0.5 - 1) + 0.8
//
// Border policy is reflect-101: samples are mirrored across the edge without
// repeating the edge sample itself (for a row  a b c ...  the virtual samples
// to the left are  c b ). Smoothing therefore never invents intensity and a
// lone bright pixel spreads no farther than the kernel radius.
func Blur(g *Grid, kernelSize int, sigma float64) (*Grid, error) {
	if kernelSize < 1 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("kernel size must be a positive odd integer, got %d", kernelSize)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("sigma must be non-negative, got %f", sigma)
	}
	if sigma == 0 {
		sigma = 0.3*(float64(kernelSize-1)*0.5-1) + 0.8
	}

	kernel := gaussianKernel(kernelSize, sigma)
	radius := kernelSize / 2

	// Horizontal pass.
	tmp := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * g.At(reflect101(x+k, g.Width), y)
			}
			tmp.Set(x, y, sum)
		}
	}

	// Vertical pass.
	out := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * tmp.At(x, reflect101(y+k, g.Height))
			}
			out.Set(x, y, sum)
		}
	}

	return out, nil
}

// gaussianKernel builds a normalized 1D Gaussian kernel of the given size.
func gaussianKernel(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	radius := size / 2

	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// reflect101 maps an out-of-range coordinate back into [0, n) by mirroring
// across the border without duplicating the edge sample.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}
