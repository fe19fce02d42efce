package dixon

import (
	"image"
	"math"
)

// Enhance prepares a separated image for display. It first min-max
// normalizes the grid into the 8-bit range (any negative fat values clamp
// implicitly here: the sample minimum, however negative, maps to 0), then
// applies histogram equalization so the output intensities spread over the
// full range.
//
// Equalization builds a 256-bin histogram, accumulates it into a CDF and
// remaps each pixel through the lookup table
//
//	lut[i] = round((cdf[i] - cdfMin) / (n - cdfMin) * 255)
//
// where cdfMin is the first non-zero CDF entry. The remap is monotonic, so
// the rank order of pixel intensities is preserved. A constant image
// occupies a single histogram bin and is returned unchanged; combined with
// the degenerate-range policy of normalization this means a constant
// separated image enhances to an all-zero image.
func Enhance(g *Grid) *image.Gray {
	img := Normalize(g)
	return equalizeHist(img)
}

// equalizeHist performs in-range histogram equalization on an 8-bit image.
func equalizeHist(img *image.Gray) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	n := width * height
	if n == 0 {
		return img
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}

	// Cumulative distribution and its first occupied bin.
	var cdf [256]int
	cum := 0
	cdfMin := 0
	seenMin := false
	for i, count := range hist {
		cum += count
		cdf[i] = cum
		if !seenMin && count > 0 {
			cdfMin = cum
			seenMin = true
		}
	}

	// Single occupied bin: the CDF is a step function and equalization
	// would divide by zero. The image is constant, leave it as is.
	if cdfMin == n {
		return img
	}

	var lut [256]uint8
	scale := 255 / float64(n-cdfMin)
	for i := range lut {
		v := math.Round(float64(cdf[i]-cdfMin) * scale)
		if v < 0 {
			v = 0
		}
		lut[i] = uint8(v)
	}

	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Pix[y*out.Stride+x] = lut[img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y]
		}
	}

	return out
}
