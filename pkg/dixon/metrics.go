package dixon

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ContrastMetrics summarizes the intensity statistics of one output image.
// The metrics quantify what enhancement achieved: equalization should raise
// the entropy toward its 8-bit maximum of 8 bits and spread the standard
// deviation compared to the un-enhanced separation.
type ContrastMetrics struct {
	// Mean is the average pixel intensity.
	Mean float64

	// StdDev is the intensity standard deviation, a rough contrast measure.
	StdDev float64

	// Entropy is the Shannon entropy of the 256-bin intensity histogram,
	// in bits. A perfectly equalized image approaches 8 bits.
	Entropy float64

	// DynamicRange is the span between the darkest and brightest pixel.
	DynamicRange int
}

// MeasureContrast computes contrast metrics for an 8-bit grayscale image.
func MeasureContrast(img *image.Gray) ContrastMetrics {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return ContrastMetrics{}
	}

	var hist [256]float64
	samples := make([]float64, 0, n)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			hist[v]++
			samples = append(samples, float64(v))
		}
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if n == 1 || math.IsNaN(std) {
		std = 0
	}

	var entropy float64
	minV, maxV := 255, 0
	for v, count := range hist {
		if count == 0 {
			continue
		}
		p := count / float64(n)
		entropy -= p * math.Log2(p)
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV < minV {
		minV, maxV = 0, 0
	}

	return ContrastMetrics{
		Mean:         mean,
		StdDev:       std,
		Entropy:      entropy,
		DynamicRange: maxV - minV,
	}
}

// MeasureResult computes contrast metrics for each of the four enhanced
// output images of a pipeline run, keyed by a display name.
func MeasureResult(result *Result) map[string]ContrastMetrics {
	return map[string]ContrastMetrics{
		"water":          MeasureContrast(result.Water),
		"fat":            MeasureContrast(result.Fat),
		"smoothed water": MeasureContrast(result.SmoothedWater),
		"smoothed fat":   MeasureContrast(result.SmoothedFat),
	}
}
