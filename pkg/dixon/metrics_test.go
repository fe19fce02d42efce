package dixon

import (
	"math"
	"testing"
)

func TestMeasureContrastConstantImage(t *testing.T) {
	metrics := MeasureContrast(constantGrid(8, 8, 42).ToGray())

	if metrics.Mean != 42 {
		t.Errorf("Expected mean 42, got %f", metrics.Mean)
	}
	if metrics.StdDev != 0 {
		t.Errorf("Expected zero standard deviation, got %f", metrics.StdDev)
	}
	if metrics.Entropy != 0 {
		t.Errorf("Expected zero entropy for constant image, got %f", metrics.Entropy)
	}
	if metrics.DynamicRange != 0 {
		t.Errorf("Expected zero dynamic range, got %d", metrics.DynamicRange)
	}
}

func TestMeasureContrastUniformHistogram(t *testing.T) {
	// All 256 intensities equally frequent: entropy hits the 8-bit
	// maximum and the range spans the full scale.
	img := makeGrid(16, 16, func(x, y int) float64 { return float64(y*16 + x) }).ToGray()

	metrics := MeasureContrast(img)
	if math.Abs(metrics.Entropy-8) > 1e-9 {
		t.Errorf("Expected entropy 8 bits, got %f", metrics.Entropy)
	}
	if metrics.DynamicRange != 255 {
		t.Errorf("Expected dynamic range 255, got %d", metrics.DynamicRange)
	}
}

func TestMeasureResult(t *testing.T) {
	inPhase, outPhase := testPair(16)

	result, err := NewPipeline(nil).Run(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	metrics := MeasureResult(result)
	for _, name := range []string{"water", "fat", "smoothed water", "smoothed fat"} {
		if _, ok := metrics[name]; !ok {
			t.Errorf("Expected metrics entry for %q", name)
		}
	}
}
