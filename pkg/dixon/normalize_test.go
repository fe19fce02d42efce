package dixon

import (
	"testing"
)

func TestNormalizeOutputRange(t *testing.T) {
	// Raw 16-bit-ish intensities, nothing near the 8-bit range.
	g := makeGrid(16, 16, func(x, y int) float64 { return 1000 + float64(x*y)*57 })

	img := Normalize(g)

	minV, maxV := 255, 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := int(img.GrayAt(x, y).Y)
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	if minV != 0 {
		t.Errorf("Expected minimum 0 after normalization, got %d", minV)
	}
	if maxV != 255 {
		t.Errorf("Expected maximum 255 after normalization, got %d", maxV)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	g := makeGrid(10, 10, func(x, y int) float64 { return float64(x*25 + y) })

	once := NormalizeGrid(g)
	twice := NormalizeGrid(once)

	for i := range once.Data {
		if once.Data[i] != twice.Data[i] {
			t.Fatalf("Normalization not idempotent at index %d: %f vs %f",
				i, once.Data[i], twice.Data[i])
		}
	}
}

func TestNormalizeConstantImage(t *testing.T) {
	g := constantGrid(6, 4, 1234)

	img := Normalize(g)

	bounds := img.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 4 {
		t.Fatalf("Expected 6x4 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if v := img.GrayAt(x, y).Y; v != 0 {
				t.Fatalf("Expected all-zero output for constant image, got %d at (%d,%d)", v, x, y)
			}
		}
	}
}

func TestNormalizeLinearMapping(t *testing.T) {
	// Two-point image: the endpoints must land exactly on 0 and 255
	// and a midpoint must round to 128 (half away from zero).
	g := makeGrid(3, 1, func(x, y int) float64 {
		return []float64{100, 150, 200}[x]
	})

	img := Normalize(g)
	expected := []uint8{0, 128, 255}
	for x, want := range expected {
		if got := img.GrayAt(x, 0).Y; got != want {
			t.Errorf("Expected %d at x=%d, got %d", want, x, got)
		}
	}
}

func TestNormalizeEmptyGrid(t *testing.T) {
	g := NewGrid(0, 0)

	out := NormalizeGrid(g)
	if out.Width != 0 || out.Height != 0 {
		t.Errorf("Expected empty output, got %dx%d", out.Width, out.Height)
	}
}

func TestNormalizePreservesRankOrder(t *testing.T) {
	g := makeGrid(8, 8, func(x, y int) float64 { return float64((x*31 + y*17) % 97) })

	out := NormalizeGrid(g)
	for i := range g.Data {
		for j := range g.Data {
			if g.Data[i] < g.Data[j] && out.Data[i] > out.Data[j] {
				t.Fatalf("Rank order violated: input %f<%f but output %f>%f",
					g.Data[i], g.Data[j], out.Data[i], out.Data[j])
			}
		}
	}
}
