package dixon

import (
	"errors"
	"math"
	"testing"
)

func TestSeparateConstantPair(t *testing.T) {
	// In-phase 100 and out-of-phase 50 everywhere must give water 75 and
	// fat 25 everywhere (the unclamped numeric domain).
	inPhase := constantGrid(4, 4, 100)
	outPhase := constantGrid(4, 4, 50)

	result, err := Separate(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	for i := range result.Water.Data {
		if result.Water.Data[i] != 75 {
			t.Fatalf("Expected water=75, got %f at index %d", result.Water.Data[i], i)
		}
		if result.Fat.Data[i] != 25 {
			t.Fatalf("Expected fat=25, got %f at index %d", result.Fat.Data[i], i)
		}
	}
}

func TestSeparateRoundTrip(t *testing.T) {
	inPhase := makeGrid(12, 12, func(x, y int) float64 { return float64(x*20 + y*3) })
	outPhase := makeGrid(12, 12, func(x, y int) float64 { return float64(x*5 + y*7) })

	result, err := Separate(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	// water+fat and water-fat must reconstruct the inputs exactly in
	// float64: the halves introduced by /2 are exactly representable.
	for i := range inPhase.Data {
		reconIn := result.Water.Data[i] + result.Fat.Data[i]
		reconOut := result.Water.Data[i] - result.Fat.Data[i]

		if reconIn != inPhase.Data[i] {
			t.Fatalf("In-phase reconstruction mismatch at %d: %f vs %f",
				i, reconIn, inPhase.Data[i])
		}
		if reconOut != outPhase.Data[i] {
			t.Fatalf("Out-of-phase reconstruction mismatch at %d: %f vs %f",
				i, reconOut, outPhase.Data[i])
		}
	}
}

func TestSeparateKeepsFractionalHalves(t *testing.T) {
	inPhase := constantGrid(1, 1, 101)
	outPhase := constantGrid(1, 1, 50)

	result, err := Separate(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	if got := result.Water.Data[0]; got != 75.5 {
		t.Errorf("Expected water=75.5 for odd sum, got %f", got)
	}
	if got := result.Fat.Data[0]; got != 25.5 {
		t.Errorf("Expected fat=25.5 for odd difference, got %f", got)
	}
}

func TestSeparateNegativeFat(t *testing.T) {
	// Out-of-phase brighter than in-phase: the fat channel goes negative
	// and must not be clamped by the separator.
	inPhase := constantGrid(2, 2, 10)
	outPhase := constantGrid(2, 2, 40)

	result, err := Separate(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	if got := result.Fat.Data[0]; got != -15 {
		t.Errorf("Expected fat=-15, got %f", got)
	}
}

func TestSeparateDimensionMismatch(t *testing.T) {
	inPhase := NewGrid(10, 10)
	outPhase := NewGrid(10, 12)

	_, err := Separate(inPhase, outPhase)
	if err == nil {
		t.Fatal("Expected dimension mismatch error, got nil")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSeparateDoesNotModifyInputs(t *testing.T) {
	inPhase := makeGrid(5, 5, func(x, y int) float64 { return float64(x + y) })
	outPhase := makeGrid(5, 5, func(x, y int) float64 { return float64(x - y) })
	inCopy := inPhase.Clone()
	outCopy := outPhase.Clone()

	if _, err := Separate(inPhase, outPhase); err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	for i := range inPhase.Data {
		if inPhase.Data[i] != inCopy.Data[i] || outPhase.Data[i] != outCopy.Data[i] {
			t.Fatal("Separation modified its inputs")
		}
	}
}

func TestSeparateIsFinite(t *testing.T) {
	inPhase := makeGrid(4, 4, func(x, y int) float64 { return float64(x*y) * 1e6 })
	outPhase := makeGrid(4, 4, func(x, y int) float64 { return float64(x+y) * 1e6 })

	result, err := Separate(inPhase, outPhase)
	if err != nil {
		t.Fatalf("Separation failed: %v", err)
	}

	for i := range result.Water.Data {
		if math.IsNaN(result.Water.Data[i]) || math.IsInf(result.Water.Data[i], 0) {
			t.Fatalf("Non-finite water value at index %d", i)
		}
	}
}
