package models

import (
	"fatwatersep/pkg/dixon"
)

// Phase identifies which echo an acquisition belongs to.
type Phase int

const (
	// InPhase is the echo where fat and water signals are aligned.
	InPhase Phase = iota

	// OutOfPhase is the echo where fat and water signals are opposed.
	OutOfPhase
)

// String returns the display name of the phase.
func (p Phase) String() string {
	if p == InPhase {
		return "in-phase"
	}
	return "out-of-phase"
}

// Acquisition represents a single loaded MRI acquisition with its source
// metadata.
type Acquisition struct {
	// Grid is the raw intensity data extracted from the DICOM pixel data.
	Grid *dixon.Grid

	// Path is the file the acquisition was loaded from.
	Path string

	// Phase indicates whether this is the in-phase or out-of-phase echo.
	Phase Phase
}

// StudyPair holds the co-registered acquisition pair for one Dixon study.
type StudyPair struct {
	// In is the in-phase acquisition.
	In Acquisition

	// Out is the out-of-phase acquisition.
	Out Acquisition
}
