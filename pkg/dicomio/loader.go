// Package dicomio loads DICOM acquisitions into intensity grids for the
// separation pipeline. It reads only what the pipeline needs: the native
// pixel data of the first frame. All other DICOM metadata is ignored.
package dicomio

import (
	"github.com/pkg/errors"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"fatwatersep/internal/models"
	"fatwatersep/pkg/dixon"
)

// LoadGrid reads a DICOM file and extracts the first frame's pixel data as
// an intensity grid. Encapsulated (compressed) pixel data and multi-sample
// (color) data are rejected; the pipeline expects single-sample grayscale
// acquisitions as produced by MR scanners.
func LoadGrid(path string) (*dixon.Grid, error) {
	dataset, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing DICOM file %s", path)
	}

	element, err := dataset.FindElementByTag(tag.PixelData)
	if err != nil {
		return nil, errors.Wrapf(err, "no pixel data in %s", path)
	}

	pixelData := dicom.MustGetPixelDataInfo(element.Value)
	if pixelData.IsEncapsulated {
		return nil, errors.Errorf("encapsulated pixel data in %s is not supported", path)
	}
	if len(pixelData.Frames) == 0 {
		return nil, errors.Errorf("no image frames in %s", path)
	}

	native, err := pixelData.Frames[0].GetNativeFrame()
	if err != nil {
		return nil, errors.Wrapf(err, "decoding native frame of %s", path)
	}

	grid := dixon.NewGrid(native.Cols, native.Rows)
	for i, samples := range native.Data {
		if len(samples) != 1 {
			return nil, errors.Errorf("expected grayscale pixel data in %s, got %d samples per pixel",
				path, len(samples))
		}
		grid.Data[i] = float64(samples[0])
	}

	return grid, nil
}

// LoadPair loads the in-phase and out-of-phase acquisitions. Dimension
// equality is not checked here; the pipeline owns that precondition and
// fails fast on mismatch.
func LoadPair(inPhasePath, outPhasePath string) (*dixon.Grid, *dixon.Grid, error) {
	inPhase, err := LoadGrid(inPhasePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading in-phase acquisition")
	}

	outPhase, err := LoadGrid(outPhasePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading out-of-phase acquisition")
	}

	return inPhase, outPhase, nil
}

// LoadStudy loads both acquisitions of a study together with their source
// metadata.
func LoadStudy(inPhasePath, outPhasePath string) (*models.StudyPair, error) {
	inPhase, outPhase, err := LoadPair(inPhasePath, outPhasePath)
	if err != nil {
		return nil, err
	}

	return &models.StudyPair{
		In: models.Acquisition{
			Grid:  inPhase,
			Path:  inPhasePath,
			Phase: models.InPhase,
		},
		Out: models.Acquisition{
			Grid:  outPhase,
			Path:  outPhasePath,
			Phase: models.OutOfPhase,
		},
	}, nil
}
