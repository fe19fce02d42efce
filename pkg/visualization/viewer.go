// Package visualization writes the output images of a separation run to
// disk: the individual panels and a montage sheet that mirrors the
// conventional 3x2 review layout (inputs on top, separated images in the
// middle, smoothed variants at the bottom).
package visualization

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"fatwatersep/pkg/dixon"
)

// panelNames maps result images to their output filenames, in montage
// order: left column then right column, top to bottom.
var panelNames = []string{
	"in_phase",
	"out_phase",
	"water",
	"fat",
	"water_smoothed",
	"fat_smoothed",
}

// montagePadding is the gap between montage panels in pixels.
const montagePadding = 8

// Viewer renders the result of one pipeline run.
type Viewer struct {
	result *dixon.Result
}

// NewViewer creates a viewer over a pipeline result.
func NewViewer(result *dixon.Result) *Viewer {
	return &Viewer{result: result}
}

// panels returns the six images in montage order.
func (v *Viewer) panels() []*image.Gray {
	return []*image.Gray{
		v.result.InPhase,
		v.result.OutPhase,
		v.result.Water,
		v.result.Fat,
		v.result.SmoothedWater,
		v.result.SmoothedFat,
	}
}

// SaveImages writes all six result images as JPEG files into the given
// directory, creating it if necessary.
func (v *Viewer) SaveImages(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outputDir)
	}

	for i, img := range v.panels() {
		path := filepath.Join(outputDir, panelNames[i]+".jpg")
		if err := saveJPEG(img, path); err != nil {
			return errors.Wrapf(err, "saving %s image", panelNames[i])
		}
	}

	return nil
}

// Montage composes the six images into a single 3x2 sheet with a black
// background and uniform padding, in the same order as the individual
// panels: inputs, separated images, smoothed separated images.
func (v *Viewer) Montage() *image.Gray {
	panels := v.panels()

	bounds := panels[0].Bounds()
	panelWidth := bounds.Dx()
	panelHeight := bounds.Dy()

	const cols, rows = 2, 3
	sheet := image.NewGray(image.Rect(0, 0,
		cols*panelWidth+(cols+1)*montagePadding,
		rows*panelHeight+(rows+1)*montagePadding))

	for i, panel := range panels {
		x0 := montagePadding + (i%cols)*(panelWidth+montagePadding)
		y0 := montagePadding + (i/cols)*(panelHeight+montagePadding)

		pb := panel.Bounds()
		for y := 0; y < panelHeight; y++ {
			for x := 0; x < panelWidth; x++ {
				sheet.Pix[(y0+y)*sheet.Stride+x0+x] = panel.GrayAt(pb.Min.X+x, pb.Min.Y+y).Y
			}
		}
	}

	return sheet
}

// SaveMontage writes the montage sheet to the given path.
func (v *Viewer) SaveMontage(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := saveJPEG(v.Montage(), path); err != nil {
		return errors.Wrap(err, "saving montage")
	}
	return nil
}

// saveJPEG encodes an image as JPEG with review-friendly quality.
func saveJPEG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}
