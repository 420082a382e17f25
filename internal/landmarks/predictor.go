// Package landmarks locates facial landmarks inside detected face rectangles.
//
// The predictor is a pigo pupil-localization cascade loaded from a model file.
// The model is optional for the demo: a missing file is an expected condition
// and callers are expected to carry on without landmarks.
package landmarks

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/ironsheep/face-detect-demo/internal/detection"
)

// DefaultModelPath is the model file checked when no other path is configured.
const DefaultModelPath = "shape_predictor_68_face_landmarks.dat"

// minModelSize mirrors the header length pigo reads without bounds checks.
const minModelSize = 24

// Eye placement relative to a face box, as fractions of the box size.
const (
	eyeRowOffset = 0.075
	eyeColOffset = 0.175
	eyeScale     = 0.25
	perturbs     = 63
)

// Landmarks holds the points located inside one face.
type Landmarks struct {
	LeftEye  image.Point `json:"left_eye"`
	RightEye image.Point `json:"right_eye"`

	// Found reports which eyes were localized. Points of eyes that were not
	// found are the zero point.
	LeftFound  bool `json:"left_found"`
	RightFound bool `json:"right_found"`
}

// Predictor localizes pupils inside face rectangles.
type Predictor struct {
	cascade *pigo.PuplocCascade
}

// NewPredictor loads the landmark model at modelPath.
//
// A missing model yields an error matching os.ErrNotExist.
func NewPredictor(modelPath string) (*Predictor, error) {
	data, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read landmark model: %w", err)
	}

	cascade, err := unpackPuploc(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load landmark model %s: %w", modelPath, err)
	}

	return &Predictor{cascade: cascade}, nil
}

func unpackPuploc(data []byte) (cascade *pigo.PuplocCascade, err error) {
	if len(data) < minModelSize {
		return nil, fmt.Errorf("model too short (%d bytes)", len(data))
	}

	defer func() {
		if r := recover(); r != nil {
			cascade = nil
			err = fmt.Errorf("malformed model: %v", r)
		}
	}()

	return pigo.NewPuplocCascade().UnpackCascade(data)
}

// Predict locates both pupils of the face inside gray.
func (p *Predictor) Predict(gray *image.Gray, face detection.Rectangle) Landmarks {
	var lm Landmarks
	if gray == nil || face.Width <= 0 || face.Height <= 0 {
		return lm
	}

	bounds := gray.Bounds()
	params := pigo.ImageParams{
		Pixels: gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y):],
		Rows:   bounds.Dy(),
		Cols:   bounds.Dx(),
		Dim:    gray.Stride,
	}

	center := face.Center().Sub(bounds.Min)
	scale := float32(face.Width)

	left := pigo.Puploc{
		Row:      center.Y - int(eyeRowOffset*scale),
		Col:      center.X - int(eyeColOffset*scale),
		Scale:    scale * eyeScale,
		Perturbs: perturbs,
	}
	if pt, ok := p.locate(left, params); ok {
		lm.LeftEye, lm.LeftFound = pt.Add(bounds.Min), true
	}

	right := pigo.Puploc{
		Row:      center.Y - int(eyeRowOffset*scale),
		Col:      center.X + int(eyeColOffset*scale),
		Scale:    scale * eyeScale,
		Perturbs: perturbs,
	}
	if pt, ok := p.locate(right, params); ok {
		lm.RightEye, lm.RightFound = pt.Add(bounds.Min), true
	}

	return lm
}

func (p *Predictor) locate(start pigo.Puploc, params pigo.ImageParams) (image.Point, bool) {
	found := p.cascade.RunDetector(start, params, 0.0, false)
	if found == nil || found.Row <= 0 || found.Col <= 0 {
		return image.Point{}, false
	}
	if found.Row >= params.Rows || found.Col >= params.Cols {
		return image.Point{}, false
	}
	return image.Pt(found.Col, found.Row), true
}
