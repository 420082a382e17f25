// Package demo runs the face detection walkthrough from synthetic image to
// optional feature checks.
package demo

import (
	"fmt"
	"image"
	"io"
	"log"
	"strings"

	"github.com/ironsheep/face-detect-demo/internal/detection"
	"github.com/ironsheep/face-detect-demo/internal/imaging"
	"github.com/ironsheep/face-detect-demo/internal/landmarks"
	"github.com/ironsheep/face-detect-demo/internal/report"
	"github.com/ironsheep/face-detect-demo/internal/tracking"
)

// Runner holds everything one demo run needs. Detector and Visualizer are
// required; the rest have usable zero values.
type Runner struct {
	Out        io.Writer
	Detector   detection.Detector
	Visualizer *report.Visualizer

	// Seed feeds the synthetic image noise.
	Seed uint64

	// LandmarkModel is the model file checked for the landmark predictor.
	LandmarkModel string

	Debug bool
}

// Result is what a run produced.
type Result struct {
	Image *imaging.Raster
	Faces []detection.Rectangle

	LandmarksAvailable bool
	TrackerAvailable   bool
}

// Run executes the demo once. Only a detector failure is returned as an
// error; plotting and feature check failures are reported on Out and the run
// continues.
func (r *Runner) Run() (*Result, error) {
	w := r.Out
	res := &Result{}

	fmt.Fprintln(w, "Face Detection Demo")
	fmt.Fprintln(w, strings.Repeat("=", 30))

	fmt.Fprintln(w, "Creating test image...")
	res.Image = imaging.SynthesizeSeeded(r.Seed)
	h, wd, c := res.Image.Shape()
	fmt.Fprintf(w, "Test image created: (%d, %d, %d)\n", h, wd, c)

	faces, err := r.detectFaces(res.Image)
	if err != nil {
		return res, err
	}
	res.Faces = faces

	report.PrintFaces(w, faces)

	if err := r.Visualizer.Visualize(w, res.Image, faces); err != nil {
		fmt.Fprintf(w, "ℹ Visualization failed: %v\n", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing additional functionality...")
	res.LandmarksAvailable = r.checkLandmarks()
	res.TrackerAvailable = r.checkTracker()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "✓ Face detection test completed successfully!")
	fmt.Fprintln(w, "You can now use the detector in your computer vision projects.")

	return res, nil
}

func (r *Runner) detectFaces(img *imaging.Raster) ([]detection.Rectangle, error) {
	w := r.Out
	fmt.Fprintln(w, "Initializing face detector...")
	fmt.Fprintln(w, "Detecting faces...")

	gray := imaging.Grayscale(img)
	faces, err := r.Detector.Detect(gray)
	if err != nil {
		return nil, fmt.Errorf("face detection failed: %w", err)
	}

	fmt.Fprintf(w, "Found %d face(s)\n", len(faces))
	if r.Debug {
		for i, f := range faces {
			log.Printf("detection %d: %v", i+1, f)
		}
	}
	return faces, nil
}

// checkLandmarks only checks that a predictor can be built.
func (r *Runner) checkLandmarks() bool {
	path := r.LandmarkModel
	if path == "" {
		path = landmarks.DefaultModelPath
	}

	if _, err := landmarks.NewPredictor(path); err != nil {
		if r.Debug {
			log.Printf("landmark predictor check: %v", err)
		}
		fmt.Fprintln(r.Out, "ℹ Shape predictor not available (this is normal)")
		return false
	}

	fmt.Fprintln(r.Out, "✓ Shape predictor functionality available")
	return true
}

// checkTracker builds a tracker and starts it on a blank frame.
func (r *Runner) checkTracker() bool {
	tracker, err := tracking.NewCorrelationTracker()
	if err == nil {
		frame := image.NewGray(image.Rect(0, 0, 32, 32))
		err = tracker.StartTrack(frame, detection.Rect(8, 8, 16, 16))
	}
	if err != nil {
		fmt.Fprintf(r.Out, "ℹ Correlation tracker test: %v\n", err)
		return false
	}

	fmt.Fprintln(r.Out, "✓ Correlation tracker functionality available")
	return true
}
