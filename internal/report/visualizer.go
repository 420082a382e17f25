package report

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/face-detect-demo/internal/detection"
)

// SkipMessage is printed when figures cannot be produced.
const SkipMessage = "Skipping visualization (figure output not available)"

// ErrPlottingDisabled reports that no figure path was configured.
var ErrPlottingDisabled = errors.New("figure output disabled")

// Visualizer renders detection figures when the figure backend is available.
//
// Availability is decided once, at construction. An unavailable Visualizer
// never renders or writes anything.
type Visualizer struct {
	path      string
	style     Style
	available bool
	reason    error
	save      func(path string, img image.Image) error
}

// NewVisualizer checks the figure backend for path and returns a Visualizer
// remembering the result.
func NewVisualizer(path string, style Style) *Visualizer {
	err := DetectPlotting(path)
	return &Visualizer{
		path:      path,
		style:     style,
		available: err == nil,
		reason:    err,
		save:      savePNG,
	}
}

// DetectPlotting reports why figures cannot be written to path, or nil when
// they can: the path must be set, and its directory must exist.
func DetectPlotting(path string) error {
	if path == "" {
		return ErrPlottingDisabled
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("figure directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("figure directory %s is not a directory", dir)
	}
	return nil
}

// Available reports whether figures will be produced.
func (v *Visualizer) Available() bool {
	return v.available
}

// Reason explains why the Visualizer is unavailable. It is nil when available.
func (v *Visualizer) Reason() error {
	return v.reason
}

// Path is the figure output path.
func (v *Visualizer) Path() string {
	return v.path
}

// Visualize renders img with the face boxes and saves the figure. When the
// backend is unavailable it prints SkipMessage to w and returns nil.
func (v *Visualizer) Visualize(w io.Writer, img image.Image, faces []detection.Rectangle) error {
	if !v.available {
		fmt.Fprintln(w, SkipMessage)
		return nil
	}

	fig := RenderFigure(img, faces, v.style)
	if err := v.save(v.path, fig); err != nil {
		return fmt.Errorf("failed to save figure: %w", err)
	}

	fmt.Fprintf(w, "Figure saved to %s\n", v.path)
	return nil
}

func savePNG(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}
