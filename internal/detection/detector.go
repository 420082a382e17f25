package detection

import (
	"errors"
	"fmt"
	"image"
	"os"
	"runtime/debug"

	pigo "github.com/esimov/pigo/core"
)

// pigoModule is the module path reported by LibraryVersion.
const pigoModule = "github.com/esimov/pigo"

// minCascadeSize is the smallest packet pigo can read a header from. pigo
// indexes the packet directly, so shorter input would panic.
const minCascadeSize = 24

// ErrDetectorUnavailable is returned when the face detector cannot be
// constructed. Callers treat it as fatal.
var ErrDetectorUnavailable = errors.New("face detector unavailable")

// Detector finds faces in a single-channel image.
type Detector interface {
	Detect(gray *image.Gray) ([]Rectangle, error)
}

// Options tunes the cascade scan.
type Options struct {
	// MinSize is the smallest face edge, in pixels, the scan considers.
	MinSize int

	// MaxSize is the largest face edge. Zero or values larger than the image
	// are capped to the shorter image side.
	MaxSize int

	// ShiftFactor is the sliding window step as a fraction of window size.
	ShiftFactor float64

	// ScaleFactor is the multiplicative step between window sizes.
	ScaleFactor float64

	// IoUThreshold merges overlapping raw detections into one cluster.
	IoUThreshold float64

	// QualityThreshold drops clustered detections scoring below it.
	QualityThreshold float32
}

// DefaultOptions returns the scan parameters used by the demo.
func DefaultOptions() Options {
	return Options{
		MinSize:          20,
		MaxSize:          0,
		ShiftFactor:      0.1,
		ScaleFactor:      1.1,
		IoUThreshold:     0.2,
		QualityThreshold: 5.0,
	}
}

// FrontalDetector is a Detector backed by a pigo frontal-face cascade.
type FrontalDetector struct {
	classifier *pigo.Pigo
	opts       Options
}

// NewFrontalDetector reads and unpacks the cascade at cascadePath.
//
// Every failure wraps ErrDetectorUnavailable. A missing file additionally
// matches os.ErrNotExist.
func NewFrontalDetector(cascadePath string, opts Options) (*FrontalDetector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read cascade: %w", ErrDetectorUnavailable, err)
	}

	classifier, err := unpackCascade(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDetectorUnavailable, cascadePath, err)
	}

	return &FrontalDetector{classifier: classifier, opts: opts}, nil
}

// unpackCascade converts pigo's panics on malformed input into errors.
func unpackCascade(data []byte) (classifier *pigo.Pigo, err error) {
	if len(data) < minCascadeSize {
		return nil, fmt.Errorf("cascade too short (%d bytes)", len(data))
	}

	defer func() {
		if r := recover(); r != nil {
			classifier = nil
			err = fmt.Errorf("malformed cascade: %v", r)
		}
	}()

	return pigo.NewPigo().Unpack(data)
}

// Detect runs the cascade over gray and returns the clustered detections
// that pass the quality threshold.
func (d *FrontalDetector) Detect(gray *image.Gray) ([]Rectangle, error) {
	if gray == nil {
		return nil, errors.New("detect: nil image")
	}
	if d.opts.MinSize < 1 {
		return nil, fmt.Errorf("detect: minimum face size must be >= 1, got %d", d.opts.MinSize)
	}

	bounds := gray.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	maxSize := d.opts.MaxSize
	if limit := min(rows, cols); maxSize <= 0 || maxSize > limit {
		maxSize = limit
	}

	params := pigo.CascadeParams{
		MinSize:     d.opts.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: d.opts.ShiftFactor,
		ScaleFactor: d.opts.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y):],
			Rows:   rows,
			Cols:   cols,
			Dim:    gray.Stride,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, d.opts.IoUThreshold)

	return fromPigo(dets, d.opts.QualityThreshold, bounds.Min), nil
}

// fromPigo converts pigo detections, which are centered squares, into
// rectangles offset by origin. Order is preserved.
func fromPigo(dets []pigo.Detection, quality float32, origin image.Point) []Rectangle {
	rects := make([]Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q < quality {
			continue
		}
		rects = append(rects, Rectangle{
			Left:   origin.X + det.Col - det.Scale/2,
			Top:    origin.Y + det.Row - det.Scale/2,
			Width:  det.Scale,
			Height: det.Scale,
		})
	}
	return rects
}

// LibraryVersion reports the version of the linked pigo module, or
// "unknown" when build information is unavailable.
func LibraryVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != pigoModule {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return "unknown"
}
