// Package tracking follows a face rectangle across frames.
//
// CorrelationTracker keeps a zero-mean grayscale template of the tracked region
// and, on every update, searches a padded window around the last position for
// the offset with the highest normalized cross-correlation.
package tracking

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/face-detect-demo/internal/detection"
)

// Defaults for NewCorrelationTracker.
const (
	DefaultSearchPadding   = 16
	DefaultMinTemplateSize = 2
)

// ErrNotStarted is returned by Update before StartTrack succeeded.
var ErrNotStarted = errors.New("tracker has not been started")

// Option configures a CorrelationTracker.
type Option func(*CorrelationTracker)

// WithSearchPadding sets how many pixels around the previous position are
// searched on each update.
func WithSearchPadding(px int) Option {
	return func(t *CorrelationTracker) {
		t.padding = px
	}
}

// WithMinTemplateSize sets the smallest template edge StartTrack accepts.
func WithMinTemplateSize(px int) Option {
	return func(t *CorrelationTracker) {
		t.minSize = px
	}
}

// CorrelationTracker tracks a single rectangle by template matching.
type CorrelationTracker struct {
	padding int
	minSize int

	template []float64 // zero-mean samples, row-major
	norm     float64   // L2 norm of template
	pos      detection.Rectangle
	started  bool
}

// NewCorrelationTracker returns an idle tracker.
func NewCorrelationTracker(opts ...Option) (*CorrelationTracker, error) {
	t := &CorrelationTracker{
		padding: DefaultSearchPadding,
		minSize: DefaultMinTemplateSize,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.padding < 0 {
		return nil, fmt.Errorf("search padding must be >= 0, got %d", t.padding)
	}
	if t.minSize < 2 {
		return nil, fmt.Errorf("minimum template size must be >= 2, got %d", t.minSize)
	}
	return t, nil
}

// StartTrack captures the template for rect from gray. The rectangle is
// clipped to the image first.
func (t *CorrelationTracker) StartTrack(gray *image.Gray, rect detection.Rectangle) error {
	if gray == nil {
		return errors.New("start track: nil image")
	}

	b := rect.Bounds().Intersect(gray.Bounds())
	if b.Dx() < t.minSize || b.Dy() < t.minSize {
		return fmt.Errorf("start track: region %v too small inside image", rect)
	}

	t.template, t.norm = zeroMeanPatch(gray, b)
	t.pos = detection.FromBounds(b)
	t.started = true
	return nil
}

// Update moves the tracked rectangle to its best match in gray and returns
// the match score in [-1, 1]. A flat template or patch scores 0.
//
// Ties keep the current position.
func (t *CorrelationTracker) Update(gray *image.Gray) (float64, error) {
	if !t.started {
		return 0, ErrNotStarted
	}
	if gray == nil {
		return 0, errors.New("update: nil image")
	}

	bounds := gray.Bounds()
	best := math.Inf(-1)
	bestPos := t.pos

	if cur := t.pos.Bounds(); cur.In(bounds) {
		best = t.score(gray, cur)
	}

	for y := t.pos.Top - t.padding; y <= t.pos.Top+t.padding; y++ {
		for x := t.pos.Left - t.padding; x <= t.pos.Left+t.padding; x++ {
			cand := image.Rect(x, y, x+t.pos.Width, y+t.pos.Height)
			if !cand.In(bounds) {
				continue
			}
			if s := t.score(gray, cand); s > best {
				best = s
				bestPos = detection.FromBounds(cand)
			}
		}
	}

	if math.IsInf(best, -1) {
		return 0, fmt.Errorf("update: search window around %v lies outside the image", t.pos)
	}

	t.pos = bestPos
	return best, nil
}

// Position returns the current tracked rectangle.
func (t *CorrelationTracker) Position() detection.Rectangle {
	return t.pos
}

// score computes the normalized cross-correlation of the template with the
// patch of gray under r.
func (t *CorrelationTracker) score(gray *image.Gray, r image.Rectangle) float64 {
	if t.norm == 0 {
		return 0
	}

	var sum float64
	n := float64(r.Dx() * r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := gray.PixOffset(r.Min.X, y)
		for _, v := range gray.Pix[off : off+r.Dx()] {
			sum += float64(v)
		}
	}
	mean := sum / n

	var dot, sq float64
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := gray.PixOffset(r.Min.X, y)
		for _, v := range gray.Pix[off : off+r.Dx()] {
			d := float64(v) - mean
			dot += d * t.template[i]
			sq += d * d
			i++
		}
	}

	if sq == 0 {
		return 0
	}
	return dot / (t.norm * math.Sqrt(sq))
}

func zeroMeanPatch(gray *image.Gray, r image.Rectangle) ([]float64, float64) {
	patch := make([]float64, 0, r.Dx()*r.Dy())
	var sum float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := gray.PixOffset(r.Min.X, y)
		for _, v := range gray.Pix[off : off+r.Dx()] {
			patch = append(patch, float64(v))
			sum += float64(v)
		}
	}

	mean := sum / float64(len(patch))
	var sq float64
	for i := range patch {
		patch[i] -= mean
		sq += patch[i] * patch[i]
	}
	return patch, math.Sqrt(sq)
}
