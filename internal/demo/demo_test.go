package demo

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/face-detect-demo/internal/detection"
	"github.com/ironsheep/face-detect-demo/internal/report"
)

// stubDetector returns canned rectangles and remembers its input.
type stubDetector struct {
	faces []detection.Rectangle
	err   error
	got   *image.Gray
}

func (s *stubDetector) Detect(gray *image.Gray) ([]detection.Rectangle, error) {
	s.got = gray
	return s.faces, s.err
}

func newRunner(t *testing.T, det detection.Detector, figurePath string) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &Runner{
		Out:           &buf,
		Detector:      det,
		Visualizer:    report.NewVisualizer(figurePath, report.DefaultStyle()),
		Seed:          1,
		LandmarkModel: filepath.Join(t.TempDir(), "missing.dat"),
	}, &buf
}

func TestRun_NoFaces(t *testing.T) {
	det := &stubDetector{}
	r, buf := newRunner(t, det, "")

	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Test image created: (400, 400, 3)",
		"Found 0 face(s)",
		report.NoFacesMessage,
		report.SkipMessage,
		"ℹ Shape predictor not available (this is normal)",
		"✓ Correlation tracker functionality available",
		"completed successfully",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if len(res.Faces) != 0 || res.LandmarksAvailable || !res.TrackerAvailable {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestRun_PassesGrayscaleToDetector(t *testing.T) {
	det := &stubDetector{}
	r, _ := newRunner(t, det, "")

	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if det.got == nil {
		t.Fatal("detector was not called")
	}
	if det.got.Bounds() != image.Rect(0, 0, 400, 400) {
		t.Errorf("gray bounds: got %v", det.got.Bounds())
	}

	// Spot check the channel average
	c := res.Image.RGB(100, 60)
	want := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
	if got := det.got.GrayAt(100, 60).Y; got != want {
		t.Errorf("gray(100,60): got %d, want %d", got, want)
	}
}

func TestRun_ReportsFacesInOrder(t *testing.T) {
	det := &stubDetector{faces: []detection.Rectangle{
		detection.Rect(200, 200, 100, 100),
		detection.Rect(50, 50, 100, 100),
	}}
	r, buf := newRunner(t, det, "")

	if _, err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	first := strings.Index(out, "Position: (200, 200)")
	second := strings.Index(out, "Position: (50, 50)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("faces not reported in detector order:\n%s", out)
	}
	if strings.Count(out, "Area: 10000 pixels") != 2 {
		t.Errorf("expected two 10000 pixel areas:\n%s", out)
	}
}

func TestRun_WritesFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faces.png")
	det := &stubDetector{faces: []detection.Rectangle{detection.Rect(50, 50, 100, 100)}}
	r, buf := newRunner(t, det, path)

	if _, err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("figure not written: %v", err)
	}
	if strings.Contains(buf.String(), report.SkipMessage) {
		t.Error("visualization should not be skipped")
	}
}

func TestRun_DetectorError(t *testing.T) {
	det := &stubDetector{err: errors.New("boom")}
	r, buf := newRunner(t, det, "")

	_, err := r.Run()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped detector error, got %v", err)
	}
	if strings.Contains(buf.String(), "Testing additional functionality") {
		t.Error("feature checks should not run after a detector failure")
	}
}

func TestCheckLandmarks_CorruptModelIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.dat")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	r, buf := newRunner(t, &stubDetector{}, "")
	r.LandmarkModel = path

	if r.checkLandmarks() {
		t.Error("corrupt model should not be reported as available")
	}
	if !strings.Contains(buf.String(), "Shape predictor not available") {
		t.Errorf("output: %q", buf.String())
	}
}
