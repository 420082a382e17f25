// Package report presents face detection results as text and as a figure.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/face-detect-demo/internal/detection"
)

// NoFacesMessage is the entire text report for an empty result.
const NoFacesMessage = "No faces detected."

// PrintFaces writes one block per face, in the given order, numbered from 1.
func PrintFaces(w io.Writer, faces []detection.Rectangle) {
	if len(faces) == 0 {
		fmt.Fprintln(w, NoFacesMessage)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Face Detection Results:")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	for i, face := range faces {
		fmt.Fprintf(w, "Face %d:\n", i+1)
		fmt.Fprintf(w, "  Position: (%d, %d)\n", face.Left, face.Top)
		fmt.Fprintf(w, "  Size: %d x %d\n", face.Width, face.Height)
		fmt.Fprintf(w, "  Area: %d pixels\n", face.Area())
		fmt.Fprintln(w)
	}
}

// FaceLabel is the label drawn next to the i-th (0-based) face.
func FaceLabel(i int) string {
	return fmt.Sprintf("Face %d", i+1)
}
