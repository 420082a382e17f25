package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ironsheep/face-detect-demo/internal/config"
	"github.com/ironsheep/face-detect-demo/internal/demo"
	"github.com/ironsheep/face-detect-demo/internal/detection"
	"github.com/ironsheep/face-detect-demo/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("face-demo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  pigo:       %s\n", detection.LibraryVersion())
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Diagnostics go to stderr, the demo narration to stdout
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.Debug() {
		log.Printf("face-demo v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	opts := detection.DefaultOptions()
	opts.MinSize = cfg.MinFaceSize
	opts.QualityThreshold = float32(cfg.Quality)

	detector, err := detection.NewFrontalDetector(cfg.CascadePath, opts)
	if err != nil {
		fmt.Printf("✗ Error loading face detector: %v\n", err)
		printInstallGuidance(os.Stdout, err)
		os.Exit(1)
	}
	fmt.Printf("✓ pigo version: %s\n", detection.LibraryVersion())

	style := report.DefaultStyle()
	if c, err := report.ParseHighlight(cfg.BoxColor); err != nil {
		log.Printf("Using default box color: %v", err)
	} else {
		style.Highlight = c
	}

	visualizer := report.NewVisualizer(cfg.FigurePath, style)
	if !visualizer.Available() {
		fmt.Println("Note: figure output not available, skipping visualization")
		if cfg.Debug() {
			log.Printf("figure backend: %v", visualizer.Reason())
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	runner := &demo.Runner{
		Out:           os.Stdout,
		Detector:      detector,
		Visualizer:    visualizer,
		Seed:          seed,
		LandmarkModel: cfg.LandmarkModel,
		Debug:         cfg.Debug(),
	}
	if _, err := runner.Run(); err != nil {
		log.Fatalf("Demo error: %v", err)
	}
}

func printInstallGuidance(w io.Writer, err error) {
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(w, "The pigo frontal-face cascade was not found.")
	}
	fmt.Fprintln(w, "Download the 'facefinder' cascade from https://github.com/esimov/pigo/tree/master/cascade")
	fmt.Fprintf(w, "and place it at cascade/facefinder, or point %s at it.\n", config.EnvCascade)
}

func printHelp() {
	fmt.Println("face-demo - synthetic image face detection walkthrough")
	fmt.Println()
	fmt.Println("Usage: face-demo [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  FACE_DEMO_LOG_LEVEL=debug        Enable debug logging")
	fmt.Println("  FACE_DEMO_CASCADE=<path>         pigo face cascade (default cascade/facefinder)")
	fmt.Println("  FACE_DEMO_LANDMARK_MODEL=<path>  Landmark model checked at the end of the run")
	fmt.Println("  FACE_DEMO_FIGURE=<path>          Figure output, empty disables (default face_detection_results.png)")
	fmt.Println("  FACE_DEMO_BOX_COLOR=#RRGGBB      Box and label color (default #FF0000)")
	fmt.Println("  FACE_DEMO_SEED=<n>               Noise seed, 0 picks one from the clock")
	fmt.Println("  FACE_DEMO_MIN_FACE=<px>          Smallest face edge to scan for (default 20)")
	fmt.Println("  FACE_DEMO_QUALITY=<score>        Minimum detection score (default 5.0)")
}
