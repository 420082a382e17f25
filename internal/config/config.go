// Package config reads the demo's settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvLogLevel      = "FACE_DEMO_LOG_LEVEL"
	EnvCascade       = "FACE_DEMO_CASCADE"
	EnvLandmarkModel = "FACE_DEMO_LANDMARK_MODEL"
	EnvFigure        = "FACE_DEMO_FIGURE"
	EnvBoxColor      = "FACE_DEMO_BOX_COLOR"
	EnvSeed          = "FACE_DEMO_SEED"
	EnvMinFace       = "FACE_DEMO_MIN_FACE"
	EnvQuality       = "FACE_DEMO_QUALITY"
)

// Config holds the settings for one demo run.
type Config struct {
	LogLevel      string
	CascadePath   string  // pigo frontal-face cascade, required
	LandmarkModel string  // optional landmark model, checked only
	FigurePath    string  // empty disables figure output
	BoxColor      string  // "#RRGGBB"
	Seed          uint64  // 0 picks a time-based seed
	MinFaceSize   int     // smallest face edge the detector scans for
	Quality       float64 // minimum detection score
}

// Load returns the configuration from the environment, falling back to
// defaults for unset or unparsable values.
func Load() *Config {
	cfg := &Config{
		LogLevel:      getEnv(EnvLogLevel, "info"),
		CascadePath:   getEnv(EnvCascade, "cascade/facefinder"),
		LandmarkModel: getEnv(EnvLandmarkModel, "shape_predictor_68_face_landmarks.dat"),
		FigurePath:    "face_detection_results.png",
		BoxColor:      getEnv(EnvBoxColor, "#FF0000"),
		MinFaceSize:   20,
		Quality:       5.0,
	}

	// Set-but-empty turns figure output off
	if v, ok := os.LookupEnv(EnvFigure); ok {
		cfg.FigurePath = strings.TrimSpace(v)
	}

	readEnvUint64(EnvSeed, &cfg.Seed)
	readEnvPositiveInt(EnvMinFace, &cfg.MinFaceSize)
	readEnvFloat(EnvQuality, &cfg.Quality)

	return cfg
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", name, v, err)
		return
	}
	*value = n
}

func readEnvPositiveInt(name string, value *int) {
	n := *value
	readEnvInt(name, &n)
	if n <= 0 {
		log.Printf("Ignoring %s=%d: must be positive", name, n)
		return
	}
	*value = n
}

func readEnvUint64(name string, value *uint64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", name, v, err)
		return
	}
	*value = n
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", name, v, err)
		return
	}
	*value = f
}
