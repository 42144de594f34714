package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/results"
	"gonum.org/v1/plot/vg"
)

// OutputFormat is the encoding of the saved chart.
type OutputFormat string

const (
	PNG  OutputFormat = "png"
	SVG  OutputFormat = "svg"
	PDF  OutputFormat = "pdf"
	JPG  OutputFormat = "jpg"
	HTML OutputFormat = "html"
)

// ParseOutputFormat accepts a format name with or without a leading dot.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	case "jpg", "jpeg":
		return JPG, nil
	case "html", "htm":
		return HTML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, charterrors.ErrUnknownFormat)
	}
}

// FormatFromPath derives the output format from the file extension.
func FormatFromPath(path string) (OutputFormat, error) {
	return ParseOutputFormat(filepath.Ext(path))
}

// Config holds configuration for chart generation
type Config struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	Width       vg.Length
	Height      vg.Length
	// Format overrides the format derived from the output path.
	Format OutputFormat
}

// validate rejects sizes gonum cannot lay out.
func (cfg *Config) validate() error {
	if !(cfg.Width > 0) || !(cfg.Height > 0) {
		return fmt.Errorf("%v x %v: %w", cfg.Width, cfg.Height, charterrors.ErrBadSize)
	}
	return nil
}

const DefaultTitle = "konstitucija.txt hashing time (5 run average)"

// DefaultConfig returns default chart configuration for a results variant.
// Only the multi series variant gets a legend title.
func DefaultConfig(f results.Format) *Config {
	cfg := &Config{
		Title:  DefaultTitle,
		XLabel: "line count",
		YLabel: "time in seconds",
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
	if f == results.WithHeaderMultiSeries {
		cfg.LegendTitle = "algorithm"
	}
	return cfg
}
