// Package agrocal reconstructs agricultural calendars from spreadsheet grids.
package agrocal

import (
	"go.uber.org/zap"

	"github.com/samankwah/agrocal-go/pkg/agrocal/config"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight builds timelines, activities and schedules only (no colour statistics).
	ModeLight Mode = "light"
	// ModeStandard adds colour statistics to every document.
	ModeStandard Mode = "standard"
	// ModeVerbose adds colour statistics and bounded per-cell colour traces in the log.
	ModeVerbose Mode = "verbose"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeStandard, ModeVerbose:
		return true
	}
	return false
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// Logger receives structured diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
	// Config holds detection limits and colour tables. If nil, config.Default() is used.
	Config *config.Config
	// Hint is a file name or title used as classification evidence.
	Hint string
	// Theme and IndexedColors carry workbook palettes from the decoder.
	Theme         []string
	IndexedColors []string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeStatistics returns whether to compute colour statistics.
func (o Options) ShouldIncludeStatistics() bool {
	return o.Mode != ModeLight
}

// ShouldTraceCells returns whether per-cell colour decisions are logged.
func (o Options) ShouldTraceCells() bool {
	return o.Mode == ModeVerbose
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}
