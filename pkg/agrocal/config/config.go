// Package config loads agrocal configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samankwah/agrocal-go/pkg/agrocal/color"
)

// Config holds all agrocal configuration.
type Config struct {
	// Timeline header detection
	Timeline TimelineConfig `yaml:"timeline"`

	// Colour resolution tables
	Colors ColorConfig `yaml:"colors"`

	// Per-parse diagnostics
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Parallelism bounds concurrent worksheet parses.
	Parallelism int `yaml:"parallelism"`
}

// TimelineConfig configures header row detection.
type TimelineConfig struct {
	HeaderScanRows   int `yaml:"header_scan_rows"`
	MinHeaderMatches int `yaml:"min_header_matches"`
}

// KeywordColor maps activity-name keywords to a colour.
type KeywordColor struct {
	Keywords []string `yaml:"keywords"`
	Ordinal  int      `yaml:"ordinal"`
	Color    string   `yaml:"color"`
}

// ColorConfig configures palettes and fallback colours.
type ColorConfig struct {
	CustomPalette map[int]string `yaml:"custom_palette"`
	KeywordColors []KeywordColor `yaml:"keyword_colors"`
	Neutral       string         `yaml:"neutral"`
}

// DiagnosticsConfig bounds verbose per-cell tracing.
type DiagnosticsConfig struct {
	MaxCellTraces int `yaml:"max_cell_traces"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			HeaderScanRows:   10,
			MinHeaderMatches: 3,
		},
		Colors: ColorConfig{
			Neutral: color.NeutralGray,
		},
		Diagnostics: DiagnosticsConfig{
			MaxCellTraces: 25,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Parallelism: 4,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Timeline.HeaderScanRows <= 0 {
		errs = append(errs, errors.New("timeline.header_scan_rows must be positive"))
	}
	if c.Timeline.MinHeaderMatches <= 0 {
		errs = append(errs, errors.New("timeline.min_header_matches must be positive"))
	}
	if c.Parallelism <= 0 {
		errs = append(errs, errors.New("parallelism must be positive"))
	}
	if c.Diagnostics.MaxCellTraces < 0 {
		errs = append(errs, errors.New("diagnostics.max_cell_traces must not be negative"))
	}
	if c.Colors.Neutral != "" {
		if _, ok := color.Normalize(c.Colors.Neutral); !ok {
			errs = append(errs, fmt.Errorf("colors.neutral: invalid colour %q", c.Colors.Neutral))
		}
	}
	for idx, hex := range c.Colors.CustomPalette {
		if idx < 0 || idx > 127 {
			errs = append(errs, fmt.Errorf("colors.custom_palette: index %d out of range", idx))
		}
		if _, ok := color.Normalize(hex); !ok {
			errs = append(errs, fmt.Errorf("colors.custom_palette[%d]: invalid colour %q", idx, hex))
		}
	}
	for i, kc := range c.Colors.KeywordColors {
		if len(kc.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("colors.keyword_colors[%d]: no keywords", i))
		}
		if _, ok := color.Normalize(kc.Color); !ok {
			errs = append(errs, fmt.Errorf("colors.keyword_colors[%d]: invalid colour %q", i, kc.Color))
		}
	}
	return errors.Join(errs...)
}

// Palette builds the colour palette described by the configuration, layered
// over an optional workbook-provided theme and indexed palette.
func (c *Config) Palette(theme, indexed []string) *color.Palette {
	return color.NewPalette(
		color.WithIndexedColors(indexed),
		color.WithCustomIndexed(c.Colors.CustomPalette),
		color.WithTheme(theme),
		color.WithNeutral(c.Colors.Neutral),
	)
}

// Keywords builds the activity-name colour table.
func (c *Config) Keywords() *color.KeywordTable {
	rules := make([]color.KeywordRule, 0, len(c.Colors.KeywordColors))
	for _, kc := range c.Colors.KeywordColors {
		kws := make([]string, 0, len(kc.Keywords))
		for _, k := range kc.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		rules = append(rules, color.KeywordRule{Keywords: kws, Ordinal: kc.Ordinal, Color: kc.Color})
	}
	return color.DefaultKeywordTable().Prepend(rules...)
}
