// Package color resolves spreadsheet cell fills to canonical RGB colours.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Canonical colours used across the engine.
const (
	Red         = "#FF0000"
	White       = "#FFFFFF"
	NeutralGray = "#C0C0C0"
)

// Indexed palette layout.
const (
	SystemForeground = 64
	SystemBackground = 65
	// CustomRangeStart and CustomRangeEnd bound the slots reserved for
	// recurring agricultural colours.
	CustomRangeStart = 80
	CustomRangeEnd   = 95
	maxIndexed       = 127
)

// standardIndexed is the legacy 64 colour spreadsheet palette.
var standardIndexed = [...]string{
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"800000", "008000", "000080", "808000", "800080", "008080", "C0C0C0", "808080",
	"9999FF", "993366", "FFFFCC", "CCFFFF", "660066", "FF8080", "0066CC", "CCCCFF",
	"000080", "FF00FF", "FFFF00", "00FFFF", "800080", "800000", "008080", "0000FF",
	"00CCFF", "CCFFFF", "CCFFCC", "FFFF99", "99CCFF", "FF99CC", "CC99FF", "FFCC99",
	"3366FF", "33CCCC", "99CC00", "FFCC00", "FF9900", "FF6600", "666699", "969696",
	"003366", "339966", "003300", "333300", "993300", "993366", "333399", "333333",
}

// customIndexed holds the domain colours authors keep reusing across uploads.
var customIndexed = map[int]string{
	80: "0070C0", // site selection
	81: "FFC000", // land preparation
	82: "00B050", // planting / sowing
	83: "7030A0", // fertilizer application
	84: "FF0000", // weeding
	85: "FF4500", // pest and disease control
	86: "FFA500", // harvesting
	87: "A0522D", // post harvest
	88: "FFBF00", // brooding
	89: "00B0F0", // vaccination
	90: "92D050", // feeding
	91: "808080", // marketing
}

// defaultTheme is the default office theme in theme-index order.
var defaultTheme = [...]string{
	"FFFFFF", // lt1
	"000000", // dk1
	"E7E6E6", // lt2
	"44546A", // dk2
	"4472C4", // accent1
	"ED7D31", // accent2
	"A5A5A5", // accent3
	"FFC000", // accent4
	"5B9BD5", // accent5
	"70AD47", // accent6
	"0563C1", // hlink
	"954F72", // folHlink
}

// Palette maps indexed and theme references to RGB.
type Palette struct {
	indexed map[int]string
	theme   []string
	neutral string
}

// PaletteOption customises a Palette.
type PaletteOption func(*Palette)

// WithIndexedColors overrides slots 0..n-1 with a workbook's own palette.
func WithIndexedColors(colors []string) PaletteOption {
	return func(p *Palette) {
		for i, c := range colors {
			if hex, ok := Normalize(c); ok {
				p.indexed[i] = hex
			}
		}
	}
}

// WithCustomIndexed sets arbitrary palette slots, typically the custom range.
func WithCustomIndexed(colors map[int]string) PaletteOption {
	return func(p *Palette) {
		for i, c := range colors {
			if hex, ok := Normalize(c); ok && i >= 0 && i <= maxIndexed {
				p.indexed[i] = hex
			}
		}
	}
}

// WithTheme replaces the theme table; entries that fail to parse keep the default.
func WithTheme(colors []string) PaletteOption {
	return func(p *Palette) {
		for i, c := range colors {
			if i >= len(p.theme) {
				break
			}
			if hex, ok := Normalize(c); ok {
				p.theme[i] = hex
			}
		}
	}
}

// WithNeutral sets the placeholder gray.
func WithNeutral(hex string) PaletteOption {
	return func(p *Palette) {
		if n, ok := Normalize(hex); ok {
			p.neutral = n
		}
	}
}

// NewPalette builds the built-in palette and applies options in order.
func NewPalette(opts ...PaletteOption) *Palette {
	p := &Palette{
		indexed: make(map[int]string, len(standardIndexed)+len(customIndexed)),
		theme:   make([]string, len(defaultTheme)),
		neutral: NeutralGray,
	}
	for i, c := range standardIndexed {
		p.indexed[i] = "#" + c
	}
	for i, c := range customIndexed {
		p.indexed[i] = "#" + c
	}
	for i, c := range defaultTheme {
		p.theme[i] = "#" + c
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Neutral returns the placeholder gray.
func (p *Palette) Neutral() string {
	return p.neutral
}

// Indexed maps a palette slot to RGB. System colours yield false; unknown
// slots yield the neutral gray because a reference means a fill was applied.
func (p *Palette) Indexed(idx int) (string, bool) {
	if idx == SystemForeground || idx == SystemBackground || idx < 0 || idx > maxIndexed {
		return "", false
	}
	if c, ok := p.indexed[idx]; ok {
		return c, true
	}
	return p.neutral, true
}

// Theme maps a theme slot (0-11) to RGB.
func (p *Palette) Theme(id int) (string, bool) {
	if id < 0 || id >= len(p.theme) {
		return "", false
	}
	return p.theme[id], true
}

// Normalize canonicalises a 6 or 8 digit hex colour to "#RRGGBB", dropping
// any alpha prefix.
func Normalize(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", false
	}
	return "#" + s, true
}

// ApplyTint lightens (tint > 0) or darkens (tint < 0) each channel independently.
func ApplyTint(hex string, tint float64) string {
	r, g, b, ok := channels(hex)
	if !ok {
		return hex
	}
	if tint == 0 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	if tint > 1 {
		tint = 1
	}
	if tint < -1 {
		tint = -1
	}
	adjust := func(c int) int {
		v := float64(c)
		if tint > 0 {
			v += (255 - v) * tint
		} else {
			v *= 1 + tint
		}
		return clamp(int(math.Round(v)))
	}
	return fmt.Sprintf("#%02X%02X%02X", adjust(r), adjust(g), adjust(b))
}

func channels(hex string) (r, g, b int, ok bool) {
	n, ok := Normalize(hex)
	if !ok {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(n[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// IsWhite reports whether a colour is pure white.
func IsWhite(hex string) bool {
	n, ok := Normalize(hex)
	return ok && n == White
}
