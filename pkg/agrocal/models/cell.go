// Package models defines data structures for agricultural calendar extraction.
package models

import (
	"strconv"
	"strings"
)

// ColorRef is a raw spreadsheet colour reference as stored in the workbook.
// At most one of RGB, Indexed or Theme is normally set.
type ColorRef struct {
	// RGB is a 6 or 8 digit hex value (RRGGBB or AARRGGBB).
	RGB string `json:"rgb,omitempty"`
	// Indexed is a legacy palette slot (0-127).
	Indexed *int `json:"indexed,omitempty"`
	// Theme is a theme colour slot (0-11).
	Theme *int `json:"theme,omitempty"`
	// Tint lightens (>0) or darkens (<0) a theme colour, in [-1, 1].
	Tint float64 `json:"tint,omitempty"`
}

// IsZero reports whether the reference carries no colour information.
func (c *ColorRef) IsZero() bool {
	return c == nil || (c.RGB == "" && c.Indexed == nil && c.Theme == nil)
}

// FillKind names the variant of a FillStyle.
type FillKind string

const (
	// FillNone means the fill carries nothing usable.
	FillNone FillKind = "none"
	// FillDirect is a direct RGB/ARGB colour.
	FillDirect FillKind = "direct"
	// FillIndexed is a legacy indexed palette colour.
	FillIndexed FillKind = "indexed"
	// FillThemed is a theme colour with optional tint.
	FillThemed FillKind = "themed"
	// FillPatternOnly is a fill with a pattern but no extractable colour.
	FillPatternOnly FillKind = "pattern"
)

// PatternNone is the OOXML pattern type of an unfilled cell.
const PatternNone = "none"

// FillStyle is the background formatting attached to a cell.
type FillStyle struct {
	// Pattern is the OOXML pattern type ("solid", "gray125", "gradient", ...).
	Pattern string `json:"pattern,omitempty"`
	// Foreground is the pattern foreground colour (the visible colour of solid fills).
	Foreground *ColorRef `json:"fg,omitempty"`
	// Background is the pattern background colour.
	Background *ColorRef `json:"bg,omitempty"`
	// FontColor is a non-default font colour applied to the cell, if any.
	FontColor *ColorRef `json:"font,omitempty"`
}

// DirectFill returns a solid fill with a direct hex colour.
func DirectFill(hex string) *FillStyle {
	return &FillStyle{Pattern: "solid", Foreground: &ColorRef{RGB: hex}}
}

// IndexedFill returns a solid fill with an indexed palette colour.
func IndexedFill(idx int) *FillStyle {
	return &FillStyle{Pattern: "solid", Foreground: &ColorRef{Indexed: &idx}}
}

// ThemedFill returns a solid fill with a theme colour and tint.
func ThemedFill(theme int, tint float64) *FillStyle {
	return &FillStyle{Pattern: "solid", Foreground: &ColorRef{Theme: &theme, Tint: tint}}
}

// PatternOnlyFill returns a fill that has a pattern but no colour.
func PatternOnlyFill(pattern string) *FillStyle {
	return &FillStyle{Pattern: pattern}
}

// HasPattern reports whether a visible pattern was applied.
func (f *FillStyle) HasPattern() bool {
	return f != nil && f.Pattern != "" && f.Pattern != PatternNone
}

// HasFontColor reports whether a non-default font colour was applied.
func (f *FillStyle) HasFontColor() bool {
	return f != nil && !f.FontColor.IsZero()
}

// Kind classifies the fill by the first colour-bearing field found.
func (f *FillStyle) Kind() FillKind {
	if f == nil {
		return FillNone
	}
	for _, ref := range []*ColorRef{f.Foreground, f.Background} {
		switch {
		case ref == nil:
		case ref.RGB != "":
			return FillDirect
		case ref.Indexed != nil:
			return FillIndexed
		case ref.Theme != nil:
			return FillThemed
		}
	}
	if f.HasPattern() {
		return FillPatternOnly
	}
	return FillNone
}

// Cell is a single immutable spreadsheet cell.
type Cell struct {
	// Value is nil, a string, an int64 or a float64.
	Value interface{} `json:"v,omitempty"`
	// Fill is the cell's formatting, nil when the cell is unstyled.
	Fill *FillStyle `json:"fill,omitempty"`
}

// TextCell is a convenience constructor for a plain text cell.
func TextCell(s string) Cell {
	return Cell{Value: s}
}

// Text returns the cell value rendered as trimmed text.
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// IsBlank reports whether the cell has no content and no formatting.
func (c Cell) IsBlank() bool {
	return c.Text() == "" && c.Fill == nil
}

// Grid is a row-major, possibly ragged, 2-D array of cells.
type Grid [][]Cell

// At returns the cell at (row, col), or an empty cell when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Cell{}
	}
	return g[row][col]
}

// Text returns the trimmed text at (row, col).
func (g Grid) Text(row, col int) string {
	return g.At(row, col).Text()
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
