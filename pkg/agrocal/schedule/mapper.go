// Package schedule maps activity rows onto timeline periods.
package schedule

import (
	"strconv"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/color"
	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// Tracer receives per-cell activation decisions. Implementations decide how
// much of it to keep.
type Tracer interface {
	TraceCell(activity models.Activity, period models.Period, cell models.Cell, entry models.ScheduleEntry)
}

// Mapper walks an activity row across the timeline and emits the active
// periods with their colours.
type Mapper struct {
	resolver *color.Resolver
	keywords *color.KeywordTable
	tracer   Tracer
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithKeywords replaces the activity-name colour table.
func WithKeywords(t *color.KeywordTable) Option {
	return func(m *Mapper) {
		if t != nil {
			m.keywords = t
		}
	}
}

// WithTracer installs a per-cell tracer.
func WithTracer(t Tracer) Option {
	return func(m *Mapper) {
		m.tracer = t
	}
}

// NewMapper returns a mapper; a nil resolver uses the default palette.
func NewMapper(resolver *color.Resolver, opts ...Option) *Mapper {
	if resolver == nil {
		resolver = color.NewResolver(nil)
	}
	m := &Mapper{
		resolver: resolver,
		keywords: color.DefaultKeywordTable(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MapActivity returns one entry per active period of the activity's row, in
// period order. When no cell of the row looks active, every period is
// activated with the name-based fallback colour and forced is true.
func (m *Mapper) MapActivity(grid models.Grid, act models.Activity, tl *models.Timeline) (entries []models.ScheduleEntry, forced bool) {
	for _, p := range tl.Periods {
		cell := grid.At(act.SourceRow, p.SourceColumn)
		entry, ok := m.mapCell(act, p, cell)
		if m.tracer != nil {
			m.tracer.TraceCell(act, p, cell, entry)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) > 0 || len(tl.Periods) == 0 {
		return entries, false
	}

	fallback, source := m.fallbackColor(act.Name)
	for _, p := range tl.Periods {
		entries = append(entries, models.ScheduleEntry{
			ActivityID:  act.ID,
			PeriodIndex: p.Index,
			Active:      true,
			Color:       fallback,
			RawValue:    grid.Text(act.SourceRow, p.SourceColumn),
			ColorSource: source,
		})
	}
	return entries, true
}

func (m *Mapper) mapCell(act models.Activity, p models.Period, cell models.Cell) (models.ScheduleEntry, bool) {
	entry := models.ScheduleEntry{
		ActivityID:  act.ID,
		PeriodIndex: p.Index,
		RawValue:    cell.Text(),
	}

	res, resolved := m.resolver.Resolve(cell)
	if resolved && res.Color == color.White {
		resolved = false
	}
	weak := !color.IsBackgroundFill(cell.Fill) && (cell.Fill.HasPattern() || cell.Fill.HasFontColor())

	if !hasContent(entry.RawValue) && !resolved && !weak {
		return entry, false
	}
	entry.Active = true

	switch {
	case resolved && res.Strategy != color.StrategyPattern:
		entry.Color, entry.ColorSource = res.Color, models.ColorDetected
	case resolved:
		entry.Color, entry.ColorSource = res.Color, models.ColorPatternFallback
	default:
		entry.Color, entry.ColorSource = m.fallbackColor(act.Name)
	}
	return entry, true
}

// fallbackColor infers a colour from the activity name, or the neutral
// placeholder when no keyword matches.
func (m *Mapper) fallbackColor(name string) (string, models.ColorSource) {
	if c, ok := m.keywords.Lookup(name); ok {
		return c, models.ColorActivityFallback
	}
	return m.resolver.Palette().Neutral(), models.ColorPatternFallback
}

// hasContent reports non-empty, non-zero cell text.
func hasContent(text string) bool {
	text = strings.TrimSpace(text)
	switch text {
	case "", "-", "–", "—":
		return false
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == 0 {
		return false
	}
	return true
}
