package agrocal

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/samankwah/agrocal-go/pkg/agrocal/classify"
	"github.com/samankwah/agrocal-go/pkg/agrocal/color"
	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/samankwah/agrocal-go/pkg/agrocal/schedule"
	"github.com/samankwah/agrocal-go/pkg/agrocal/timeline"
)

// Assemble builds the calendar document of one worksheet. It fails only when
// the sheet carries no data or no timeline header; skipped rows, ambiguous
// classification and unresolvable colours are absorbed by documented defaults.
//
// Assemble reads the grid and allocates only call-scoped state, so calls on
// different sheets may run concurrently.
func Assemble(sheet models.Sheet, opts Options) (*models.CalendarDocument, error) {
	cfg := opts.config()
	log := opts.logger().With(zap.String("sheet", sheet.Name))

	if len(sheet.Grid) == 0 {
		return nil, NewSheetError(sheet.Name, StageDecode, ErrEmptySheet)
	}

	builder := &timeline.Builder{
		ScanRows:   cfg.Timeline.HeaderScanRows,
		MinMatches: cfg.Timeline.MinHeaderMatches,
	}
	tl, err := builder.Build(sheet.Grid)
	if err != nil {
		return nil, NewSheetError(sheet.Name, StageTimeline, err)
	}
	log.Debug("timeline built",
		zap.Int("periods", len(tl.Periods)),
		zap.Int("months", len(tl.Months)),
		zap.Int("start_column", tl.StartColumn),
	)

	activities, skipped := classify.ExtractActivities(sheet.Grid, tl, sheet.Name)
	for _, s := range skipped {
		log.Debug("row skipped", zap.Int("row", s.Row), zap.String("label", s.Label))
	}

	hint := strings.TrimSpace(opts.Hint + " " + sheet.Name)
	cls := classify.ClassifyDocument(sheet.Grid, tl, hint)

	resolver := color.NewResolver(cfg.Palette(opts.Theme, opts.IndexedColors))
	mapperOpts := []schedule.Option{schedule.WithKeywords(cfg.Keywords())}
	var diag *Diagnostics
	if opts.ShouldTraceCells() {
		diag = NewDiagnostics(log, cfg.Diagnostics.MaxCellTraces)
		mapperOpts = append(mapperOpts, schedule.WithTracer(diag))
	}
	mapper := schedule.NewMapper(resolver, mapperOpts...)

	entries := make([]models.ScheduleEntry, 0, len(activities))
	for _, act := range activities {
		mapped, forced := mapper.MapActivity(sheet.Grid, act, tl)
		if forced {
			log.Debug("no active cell, using name colour on every period",
				zap.String("activity", act.Name),
				zap.Int("row", act.SourceRow),
			)
		}
		entries = append(entries, mapped...)
	}
	if diag != nil && diag.Dropped() > 0 {
		log.Debug("cell trace budget spent", zap.Int("traced", diag.Traced()), zap.Int("dropped", diag.Dropped()))
	}

	doc := &models.CalendarDocument{
		SheetName:    sheet.Name,
		CalendarType: cls.CalendarType,
		Commodity:    cls.Commodity,
		Title:        classify.DetectTitle(sheet.Grid, tl),
		Timeline:     *tl,
		Activities:   activities,
		Schedule:     entries,
	}
	if doc.Activities == nil {
		doc.Activities = []models.Activity{}
	}
	if opts.ShouldIncludeStatistics() {
		doc.Statistics = colorStatistics(activities, entries)
	}

	log.Info("sheet parsed",
		zap.String("calendar_type", string(doc.CalendarType)),
		zap.String("commodity", doc.Commodity),
		zap.Int("activities", len(activities)),
		zap.Int("skipped_rows", len(skipped)),
	)
	return doc, nil
}

// colorStatistics summarises colour detection quality. An activity counts as
// coloured when its first entry carries a detected, non-white colour.
func colorStatistics(activities []models.Activity, entries []models.ScheduleEntry) *models.ColorStatistics {
	stats := &models.ColorStatistics{
		TotalRecords: len(activities),
		UniqueColors: []string{},
	}

	first := make(map[string]models.ScheduleEntry, len(activities))
	unique := make(map[string]bool)
	periods := make(map[int]bool)
	for _, e := range entries {
		if _, ok := first[e.ActivityID]; !ok {
			first[e.ActivityID] = e
		}
		if !e.Active || e.Color == "" || color.IsWhite(e.Color) {
			continue
		}
		unique[e.Color] = true
		periods[e.PeriodIndex] = true
		if e.ColorSource == models.ColorDetected {
			stats.ColoredCells++
		}
	}

	for _, act := range activities {
		e, ok := first[act.ID]
		if ok && e.ColorSource == models.ColorDetected && !color.IsWhite(e.Color) {
			stats.RecordsWithColor++
		}
	}
	stats.RecordsWithoutColor = stats.TotalRecords - stats.RecordsWithColor
	if stats.TotalRecords > 0 {
		pct := float64(stats.RecordsWithColor) / float64(stats.TotalRecords) * 100
		stats.ColorPercentage = math.Round(pct*100) / 100
	}

	stats.PeriodsWithColor = len(periods)
	for c := range unique {
		stats.UniqueColors = append(stats.UniqueColors, c)
	}
	sort.Strings(stats.UniqueColors)
	return stats
}
