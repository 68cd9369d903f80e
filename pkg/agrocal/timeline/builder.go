package timeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// ErrNoHeader indicates that no month, week or date header row was found.
var ErrNoHeader = errors.New("no month, week or date header row found")

// Builder locates header rows and reconstructs the timeline.
type Builder struct {
	// ScanRows bounds how many leading rows are searched for headers.
	ScanRows int
	// MinMatches is the number of matching cells that qualifies a header row.
	MinMatches int
}

// NewBuilder returns a builder with default limits.
func NewBuilder() *Builder {
	return &Builder{ScanRows: 10, MinMatches: 3}
}

type rowEvidence struct {
	months, weeks, numberedWeeks, ranges, days int
	// distinctDays counts different bare day numbers.
	distinctDays int
	// labelled is set when text other than a caption precedes the first
	// day cell, as on an activity row marked with numbers.
	labelled bool
}

// Build reconstructs the timeline of a worksheet.
func (b *Builder) Build(grid models.Grid) (*models.Timeline, error) {
	headers := b.locateHeaders(grid)
	if headers.First() < 0 {
		return nil, ErrNoHeader
	}

	start, end := timelineSpan(grid, headers)
	if start < 0 {
		return nil, ErrNoHeader
	}

	tl := &models.Timeline{
		StartColumn: start,
		Headers:     headers,
	}
	if headers.Week >= 0 {
		tl.RelativeWeeks = b.countRow(grid, headers.Week).numberedWeeks >= b.MinMatches
	}

	var (
		currentMonth string
		group        *models.MonthGroup
		weekInMonth  int
	)
	closeGroup := func() {
		if group != nil {
			group.PeriodCount = len(tl.Periods) - group.StartPeriodIndex
			if group.PeriodCount > 0 {
				tl.Months = append(tl.Months, *group)
			}
			group = nil
		}
	}

	for col := start; col <= end; col++ {
		if headers.Month >= 0 {
			if m, _, ok := SplitMonth(grid.Text(headers.Month, col)); ok && !strings.EqualFold(m, currentMonth) {
				closeGroup()
				currentMonth = m
				group = &models.MonthGroup{Name: m, StartPeriodIndex: len(tl.Periods)}
				weekInMonth = 0
			}
		}
		weekInMonth++

		p := models.Period{
			Index:        len(tl.Periods),
			MonthLabel:   currentMonth,
			SourceColumn: col,
		}
		if headers.Date >= 0 {
			if d := grid.Text(headers.Date, col); IsDayRange(d) {
				p.DateRange = d
			}
		}
		if headers.Week >= 0 {
			w := grid.Text(headers.Week, col)
			if _, rest, ok := SplitMonth(w); ok && headers.Week == headers.Month {
				w = rest
			}
			p.WeekLabel = w
		}
		if p.WeekLabel == "" {
			p.WeekLabel = p.DateRange
		}
		if p.WeekLabel == "" {
			n := len(tl.Periods) + 1
			if currentMonth != "" {
				n = weekInMonth
			}
			p.WeekLabel = fmt.Sprintf("WK%d", n)
		}
		tl.Periods = append(tl.Periods, p)
	}
	closeGroup()

	return tl, nil
}

// locateHeaders finds the month, week and date rows independently.
func (b *Builder) locateHeaders(grid models.Grid) models.HeaderRows {
	h := models.HeaderRows{Month: -1, Week: -1, Date: -1}
	scan := b.ScanRows
	if scan > len(grid) {
		scan = len(grid)
	}

	evidence := make([]rowEvidence, scan)
	for r := 0; r < scan; r++ {
		evidence[r] = b.countRow(grid, r)
		if h.Month < 0 && evidence[r].months >= b.MinMatches {
			h.Month = r
		}
		if h.Week < 0 && evidence[r].weeks >= b.MinMatches {
			h.Week = r
		}
	}

	for r := 0; r < scan; r++ {
		if r == h.Month || !nextToHeader(r, h) {
			continue
		}
		e := evidence[r]
		if e.labelled {
			continue
		}
		// Bare day numbers only mean dates under a month header.
		if e.ranges >= b.MinMatches || (h.Month >= 0 && (e.days == 0 || e.distinctDays > 1) && e.ranges+e.days >= b.MinMatches) {
			h.Date = r
			break
		}
	}
	return h
}

// nextToHeader reports whether row r may hold dates: directly above or below
// the month or week row, or anywhere when neither exists.
func nextToHeader(r int, h models.HeaderRows) bool {
	if h.Month < 0 && h.Week < 0 {
		return true
	}
	for _, hr := range []int{h.Month, h.Week} {
		if hr >= 0 && (r == hr-1 || r == hr+1) {
			return true
		}
	}
	return false
}

// countRow tallies header evidence. A combined cell such as "Jan Wk1" counts
// as both month and week evidence.
func (b *Builder) countRow(grid models.Grid, r int) rowEvidence {
	var e rowEvidence
	if r < 0 || r >= len(grid) {
		return e
	}
	seen := make(map[string]bool)
	for c := range grid[r] {
		text := grid.Text(r, c)
		if text == "" {
			continue
		}
		_, _, month := SplitMonth(text)
		if month {
			e.months++
		}
		week := IsWeek(text)
		if week {
			e.weeks++
			if IsNumberedWeek(text) {
				e.numberedWeeks++
			}
		}
		switch {
		case month || week:
		case dayRangeRe.MatchString(text):
			e.ranges++
		case IsDayRange(text):
			e.days++
			if !seen[text] {
				seen[text] = true
				e.distinctDays++
			}
		case e.ranges+e.days == 0 && !dateCaptionRe.MatchString(text):
			e.labelled = true
		}
	}
	return e
}

// timelineSpan returns the first and last timeline columns. Month and week
// indicators fix the start (a date row only when neither exists); the end is
// the last indicator of any header row.
func timelineSpan(grid models.Grid, h models.HeaderRows) (start, end int) {
	start, end = -1, -1
	scan := func(row int, match func(string) bool, widenStart bool) {
		if row < 0 || row >= len(grid) {
			return
		}
		for c := range grid[row] {
			if !match(grid.Text(row, c)) {
				continue
			}
			if widenStart && (start < 0 || c < start) {
				start = c
			}
			if c > end {
				end = c
			}
		}
	}
	scan(h.Month, func(text string) bool {
		_, _, ok := SplitMonth(text)
		return ok
	}, true)
	scan(h.Week, IsWeek, true)
	scan(h.Date, IsDayRange, start < 0)
	if start < 0 || end < start {
		return -1, -1
	}
	return start, end
}
