package models

// CalendarType distinguishes absolute-date schedules from relative cycles.
type CalendarType string

const (
	// CalendarSeasonal is anchored to calendar months/dates (crops).
	CalendarSeasonal CalendarType = "seasonal"
	// CalendarCycle is anchored to relative production weeks (poultry).
	CalendarCycle CalendarType = "cycle"
)

// ColorSource records where a schedule entry's colour came from.
type ColorSource string

const (
	// ColorDetected is a colour resolved from the cell's own formatting.
	ColorDetected ColorSource = "detected"
	// ColorActivityFallback is a colour inferred from the activity name.
	ColorActivityFallback ColorSource = "activity_fallback"
	// ColorPatternFallback is a neutral placeholder for formatting without colour.
	ColorPatternFallback ColorSource = "pattern_fallback"
)

// Period is one column of the reconstructed timeline.
type Period struct {
	// Index is the 0-based position in the timeline.
	Index int `json:"index"`
	// WeekLabel is the header label of the column, synthesized when absent.
	WeekLabel string `json:"week_label"`
	// MonthLabel is the month the column belongs to, empty when unknown.
	MonthLabel string `json:"month_label,omitempty"`
	// DateRange is the day range text ("01-07"), empty when absent.
	DateRange string `json:"date_range,omitempty"`
	// SourceColumn is the 0-based spreadsheet column.
	SourceColumn int `json:"source_column"`
}

// MonthGroup is a run of consecutive periods under one month label.
type MonthGroup struct {
	Name             string `json:"name"`
	StartPeriodIndex int    `json:"start_period_index"`
	PeriodCount      int    `json:"period_count"`
}

// HeaderRows records which physical rows carried timeline headers (-1 if none).
type HeaderRows struct {
	Month int `json:"month"`
	Week  int `json:"week"`
	Date  int `json:"date"`
}

// Last returns the lowest header row found, or -1.
func (h HeaderRows) Last() int {
	last := -1
	for _, r := range []int{h.Month, h.Week, h.Date} {
		if r > last {
			last = r
		}
	}
	return last
}

// First returns the topmost header row found, or -1.
func (h HeaderRows) First() int {
	first := -1
	for _, r := range []int{h.Month, h.Week, h.Date} {
		if r >= 0 && (first < 0 || r < first) {
			first = r
		}
	}
	return first
}

// Timeline is the ordered sequence of periods of one worksheet.
type Timeline struct {
	// Periods are in temporal order; SourceColumn is strictly increasing.
	Periods []Period `json:"periods"`
	// Months groups periods by month label when month headers exist.
	Months []MonthGroup `json:"months,omitempty"`
	// StartColumn is the first timeline column.
	StartColumn int `json:"start_column"`
	// Headers records the physical header rows.
	Headers HeaderRows `json:"headers"`
	// RelativeWeeks is set when week headers carry numbered "week N" tokens.
	RelativeWeeks bool `json:"relative_weeks"`
}

// HasMonths reports whether a month header row was found.
func (t *Timeline) HasMonths() bool {
	return t.Headers.Month >= 0
}

// HasDates reports whether a day-range header row was found.
func (t *Timeline) HasDates() bool {
	return t.Headers.Date >= 0
}

// Activity is a schedulable row of the worksheet.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SourceRow int    `json:"source_row"`
}

// ScheduleEntry marks an activity as active in one period.
type ScheduleEntry struct {
	ActivityID  string      `json:"activity_id"`
	PeriodIndex int         `json:"period_index"`
	Active      bool        `json:"active"`
	Color       string      `json:"color,omitempty"`
	RawValue    string      `json:"raw_value,omitempty"`
	ColorSource ColorSource `json:"color_source"`
}

// ColorStatistics summarises colour detection for upload-quality feedback.
type ColorStatistics struct {
	// RecordsWithColor counts activities whose representative (first) entry
	// carries a non-white colour detected from cell formatting. Name-based and
	// placeholder fallback colours are not counted.
	RecordsWithColor int `json:"records_with_color"`
	// RecordsWithoutColor counts activities that relied on fallbacks.
	RecordsWithoutColor int `json:"records_without_color"`
	// TotalRecords is the number of activities.
	TotalRecords int `json:"total_records"`
	// ColorPercentage is RecordsWithColor / TotalRecords * 100.
	ColorPercentage float64 `json:"color_percentage"`
	// ColoredCells counts entries with a detected non-white colour.
	ColoredCells int `json:"colored_cells"`
	// PeriodsWithColor counts distinct periods carrying a non-white colour.
	PeriodsWithColor int `json:"periods_with_color"`
	// UniqueColors is the sorted set of non-white colours observed.
	UniqueColors []string `json:"unique_colors"`
}

// CalendarDocument is the normalized schedule of one worksheet.
type CalendarDocument struct {
	SheetName    string           `json:"sheet_name"`
	CalendarType CalendarType     `json:"calendar_type"`
	Commodity    string           `json:"commodity"`
	Title        string           `json:"title,omitempty"`
	Timeline     Timeline         `json:"timeline"`
	Activities   []Activity       `json:"activities"`
	Schedule     []ScheduleEntry  `json:"schedule"`
	Statistics   *ColorStatistics `json:"color_statistics,omitempty"`
}

// EntriesFor returns the schedule entries of one activity in period order.
func (d *CalendarDocument) EntriesFor(activityID string) []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range d.Schedule {
		if e.ActivityID == activityID {
			out = append(out, e)
		}
	}
	return out
}
