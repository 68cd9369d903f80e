package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

func textRow(values ...string) []models.Cell {
	row := make([]models.Cell, len(values))
	for i, v := range values {
		if v != "" {
			row[i] = models.TextCell(v)
		}
	}
	return row
}

func assertMonotonic(t *testing.T, tl *models.Timeline) {
	t.Helper()
	for i, p := range tl.Periods {
		assert.Equal(t, i, p.Index)
		if i > 0 {
			assert.Greater(t, p.SourceColumn, tl.Periods[i-1].SourceColumn)
		}
	}
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		text                  string
		month, week, numbered bool
		dayRange              bool
	}{
		{"JAN", true, false, false, false},
		{"January 2024", true, false, false, false},
		{"Sept.", true, false, false, false},
		{"Marketing", false, false, false, false},
		{"WK1", false, true, true, false},
		{"Week 3", false, true, true, false},
		{"2nd week", false, true, true, false},
		{"Weeks", false, true, false, false},
		{"Weeding", false, false, false, false},
		{"01-07", false, false, false, true},
		{"15", false, false, false, true},
		{"45", false, false, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.month, IsMonth(tt.text), "IsMonth(%q)", tt.text)
		assert.Equal(t, tt.week, IsWeek(tt.text), "IsWeek(%q)", tt.text)
		assert.Equal(t, tt.numbered, IsNumberedWeek(tt.text), "IsNumberedWeek(%q)", tt.text)
		assert.Equal(t, tt.dayRange, IsDayRange(tt.text), "IsDayRange(%q)", tt.text)
	}
}

func TestBuildSeasonal(t *testing.T) {
	grid := models.Grid{
		textRow("", "JAN", "JAN", "FEB", "FEB"),
		textRow("", "WK1", "WK2", "WK1", "WK2"),
		textRow("Land Preparation", "", "", "", ""),
	}

	tl, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	require.Len(t, tl.Periods, 4)
	assert.Equal(t, 1, tl.StartColumn)
	assert.Equal(t, models.HeaderRows{Month: 0, Week: 1, Date: -1}, tl.Headers)
	assert.Equal(t, []models.MonthGroup{
		{Name: "JAN", StartPeriodIndex: 0, PeriodCount: 2},
		{Name: "FEB", StartPeriodIndex: 2, PeriodCount: 2},
	}, tl.Months)
	assert.Equal(t, "WK2", tl.Periods[3].WeekLabel)
	assert.Equal(t, "FEB", tl.Periods[3].MonthLabel)
	assertMonotonic(t, tl)
}

func TestBuildSparseMonthsAndDates(t *testing.T) {
	grid := models.Grid{
		textRow("MAIZE CALENDAR"),
		textRow("Activity", "March", "", "", "April", "", "", "May", "", ""),
		textRow("", "01-10", "11-20", "21-31", "01-10", "11-20", "21-30", "01-10", "11-20", "21-31"),
		textRow("Planting", "", "", "", "", "", "", "", "", ""),
	}

	tl, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	require.Len(t, tl.Periods, 9)
	assert.Equal(t, 1, tl.Headers.Month)
	assert.Equal(t, 2, tl.Headers.Date)
	assert.Equal(t, -1, tl.Headers.Week)
	assert.True(t, tl.HasMonths())
	assert.True(t, tl.HasDates())
	assert.False(t, tl.RelativeWeeks)

	require.Len(t, tl.Months, 3)
	assert.Equal(t, models.MonthGroup{Name: "May", StartPeriodIndex: 6, PeriodCount: 3}, tl.Months[2])

	p := tl.Periods[4]
	assert.Equal(t, "April", p.MonthLabel)
	assert.Equal(t, "11-20", p.DateRange)
	assert.Equal(t, "11-20", p.WeekLabel)
	assertMonotonic(t, tl)
}

func TestBuildCycleWithoutMonths(t *testing.T) {
	grid := models.Grid{
		textRow("Activity", "Week 1", "Week 2", "Week 3"),
		textRow("Brooding", "x", "x", ""),
	}

	tl, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	require.Len(t, tl.Periods, 3)
	assert.False(t, tl.HasMonths())
	assert.True(t, tl.RelativeWeeks)
	assert.Empty(t, tl.Months)
	for _, p := range tl.Periods {
		assert.Empty(t, p.MonthLabel)
	}
	assert.Equal(t, "Week 2", tl.Periods[1].WeekLabel)
}

func TestBuildSynthesizesMissingWeekLabels(t *testing.T) {
	grid := models.Grid{
		textRow("", "JAN", "", "", "FEB", "", "MAR"),
		textRow("", "WK1", "", "WK3", "", "", "WK1"),
	}

	tl, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	require.Len(t, tl.Periods, 6)
	assert.Equal(t, "WK2", tl.Periods[1].WeekLabel)
	assert.Equal(t, "WK1", tl.Periods[3].WeekLabel)
	assert.Equal(t, "WK2", tl.Periods[4].WeekLabel)
	assert.Equal(t, "JAN", tl.Periods[2].MonthLabel)
	assertMonotonic(t, tl)
}

func TestBuildIgnoresBareDaysWithoutMonths(t *testing.T) {
	grid := models.Grid{
		textRow("S/N", "1", "2", "3", "4"),
		textRow("1", "Land clearing", "", "", ""),
	}

	_, err := NewBuilder().Build(grid)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestBuildNoHeader(t *testing.T) {
	grid := models.Grid{
		textRow("Name", "Qty", "Price"),
		textRow("Seed", "2", "10"),
	}

	_, err := NewBuilder().Build(grid)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = NewBuilder().Build(nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestBuildRespectsScanLimit(t *testing.T) {
	grid := models.Grid{textRow("title")}
	for i := 0; i < 4; i++ {
		grid = append(grid, textRow(""))
	}
	grid = append(grid, textRow("", "WK1", "WK2", "WK3"))

	b := &Builder{ScanRows: 3, MinMatches: 3}
	_, err := b.Build(grid)
	assert.ErrorIs(t, err, ErrNoHeader)

	b.ScanRows = 10
	tl, err := b.Build(grid)
	require.NoError(t, err)
	assert.Equal(t, 5, tl.Headers.Week)
}

func TestSplitMonth(t *testing.T) {
	tests := []struct {
		text, month, rest string
		ok                bool
	}{
		{"JAN", "JAN", "", true},
		{"Jan Wk1", "Jan", "Wk1", true},
		{"Sept. Week 2", "Sept", "Week 2", true},
		{"Mar 01-07", "Mar", "01-07", true},
		{"March planting", "", "", false},
		{"Marketing", "", "", false},
		{"Wk1", "", "", false},
	}

	for _, tt := range tests {
		month, rest, ok := SplitMonth(tt.text)
		assert.Equal(t, tt.ok, ok, "SplitMonth(%q)", tt.text)
		assert.Equal(t, tt.month, month, "SplitMonth(%q) month", tt.text)
		assert.Equal(t, tt.rest, rest, "SplitMonth(%q) rest", tt.text)
	}
}

func TestBuildDateRowSelection(t *testing.T) {
	tests := []struct {
		name    string
		grid    models.Grid
		headers models.HeaderRows
	}{
		{
			name: "activity row marked with ones",
			grid: models.Grid{
				textRow("", "JAN", "JAN", "FEB", "FEB"),
				textRow("", "WK1", "WK2", "WK1", "WK2"),
				textRow("Land Preparation", "1", "1", "1", ""),
				textRow("Planting", "", "", "1", "1"),
			},
			headers: models.HeaderRows{Month: 0, Week: 1, Date: -1},
		},
		{
			name: "unlabelled repeated markers",
			grid: models.Grid{
				textRow("", "JAN", "JAN", "FEB", "FEB"),
				textRow("", "1", "1", "1", ""),
			},
			headers: models.HeaderRows{Month: 0, Week: -1, Date: -1},
		},
		{
			name: "captioned day numbers",
			grid: models.Grid{
				textRow("", "JAN", "JAN", "FEB", "FEB"),
				textRow("Days", "1", "15", "1", "15"),
				textRow("Planting", "", "", "", ""),
			},
			headers: models.HeaderRows{Month: 0, Week: -1, Date: 1},
		},
		{
			name: "ranges away from the header",
			grid: models.Grid{
				textRow("", "JAN", "JAN", "FEB", "FEB"),
				textRow("", "WK1", "WK2", "WK1", "WK2"),
				textRow("Planting", "", "", "", ""),
				textRow("", "01-07", "08-14", "01-07", "08-14"),
			},
			headers: models.HeaderRows{Month: 0, Week: 1, Date: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := NewBuilder().Build(tt.grid)
			require.NoError(t, err)
			assert.Equal(t, tt.headers, tl.Headers)
			require.Len(t, tl.Periods, 4)
			if tt.headers.Date < 0 {
				for _, p := range tl.Periods {
					assert.Empty(t, p.DateRange)
				}
			}
		})
	}
}

func TestBuildCombinedMonthWeekHeader(t *testing.T) {
	grid := models.Grid{
		textRow("Activity", "Jan Wk1", "Jan Wk2", "Feb Wk1", "Feb Wk2"),
		textRow("Land Preparation", "x", "x", "", ""),
	}

	tl, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	assert.Equal(t, models.HeaderRows{Month: 0, Week: 0, Date: -1}, tl.Headers)
	assert.Equal(t, 0, tl.Headers.Last())
	assert.True(t, tl.HasMonths())
	assert.Equal(t, []models.MonthGroup{
		{Name: "Jan", StartPeriodIndex: 0, PeriodCount: 2},
		{Name: "Feb", StartPeriodIndex: 2, PeriodCount: 2},
	}, tl.Months)
	require.Len(t, tl.Periods, 4)
	assert.Equal(t, "Wk1", tl.Periods[0].WeekLabel)
	assert.Equal(t, "Jan", tl.Periods[0].MonthLabel)
	assert.Equal(t, "Wk2", tl.Periods[3].WeekLabel)
	assert.Equal(t, "Feb", tl.Periods[3].MonthLabel)
	assertMonotonic(t, tl)
}
