package classify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// activityNamespace seeds deterministic activity ids.
var activityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("agrocal-go/activity"))

// activityHeaders mark the activity-name column when found in a header row.
var activityHeaders = map[string]bool{
	"activity":           true,
	"activities":         true,
	"stage of activity":  true,
	"stages of activity": true,
	"farm operation":     true,
	"farm operations":    true,
	"operation":          true,
	"operations":         true,
	"task":               true,
	"tasks":              true,
}

// SkippedRow is a data row rejected by the activity predicate.
type SkippedRow struct {
	Row   int
	Label string
}

// ActivityID returns the deterministic id of an activity row.
func ActivityID(sheetName string, row int, name string) string {
	key := fmt.Sprintf("%s\x00%d\x00%s", sheetName, row, name)
	return uuid.NewSHA1(activityNamespace, []byte(key)).String()
}

// FindActivityColumn locates the activity-name column left of the timeline.
// It returns -1 when the timeline starts in the first column.
func FindActivityColumn(grid models.Grid, tl *models.Timeline) int {
	if tl.StartColumn <= 0 {
		return -1
	}

	for r := 0; r <= tl.Headers.Last() && r < len(grid); r++ {
		for c := 0; c < tl.StartColumn; c++ {
			if activityHeaders[normalizeToken(grid.Text(r, c))] {
				return c
			}
		}
	}

	best, bestScore := tl.StartColumn-1, 0
	for c := 0; c < tl.StartColumn; c++ {
		score := 0
		for r := tl.Headers.Last() + 1; r < len(grid); r++ {
			if IsActivityLabel(grid.Text(r, c)) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// ExtractActivities returns one activity per accepted data row, in row order,
// plus the non-empty rows that were rejected.
func ExtractActivities(grid models.Grid, tl *models.Timeline, sheetName string) ([]models.Activity, []SkippedRow) {
	col := FindActivityColumn(grid, tl)
	if col < 0 {
		return nil, nil
	}

	var (
		activities []models.Activity
		skipped    []SkippedRow
	)
	for r := tl.Headers.Last() + 1; r < len(grid); r++ {
		label := grid.Text(r, col)
		if !IsActivityLabel(label) {
			if label != "" {
				skipped = append(skipped, SkippedRow{Row: r, Label: label})
			}
			continue
		}
		activities = append(activities, models.Activity{
			ID:        ActivityID(sheetName, r, label),
			Name:      label,
			SourceRow: r,
		})
	}
	return activities, skipped
}

// DetectTitle returns the first text found above the header rows.
func DetectTitle(grid models.Grid, tl *models.Timeline) string {
	for r := 0; r < tl.Headers.First() && r < len(grid); r++ {
		for c := range grid[r] {
			if text := grid.Text(r, c); letterRe.MatchString(text) {
				return text
			}
		}
	}
	return ""
}
