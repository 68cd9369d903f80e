package parser

import (
	"strconv"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/xuri/excelize/v2"
)

// extractGrid reads a worksheet into a rectangular grid of values and fills.
// Rows are padded to the widest row so that formatted blanks inside the
// timeline keep their column.
func extractGrid(f *excelize.File, sheetName string, styles *styleSheet) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, _, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrEmptySheet
	}

	width := 0
	for _, row := range rows[:maxRow+1] {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(models.Grid, maxRow+1)
	for rowIdx := range grid {
		var row []string
		if rowIdx < len(rows) {
			row = rows[rowIdx]
		}
		cells := make([]models.Cell, width)
		for colIdx := range cells {
			if colIdx < len(row) && row[colIdx] != "" {
				cells[colIdx].Value = parseValue(row[colIdx])
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if styleID, err := f.GetCellStyle(sheetName, cellName); err == nil {
				cells[colIdx].Fill = styles.fillFor(styleID)
			}
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
