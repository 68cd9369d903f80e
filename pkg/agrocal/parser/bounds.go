package parser

import (
	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/xuri/excelize/v2"
)

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// mergeRange is a merged cell area in 0-based grid coordinates.
type mergeRange struct {
	startRow, startCol int
	endRow, endCol     int
}

// sheetMerges lists the merged areas of a sheet. Malformed references are skipped.
func sheetMerges(f *excelize.File, sheetName string) ([]mergeRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var result []mergeRange
	for _, mc := range cells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		result = append(result, mergeRange{
			startRow: startRow - 1,
			startCol: startCol - 1,
			endRow:   endRow - 1,
			endCol:   endCol - 1,
		})
	}
	return result, nil
}

// propagateMerges copies the value of a merged area's top-left cell across
// the columns of its first row, for merges starting within the first
// headerRows rows. Sparse month labels spanning several week columns are
// stored only once in the file.
func propagateMerges(grid models.Grid, merges []mergeRange, headerRows int) models.Grid {
	for _, m := range merges {
		if m.startRow < 0 || m.startRow >= len(grid) || m.startRow >= headerRows || m.endCol <= m.startCol {
			continue
		}
		row := grid[m.startRow]
		if m.startCol >= len(row) || row[m.startCol].Text() == "" {
			continue
		}
		for len(row) <= m.endCol {
			row = append(row, models.Cell{})
		}
		for c := m.startCol + 1; c <= m.endCol; c++ {
			if row[c].Text() == "" {
				row[c].Value = row[m.startCol].Value
			}
		}
		grid[m.startRow] = row
	}
	return padRows(grid)
}

// padRows extends every row to the grid width.
func padRows(grid models.Grid) models.Grid {
	width := grid.Width()
	for i, row := range grid {
		for len(row) < width {
			row = append(row, models.Cell{})
		}
		grid[i] = row
	}
	return grid
}
