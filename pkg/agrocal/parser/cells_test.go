package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/xuri/excelize/v2"
)

// buildCalendarFile writes a small two-sheet calendar workbook and returns its bytes.
func buildCalendarFile(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Maize"
	if _, err := f.NewSheet(sheetName); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue(sheetName, "A1", "Activity")
	f.SetCellValue(sheetName, "B1", "Week 1")
	f.SetCellValue(sheetName, "C1", "Week 2")
	f.SetCellValue(sheetName, "D1", "Week 3")
	f.SetCellValue(sheetName, "A2", "Planting")
	f.SetCellValue(sheetName, "C2", "x")
	f.SetCellValue(sheetName, "A3", 100)
	f.SetCellValue(sheetName, "B3", 200.5)

	green, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00B050"}, Pattern: 1},
	})
	if err != nil {
		t.Fatalf("Failed to create fill style: %v", err)
	}
	blueText, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0070C0"},
	})
	if err != nil {
		t.Fatalf("Failed to create font style: %v", err)
	}
	f.SetCellStyle(sheetName, "B2", "B2", green)
	f.SetCellStyle(sheetName, "C2", "C2", blueText)

	merged := "Merged"
	if _, err := f.NewSheet(merged); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue(merged, "A1", "Activity")
	f.SetCellValue(merged, "B1", "January")
	f.SetCellValue(merged, "A2", "Weeding")
	f.SetCellValue(merged, "A12", "Notes")
	f.SetCellValue(merged, "B12", "kept")
	if err := f.MergeCell(merged, "B1", "D1"); err != nil {
		t.Fatalf("Failed to merge header: %v", err)
	}
	if err := f.MergeCell(merged, "B12", "C12"); err != nil {
		t.Fatalf("Failed to merge body: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "calendar.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}
	return data
}

func sheetByName(wb *models.Workbook, name string) *models.Sheet {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i]
		}
	}
	return nil
}

func TestDecodeWorkbook(t *testing.T) {
	wb, err := DecodeWorkbook("calendar.xlsx", buildCalendarFile(t), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("DecodeWorkbook failed: %v", err)
	}

	if wb.BookName != "calendar.xlsx" {
		t.Errorf("Expected book name calendar.xlsx, got %q", wb.BookName)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("Expected 2 decoded sheets, got %d", len(wb.Sheets))
	}
	if !strings.Contains(wb.Skipped["Sheet1"], ErrEmptySheet.Error()) {
		t.Errorf("Expected Sheet1 skipped as empty, got %q", wb.Skipped["Sheet1"])
	}

	sheet := sheetByName(wb, "Maize")
	if sheet == nil {
		t.Fatal("Maize sheet missing")
	}
	grid := sheet.Grid
	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}
	for r, row := range grid {
		if len(row) != 4 {
			t.Errorf("Row %d: expected padded width 4, got %d", r, len(row))
		}
	}

	if grid[0][0].Value != "Activity" {
		t.Errorf("Expected 'Activity', got %v", grid[0][0].Value)
	}
	if grid[2][0].Value != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", grid[2][0].Value, grid[2][0].Value)
	}
	if grid[2][1].Value != 200.5 {
		t.Errorf("Expected 200.5, got %v", grid[2][1].Value)
	}

	fill := grid[1][1].Fill
	if fill == nil || fill.Pattern != "solid" || fill.Foreground == nil {
		t.Fatalf("Expected solid fill on B2, got %+v", fill)
	}
	if !strings.EqualFold(fill.Foreground.RGB, "FF00B050") {
		t.Errorf("Expected FF00B050 foreground, got %q", fill.Foreground.RGB)
	}

	font := grid[1][2].Fill
	if font == nil || !font.HasFontColor() {
		t.Fatalf("Expected font colour on C2, got %+v", font)
	}
	if font.HasPattern() {
		t.Errorf("Font-only style should not carry a pattern, got %q", font.Pattern)
	}
	if !strings.EqualFold(font.FontColor.RGB, "FF0070C0") {
		t.Errorf("Expected FF0070C0 font colour, got %q", font.FontColor.RGB)
	}

	if grid[1][3].Fill != nil {
		t.Errorf("Expected unformatted D2, got %+v", grid[1][3].Fill)
	}

	if len(wb.Theme) != 12 {
		t.Errorf("Expected 12 theme colours, got %d", len(wb.Theme))
	}
}

func TestDecodeWorkbookMergedHeaders(t *testing.T) {
	wb, err := DecodeWorkbook("calendar.xlsx", buildCalendarFile(t), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("DecodeWorkbook failed: %v", err)
	}
	sheet := sheetByName(wb, "Merged")
	if sheet == nil {
		t.Fatal("Merged sheet missing")
	}
	grid := sheet.Grid

	for col := 1; col <= 3; col++ {
		if got := grid.Text(0, col); got != "January" {
			t.Errorf("Header col %d: expected January, got %q", col, got)
		}
	}
	if got := grid.Text(11, 2); got != "" {
		t.Errorf("Merges below the header rows must not propagate, got %q", got)
	}
	if got := grid.Text(1, 0); got != "Weeding" {
		t.Errorf("Expected Weeding, got %q", got)
	}
}

func TestDecodeWorkbookInvalid(t *testing.T) {
	_, err := DecodeWorkbook("broken.xlsx", []byte("not a zip archive"), DefaultDecodeOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestPropagateMerges(t *testing.T) {
	grid := models.Grid{
		{models.TextCell("Activity"), models.TextCell("Feb")},
		{models.TextCell("Weeding")},
	}
	merges := []mergeRange{
		{startRow: 0, startCol: 1, endRow: 0, endCol: 3},
		{startRow: 1, startCol: 0, endRow: 1, endCol: 0},
	}

	grid = propagateMerges(grid, merges, 10)

	if grid.Width() != 4 {
		t.Fatalf("Expected width 4, got %d", grid.Width())
	}
	if len(grid[1]) != 4 {
		t.Errorf("Expected padded second row, got %d", len(grid[1]))
	}
	if grid.Text(0, 3) != "Feb" {
		t.Errorf("Expected Feb at col 3, got %q", grid.Text(0, 3))
	}

	limited := propagateMerges(models.Grid{{models.TextCell("x"), models.TextCell("Mar")}}, merges[:1], 0)
	if limited.Text(0, 2) != "" {
		t.Errorf("Expected no propagation with zero header rows, got %q", limited.Text(0, 2))
	}
}

func TestFindDataBounds(t *testing.T) {
	minRow, maxRow, minCol, maxCol := findDataBounds([][]string{{}, {"", "a"}, {"", "", "b"}, {}})
	if minRow != 1 || maxRow != 2 || minCol != 1 || maxCol != 2 {
		t.Errorf("Unexpected bounds (%d,%d,%d,%d)", minRow, maxRow, minCol, maxCol)
	}

	minRow, _, _, _ = findDataBounds([][]string{{"", ""}})
	if minRow != -1 {
		t.Errorf("Expected -1 for empty rows, got %d", minRow)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
