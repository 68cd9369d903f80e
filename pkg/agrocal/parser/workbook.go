// Package parser decodes .xlsx workbooks into cell grids with fill formatting.
package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidFormat indicates the input is not a readable xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptySheet indicates a worksheet without any non-empty cell.
var ErrEmptySheet = errors.New("empty sheet")

// DecodeOptions configures workbook decoding.
type DecodeOptions struct {
	// HeaderRows bounds merged-cell propagation to the top rows of a sheet.
	HeaderRows int
}

// DefaultDecodeOptions returns default decoding options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{HeaderRows: 10}
}

// DecodeWorkbook decodes an xlsx package. Worksheets that cannot be read are
// listed in Workbook.Skipped instead of failing the whole workbook.
func DecodeWorkbook(name string, data []byte, opts DecodeOptions) (*models.Workbook, error) {
	if opts.HeaderRows <= 0 {
		opts.HeaderRows = DefaultDecodeOptions().HeaderRows
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	stylesXML, err := readZipFile(zr, "xl/styles.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: styles: %v", ErrInvalidFormat, err)
	}
	themeXML, err := readZipFile(zr, "xl/theme/theme1.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: theme: %v", ErrInvalidFormat, err)
	}
	styles := parseStyleSheet(stylesXML)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb := &models.Workbook{
		BookName:      name,
		Theme:         parseTheme(themeXML),
		IndexedColors: styles.indexed,
	}
	for _, sheetName := range f.GetSheetList() {
		grid, err := decodeSheet(f, sheetName, styles, opts)
		if err != nil {
			if wb.Skipped == nil {
				wb.Skipped = make(map[string]string)
			}
			wb.Skipped[sheetName] = err.Error()
			continue
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Grid: grid})
	}

	return wb, nil
}

func decodeSheet(f *excelize.File, sheetName string, styles *styleSheet, opts DecodeOptions) (models.Grid, error) {
	grid, err := extractGrid(f, sheetName, styles)
	if err != nil {
		return nil, err
	}
	merges, err := sheetMerges(f, sheetName)
	if err != nil {
		return nil, err
	}
	return propagateMerges(grid, merges, opts.HeaderRows), nil
}
