package models

// Sheet is one decoded worksheet handed to the engine.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Grid holds the worksheet cells.
	Grid Grid `json:"grid"`
}

// Workbook is the decoded workbook produced by the parser.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists worksheets in workbook order.
	Sheets []Sheet `json:"sheets"`
	// Theme holds workbook theme colours in theme-index order, empty when absent.
	Theme []string `json:"theme,omitempty"`
	// IndexedColors is the workbook's custom indexed palette, empty when absent.
	IndexedColors []string `json:"indexed_colors,omitempty"`
	// Skipped maps sheet name to the reason it could not be decoded.
	Skipped map[string]string `json:"skipped,omitempty"`
}
