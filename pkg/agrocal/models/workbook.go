package models

// WorkbookCalendar represents workbook-level container with per-sheet calendars.
type WorkbookCalendar struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its parsed calendar.
	Sheets map[string]CalendarDocument `json:"sheets"`
	// Failures maps sheet name to the reason parsing failed.
	Failures map[string]string `json:"failures,omitempty"`
}
