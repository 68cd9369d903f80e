// Package output serializes calendars to JSON.
package output

import (
	"encoding/json"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// ToJSON serializes a workbook calendar.
func ToJSON(wb *models.WorkbookCalendar, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// DocumentToJSON serializes a single sheet calendar.
func DocumentToJSON(doc *models.CalendarDocument, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
