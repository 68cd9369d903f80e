package parser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/color"
)

// themeSlots maps clrScheme element names to spreadsheet theme indices.
// The scheme lists dark before light; cells reference light first.
var themeSlots = map[string]int{
	"lt1":      0,
	"dk1":      1,
	"lt2":      2,
	"dk2":      3,
	"accent1":  4,
	"accent2":  5,
	"accent3":  6,
	"accent4":  7,
	"accent5":  8,
	"accent6":  9,
	"hlink":    10,
	"folHlink": 11,
}

// parseTheme extracts the colour scheme of xl/theme/theme1.xml in
// theme-index order. Slots that are missing stay empty; nil means no scheme.
func parseTheme(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	colors := make([]string, len(themeSlots))
	found := false
	slot := -1
	inScheme := false

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "clrScheme" {
				inScheme = true
				continue
			}
			if !inScheme {
				continue
			}
			if idx, ok := themeSlots[t.Name.Local]; ok {
				slot = idx
				continue
			}
			if slot < 0 {
				continue
			}
			var raw string
			switch t.Name.Local {
			case "srgbClr":
				raw = getAttr(t.Attr, "val")
			case "sysClr":
				raw = getAttr(t.Attr, "lastClr")
			}
			if hex, ok := color.Normalize(raw); ok && colors[slot] == "" {
				colors[slot] = hex
				found = true
			}
		case xml.EndElement:
			if t.Name.Local == "clrScheme" {
				inScheme = false
			}
			if _, ok := themeSlots[t.Name.Local]; ok {
				slot = -1
			}
		}
	}

	if !found {
		return nil
	}
	return colors
}
