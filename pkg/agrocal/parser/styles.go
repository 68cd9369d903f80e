package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// styleSheet is the subset of xl/styles.xml needed to rebuild cell fills.
type styleSheet struct {
	fills   []*models.FillStyle // by fillId, nil when the fill carries nothing
	fonts   []*models.ColorRef  // by fontId, nil for default font colours
	xfs     []cellXf            // cellXfs, indexed by the cell's s attribute
	indexed []string            // <colors><indexedColors> override, raw rgb values
}

type cellXf struct {
	fillID int
	fontID int
}

// fillFor returns the fill of a cell style index, merged with its font
// colour. A nil result means the cell is unformatted.
func (s *styleSheet) fillFor(styleID int) *models.FillStyle {
	if s == nil || styleID < 0 || styleID >= len(s.xfs) {
		return nil
	}
	xf := s.xfs[styleID]

	var fill *models.FillStyle
	if xf.fillID >= 0 && xf.fillID < len(s.fills) {
		fill = s.fills[xf.fillID]
	}
	var font *models.ColorRef
	if xf.fontID > 0 && xf.fontID < len(s.fonts) {
		font = s.fonts[xf.fontID]
	}
	if fill == nil && font == nil {
		return nil
	}

	out := &models.FillStyle{}
	if fill != nil {
		*out = *fill
	}
	out.FontColor = font
	return out
}

// parseStyleSheet walks styles.xml token by token. Fonts and fills under
// <dxfs> and xf records under <cellStyleXfs> are ignored.
func parseStyleSheet(data []byte) *styleSheet {
	s := &styleSheet{}
	if len(data) == 0 {
		return s
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	var (
		section    string
		fill       *models.FillStyle
		font       *models.ColorRef
		inFont     bool
		inGradStop bool
	)

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
			switch t.Name.Local {
			case "fonts", "fills", "cellXfs", "cellStyleXfs", "dxfs", "indexedColors", "mruColors":
				section = t.Name.Local
				continue
			}

			switch section {
			case "fonts":
				switch t.Name.Local {
				case "font":
					inFont, font = true, nil
				case "color":
					if inFont {
						font = colorRef(t.Attr)
					}
				}
			case "fills":
				switch t.Name.Local {
				case "fill":
					fill = &models.FillStyle{}
				case "patternFill":
					if fill != nil {
						fill.Pattern = getAttr(t.Attr, "patternType")
					}
				case "gradientFill":
					if fill != nil {
						fill.Pattern = "gradient"
					}
				case "stop":
					inGradStop = true
				case "fgColor":
					if fill != nil {
						fill.Foreground = colorRef(t.Attr)
					}
				case "bgColor":
					if fill != nil {
						fill.Background = colorRef(t.Attr)
					}
				case "color":
					if fill != nil && inGradStop && fill.Foreground == nil {
						fill.Foreground = colorRef(t.Attr)
					}
				}
			case "cellXfs":
				if t.Name.Local == "xf" {
					s.xfs = append(s.xfs, cellXf{
						fillID: atoiDefault(getAttr(t.Attr, "fillId"), 0),
						fontID: atoiDefault(getAttr(t.Attr, "fontId"), 0),
					})
				}
			case "indexedColors":
				if t.Name.Local == "rgbColor" {
					s.indexed = append(s.indexed, getAttr(t.Attr, "rgb"))
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "fonts", "fills", "cellXfs", "cellStyleXfs", "dxfs", "indexedColors", "mruColors":
				section = ""
			case "font":
				if section == "fonts" {
					if isDefaultFontColor(font) {
						font = nil
					}
					s.fonts = append(s.fonts, font)
					inFont = false
				}
			case "stop":
				inGradStop = false
			case "fill":
				if section == "fills" {
					s.fills = append(s.fills, normalizeFill(fill))
					fill = nil
				}
			}
		}
	}

	return s
}

// normalizeFill drops fills that carry neither a pattern nor a colour.
func normalizeFill(f *models.FillStyle) *models.FillStyle {
	if f == nil {
		return nil
	}
	hasColor := !f.Foreground.IsZero() || !f.Background.IsZero()
	if f.Pattern == "" && hasColor {
		f.Pattern = "solid"
	}
	if !hasColor && (f.Pattern == "" || f.Pattern == models.PatternNone) {
		return nil
	}
	return f
}

// colorRef reads rgb/indexed/theme/tint attributes. Automatic colours yield nil.
func colorRef(attrs []xml.Attr) *models.ColorRef {
	if getAttr(attrs, "auto") == "1" {
		return nil
	}
	ref := &models.ColorRef{RGB: getAttr(attrs, "rgb")}
	if v := getAttr(attrs, "indexed"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			ref.Indexed = &i
		}
	}
	if v := getAttr(attrs, "theme"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			ref.Theme = &i
		}
	}
	if v := getAttr(attrs, "tint"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ref.Tint = f
		}
	}
	if ref.IsZero() {
		return nil
	}
	return ref
}

// isDefaultFontColor reports the automatic black text colour in its
// common encodings: theme text (1), black RGB, or indexed 8/64.
func isDefaultFontColor(ref *models.ColorRef) bool {
	if ref.IsZero() {
		return true
	}
	switch {
	case ref.Theme != nil:
		return *ref.Theme == 1 && ref.Tint == 0
	case ref.Indexed != nil:
		return *ref.Indexed == 8 || *ref.Indexed == 64
	default:
		rgb := strings.ToUpper(ref.RGB)
		return rgb == "000000" || rgb == "FF000000"
	}
}

func getAttr(attrs []xml.Attr, name string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func atoiDefault(s string, def int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return def
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
