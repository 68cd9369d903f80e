// Package classify separates genuine activity rows from noise and classifies
// a calendar worksheet as a seasonal crop schedule or a production cycle.
package classify

import (
	"regexp"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/timeline"
)

var (
	serialRe         = regexp.MustCompile(`^\d+[.)]?$`)
	romanRe          = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})[.)]?$`)
	ordinalOnlyRe    = regexp.MustCompile(`(?i)^(\d+(st|nd|rd|th)|first|second|third|fourth|fifth)[.)]?$`)
	leadingOrdinalRe = regexp.MustCompile(`(?i)^(\d+(st|nd|rd|th)?|first|second|third|fourth|fifth)[\s.):\-]+(.+)$`)
	weekHeaderRe     = regexp.MustCompile(`(?i)^(week|wk)s?\.?\s*\d+$`)
	letterRe         = regexp.MustCompile(`\pL`)
)

// headerTokens are column or row headers that are never activities.
var headerTokens = map[string]bool{
	"date":               true,
	"dates":              true,
	"s/n":                true,
	"sn":                 true,
	"s/no":               true,
	"no":                 true,
	"serial":             true,
	"stage of activity":  true,
	"stages of activity": true,
	"activity":           true,
	"activities":         true,
	"month":              true,
	"months":             true,
	"week":               true,
	"weeks":              true,
	"total":              true,
	"summary":            true,
	"remarks":            true,
	"remark":             true,
}

// agricultureKeywords are word stems that make a numbered label an activity.
var agricultureKeywords = []string{
	"weed", "fertili", "spray", "pest", "disease", "control", "management",
	"site", "land", "plant", "sow", "harvest", "treatment", "storage", "seed",
	"nursery", "transplant", "irrigat", "appl", "top", "thin", "plough", "plow",
	"harrow", "clear", "market", "dry", "shell", "thresh", "scout", "feed",
	"vaccin", "brood", "deworm", "debeak", "clean", "disinfect",
}

// IsActivityLabel reports whether text names a genuine activity. It is strict
// on bare numeric and serial shapes and permissive on free text.
func IsActivityLabel(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if headerTokens[normalizeToken(text)] {
		return false
	}
	if serialRe.MatchString(text) || ordinalOnlyRe.MatchString(text) || isRoman(text) {
		return false
	}
	if !letterRe.MatchString(text) {
		return false
	}
	if timeline.IsMonth(text) || weekHeaderRe.MatchString(text) {
		return false
	}
	if m := leadingOrdinalRe.FindStringSubmatch(text); m != nil {
		rest := strings.TrimSpace(m[3])
		if startsWithKeyword(rest) {
			return true
		}
		return !headerTokens[normalizeToken(rest)]
	}
	return true
}

func normalizeToken(text string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(text)), ":.")
}

// isRoman matches upper-case Roman numerals only, so words such as "mix",
// "dim" or "Mid" survive.
func isRoman(text string) bool {
	if text != strings.ToUpper(text) {
		return false
	}
	return romanRe.MatchString(text) && strings.Trim(text, ".)") != ""
}

func startsWithKeyword(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false
	}
	for _, kw := range agricultureKeywords {
		if strings.HasPrefix(fields[0], kw) {
			return true
		}
	}
	return false
}
