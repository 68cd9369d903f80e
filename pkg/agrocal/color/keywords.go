package color

import (
	"regexp"
	"strings"
)

// KeywordRule maps activity-name keywords to a colour. Ordinal restricts the
// rule to names carrying that occurrence number (1st, 2nd, 3rd); 0 matches any.
type KeywordRule struct {
	Keywords []string
	Ordinal  int
	Color    string
}

// KeywordTable infers a colour from an activity name. Rules are tried in order.
type KeywordTable struct {
	rules []KeywordRule
}

var ordinalRe = regexp.MustCompile(`\b(1st|first|2nd|second|3rd|third)\b`)

var defaultRules = []KeywordRule{
	{Keywords: []string{"weed"}, Ordinal: 3, Color: "#B30000"},
	{Keywords: []string{"weed"}, Ordinal: 2, Color: "#D90000"},
	{Keywords: []string{"weed"}, Ordinal: 1, Color: "#FF3333"},
	{Keywords: []string{"weed"}, Color: Red},
	{Keywords: []string{"pest", "disease"}, Color: "#FF4500"},
	{Keywords: []string{"fertili", "manure", "top dress"}, Color: "#7030A0"},
	{Keywords: []string{"post harvest", "postharvest", "storage", "drying", "shelling", "threshing"}, Color: "#A0522D"},
	{Keywords: []string{"harvest"}, Color: "#FFA500"},
	{Keywords: []string{"site"}, Color: "#0070C0"},
	{Keywords: []string{"land", "plough", "plow", "harrow", "clearing"}, Color: "#FFC000"},
	{Keywords: []string{"plant", "sow", "seed", "nursery", "transplant"}, Color: "#00B050"},
	{Keywords: []string{"brood"}, Color: "#FFBF00"},
	{Keywords: []string{"vaccin"}, Color: "#00B0F0"},
	{Keywords: []string{"feed"}, Color: "#92D050"},
}

// DefaultKeywordTable returns the built-in activity colour table.
func DefaultKeywordTable() *KeywordTable {
	rules := make([]KeywordRule, len(defaultRules))
	copy(rules, defaultRules)
	return &KeywordTable{rules: rules}
}

// Prepend returns a copy of the table with rules tried before the existing ones.
func (t *KeywordTable) Prepend(rules ...KeywordRule) *KeywordTable {
	out := make([]KeywordRule, 0, len(rules)+len(t.rules))
	for _, r := range rules {
		if hex, ok := Normalize(r.Color); ok {
			r.Color = hex
			out = append(out, r)
		}
	}
	out = append(out, t.rules...)
	return &KeywordTable{rules: out}
}

// Lookup returns the colour for an activity name.
func (t *KeywordTable) Lookup(name string) (string, bool) {
	text := strings.ToLower(strings.ReplaceAll(name, "-", " "))
	ordinal := ordinalOf(text)
	for _, r := range t.rules {
		if r.Ordinal != 0 && r.Ordinal != ordinal {
			continue
		}
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Color, true
			}
		}
	}
	return "", false
}

func ordinalOf(text string) int {
	switch ordinalRe.FindString(text) {
	case "1st", "first":
		return 1
	case "2nd", "second":
		return 2
	case "3rd", "third":
		return 3
	}
	return 0
}
