package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// Commodity defaults used when vocabulary is present but ambiguous.
const (
	DefaultPoultry = "layer"
	DefaultCrop    = "maize"
)

// Classification is the document-level result.
type Classification struct {
	CalendarType models.CalendarType
	Commodity    string
}

type term struct {
	re        *regexp.Regexp
	commodity string // empty for generic vocabulary
}

func terms(specific map[string]string, generic ...string) []term {
	keys := make([]string, 0, len(specific))
	for k := range specific {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]term, 0, len(keys)+len(generic))
	for _, k := range keys {
		out = append(out, term{re: wordRe(k), commodity: specific[k]})
	}
	for _, g := range generic {
		out = append(out, term{re: wordRe(g)})
	}
	return out
}

func wordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `(s|es)?\b`)
}

var poultryTerms = terms(map[string]string{
	"broiler":      "broiler",
	"layer":        "layer",
	"pullet":       "layer",
	"point of lay": "layer",
	"cockerel":     "cockerel",
	"turkey":       "turkey",
	"guinea fowl":  "guinea fowl",
	"guinea-fowl":  "guinea fowl",
	"duck":         "duck",
	"quail":        "quail",
}, "poultry", "chicken", "chick", "bird", "brooding", "brooder", "hatchery", "day old", "day-old", "fowl")

var cropTerms = terms(map[string]string{
	"maize":        "maize",
	"corn":         "maize",
	"rice":         "rice",
	"sorghum":      "sorghum",
	"millet":       "millet",
	"cassava":      "cassava",
	"yam":          "yam",
	"soybean":      "soybean",
	"soya":         "soybean",
	"groundnut":    "groundnut",
	"peanut":       "groundnut",
	"cowpea":       "cowpea",
	"tomato":       "tomato",
	"pepper":       "pepper",
	"onion":        "onion",
	"okra":         "okra",
	"plantain":     "plantain",
	"cocoa":        "cocoa",
	"cashew":       "cashew",
	"sweet potato": "sweet potato",
	"cabbage":      "cabbage",
	"cotton":       "cotton",
	"wheat":        "wheat",
}, "crop", "farm", "planting", "sowing", "harvesting", "harvest", "weeding", "land preparation", "fertilizer", "fertiliser", "seed")

var cycleVocabulary = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bproduction\s+weeks?\b`),
	regexp.MustCompile(`(?i)\bweeks?\s+of\s+age\b`),
	regexp.MustCompile(`(?i)\bbrood(ing|er)\b`),
	regexp.MustCompile(`(?i)\b(starter|grower|finisher|layer|laying)\s*(phase|feed|ration|mash|stage)\b`),
	regexp.MustCompile(`(?i)\bvaccination\s+(schedule|programme|program)\b`),
	regexp.MustCompile(`(?i)\bday[\s-]old\b`),
	regexp.MustCompile(`(?i)\bpoint\s+of\s+lay\b`),
}

// ClassifyDocument infers the commodity and calendar type of a worksheet.
// The hint (file name or title) is weighed as evidence, never as ground truth.
//
// Both vocabularies are scored. Specific commodity names outrank generic
// words, so "Bird scaring" on a rice calendar stays a crop document.
func ClassifyDocument(grid models.Grid, tl *models.Timeline, hint string) Classification {
	corpus := documentText(grid, hint)
	p := scoreVocabulary(corpus, poultryTerms)
	c := scoreVocabulary(corpus, cropTerms)

	var poultry, crop bool
	switch ps, cs := p.specific(), c.specific(); {
	case ps > 0 && ps >= cs:
		poultry = true
	case cs > 0:
		crop = true
	case p.generic > 0 && p.generic >= c.generic:
		poultry = true
	case c.generic > 0:
		crop = true
	}

	var commodity string
	switch {
	case poultry:
		commodity = p.commodity(DefaultPoultry)
	case crop:
		commodity = c.commodity(DefaultCrop)
	}

	return Classification{
		CalendarType: calendarType(tl, poultry, crop, hasCycleVocabulary(corpus)),
		Commodity:    commodity,
	}
}

// calendarType applies the ordered decision rules. Relative-week evidence
// without absolute dates wins when evidence is mixed.
func calendarType(tl *models.Timeline, poultry, crop, cycleVocab bool) models.CalendarType {
	dates := tl.HasDates()
	absolute := tl.HasMonths() || dates

	switch {
	case crop && absolute:
		return models.CalendarSeasonal
	case poultry && tl.RelativeWeeks && !dates:
		return models.CalendarCycle
	case cycleVocab && !dates:
		return models.CalendarCycle
	case !absolute:
		return models.CalendarCycle
	default:
		return models.CalendarSeasonal
	}
}

type vocabularyScore struct {
	counts  map[string]int // hits per specific commodity
	generic int
}

func scoreVocabulary(corpus string, vocabulary []term) vocabularyScore {
	s := vocabularyScore{counts: make(map[string]int)}
	for _, t := range vocabulary {
		n := len(t.re.FindAllStringIndex(corpus, -1))
		if n == 0 {
			continue
		}
		if t.commodity == "" {
			s.generic += n
			continue
		}
		s.counts[t.commodity] += n
	}
	return s
}

func (s vocabularyScore) specific() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// commodity returns the most frequent specific commodity, or fallback when
// only generic words matched or the top counts tie.
func (s vocabularyScore) commodity(fallback string) string {
	best, bestCount, tie := "", 0, false
	for c, n := range s.counts {
		switch {
		case n > bestCount:
			best, bestCount, tie = c, n, false
		case n == bestCount:
			tie = true
		}
	}
	if best == "" || tie {
		return fallback
	}
	return best
}

func hasCycleVocabulary(corpus string) bool {
	for _, re := range cycleVocabulary {
		if re.MatchString(corpus) {
			return true
		}
	}
	return false
}

func documentText(grid models.Grid, hint string) string {
	var b strings.Builder
	b.WriteString(strings.NewReplacer("_", " ", ".", " ").Replace(hint))
	for r := range grid {
		for c := range grid[r] {
			if text := grid.Text(r, c); letterRe.MatchString(text) {
				b.WriteByte('\n')
				b.WriteString(text)
			}
		}
	}
	return b.String()
}
