// Package timeline reconstructs the period axis of a calendar worksheet from
// its header rows.
package timeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	monthRe        = regexp.MustCompile(`(?i)^(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|june?|july?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?([\s\-/']*\d{2,4})?$`)
	weekRe         = regexp.MustCompile(`(?i)(^|[^a-z])(week|wk)s?([^a-z]|$)`)
	numberedWeekRe = regexp.MustCompile(`(?i)(week|wk)s?\.?\s*\d+|\d+\s*(st|nd|rd|th)?\s*(week|wk)`)
	dayRangeRe     = regexp.MustCompile(`^\d{1,2}\s*[-–—]\s*\d{1,2}$`)
	dayRe          = regexp.MustCompile(`^\d{1,2}$`)
	dateCaptionRe  = regexp.MustCompile(`(?i)^(dates?|days?|period|activit(y|ies)|stages?\s+of\s+activity|s/?no?|serial|no|#)[:.]?$`)
	monthPrefixRe  = regexp.MustCompile(`(?i)^(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|june?|july?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?[\s\-/]+(\S.*)$`)
)

// IsMonth reports whether text is a month name or abbreviation, optionally
// followed by a year.
func IsMonth(text string) bool {
	return monthRe.MatchString(strings.TrimSpace(text))
}

// SplitMonth separates a combined header such as "Jan Wk1" or "Mar 01-07"
// into its month and the week or day part that follows. A bare month yields
// an empty rest. ok is false when text does not lead with a month.
func SplitMonth(text string) (month, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if IsMonth(text) {
		return text, "", true
	}
	m := monthPrefixRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	rest = strings.TrimSpace(m[len(m)-1])
	if !IsWeek(rest) && !IsDayRange(rest) {
		return "", "", false
	}
	return m[1], rest, true
}

// IsWeek reports whether text carries a "week"/"wk" token.
func IsWeek(text string) bool {
	return weekRe.MatchString(strings.TrimSpace(text))
}

// IsNumberedWeek reports whether text is a relative "week N" label.
func IsNumberedWeek(text string) bool {
	return numberedWeekRe.MatchString(strings.TrimSpace(text))
}

// IsDayRange reports whether text is a "DD-DD" range or a bare day number.
func IsDayRange(text string) bool {
	text = strings.TrimSpace(text)
	if dayRangeRe.MatchString(text) {
		return true
	}
	if dayRe.MatchString(text) {
		n, err := strconv.Atoi(text)
		return err == nil && n >= 1 && n <= 31
	}
	return false
}
