// Package dates normalizes resume date strings into the canonical
// "YYYY" / "YYYY-MM" / present-marker forms shared by every parser.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// monthNumbers maps month-name prefixes to their two-digit numbers.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var (
	yearPattern    = regexp.MustCompile(`(19|20)\d{2}`)
	monthPattern   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`)
	numericPattern = regexp.MustCompile(`^(\d{1,2})\s*[/-]\s*((?:19|20)\d{2})$`)
	isoPattern     = regexp.MustCompile(`^((?:19|20)\d{2})\s*[/-]\s*(\d{1,2})$`)
	presentPattern = regexp.MustCompile(`(?i)\b(present|current|now|ongoing|today)\b`)

	// rangeSplitter matches separators that always mean a range: en/em dash,
	// double hyphen, arrow, the word "to", and a hyphen with whitespace on at
	// least one side. A bare unspaced hyphen is not here, so "May-2024" stays
	// one token.
	rangeSplitter = regexp.MustCompile(`\s*(?:\x{2013}|\x{2014}|--|\x{2192}|\bto\b)\s*|\s+-\s*|\s*-\s+`)

	// bareHyphenRange splits forms like "2021-2023" or "2019-Present" where
	// the hyphen is unspaced: the left half must end in a year and the right
	// half must begin with a year, month name, or present marker.
	bareHyphenRange = regexp.MustCompile(`(?i)^(.*?(?:19|20)\d{2})-((?:(?:19|20)\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|present|current|now|ongoing|today).*)$`)
)

// Normalize converts a free-form date string to "YYYY", "YYYY-MM", or the
// current marker. Inputs it cannot interpret return an empty string, never
// garbage; "May2024" (no space) normalizes to "2024-05".
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if presentPattern.MatchString(s) {
		return types.DateCurrent
	}

	// Numeric forms first: "05/2024", "2024-05".
	if m := numericPattern.FindStringSubmatch(s); m != nil {
		if month := padMonth(m[1]); month != "" {
			return m[2] + "-" + month
		}
		return m[2]
	}
	if m := isoPattern.FindStringSubmatch(s); m != nil {
		if month := padMonth(m[2]); month != "" {
			return m[1] + "-" + month
		}
		return m[1]
	}

	year := yearPattern.FindString(s)
	if year == "" {
		return ""
	}
	if m := monthPattern.FindString(s); m != "" {
		key := strings.ToLower(m)
		if len(key) > 3 {
			key = key[:3]
		}
		if num, ok := monthNumbers[key]; ok {
			return year + "-" + num
		}
	}
	return year
}

// SplitRange splits a date-range string on em-dash, en-dash, double hyphen,
// arrow, the word "to", or a hyphen touching whitespace, returning normalized
// (start, end). An unspaced hyphen only splits year-to-year or year-to-present
// forms, so "May-2024" is one date while "2021-2023" is a range. A single
// date yields an empty end. "2022- 2026" splits into "2022" and "2026".
func SplitRange(raw string) (start, end string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ""
	}

	parts := splitRangeParts(s)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return Normalize(parts[0]), ""
	default:
		return Normalize(parts[0]), Normalize(parts[len(parts)-1])
	}
}

// splitRangeParts separates range halves without splitting a single
// hyphenated date like "May-2024" or "2024-05" apart.
func splitRangeParts(s string) []string {
	raw := rangeSplitter.Split(s, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 1 {
		if m := bareHyphenRange.FindStringSubmatch(parts[0]); m != nil {
			return []string{strings.TrimSpace(m[1]), strings.TrimSpace(m[2])}
		}
	}
	if len(parts) <= 2 {
		return parts
	}
	// Hyphenated month forms ("May-2024 - Jun-2025") over-split; rejoin into
	// halves around the middle separator.
	mid := len(parts) / 2
	return []string{strings.Join(parts[:mid], " "), strings.Join(parts[mid:], " ")}
}

// padMonth validates a 1-2 digit month and returns its zero-padded form.
func padMonth(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return ""
	}
	return fmt.Sprintf("%02d", n)
}
