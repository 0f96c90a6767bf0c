// Package title cleans search result titles down to the entity name they describe.
package title

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// suffixPatterns are site decorations appended to result titles. Order matters:
// earlier patterns remove more of the title.
var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*Wikipedia.*$`),
	regexp.MustCompile(`\s*-\s*维基百科.*$`),
	regexp.MustCompile(`\s*-\s*維基百科.*$`),
	regexp.MustCompile(`，自由的百科全书$`),
	regexp.MustCompile(`，自由的百科全書$`),
	regexp.MustCompile(`\s*-\s*ウィキペディア.*$`),
	regexp.MustCompile(`\s*-\s*위키백과.*$`),
	regexp.MustCompile(`(?i)\s*\|\s*Official Site.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Official Web ?site.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Official Site.*$`),
	regexp.MustCompile(`(?i)\s*-\s*TripAdvisor.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Google Maps.*$`),
	regexp.MustCompile(`(?i)\s*\|\s*Booking\.com.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Klook.*$`),
	regexp.MustCompile(`\s*-\s*旅遊景點.*$`),
	regexp.MustCompile(`\s*-\s*旅游景点.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Tourist Attraction.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Yelp.*$`),
	regexp.MustCompile(`(?i)\s*\|\s*Expedia.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Reviews.*$`),
}

var trailingHyphens = regexp.MustCompile(`[\s\-]+$`)

const (
	segmentSeparator = " - "
	minSegmentLength = 3

	// maxPasses bounds the fixed-point loop; real titles settle in one or two
	maxPasses = 5
)

// Normalize strips site suffixes and disambiguation segments from a raw
// search result title. It is pure and idempotent.
func Normalize(raw string) string {
	current := strings.TrimSpace(raw)
	for i := 0; i < maxPasses; i++ {
		next := normalizeOnce(current)
		if next == current {
			break
		}
		current = next
	}
	return current
}

func normalizeOnce(s string) string {
	for _, p := range suffixPatterns {
		s = p.ReplaceAllString(s, "")
	}
	s = trailingHyphens.ReplaceAllString(strings.TrimSpace(s), "")

	if strings.Contains(s, segmentSeparator) {
		s = pickSegment(strings.Split(s, segmentSeparator))
	}

	return trailingHyphens.ReplaceAllString(strings.TrimSpace(s), "")
}

// pickSegment chooses the segment most likely to be the entity name
func pickSegment(raw []string) string {
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		first, second := parts[0], parts[1]
		if utf8.RuneCountInString(second) < minSegmentLength {
			return first
		}
		if utf8.RuneCountInString(first) < minSegmentLength {
			return second
		}
		return first
	default:
		return parts[0]
	}
}
