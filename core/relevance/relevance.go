// ABOUTME: Relevance checker decides whether a candidate title refers to the POI being translated
// ABOUTME: Compares token overlap and whole-string containment, with and without diacritics

package relevance

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"poi-translation-api/core/domain"
)

const (
	// minTokenLength drops tokens at or below this rune count
	minTokenLength = 2

	// minMatchLength is the rune count a token must exceed to take part in substring matching
	minMatchLength = 3
)

// unrelatedTopics are titles that mention a place but are about something else
var unrelatedTopics = regexp.MustCompile(`(?i)\b(lyrics|recipes?|horoscope|stock price|weather forecast|trailer|episode|torrent|porn)\b`)

// Check returns whether candidateTitle plausibly refers to poiName
func Check(candidateTitle, poiName string) domain.RelevanceVerdict {
	candidate := strings.ToLower(strings.TrimSpace(norm.NFKC.String(candidateTitle)))
	poi := strings.ToLower(strings.TrimSpace(norm.NFKC.String(poiName)))

	if candidate == "" || poi == "" {
		return domain.RelevanceVerdict{Reason: "empty title or POI name"}
	}

	if unrelatedTopics.MatchString(candidate) {
		return domain.RelevanceVerdict{Reason: "title matches unrelated topic pattern"}
	}

	if tok, ok := sharedToken(Tokenize(candidate), Tokenize(poi)); ok {
		return domain.RelevanceVerdict{IsRelevant: true, Reason: "shares token " + tok}
	}

	if containsEither(candidate, poi) {
		return domain.RelevanceVerdict{IsRelevant: true, Reason: "title and POI name contain one another"}
	}

	if containsEither(StripDiacritics(candidate), StripDiacritics(poi)) {
		return domain.RelevanceVerdict{IsRelevant: true, Reason: "title and POI name match without diacritics"}
	}

	return domain.RelevanceVerdict{Reason: "no shared tokens with POI name"}
}

// IsUnrelatedTopic reports whether a title is about something other than a place
func IsUnrelatedTopic(s string) bool {
	return unrelatedTopics.MatchString(s)
}

// Tokenize lowercases s, splits on anything that is not a letter or digit
// and drops short tokens. CJK, Thai, Kana and Hangul runs stay whole.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func sharedToken(candidate, poi []string) (string, bool) {
	for _, c := range candidate {
		if utf8.RuneCountInString(c) <= minMatchLength {
			continue
		}
		for _, p := range poi {
			if utf8.RuneCountInString(p) <= minMatchLength {
				continue
			}
			if strings.Contains(c, p) || strings.Contains(p, c) {
				return c, true
			}
		}
	}
	return "", false
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// StripDiacritics removes combining marks, e.g. "Güell" becomes "Guell"
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
