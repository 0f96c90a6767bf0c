// ABOUTME: Candidate scorer applies the additive rule table to a search result candidate
// ABOUTME: Scoring is deterministic and records every applied rule in the candidate breakdown

package scoring

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"poi-translation-api/core/domain"
	"poi-translation-api/core/language"
	"poi-translation-api/core/locale"
	"poi-translation-api/core/relevance"
	"poi-translation-api/core/title"
)

// Options tunes a scoring run
type Options struct {
	// PositionBonus adds max(0, 20-2*rank0) for the result's position
	PositionBonus bool
}

// NewCandidate builds an unscored candidate from a search result at a 1-based rank
func NewCandidate(result domain.SearchResult, rank int) domain.Candidate {
	return domain.Candidate{
		RawTitle:     result.Title,
		CleanedTitle: title.Normalize(result.Title),
		SourceLink:   result.Link,
		Snippet:      result.Snippet,
		Rank:         rank,
	}
}

// Score computes the candidate's score for translating poiName into
// languageCode, writing the total and breakdown into c. Any previous score
// on c is discarded.
func Score(c *domain.Candidate, poiName, languageCode, countryCode string, opts Options) int {
	c.CleanedTitle = title.Normalize(c.RawTitle)
	c.Score = 0
	c.Breakdown = nil

	rawLower := strings.ToLower(c.RawTitle)
	cleanedLower := strings.ToLower(c.CleanedTitle)
	linkLower := strings.ToLower(c.SourceLink)
	host, path := splitLink(c.SourceLink)

	scoreRelevance(c, poiName)
	scoreDictionary(c)
	scoreUserContent(c, rawLower, linkLower)
	scoreNews(c, host, path)

	if commercialTitle.MatchString(c.RawTitle) {
		c.Adjust(RuleCommercial, penaltyCommercial)
	}
	if informational.MatchString(c.RawTitle) {
		c.Adjust(RuleInformational, penaltyInformational)
	}

	trusted, trustedOK := matchTrusted(host, path)
	scoreLanguage(c, languageCode, countryCode, trustedOK)
	if trustedOK {
		c.Adjust(RuleTrustedDomain+":"+trusted.kind, trusted.bonus)
	}

	for _, brand := range internationalBrands {
		if strings.Contains(cleanedLower, brand) {
			c.Adjust(RuleBrand, bonusBrand)
			break
		}
	}

	if words := poiWords(poiName); len(words) > 0 && c.CleanedTitle != strings.TrimSpace(poiName) {
		found := false
		for _, w := range words {
			if strings.Contains(cleanedLower, w) {
				found = true
				break
			}
		}
		if !found {
			c.Adjust(RuleNoPOIWord, penaltyNoPOIWord)
		}
	}

	if n := utf8.RuneCountInString(c.CleanedTitle); n > 0 && n < shortTitleLimit {
		c.Adjust(RuleShortTitle, bonusShortTitle)
	}
	if utf8.RuneCountInString(c.RawTitle) > longRawTitleLimit {
		c.Adjust(RuleLongTitle, penaltyLongTitle)
	}

	switch n := len(specialChars.FindAllStringIndex(c.RawTitle, -1)); {
	case n == 0:
		c.Adjust(RuleClean, bonusNoSpecial)
	case n > maxSpecialChars:
		c.Adjust(RuleClutter, penaltySpecial)
	}

	if opts.PositionBonus {
		c.Adjust(RulePosition, PositionBonus(c.Rank))
	}

	return c.Score
}

// PositionBonus returns max(0, 20-2*(rank-1)) for a 1-based rank
func PositionBonus(rank int) int {
	if rank < 1 {
		rank = 1
	}
	bonus := positionBase - positionStep*(rank-1)
	if bonus < 0 {
		return 0
	}
	return bonus
}

// HasDictionaryMarker reports whether a title looks like a dictionary or translation-tool page
func HasDictionaryMarker(s string) bool {
	for _, m := range dictionaryMarkers {
		if m.pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// IsTrustedLink reports whether link is hosted on a trusted domain
func IsTrustedLink(link string) bool {
	_, ok := matchTrusted(splitLink(link))
	return ok
}

func scoreRelevance(c *domain.Candidate, poiName string) {
	verdict := relevance.Check(c.CleanedTitle, poiName)
	if !verdict.IsRelevant && c.Snippet != "" && !relevance.IsUnrelatedTopic(c.CleanedTitle) {
		verdict = relevance.Check(c.Snippet, poiName)
	}
	if verdict.IsRelevant {
		c.Adjust(RuleRelevant, bonusRelevant)
	} else {
		c.Adjust(RuleIrrelevant, penaltyIrrelevant)
	}
}

func scoreDictionary(c *domain.Candidate) {
	for _, m := range dictionaryMarkers {
		if m.pattern.MatchString(c.RawTitle) {
			c.Adjust(RuleDictionary, m.delta)
		}
	}
}

func scoreUserContent(c *domain.Candidate, rawLower, linkLower string) {
	if strings.Contains(linkLower, "tripadvisor.com/showuserreviews") {
		c.Adjust(RuleUserReviewLink, penaltyUserReviewLink)
	}
	if strings.Contains(linkLower, "reddit.com") {
		c.Adjust(RuleForumLink, penaltyForumLink)
	}
	if strings.Contains(linkLower, "/reviews/") {
		c.Adjust(RuleReviewPath, penaltyReviewPath)
	}
	if strings.Contains(rawLower, "review") {
		c.Adjust(RuleReviewTitle, penaltyReviewTitle)
	}
}

func scoreNews(c *domain.Candidate, host, path string) {
	if newsPath.MatchString(strings.ToLower(path)) {
		c.Adjust(RuleNewsPath, penaltyNewsPath)
	}
	for _, d := range newsDomains {
		if strings.Contains(host, d) {
			c.Adjust(RuleNewsDomain, penaltyNewsDomain)
			break
		}
	}
	if newsTitle.MatchString(c.RawTitle) {
		c.Adjust(RuleNewsTitle, penaltyNewsTitle)
	}
}

func scoreLanguage(c *domain.Candidate, languageCode, countryCode string, trusted bool) {
	class := language.Classify(c.CleanedTitle, languageCode, countryCode)
	lang, _ := locale.Lookup(languageCode)

	switch {
	case class.HasTargetLanguage:
		c.Adjust(RuleTargetLanguage, bonusTargetLanguage)
		if class.HasEnglish && !lang.IsEnglish() {
			c.Adjust(RuleMixedEnglish, bonusMixedEnglish)
		}
	case class.IsAcceptable:
		if trusted && utf8.RuneCountInString(c.CleanedTitle) < shortTitleLimit {
			c.Adjust(RuleTrustedEnglish, bonusTrustedEnglish)
		} else {
			c.Adjust(RuleUntrustedEnglish, penaltyUntrustedEnglish)
		}
	default:
		c.Adjust(RuleUnacceptable, unacceptablePenalty(locale.StrictnessFor(locale.ResolveCountry(languageCode, countryCode))))
	}
}

func unacceptablePenalty(tier domain.StrictnessTier) int {
	switch tier {
	case domain.TierStrict:
		return -80
	case domain.TierLenient:
		return -10
	default:
		return -40
	}
}

func matchTrusted(host, path string) (trustedDomain, bool) {
	if host == "" {
		return trustedDomain{}, false
	}
	for _, d := range trustedDomains {
		if d.matches(host, path) {
			return d, true
		}
	}
	return trustedDomain{}, false
}

func splitLink(link string) (host, path string) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(u.Hostname()), u.Path
}

// poiWords returns the lower-cased POI words longer than two runes
func poiWords(poiName string) []string {
	fields := strings.FieldsFunc(strings.ToLower(poiName), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minPOIWordLength {
			words = append(words, f)
		}
	}
	return words
}
