// ABOUTME: Language-content classifier decides whether text is written in a target language
// ABOUTME: Uses Unicode script ranges for CJK/Thai/Korean and diacritics plus stopword counts for Latin scripts

package language

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"poi-translation-api/core/domain"
	"poi-translation-api/core/locale"
)

const (
	// shortTextLimit is the rune length below which ambiguous Latin text is accepted
	shortTextLimit = 50

	// englishStopwordThreshold is the stopword count above which Latin text is treated as English
	englishStopwordThreshold = 2
)

var (
	nonLatinScript = regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}\x{3040}-\x{30ff}\x{ac00}-\x{d7af}\x{1100}-\x{11ff}\x{0e00}-\x{0e7f}]`)
	englishWord    = regexp.MustCompile(`[A-Za-z]{4,}`)
	latinWord      = regexp.MustCompile(`[A-Za-z]{2,}`)
)

var englishStopwords = map[string]struct{}{
	"the": {}, "of": {}, "and": {}, "in": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "from": {}, "by": {}, "on": {}, "is": {}, "are": {}, "an": {},
	"this": {}, "that": {}, "best": {}, "things": {}, "near": {}, "visit": {},
}

// Classify reports which languages text contains relative to the target
// language, and whether it is acceptable as a translation for a POI in
// countryCode. An empty countryCode falls back to the language's region.
func Classify(text, languageCode, countryCode string) domain.LanguageClassification {
	lang, ok := locale.Lookup(languageCode)
	if !ok {
		return domain.LanguageClassification{Reason: "unsupported language " + languageCode}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.LanguageClassification{Reason: "empty text"}
	}

	tier := locale.StrictnessFor(locale.ResolveCountry(lang.Code, countryCode))
	short := utf8.RuneCountInString(text) < shortTextLimit

	switch lang.Script {
	case domain.ScriptDistinct:
		return classifyScript(text, lang, tier, short)
	case domain.ScriptEnglish:
		return classifyEnglish(text)
	default:
		return classifyLatin(text, lang, tier, short)
	}
}

func classifyScript(text string, lang domain.LanguageContext, tier domain.StrictnessTier, short bool) domain.LanguageClassification {
	result := domain.LanguageClassification{
		HasTargetLanguage: lang.ScriptPattern.MatchString(text),
		HasEnglish:        englishWord.MatchString(text),
	}

	switch {
	case result.HasTargetLanguage:
		result.IsAcceptable = true
		result.Reason = "contains " + lang.Name + " script"
		if result.HasEnglish {
			result.Reason += " mixed with English"
		}
	case nonLatinScript.MatchString(text):
		result.Reason = "written in a different non-Latin script"
	case short && tier != domain.TierStrict:
		result.IsAcceptable = true
		result.Reason = "short Latin name accepted in " + string(tier) + " region"
	default:
		result.Reason = "no " + lang.Name + " script, English only"
	}
	return result
}

func classifyLatin(text string, lang domain.LanguageContext, tier domain.StrictnessTier, short bool) domain.LanguageClassification {
	stopwords := CountEnglishStopwords(text)

	if nonLatinScript.MatchString(text) {
		result := domain.LanguageClassification{HasEnglish: stopwords > englishStopwordThreshold}
		result.IsAcceptable = !result.HasEnglish
		result.Reason = "non-Latin script present"
		return result
	}

	if stopwords > englishStopwordThreshold {
		result := domain.LanguageClassification{HasEnglish: true}
		if short && tier != domain.TierStrict {
			result.IsAcceptable = true
			result.Reason = "short English text accepted in " + string(tier) + " region"
		} else {
			result.Reason = "English text"
		}
		return result
	}

	result := domain.LanguageClassification{
		HasTargetLanguage: lang.MarkerPattern.MatchString(text),
		HasEnglish:        stopwords > 0,
	}
	switch {
	case result.HasTargetLanguage:
		result.IsAcceptable = true
		result.Reason = "contains " + lang.Name + " markers"
	case short:
		result.IsAcceptable = true
		result.Reason = "short ambiguous Latin text"
	case tier == domain.TierLenient:
		result.IsAcceptable = true
		result.Reason = "ambiguous Latin text accepted in lenient region"
	default:
		result.Reason = "long text without " + lang.Name + " markers"
	}
	return result
}

func classifyEnglish(text string) domain.LanguageClassification {
	if latinWord.MatchString(text) {
		return domain.LanguageClassification{
			HasTargetLanguage: true,
			HasEnglish:        true,
			IsAcceptable:      true,
			Reason:            "contains Latin words",
		}
	}
	return domain.LanguageClassification{Reason: "no Latin words"}
}

// CountEnglishStopwords counts English function words in text
func CountEnglishStopwords(text string) int {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	count := 0
	for _, w := range words {
		if _, ok := englishStopwords[w]; ok {
			count++
		}
	}
	return count
}
