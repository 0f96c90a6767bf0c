// ABOUTME: Language context models describe a supported target language and its regional defaults
// ABOUTME: Values are read-only and built once by the locale package

package domain

import "regexp"

// ScriptFamily groups languages by how their presence in text is detected
type ScriptFamily string

const (
	// ScriptDistinct languages are detected by their own Unicode block (CJK, Thai, Hangul, Kana)
	ScriptDistinct ScriptFamily = "script"

	// ScriptLatin languages share the Latin alphabet and are detected by diacritics and function words
	ScriptLatin ScriptFamily = "latin"

	// ScriptEnglish is the English target itself
	ScriptEnglish ScriptFamily = "english"
)

// StrictnessTier controls how harshly pure-English candidates are treated in a country
type StrictnessTier string

const (
	TierLenient  StrictnessTier = "lenient"
	TierModerate StrictnessTier = "moderate"
	TierStrict   StrictnessTier = "strict"
)

// LanguageContext describes one supported target language
type LanguageContext struct {
	// Code is the language-region code, e.g. "ZH-CN"
	Code string `json:"code"`

	// Name is the English name used in model prompts
	Name string `json:"name"`

	// NativeName is the language's own name
	NativeName string `json:"nativeName"`

	// SearchLanguage is the search engine interface language (hl)
	SearchLanguage string `json:"searchLanguage"`

	// DefaultCountry is used when a request carries no country
	DefaultCountry string `json:"defaultCountry"`

	// GoogleDomain is the regional search domain
	GoogleDomain string `json:"googleDomain"`

	// Location is the search location hint
	Location string `json:"location,omitempty"`

	Script ScriptFamily `json:"script"`

	// ScriptPattern matches characters of the language's own script (ScriptDistinct only)
	ScriptPattern *regexp.Regexp `json:"-"`

	// MarkerPattern matches diacritics or function words (ScriptLatin only)
	MarkerPattern *regexp.Regexp `json:"-"`
}

// IsEnglish reports whether the language is an English variant
func (l LanguageContext) IsEnglish() bool {
	return l.Script == ScriptEnglish
}
