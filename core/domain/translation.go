// ABOUTME: Translation request and result models exchanged with callers of the engine
// ABOUTME: A result bundles the final decision with per-source outcomes for audit

package domain

import "strings"

// TranslationRequest asks for the name of one POI in one language
type TranslationRequest struct {
	// POIName is the original-language name
	POIName string `json:"poiName"`

	// LanguageCode is one of the supported codes (e.g., "ZH-TW")
	LanguageCode string `json:"language"`

	// CountryCode is the POI's country; optional, defaults to the language's region
	CountryCode string `json:"country,omitempty"`
}

// Normalized returns a copy with trimmed fields and upper-cased codes
func (r TranslationRequest) Normalized() TranslationRequest {
	return TranslationRequest{
		POIName:      strings.TrimSpace(r.POIName),
		LanguageCode: strings.ToUpper(strings.TrimSpace(r.LanguageCode)),
		CountryCode:  strings.ToUpper(strings.TrimSpace(r.CountryCode)),
	}
}

// TranslationResult is the full outcome of translating one unit
type TranslationResult struct {
	Request TranslationRequest `json:"request"`

	// Decision is the final, reconciled decision
	Decision TranslationDecision `json:"decision"`

	// Consensus is the raw reconciliation output
	Consensus ConsensusResult `json:"consensus"`

	// Search is the progressive search decision that fed the serp source
	Search TranslationDecision `json:"search"`

	// Sources lists each source's outcome
	Sources []SourceOutcome `json:"sources"`
}

// SourceTexts returns the per-source texts keyed by source
func (r *TranslationResult) SourceTexts() map[SourceID]string {
	texts := make(map[SourceID]string, len(r.Sources))
	for _, s := range r.Sources {
		texts[s.Source] = s.Text
	}
	return texts
}
