// ABOUTME: Decision domain models describe the outcome of translating one POI into one language
// ABOUTME: Includes the decision status, consensus result and classifier/relevance verdicts

package domain

// DecisionStatus is the outcome of a translation attempt
type DecisionStatus string

const (
	// StatusFound means a translation was selected
	StatusFound DecisionStatus = "found"

	// StatusNotFound means the search completed but nothing acceptable was found
	StatusNotFound DecisionStatus = "not_found"

	// StatusFailed means the attempt could not complete (provider error, timeout, cancellation)
	StatusFailed DecisionStatus = "failed"
)

// TranslationDecision is the result for one (POI, language) unit
type TranslationDecision struct {
	// Text is the chosen translation; empty unless Status is StatusFound
	Text string `json:"text,omitempty"`

	Status            DecisionStatus `json:"status"`
	NeedsManualReview bool           `json:"needsManualReview"`
	Reason            string         `json:"reason"`

	// Source names where Text came from (knowledge_panel, answer_box, organic, or a SourceID)
	Source string `json:"source,omitempty"`

	// Score is the winning candidate's score for organic results
	Score int `json:"score,omitempty"`

	// Phase is the search phase that produced the winner
	Phase int `json:"phase,omitempty"`

	// Candidates holds every scored candidate for audit
	Candidates []Candidate `json:"candidates,omitempty"`
}

// IsFound reports whether the decision carries a translation
func (d TranslationDecision) IsFound() bool {
	return d.Status == StatusFound && d.Text != ""
}

// ConsensusResult is the output of reconciling multiple sources
type ConsensusResult struct {
	NeedsManualReview bool   `json:"needsManualReview"`
	BestTranslation   string `json:"bestTranslation"`
	Reason            string `json:"reason"`
}

// RelevanceVerdict says whether a candidate title is about the POI
type RelevanceVerdict struct {
	IsRelevant bool   `json:"isRelevant"`
	Reason     string `json:"reason"`
}

// LanguageClassification describes which languages a piece of text contains
type LanguageClassification struct {
	HasTargetLanguage bool   `json:"hasTargetLanguage"`
	HasEnglish        bool   `json:"hasEnglish"`
	IsAcceptable      bool   `json:"isAcceptable"`
	Reason            string `json:"reason"`
}
