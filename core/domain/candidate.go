// ABOUTME: Candidate domain model represents one possible translation pulled from a search result
// ABOUTME: Carries the raw and cleaned title, origin link, score and an audit trail of applied rules

package domain

// ScoreAdjustment records one scoring rule that changed a candidate's score
type ScoreAdjustment struct {
	Rule  string `json:"rule"`
	Delta int    `json:"delta"`
}

// Candidate is a possible translation extracted from a search result title
type Candidate struct {
	// RawTitle is the title exactly as the search provider returned it
	RawTitle string `json:"rawTitle"`

	// CleanedTitle is RawTitle after title normalization
	CleanedTitle string `json:"cleanedTitle"`

	// SourceLink is the URL of the result the title came from
	SourceLink string `json:"sourceLink"`

	// Snippet is the result summary, used as secondary relevance evidence
	Snippet string `json:"snippet,omitempty"`

	// Score is the accumulated quality score
	Score int `json:"score"`

	// Rank is the 1-based position in the results page
	Rank int `json:"rank"`

	// Phase is the search phase (1 or 2) that produced the candidate
	Phase int `json:"phase,omitempty"`

	// Breakdown lists every rule applied, in order
	Breakdown []ScoreAdjustment `json:"breakdown,omitempty"`
}

// Adjust adds delta to the score and records the rule
func (c *Candidate) Adjust(rule string, delta int) {
	if delta == 0 {
		return
	}
	c.Score += delta
	c.Breakdown = append(c.Breakdown, ScoreAdjustment{Rule: rule, Delta: delta})
}
