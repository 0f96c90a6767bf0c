// ABOUTME: Public types for the POI translation library API
// ABOUTME: Flat copies of engine results so callers never depend on core/domain

package poitranslate

import (
	"poi-translation-api/core/domain"
)

// Request asks for one POI name in one language
type Request struct {
	POIName  string `json:"poiName"`
	Language string `json:"language"`
	Country  string `json:"country,omitempty"`
}

// SourceResult is what one source produced
type SourceResult struct {
	Source string `json:"source"`
	Text   string `json:"text"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Candidate is a scored search result title
type Candidate struct {
	Title     string         `json:"title"`
	Cleaned   string         `json:"cleaned"`
	Link      string         `json:"link"`
	Score     int            `json:"score"`
	Rank      int            `json:"rank"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// Result is the outcome for one request
type Result struct {
	Request           Request        `json:"request"`
	Translation       string         `json:"translation"`
	Status            string         `json:"status"`
	NeedsManualReview bool           `json:"needsManualReview"`
	Reason            string         `json:"reason"`
	Sources           []SourceResult `json:"sources"`
	ReviewID          string         `json:"reviewId,omitempty"`
}

// Found reports whether a translation was selected
func (r *Result) Found() bool {
	return r.Status == string(domain.StatusFound) && r.Translation != ""
}

// SearchResult is a caller-supplied result for ScoreCandidates
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// Consensus is the output of Reconcile
type Consensus struct {
	NeedsManualReview bool   `json:"needsManualReview"`
	BestTranslation   string `json:"bestTranslation"`
	Reason            string `json:"reason"`
}

// Language is a supported target language
type Language struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NativeName     string `json:"nativeName"`
	DefaultCountry string `json:"defaultCountry"`
}

// Review is a manual review queue entry
type Review struct {
	ID              string            `json:"id"`
	POIName         string            `json:"poiName"`
	Language        string            `json:"language"`
	ProvisionalText string            `json:"provisionalText"`
	Reason          string            `json:"reason"`
	Sources         map[string]string `json:"sources,omitempty"`
	Status          string            `json:"status"`
	ResolvedText    string            `json:"resolvedText,omitempty"`
}

func (r Request) toDomain() domain.TranslationRequest {
	return domain.TranslationRequest{POIName: r.POIName, LanguageCode: r.Language, CountryCode: r.Country}.Normalized()
}

func resultFromDomain(r *domain.TranslationResult) *Result {
	out := &Result{
		Request: Request{
			POIName:  r.Request.POIName,
			Language: r.Request.LanguageCode,
			Country:  r.Request.CountryCode,
		},
		Translation:       r.Decision.Text,
		Status:            string(r.Decision.Status),
		NeedsManualReview: r.Decision.NeedsManualReview,
		Reason:            r.Decision.Reason,
		Sources:           make([]SourceResult, len(r.Sources)),
	}
	for i, s := range r.Sources {
		out.Sources[i] = SourceResult{Source: string(s.Source), Text: s.Text, Status: string(s.Status), Error: s.Error}
	}
	return out
}

// candidateFromDomain sums breakdown deltas by rule
func candidateFromDomain(c domain.Candidate) Candidate {
	out := Candidate{
		Title:   c.RawTitle,
		Cleaned: c.CleanedTitle,
		Link:    c.SourceLink,
		Score:   c.Score,
		Rank:    c.Rank,
	}
	if len(c.Breakdown) > 0 {
		out.Breakdown = make(map[string]int, len(c.Breakdown))
		for _, adj := range c.Breakdown {
			out.Breakdown[adj.Rule] += adj.Delta
		}
	}
	return out
}

func reviewFromDomain(item *domain.ReviewItem) Review {
	return Review{
		ID:              item.ID,
		POIName:         item.POIName,
		Language:        item.LanguageCode,
		ProvisionalText: item.ProvisionalText,
		Reason:          item.Reason,
		Sources:         item.Sources,
		Status:          string(item.Status),
		ResolvedText:    item.ResolvedText,
	}
}
