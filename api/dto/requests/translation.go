// ABOUTME: Request DTOs for translation, reconciliation and review endpoints
// ABOUTME: Provides validation tags, defaults and conversion to domain requests

package requests

import (
	"poi-translation-api/core/domain"
)

// TranslateRequest asks for one POI name in one language
type TranslateRequest struct {
	POIName  string `json:"poiName" minLength:"1" maxLength:"200" doc:"Original POI name" example:"Zoo Aquarium de Madrid"`
	Language string `json:"language" minLength:"2" doc:"Target language code" example:"JA-JP"`
	Country  string `json:"country,omitempty" doc:"ISO 3166-1 alpha-2 country of the POI; defaults to the language's region" example:"ES"`

	// EnqueueReview controls whether disagreements are queued for manual review (default: true)
	EnqueueReview *bool `json:"enqueueReview,omitempty" doc:"Queue the result for manual review when sources disagree"`
}

// ApplyDefaults sets default values for optional fields
func (r *TranslateRequest) ApplyDefaults() {
	if r.EnqueueReview == nil {
		enabled := true
		r.EnqueueReview = &enabled
	}
}

// ToDomain converts the DTO into a normalized domain request
func (r TranslateRequest) ToDomain() domain.TranslationRequest {
	return domain.TranslationRequest{
		POIName:      r.POIName,
		LanguageCode: r.Language,
		CountryCode:  r.Country,
	}.Normalized()
}

// BatchTranslateRequest translates many units in one call
type BatchTranslateRequest struct {
	Items []TranslateRequest `json:"items" minItems:"1" doc:"Translation units, answered in the same order"`

	EnqueueReview *bool `json:"enqueueReview,omitempty" doc:"Queue results that need manual review (default: true)"`
}

// ApplyDefaults sets default values for optional fields
func (r *BatchTranslateRequest) ApplyDefaults() {
	if r.EnqueueReview == nil {
		enabled := true
		r.EnqueueReview = &enabled
	}
}

// ToDomain converts every item into a domain request
func (r BatchTranslateRequest) ToDomain() []domain.TranslationRequest {
	out := make([]domain.TranslationRequest, len(r.Items))
	for i, item := range r.Items {
		out[i] = item.ToDomain()
	}
	return out
}

// ReconcileRequest carries source outputs to reconcile without calling any provider
type ReconcileRequest struct {
	Sources map[string]string `json:"sources" doc:"Translation text keyed by source ID (serp, perplexity, openai, google_maps, openrouter:<model>)"`
}

// ToDomain converts source keys to SourceIDs
func (r ReconcileRequest) ToDomain() map[domain.SourceID]string {
	out := make(map[domain.SourceID]string, len(r.Sources))
	for k, v := range r.Sources {
		out[domain.SourceID(k)] = v
	}
	return out
}

// SearchResultInput is one search result supplied for scoring
type SearchResultInput struct {
	Title   string `json:"title" doc:"Result title as shown by the search engine"`
	Link    string `json:"link" doc:"Result URL"`
	Snippet string `json:"snippet,omitempty" doc:"Result summary"`
}

// ScoreCandidatesRequest scores caller-supplied search results for audit
type ScoreCandidatesRequest struct {
	POIName       string              `json:"poiName" minLength:"1" maxLength:"200" doc:"Original POI name"`
	Language      string              `json:"language" minLength:"2" doc:"Target language code"`
	Country       string              `json:"country,omitempty" doc:"POI country; defaults to the language's region"`
	Results       []SearchResultInput `json:"results" minItems:"1" maxItems:"50" doc:"Search results in rank order"`
	PositionBonus bool                `json:"positionBonus,omitempty" doc:"Apply the rank position bonus used by the progressive search"`
}

// ToDomain converts the supplied results into domain search results
func (r ScoreCandidatesRequest) ToDomain() []domain.SearchResult {
	out := make([]domain.SearchResult, len(r.Results))
	for i, res := range r.Results {
		out[i] = domain.SearchResult{Title: res.Title, Link: res.Link, Snippet: res.Snippet}
	}
	return out
}

// ResolveReviewRequest records the reviewer's final translation
type ResolveReviewRequest struct {
	Text string `json:"text" minLength:"1" doc:"Final translation chosen by the reviewer"`
}
