// ABOUTME: Mappers for converting engine results and review items into API DTOs
// ABOUTME: Keeps the domain packages free of transport concerns

package mappers

import (
	"github.com/jinzhu/copier"

	"poi-translation-api/api/dto/responses"
	"poi-translation-api/core/domain"
	"poi-translation-api/core/scoring"
)

// ToTranslationResponse converts a domain result to a TranslationResponse DTO
func ToTranslationResponse(result *domain.TranslationResult) *responses.TranslationResponse {
	if result == nil {
		return nil
	}

	response := &responses.TranslationResponse{
		POIName:           result.Request.POIName,
		Language:          result.Request.LanguageCode,
		Country:           result.Request.CountryCode,
		Translation:       result.Decision.Text,
		Status:            string(result.Decision.Status),
		NeedsManualReview: result.Decision.NeedsManualReview,
		Reason:            result.Decision.Reason,
		Source:            result.Decision.Source,
		Sources:           make([]responses.SourceOutcomeResponse, 0, len(result.Sources)),
		Candidates:        ToCandidateResponses(result.Search.Candidates),
	}

	for _, s := range result.Sources {
		response.Sources = append(response.Sources, responses.SourceOutcomeResponse{
			Source:     string(s.Source),
			Text:       s.Text,
			Status:     string(s.Status),
			Error:      s.Error,
			DurationMs: s.DurationMs,
		})
	}

	return response
}

// ToCandidateResponse converts one scored candidate
func ToCandidateResponse(c domain.Candidate) responses.CandidateResponse {
	response := responses.CandidateResponse{
		RawTitle:     c.RawTitle,
		CleanedTitle: c.CleanedTitle,
		SourceLink:   c.SourceLink,
		Trusted:      scoring.IsTrustedLink(c.SourceLink),
		Score:        c.Score,
		Rank:         c.Rank,
		Phase:        c.Phase,
	}
	if len(c.Breakdown) > 0 {
		response.Breakdown = make([]responses.ScoreAdjustmentResponse, len(c.Breakdown))
		for i, adj := range c.Breakdown {
			response.Breakdown[i] = responses.ScoreAdjustmentResponse{Rule: adj.Rule, Delta: adj.Delta}
		}
	}
	return response
}

// ToCandidateResponses converts candidates, returning nil for none
func ToCandidateResponses(candidates []domain.Candidate) []responses.CandidateResponse {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]responses.CandidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = ToCandidateResponse(c)
	}
	return out
}

// ToConsensusResponse converts a reconciliation result
func ToConsensusResponse(result domain.ConsensusResult) *responses.ConsensusResponse {
	return &responses.ConsensusResponse{
		NeedsManualReview: result.NeedsManualReview,
		BestTranslation:   result.BestTranslation,
		Reason:            result.Reason,
	}
}

// ToLanguageResponses converts the supported language table
func ToLanguageResponses(languages []domain.LanguageContext) []responses.LanguageResponse {
	out := make([]responses.LanguageResponse, 0, len(languages))
	for _, l := range languages {
		out = append(out, responses.LanguageResponse{
			Code:           l.Code,
			Name:           l.Name,
			NativeName:     l.NativeName,
			DefaultCountry: l.DefaultCountry,
			Script:         string(l.Script),
		})
	}
	return out
}

// ToReviewItemResponse converts a review queue item
func ToReviewItemResponse(item *domain.ReviewItem) *responses.ReviewItemResponse {
	if item == nil {
		return nil
	}

	response := &responses.ReviewItemResponse{}
	_ = copier.Copy(response, item)
	response.Status = string(item.Status)
	return response
}

// ToReviewItemResponses converts many review items, skipping nils
func ToReviewItemResponses(items []*domain.ReviewItem) []responses.ReviewItemResponse {
	out := make([]responses.ReviewItemResponse, 0, len(items))
	for _, item := range items {
		if response := ToReviewItemResponse(item); response != nil {
			out = append(out, *response)
		}
	}
	return out
}
