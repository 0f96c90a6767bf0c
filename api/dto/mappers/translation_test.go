package mappers

import (
	"testing"
	"time"

	"poi-translation-api/core/domain"
	"poi-translation-api/core/locale"
)

func TestToTranslationResponse(t *testing.T) {
	result := &domain.TranslationResult{
		Request: domain.TranslationRequest{POIName: "Tokyo Tower", LanguageCode: "JA-JP", CountryCode: "JP"},
		Decision: domain.TranslationDecision{
			Text:   "東京タワー",
			Status: domain.StatusFound,
			Reason: "serp and perplexity agree",
			Source: "serp",
		},
		Search: domain.TranslationDecision{
			Candidates: []domain.Candidate{{
				RawTitle:  "東京タワー - Wikipedia",
				Score:     75,
				Rank:      1,
				Phase:     1,
				Breakdown: []domain.ScoreAdjustment{{Rule: "relevant", Delta: 30}},
			}},
		},
		Sources: []domain.SourceOutcome{
			{Source: domain.SourceSERP, Text: "東京タワー", Status: domain.StatusFound, DurationMs: 120},
			{Source: domain.SourcePerplexity, Text: domain.SentinelFailed, Status: domain.StatusFailed, Error: "timeout"},
		},
	}

	response := ToTranslationResponse(result)

	if response.Translation != "東京タワー" || response.Status != "found" || response.Language != "JA-JP" {
		t.Errorf("unexpected response header fields: %+v", response)
	}
	if len(response.Sources) != 2 || response.Sources[1].Error != "timeout" || response.Sources[0].DurationMs != 120 {
		t.Errorf("Sources = %+v", response.Sources)
	}
	if len(response.Candidates) != 1 || response.Candidates[0].Breakdown[0].Delta != 30 {
		t.Errorf("Candidates = %+v", response.Candidates)
	}
}

func TestToTranslationResponse_Nil(t *testing.T) {
	if ToTranslationResponse(nil) != nil {
		t.Error("expected nil for nil result")
	}
}

func TestToCandidateResponse_Trusted(t *testing.T) {
	tests := map[string]bool{
		"https://ja.wikipedia.org/wiki/x": true,
		"https://www.google.com/search":   false,
		"not a url":                       false,
	}
	for link, want := range tests {
		if got := ToCandidateResponse(domain.Candidate{SourceLink: link}).Trusted; got != want {
			t.Errorf("Trusted for %q = %v, want %v", link, got, want)
		}
	}
}

func TestToCandidateResponses_Empty(t *testing.T) {
	if got := ToCandidateResponses(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestToReviewItemResponse(t *testing.T) {
	resolvedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	item := &domain.ReviewItem{
		ID:              "abc",
		POIName:         "Tokyo Tower",
		LanguageCode:    "JA-JP",
		CountryCode:     "JP",
		ProvisionalText: "東京タワー",
		Reason:          "sources disagree",
		Sources:         map[string]string{"serp": "東京タワー", "openai": "トウキョウタワー"},
		Status:          domain.ReviewResolved,
		ResolvedText:    "東京タワー",
		CreatedAt:       resolvedAt.Add(-time.Hour),
		ResolvedAt:      &resolvedAt,
	}

	response := ToReviewItemResponse(item)

	if response.ID != "abc" || response.LanguageCode != "JA-JP" || response.ProvisionalText != "東京タワー" {
		t.Errorf("fields not copied: %+v", response)
	}
	if response.Status != "resolved" {
		t.Errorf("Status = %q", response.Status)
	}
	if response.Sources["openai"] != "トウキョウタワー" {
		t.Errorf("Sources = %v", response.Sources)
	}
	if response.ResolvedAt == nil || !response.ResolvedAt.Equal(resolvedAt) {
		t.Errorf("ResolvedAt = %v", response.ResolvedAt)
	}
}

func TestToReviewItemResponses_SkipsNil(t *testing.T) {
	got := ToReviewItemResponses([]*domain.ReviewItem{nil, {ID: "x", Status: domain.ReviewPending}})
	if len(got) != 1 || got[0].Status != "pending" {
		t.Errorf("got %+v", got)
	}
}

func TestToLanguageResponses(t *testing.T) {
	got := ToLanguageResponses(locale.Supported())
	if len(got) != len(locale.Supported()) {
		t.Fatalf("len = %d", len(got))
	}
	for _, l := range got {
		if l.Code == "" || l.Name == "" || l.Script == "" {
			t.Errorf("incomplete language %+v", l)
		}
	}
}
