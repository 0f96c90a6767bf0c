// ABOUTME: Review domain model represents a translation waiting for a human decision
// ABOUTME: Items are created when consensus fails and resolved with a final text

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the lifecycle state of a review item
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewResolved ReviewStatus = "resolved"
)

// ReviewItem is a queued manual review for one translation unit
type ReviewItem struct {
	ID              string            `json:"id"`
	POIName         string            `json:"poiName"`
	LanguageCode    string            `json:"language"`
	CountryCode     string            `json:"country,omitempty"`
	ProvisionalText string            `json:"provisionalText"`
	Reason          string            `json:"reason"`
	Sources         map[string]string `json:"sources,omitempty"`
	Status          ReviewStatus      `json:"status"`
	ResolvedText    string            `json:"resolvedText,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	ResolvedAt      *time.Time        `json:"resolvedAt,omitempty"`
}

// NewReviewItem builds a pending review item from a translation result
func NewReviewItem(result *TranslationResult) (*ReviewItem, error) {
	if result == nil {
		return nil, errors.New("result cannot be nil")
	}
	if !result.Decision.NeedsManualReview {
		return nil, errors.New("result does not need manual review")
	}

	sources := make(map[string]string, len(result.Sources))
	for _, s := range result.Sources {
		sources[string(s.Source)] = s.Text
	}

	return &ReviewItem{
		ID:              uuid.New().String(),
		POIName:         result.Request.POIName,
		LanguageCode:    result.Request.LanguageCode,
		CountryCode:     result.Request.CountryCode,
		ProvisionalText: result.Decision.Text,
		Reason:          result.Decision.Reason,
		Sources:         sources,
		Status:          ReviewPending,
		CreatedAt:       time.Now(),
	}, nil
}

// Resolve marks the item as resolved with the reviewer's final text
func (r *ReviewItem) Resolve(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("resolved text cannot be empty")
	}
	if r.Status == ReviewResolved {
		return errors.New("review item already resolved")
	}
	now := time.Now()
	r.Status = ReviewResolved
	r.ResolvedText = text
	r.ResolvedAt = &now
	return nil
}
