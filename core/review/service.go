// ABOUTME: Review service queues translations that need a human decision
// ABOUTME: Wraps the review queue storage with item construction and ID validation

package review

import (
	"context"
	"strings"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"github.com/google/uuid"
)

// DefaultListLimit caps List when the caller passes no limit
const DefaultListLimit = 50

// ReviewService handles manual review operations
type ReviewService struct {
	queue  interfaces.ReviewQueue
	logger interfaces.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(queue interfaces.ReviewQueue, logger interfaces.Logger) *ReviewService {
	if logger == nil {
		logger = interfaces.NoopLogger{}
	}
	return &ReviewService{
		queue:  queue,
		logger: logger,
	}
}

// EnqueueIfNeeded stores a review item when the result needs manual review.
// It returns nil, nil for results that were decided automatically.
func (s *ReviewService) EnqueueIfNeeded(ctx context.Context, result *domain.TranslationResult) (*domain.ReviewItem, error) {
	if result == nil || !result.Decision.NeedsManualReview {
		return nil, nil
	}

	item, err := domain.NewReviewItem(result)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, item); err != nil {
		return nil, coreerrors.WrapError(err, "failed to enqueue review item")
	}

	s.logger.Info("Queued translation for manual review", map[string]interface{}{
		"id":       item.ID,
		"poi":      item.POIName,
		"language": item.LanguageCode,
		"reason":   item.Reason,
	})
	return item, nil
}

// Get retrieves a review item by ID
func (s *ReviewService) Get(ctx context.Context, id string) (*domain.ReviewItem, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.queue.Get(ctx, id)
}

// List returns review items with the given status, newest first
func (s *ReviewService) List(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.ReviewItem, error) {
	switch status {
	case "", domain.ReviewPending, domain.ReviewResolved:
	default:
		return nil, &coreerrors.ValidationError{Field: "status", Message: "must be pending or resolved"}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.queue.List(ctx, status, limit)
}

// Resolve records the reviewer's final text for an item
func (s *ReviewService) Resolve(ctx context.Context, id, text string) (*domain.ReviewItem, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &coreerrors.ValidationError{Field: "text", Message: "cannot be empty"}
	}

	item, err := s.queue.Resolve(ctx, id, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Review item resolved", map[string]interface{}{
		"id":   item.ID,
		"text": item.ResolvedText,
	})
	return item, nil
}

func validateID(id string) error {
	if id == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &coreerrors.ValidationError{Field: "id", Message: "invalid review ID format"}
	}
	return nil
}
