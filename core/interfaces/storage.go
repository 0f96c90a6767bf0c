// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"poi-translation-api/core/domain"
)

// ReviewQueue persists translations waiting for manual review
type ReviewQueue interface {
	// Enqueue stores a new pending review item
	Enqueue(ctx context.Context, item *domain.ReviewItem) error

	// Get retrieves an item by ID; returns a NotFoundError if it does not exist
	Get(ctx context.Context, id string) (*domain.ReviewItem, error)

	// List returns items with the given status, newest first. An empty status lists all.
	List(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.ReviewItem, error)

	// Resolve records the reviewer's final text
	Resolve(ctx context.Context, id, text string) (*domain.ReviewItem, error)
}
