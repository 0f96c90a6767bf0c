// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"poi-translation-api/core/domain"
)

// Translator produces a reconciled translation for one POI and language
type Translator interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error)
}

// Reconciler decides between the outputs of several sources
type Reconciler interface {
	Reconcile(results map[domain.SourceID]string) domain.ConsensusResult
}
