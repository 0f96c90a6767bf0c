// ABOUTME: Provider interfaces for the external sources the engine consults
// ABOUTME: Search providers return result pages, translation providers return a single name

package interfaces

import (
	"context"

	"poi-translation-api/core/domain"
)

// SearchProvider runs a localized web search and returns the parsed results page
type SearchProvider interface {
	// Name identifies the provider in logs and metrics
	Name() string

	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
}

// TranslationProvider returns a single translated name for a POI.
// An empty string with a nil error means the provider has no translation.
type TranslationProvider interface {
	Source() domain.SourceID

	Translate(ctx context.Context, poiName, languageCode, countryCode string) (string, error)
}
