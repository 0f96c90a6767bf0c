// ABOUTME: Source identifiers and failure sentinels shared by providers and the consensus checker
// ABOUTME: Sentinel strings mark a source result that must not be treated as a translation

package domain

import "strings"

// SourceID identifies a translation source
type SourceID string

const (
	SourceSERP       SourceID = "serp"
	SourcePerplexity SourceID = "perplexity"
	SourceOpenAI     SourceID = "openai"
	SourceGoogleMaps SourceID = "google_maps"

	// openRouterPrefix is joined with a model name, e.g. "openrouter:anthropic/claude-3.5-sonnet"
	openRouterPrefix = "openrouter:"
)

// OpenRouterSource returns the SourceID for an OpenRouter model
func OpenRouterSource(model string) SourceID {
	return SourceID(openRouterPrefix + model)
}

// IsOpenRouter reports whether id names an OpenRouter model
func (id SourceID) IsOpenRouter() bool {
	return strings.HasPrefix(string(id), openRouterPrefix)
}

// Failure sentinels returned in place of a translation
const (
	SentinelFailed       = "Translation failed"
	SentinelNotFound     = "Translation not found"
	SentinelNotAvailable = "Translation not available"
	SentinelError        = "Translation Error"
)

var sentinels = map[string]struct{}{
	SentinelFailed:       {},
	SentinelNotFound:     {},
	SentinelNotAvailable: {},
	SentinelError:        {},
}

// IsFailureSentinel reports whether text equals one of the failure sentinels
func IsFailureSentinel(text string) bool {
	_, ok := sentinels[strings.TrimSpace(text)]
	return ok
}

// SourceOutcome is what a single source produced for a translation unit
type SourceOutcome struct {
	Source     SourceID       `json:"source"`
	Text       string         `json:"text"`
	Status     DecisionStatus `json:"status"`
	Error      string         `json:"error,omitempty"`
	DurationMs int64          `json:"durationMs"`
}
