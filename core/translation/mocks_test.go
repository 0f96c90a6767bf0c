package translation

import (
	"context"
	"sync"
	"time"

	"poi-translation-api/core/domain"
)

// mockSearcher is a mock implementation of the Searcher interface
type mockSearcher struct {
	translateFunc func(ctx context.Context, poiName, languageCode, countryCode string) (domain.TranslationDecision, error)
}

func (m *mockSearcher) Translate(ctx context.Context, poiName, languageCode, countryCode string) (domain.TranslationDecision, error) {
	if m.translateFunc != nil {
		return m.translateFunc(ctx, poiName, languageCode, countryCode)
	}
	return domain.TranslationDecision{Status: domain.StatusNotFound}, nil
}

func foundSearch(text string) *mockSearcher {
	return &mockSearcher{
		translateFunc: func(ctx context.Context, poiName, languageCode, countryCode string) (domain.TranslationDecision, error) {
			return domain.TranslationDecision{Text: text, Status: domain.StatusFound, Source: "knowledge_panel", Phase: 1}, nil
		},
	}
}

// mockProvider is a mock implementation of the TranslationProvider interface
type mockProvider struct {
	source        domain.SourceID
	mu            sync.Mutex
	calls         int
	lastCountry   string
	translateFunc func(ctx context.Context, poiName, languageCode, countryCode string) (string, error)
}

func (m *mockProvider) Source() domain.SourceID {
	return m.source
}

func (m *mockProvider) Translate(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastCountry = countryCode
	m.mu.Unlock()

	if m.translateFunc != nil {
		return m.translateFunc(ctx, poiName, languageCode, countryCode)
	}
	return "", nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func returning(source domain.SourceID, text string, err error) *mockProvider {
	return &mockProvider{
		source: source,
		translateFunc: func(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
			return text, err
		},
	}
}

// blocking returns a provider that waits for ctx to end
func blocking(source domain.SourceID) *mockProvider {
	return &mockProvider{
		source: source,
		translateFunc: func(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
}

// mockMetrics records decisions
type mockMetrics struct {
	mu        sync.Mutex
	calls     map[string]string
	decisions []string
}

func (m *mockMetrics) ObserveProviderCall(source, outcome string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]string)
	}
	m.calls[source] = outcome
}

func (m *mockMetrics) ObserveSearchPhase(phase int, status string) {}

func (m *mockMetrics) ObserveDecision(status string, review bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, status)
}

func (m *mockMetrics) ObserveCacheLookup(hit bool) {}
