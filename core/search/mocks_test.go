package search

import (
	"context"
	"sync"
	"time"

	"poi-translation-api/core/domain"
)

// mockSearchProvider is a mock implementation of the SearchProvider interface
type mockSearchProvider struct {
	mu         sync.Mutex
	queries    []domain.SearchQuery
	searchFunc func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
}

func (m *mockSearchProvider) Name() string {
	return "mock"
}

func (m *mockSearchProvider) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return &domain.SearchResponse{}, nil
}

func (m *mockSearchProvider) calls() []domain.SearchQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.SearchQuery, len(m.queries))
	copy(out, m.queries)
	return out
}

// phased returns a searchFunc that answers the first call with phase1 and later calls with phase2
func phased(phase1, phase2 *domain.SearchResponse, phase2Err error) func(context.Context, domain.SearchQuery) (*domain.SearchResponse, error) {
	var mu sync.Mutex
	calls := 0
	return func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			return phase1, nil
		}
		return phase2, phase2Err
	}
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}
