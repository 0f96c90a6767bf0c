package poitranslate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"poi-translation-api/core/domain"
	"poi-translation-api/pkg/featureflags"
)

type fakeProvider struct {
	source domain.SourceID
	text   string
	err    error
}

func (f fakeProvider) Source() domain.SourceID { return f.source }

func (f fakeProvider) Translate(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
	return f.text, f.err
}

type fakeSearch struct {
	resp *domain.SearchResponse
}

func (f fakeSearch) Name() string { return "fake" }

func (f fakeSearch) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error) {
	return f.resp, nil
}

// memoryQueue is an in-memory review queue
type memoryQueue struct {
	mu     sync.Mutex
	items  map[string]*domain.ReviewItem
	closed bool
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{items: map[string]*domain.ReviewItem{}}
}

func (q *memoryQueue) Enqueue(ctx context.Context, item *domain.ReviewItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items[item.ID] = item
	return nil
}

func (q *memoryQueue) Get(ctx context.Context, id string) (*domain.ReviewItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if item, ok := q.items[id]; ok {
		return item, nil
	}
	return nil, errors.New("missing")
}

func (q *memoryQueue) List(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.ReviewItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*domain.ReviewItem
	for _, item := range q.items {
		if status == "" || item.Status == status {
			out = append(out, item)
		}
	}
	return out, nil
}

func (q *memoryQueue) Resolve(ctx context.Context, id, text string) (*domain.ReviewItem, error) {
	item, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, item.Resolve(text)
}

func (q *memoryQueue) Close() error {
	q.closed = true
	return nil
}

// panelSearch answers every query with a knowledge panel titled title
func panelSearch(title string) fakeSearch {
	return fakeSearch{resp: &domain.SearchResponse{
		KnowledgePanel: &domain.KnowledgePanel{Title: title},
	}}
}

func TestNewClient_RequiresSource(t *testing.T) {
	_, err := NewClient(WithQuietMode())
	if !IsConfigurationError(err) {
		t.Errorf("expected configuration error, got %v", err)
	}

	_, err = NewClient(WithTranslationProviders(nil))
	if !IsConfigurationError(err) {
		t.Errorf("expected configuration error for nil provider, got %v", err)
	}
}

func TestClient_TranslateAgreement(t *testing.T) {
	client, err := NewClient(
		WithQuietMode(),
		WithSearchProvider(panelSearch("東京タワー")),
		WithTranslationProviders(fakeProvider{source: domain.SourcePerplexity, text: "東京タワー"}),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	got, err := client.Translate(context.Background(), "Tokyo Tower", "ja-jp", "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !got.Found() || got.Translation != "東京タワー" || got.NeedsManualReview {
		t.Errorf("result = %+v", got)
	}
	if len(client.Sources()) != 2 {
		t.Errorf("Sources() = %v", client.Sources())
	}
}

func TestClient_TranslateQueuesDisagreement(t *testing.T) {
	queue := newMemoryQueue()
	client, err := NewClient(
		WithQuietMode(),
		WithReviewQueue(queue),
		WithSearchProvider(panelSearch("東京タワー")),
		WithTranslationProviders(fakeProvider{source: domain.SourcePerplexity, text: "トウキョウタワー"}),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := client.Translate(context.Background(), "Tokyo Tower", "JA-JP", "JP")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !got.NeedsManualReview || got.ReviewID == "" {
		t.Fatalf("expected queued review, got %+v", got)
	}

	pending, err := client.PendingReviews(context.Background(), 10)
	if err != nil || len(pending) != 1 {
		t.Fatalf("PendingReviews = %v, %v", pending, err)
	}

	resolved, err := client.ResolveReview(context.Background(), got.ReviewID, "東京タワー")
	if err != nil {
		t.Fatalf("ResolveReview: %v", err)
	}
	if resolved.Status != "resolved" || resolved.ResolvedText != "東京タワー" {
		t.Errorf("resolved = %+v", resolved)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if !queue.closed {
		t.Error("Close should close the review queue")
	}
}

func TestClient_ReviewQueueFlagOff(t *testing.T) {
	queue := newMemoryQueue()
	client, err := NewClient(
		WithQuietMode(),
		WithReviewQueue(queue),
		WithFeatureFlags(map[featureflags.FeatureFlag]bool{featureflags.ReviewQueueEnabled: false}),
		WithSearchProvider(panelSearch("東京タワー")),
		WithTranslationProviders(fakeProvider{source: domain.SourcePerplexity, text: "トウキョウタワー"}),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := client.Translate(context.Background(), "Tokyo Tower", "JA-JP", "JP")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !got.NeedsManualReview || got.ReviewID != "" {
		t.Errorf("expected review flag without a queued item, got %+v", got)
	}
	if len(queue.items) != 0 {
		t.Errorf("queue holds %d items, want 0", len(queue.items))
	}
	if _, err := client.PendingReviews(context.Background(), 5); err != ErrNoReviewQueue {
		t.Errorf("PendingReviews err = %v, want ErrNoReviewQueue", err)
	}

	client.Close()
	if !queue.closed {
		t.Error("Close should still close the configured queue")
	}
}

func TestDefaultFlags(t *testing.T) {
	config := defaultConfig()
	ctx := context.Background()
	if !config.Flags.IsEnabled(ctx, featureflags.SearchCacheEnabled) || !config.Flags.IsEnabled(ctx, featureflags.ReviewQueueEnabled) {
		t.Errorf("default flags = %v", config.Flags.GetAllFlags())
	}

	if err := WithFeatureFlags(map[featureflags.FeatureFlag]bool{featureflags.SearchCacheEnabled: false})(&config); err != nil {
		t.Fatal(err)
	}
	if config.Flags.IsEnabled(ctx, featureflags.SearchCacheEnabled) {
		t.Error("override not applied")
	}
	if !config.Flags.IsEnabled(ctx, featureflags.ReviewQueueEnabled) {
		t.Error("unnamed flag lost its default")
	}
}

func TestClient_TranslateValidation(t *testing.T) {
	client, _ := NewClient(WithQuietMode(), WithTranslationProviders(fakeProvider{source: domain.SourceOpenAI, text: "x"}))

	_, err := client.Translate(context.Background(), "Tokyo Tower", "XX-XX", "")
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestClient_TranslateBatch(t *testing.T) {
	client, err := NewClient(
		WithQuietMode(),
		WithTranslationProviders(
			fakeProvider{source: domain.SourcePerplexity, text: "東京タワー"},
			fakeProvider{source: domain.SourceOpenAI, text: "東京タワー"},
		),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, errs := client.TranslateBatch(ctx, []Request{
		{POIName: "Tokyo Tower", Language: "JA-JP"},
		{POIName: "", Language: "JA-JP"},
	})

	if errs[0] != nil || results[0] == nil {
		t.Fatalf("first unit failed: %v", errs[0])
	}
	// no serp source, so the primaries cannot agree
	if !results[0].NeedsManualReview || results[0].Translation != "東京タワー" {
		t.Errorf("first result = %+v", results[0])
	}
	if !IsValidationError(errs[1]) {
		t.Errorf("expected validation error for empty POI, got %v", errs[1])
	}
}

func TestClient_BatchAfterClose(t *testing.T) {
	client, _ := NewClient(WithQuietMode(), WithTranslationProviders(fakeProvider{source: domain.SourceOpenAI, text: "x"}))
	client.Close()

	_, errs := client.TranslateBatch(context.Background(), []Request{{POIName: "a", Language: "JA-JP"}})
	if errs[0] != ErrClientClosed {
		t.Errorf("err = %v, want ErrClientClosed", errs[0])
	}
}

func TestClient_ReconcileAndScore(t *testing.T) {
	client, _ := NewClient(WithQuietMode(), WithTranslationProviders(fakeProvider{source: domain.SourceOpenAI}))

	c := client.Reconcile(map[string]string{"serp": "A", "perplexity": "a"})
	if !c.NeedsManualReview || c.BestTranslation != "A" {
		t.Errorf("Reconcile = %+v", c)
	}

	candidates, best, err := client.ScoreCandidates("Zoo Aquarium de Madrid", "EN-US", "ES", []SearchResult{
		{Title: "Zoo Aquarium de Madrid - Wikipedia", Link: "https://en.wikipedia.org/wiki/Zoo_Aquarium_de_Madrid"},
	})
	if err != nil {
		t.Fatalf("ScoreCandidates: %v", err)
	}
	if len(candidates) != 1 || best == nil || best.Breakdown["relevant"] == 0 {
		t.Errorf("candidates = %+v best = %+v", candidates, best)
	}

	if _, _, err := client.ScoreCandidates("x", "XX", "", nil); !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	if _, _, err := client.ScoreCandidates("  ", "JA-JP", "", nil); !IsValidationError(err) {
		t.Errorf("blank POI: expected validation error, got %v", err)
	}

	if len(client.Languages()) != 14 {
		t.Errorf("Languages() = %d", len(client.Languages()))
	}
}

func TestClient_ReviewWithoutQueue(t *testing.T) {
	client, _ := NewClient(WithQuietMode(), WithTranslationProviders(fakeProvider{source: domain.SourceOpenAI}))

	if _, err := client.PendingReviews(context.Background(), 5); err != ErrNoReviewQueue {
		t.Errorf("err = %v", err)
	}
	if _, err := client.ResolveReview(context.Background(), "id", "x"); err != ErrNoReviewQueue {
		t.Errorf("err = %v", err)
	}
}

func TestWrapError(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("nil should stay nil")
	}
	if !IsConfigurationError(wrapError(ErrNoSources)) {
		t.Error("library errors pass through")
	}
	if !isType(wrapError(errors.New("boom")), ErrorTypeInternal) {
		t.Error("unknown errors are internal")
	}
}
