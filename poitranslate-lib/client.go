// ABOUTME: Main client for the POI translation library
// ABOUTME: Runs the consensus engine in-process without the HTTP server

package poitranslate

import (
	"context"
	"io"
	"sync"

	"poi-translation-api/core/consensus"
	"poi-translation-api/core/domain"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/locale"
	"poi-translation-api/core/review"
	"poi-translation-api/core/scoring"
	"poi-translation-api/core/search"
	"poi-translation-api/core/translation"
	"poi-translation-api/core/workers"
	"poi-translation-api/pkg/featureflags"
)

// Client is the main entry point for the library
type Client struct {
	translator *translation.TranslationService
	reconciler *consensus.Reconciler
	reviews    *review.ReviewService
	config     Config

	mu     sync.Mutex
	worker *workers.TranslationWorker
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	if err := WithDefaultDependencies()(&config); err != nil {
		return nil, err
	}
	if config.SearchProvider == nil && len(config.Providers) == 0 {
		return nil, ErrNoSources
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	ctx := context.Background()
	var searcher translation.Searcher
	if config.SearchProvider != nil {
		searchConfig := config.SearchConfig
		searchConfig.CacheResponses = searchConfig.CacheResponses && config.Flags.IsEnabled(ctx, featureflags.SearchCacheEnabled)
		searcher = search.NewSearchService(deps, config.SearchProvider, searchConfig)
	}

	reconciler := consensus.NewReconciler()
	client := &Client{
		translator: translation.NewTranslationService(deps, searcher, config.Providers, reconciler, translation.Config{}),
		reconciler: reconciler,
		config:     config,
	}
	if config.ReviewQueue != nil && config.Flags.IsEnabled(ctx, featureflags.ReviewQueueEnabled) {
		client.reviews = review.NewReviewService(config.ReviewQueue, config.Logger)
	}
	return client, nil
}

// Close stops the batch workers and closes the review queue if it is closable
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	var firstErr error
	if c.worker != nil {
		firstErr = c.worker.Stop()
	}
	if closer, ok := c.config.ReviewQueue.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Sources lists the configured source IDs
func (c *Client) Sources() []string {
	ids := c.translator.Sources()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// Translate translates one POI name and queues it for review when needed
func (c *Client) Translate(ctx context.Context, poiName, language, country string) (*Result, error) {
	res, err := c.translator.Translate(ctx, Request{POIName: poiName, Language: language, Country: country}.toDomain())
	if err != nil {
		return nil, wrapError(err)
	}
	return c.finish(ctx, res), nil
}

// TranslateBatch translates every request on the worker pool. Results are in
// request order; a failed unit has a nil result and its error at the same index.
func (c *Client) TranslateBatch(ctx context.Context, requests []Request) ([]*Result, []error) {
	worker, err := c.ensureWorker()
	if err != nil {
		errs := make([]error, len(requests))
		for i := range errs {
			errs[i] = err
		}
		return make([]*Result, len(requests)), errs
	}

	reqs := make([]domain.TranslationRequest, len(requests))
	for i, r := range requests {
		reqs[i] = r.toDomain()
	}

	results, errs := worker.TranslateBatch(ctx, reqs)
	out := make([]*Result, len(results))
	for i, res := range results {
		if errs[i] != nil {
			errs[i] = wrapError(errs[i])
			continue
		}
		if res != nil {
			out[i] = c.finish(ctx, res)
		}
	}
	return out, errs
}

func (c *Client) ensureWorker() (*workers.TranslationWorker, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClientClosed
	}
	if c.worker == nil {
		w := workers.NewTranslationWorker(c.translator, c.config.Logger, c.config.WorkerConfig)
		if err := w.Start(); err != nil {
			return nil, wrapError(err)
		}
		c.worker = w
	}
	return c.worker, nil
}

// finish converts a result and enqueues it when the review queue is on
func (c *Client) finish(ctx context.Context, res *domain.TranslationResult) *Result {
	out := resultFromDomain(res)
	if c.reviews == nil {
		return out
	}
	item, err := c.reviews.EnqueueIfNeeded(ctx, res)
	if err != nil {
		c.config.Logger.Warn("Failed to queue review item", map[string]interface{}{
			"poi":   res.Request.POIName,
			"error": err.Error(),
		})
		return out
	}
	if item != nil {
		out.ReviewID = item.ID
	}
	return out
}

// Reconcile applies the consensus rules to texts keyed by source ID
func (c *Client) Reconcile(sources map[string]string) Consensus {
	in := make(map[domain.SourceID]string, len(sources))
	for k, v := range sources {
		in[domain.SourceID(k)] = v
	}
	r := c.reconciler.Reconcile(in)
	return Consensus{NeedsManualReview: r.NeedsManualReview, BestTranslation: r.BestTranslation, Reason: r.Reason}
}

// ScoreCandidates scores search results as translation candidates without
// the position bonus. best is nil when no candidate scored above zero.
func (c *Client) ScoreCandidates(poiName, language, country string, results []SearchResult) (candidates []Candidate, best *Candidate, err error) {
	req := Request{POIName: poiName, Language: language, Country: country}.toDomain()
	if req.POIName == "" {
		return nil, nil, NewError(ErrorTypeValidation, "poiName must not be blank")
	}
	if !locale.IsSupported(req.LanguageCode) {
		return nil, nil, NewError(ErrorTypeValidation, "unsupported language "+req.LanguageCode)
	}

	in := make([]domain.SearchResult, len(results))
	for i, r := range results {
		in[i] = domain.SearchResult{Title: r.Title, Link: r.Link, Snippet: r.Snippet}
	}

	country = locale.ResolveCountry(req.LanguageCode, req.CountryCode)
	scored := scoring.ScoreAll(in, req.POIName, req.LanguageCode, country, scoring.Options{})

	candidates = make([]Candidate, len(scored))
	for i, s := range scored {
		candidates[i] = candidateFromDomain(s)
	}
	if b, ok := scoring.SelectBest(scored); ok {
		cand := candidateFromDomain(b)
		best = &cand
	}
	return candidates, best, nil
}

// Languages lists the supported target languages
func (c *Client) Languages() []Language {
	supported := locale.Supported()
	out := make([]Language, len(supported))
	for i, l := range supported {
		out[i] = Language{Code: l.Code, Name: l.Name, NativeName: l.NativeName, DefaultCountry: l.DefaultCountry}
	}
	return out
}

// PendingReviews lists pending review items
func (c *Client) PendingReviews(ctx context.Context, limit int) ([]Review, error) {
	if c.reviews == nil {
		return nil, ErrNoReviewQueue
	}
	items, err := c.reviews.List(ctx, domain.ReviewPending, limit)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]Review, len(items))
	for i, item := range items {
		out[i] = reviewFromDomain(item)
	}
	return out, nil
}

// ResolveReview records the reviewer's final text
func (c *Client) ResolveReview(ctx context.Context, id, text string) (*Review, error) {
	if c.reviews == nil {
		return nil, ErrNoReviewQueue
	}
	item, err := c.reviews.Resolve(ctx, id, text)
	if err != nil {
		return nil, wrapError(err)
	}
	r := reviewFromDomain(item)
	return &r, nil
}
