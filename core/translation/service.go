// ABOUTME: Translation service fans a POI out to every configured source and reconciles the answers
// ABOUTME: Each source runs concurrently under its own timeout; one failure never blocks the others

package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"poi-translation-api/core/consensus"
	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/locale"
)

// DefaultProviderTimeout bounds a model or maps provider call when no per-source timeout is set
const DefaultProviderTimeout = 10 * time.Second

// Searcher is the search-derived source
type Searcher interface {
	Translate(ctx context.Context, poiName, languageCode, countryCode string) (domain.TranslationDecision, error)
}

// Config tunes the translation service
type Config struct {
	// Timeouts overrides DefaultProviderTimeout per source
	Timeouts map[domain.SourceID]time.Duration

	DefaultTimeout time.Duration
}

// TranslationService orchestrates sources and consensus for one translation unit
type TranslationService struct {
	deps       interfaces.Dependencies
	searcher   Searcher
	providers  []interfaces.TranslationProvider
	reconciler interfaces.Reconciler
	config     Config
}

// NewTranslationService creates a new translation service. searcher may be nil,
// in which case the serp source is reported as missing.
func NewTranslationService(deps interfaces.Dependencies, searcher Searcher, providers []interfaces.TranslationProvider, reconciler interfaces.Reconciler, config Config) *TranslationService {
	if reconciler == nil {
		reconciler = consensus.NewReconciler()
	}
	if config.DefaultTimeout <= 0 {
		config.DefaultTimeout = DefaultProviderTimeout
	}
	return &TranslationService{
		deps:       deps.WithDefaults(),
		searcher:   searcher,
		providers:  providers,
		reconciler: reconciler,
		config:     config,
	}
}

// Sources lists the source IDs this service consults
func (s *TranslationService) Sources() []domain.SourceID {
	ids := make([]domain.SourceID, 0, len(s.providers)+1)
	if s.searcher != nil {
		ids = append(ids, domain.SourceSERP)
	}
	for _, p := range s.providers {
		ids = append(ids, p.Source())
	}
	return ids
}

// validateRequest checks the request before any provider is called
func validateRequest(req domain.TranslationRequest) error {
	if req.POIName == "" {
		return &coreerrors.ValidationError{Field: "poiName", Message: "must not be empty"}
	}
	if !locale.IsSupported(req.LanguageCode) {
		return &coreerrors.ValidationError{Field: "language", Message: fmt.Sprintf("unsupported language %q", req.LanguageCode)}
	}
	if req.CountryCode != "" && len(req.CountryCode) != 2 {
		return &coreerrors.ValidationError{Field: "country", Message: "must be a two-letter ISO code"}
	}
	return nil
}

// Translate queries every source concurrently and reconciles the results.
// It returns an error only for invalid input or when ctx is cancelled.
func (s *TranslationService) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	req = req.Normalized()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	country := locale.ResolveCountry(req.LanguageCode, req.CountryCode)

	s.deps.Logger.Info("Translating POI", map[string]interface{}{
		"poi":      req.POIName,
		"language": req.LanguageCode,
		"country":  country,
		"sources":  len(s.providers) + 1,
	})

	var (
		wg       sync.WaitGroup
		search   domain.TranslationDecision
		outcomes = make([]domain.SourceOutcome, len(s.providers))
		serp     *domain.SourceOutcome
	)

	if s.searcher != nil {
		serp = &domain.SourceOutcome{Source: domain.SourceSERP}
		wg.Add(1)
		go func() {
			defer wg.Done()
			search = s.runSearch(ctx, req.POIName, req.LanguageCode, country, serp)
		}()
	}

	for i, p := range s.providers {
		wg.Add(1)
		go func(i int, p interfaces.TranslationProvider) {
			defer wg.Done()
			outcomes[i] = s.runProvider(ctx, p, req.POIName, req.LanguageCode, country)
		}(i, p)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, coreerrors.WrapError(err, "translation cancelled")
	}

	if serp != nil {
		outcomes = append([]domain.SourceOutcome{*serp}, outcomes...)
	}

	result := &domain.TranslationResult{
		Request: req,
		Search:  search,
		Sources: outcomes,
	}
	result.Consensus = s.reconciler.Reconcile(result.SourceTexts())
	result.Decision = decide(result.Consensus, outcomes)

	s.deps.Metrics.ObserveDecision(string(result.Decision.Status), result.Decision.NeedsManualReview)
	s.deps.Logger.Info("Translation decided", map[string]interface{}{
		"poi":          req.POIName,
		"language":     req.LanguageCode,
		"status":       result.Decision.Status,
		"text":         result.Decision.Text,
		"manualReview": result.Decision.NeedsManualReview,
		"reason":       result.Decision.Reason,
	})

	return result, nil
}

func (s *TranslationService) runSearch(ctx context.Context, poiName, languageCode, country string, out *domain.SourceOutcome) (decision domain.TranslationDecision) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			decision = domain.TranslationDecision{Status: domain.StatusFailed, Reason: fmt.Sprintf("search panic: %v", r)}
		}
		out.DurationMs = time.Since(start).Milliseconds()
		out.Status = decision.Status
		switch decision.Status {
		case domain.StatusFound:
			out.Text = decision.Text
		case domain.StatusNotFound:
			out.Text = domain.SentinelNotFound
		default:
			out.Text = domain.SentinelFailed
			out.Error = decision.Reason
		}
		s.deps.Metrics.ObserveProviderCall(metricsLabel(domain.SourceSERP), string(out.Status), time.Since(start))
	}()

	var err error
	decision, err = s.searcher.Translate(ctx, poiName, languageCode, country)
	if err != nil {
		decision = domain.TranslationDecision{Status: domain.StatusFailed, Reason: err.Error()}
	}
	return decision
}

func (s *TranslationService) runProvider(ctx context.Context, p interfaces.TranslationProvider, poiName, languageCode, country string) (out domain.SourceOutcome) {
	source := p.Source()
	timeout := s.timeoutFor(source)
	out.Source = source

	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Status = domain.StatusFailed
			out.Text = domain.SentinelFailed
			out.Error = fmt.Sprintf("provider panic: %v", r)
		}
		out.DurationMs = time.Since(start).Milliseconds()
		s.deps.Metrics.ObserveProviderCall(metricsLabel(source), string(out.Status), time.Since(start))
	}()

	text, err := p.Translate(pctx, poiName, languageCode, country)
	text = strings.TrimSpace(text)

	switch {
	case err != nil:
		err = coreerrors.ClassifyProviderError(string(source), timeout, err)
		out.Status = domain.StatusFailed
		out.Text = domain.SentinelFailed
		out.Error = err.Error()
		s.deps.Logger.Warn("Translation provider failed", map[string]interface{}{
			"source": source,
			"poi":    poiName,
			"error":  err.Error(),
		})
	case text == "" || domain.IsFailureSentinel(text):
		out.Status = domain.StatusNotFound
		out.Text = domain.SentinelNotFound
	default:
		out.Status = domain.StatusFound
		out.Text = text
	}
	return out
}

// metricsLabel folds every OpenRouter model into one source label
func metricsLabel(source domain.SourceID) string {
	if source.IsOpenRouter() {
		return "openrouter"
	}
	return string(source)
}

func (s *TranslationService) timeoutFor(source domain.SourceID) time.Duration {
	if t, ok := s.config.Timeouts[source]; ok && t > 0 {
		return t
	}
	return s.config.DefaultTimeout
}

// decide turns a consensus result into the final decision
func decide(agreement domain.ConsensusResult, outcomes []domain.SourceOutcome) domain.TranslationDecision {
	decision := domain.TranslationDecision{
		Text:              agreement.BestTranslation,
		NeedsManualReview: agreement.NeedsManualReview,
		Reason:            agreement.Reason,
	}

	if decision.Text != "" {
		decision.Status = domain.StatusFound
		for _, o := range outcomes {
			if o.Status == domain.StatusFound && o.Text == decision.Text {
				decision.Source = string(o.Source)
				break
			}
		}
		return decision
	}

	decision.Status = domain.StatusFailed
	for _, o := range outcomes {
		if o.Status != domain.StatusFailed {
			decision.Status = domain.StatusNotFound
			break
		}
	}
	return decision
}
