// ABOUTME: Search service finds a POI translation by scoring localized web search results
// ABOUTME: Runs a bare-name query first and broadens with the country name when results are weak

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/language"
	"poi-translation-api/core/locale"
	"poi-translation-api/core/scoring"
)

const (
	// DefaultAcceptThreshold is the Phase 1 score at or above which Phase 2 is skipped
	DefaultAcceptThreshold = 50

	// DefaultMaxResults is how many organic results are scored per phase
	DefaultMaxResults = 10

	// DefaultTimeout bounds each search query
	DefaultTimeout = 5 * time.Second

	// DefaultCacheTTL is how long raw search responses are cached
	DefaultCacheTTL = 24 * time.Hour

	maxPanelLength = 100
	maxPOILength   = 200
)

// Decision sources
const (
	SourceKnowledgePanel = "knowledge_panel"
	SourceDirectAnswer   = "answer_box"
	SourceOrganic        = "organic"
)

// Config tunes the search strategy
type Config struct {
	Timeout         time.Duration
	AcceptThreshold int
	MaxResults      int

	// CacheResponses stores raw search responses in deps.Cache
	CacheResponses bool
	CacheTTL       time.Duration
}

// DefaultConfig returns the standard search settings
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		AcceptThreshold: DefaultAcceptThreshold,
		MaxResults:      DefaultMaxResults,
		CacheResponses:  true,
		CacheTTL:        DefaultCacheTTL,
	}
}

// SearchService runs the progressive search strategy against one search provider
type SearchService struct {
	deps     interfaces.Dependencies
	provider interfaces.SearchProvider
	config   Config
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, provider interfaces.SearchProvider, config Config) *SearchService {
	defaults := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.AcceptThreshold <= 0 {
		config.AcceptThreshold = defaults.AcceptThreshold
	}
	if config.MaxResults <= 0 {
		config.MaxResults = defaults.MaxResults
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = defaults.CacheTTL
	}

	return &SearchService{
		deps:     deps.WithDefaults(),
		provider: provider,
		config:   config,
	}
}

// validateRequest validates the POI name and language
func (s *SearchService) validateRequest(poiName, languageCode string) error {
	if poiName == "" {
		return &coreerrors.ValidationError{Field: "poiName", Message: "must not be empty"}
	}

	if utf8.RuneCountInString(poiName) > maxPOILength {
		return &coreerrors.ValidationError{Field: "poiName", Message: fmt.Sprintf("cannot exceed %d characters", maxPOILength)}
	}

	if !locale.IsSupported(languageCode) {
		return &coreerrors.ValidationError{Field: "language", Message: fmt.Sprintf("unsupported language %q", languageCode)}
	}

	return nil
}

// Translate searches for poiName in the target language. Invalid input is
// returned as an error; provider failures, timeouts and cancellation are
// folded into a decision with StatusFailed.
func (s *SearchService) Translate(ctx context.Context, poiName, languageCode, countryCode string) (domain.TranslationDecision, error) {
	poiName = strings.TrimSpace(poiName)
	if err := s.validateRequest(poiName, languageCode); err != nil {
		return domain.TranslationDecision{}, err
	}
	if s.provider == nil {
		return domain.TranslationDecision{}, &coreerrors.ValidationError{Field: "provider", Message: "search provider not configured"}
	}

	lang, _ := locale.Lookup(languageCode)
	country := locale.ResolveCountry(lang.Code, countryCode)

	decision := s.run(ctx, poiName, lang.Code, country)
	s.deps.Metrics.ObserveSearchPhase(decision.Phase, string(decision.Status))
	return decision, nil
}

func (s *SearchService) run(ctx context.Context, poiName, languageCode, country string) domain.TranslationDecision {
	// Phase 1: bare POI name
	resp, err := s.search(ctx, domain.SearchQuery{Text: poiName, LanguageCode: languageCode, CountryCode: country})
	if err != nil {
		return failed(1, "phase 1 search failed: "+err.Error())
	}

	if d, ok := s.fromKnowledgePanel(resp, poiName, languageCode, country); ok {
		return d
	}
	if d, ok := s.fromDirectAnswer(resp, poiName); ok {
		return d
	}

	phase1 := s.scoreResults(resp.Results, 1, poiName, languageCode, country)
	best1, ok1 := selectTranslated(phase1, poiName)
	if ok1 && best1.Score >= s.config.AcceptThreshold {
		return found(best1, phase1, fmt.Sprintf("phase 1 organic result #%d scored %d", best1.Rank, best1.Score))
	}

	if err := ctx.Err(); err != nil {
		return failed(1, "cancelled before phase 2: "+err.Error())
	}

	// Phase 2: broaden with the country name in the target language
	broadened := poiName + " " + locale.LocalizedCountryName(country, languageCode)
	resp2, err := s.search(ctx, domain.SearchQuery{Text: broadened, LanguageCode: languageCode, CountryCode: country})
	if err != nil {
		if ctx.Err() != nil {
			return failed(2, "cancelled during phase 2: "+ctx.Err().Error())
		}
		if ok1 {
			s.deps.Logger.Warn("Phase 2 search failed, keeping phase 1 result", map[string]interface{}{
				"poi":   poiName,
				"error": err.Error(),
			})
			return found(best1, phase1, fmt.Sprintf("phase 1 organic result #%d scored %d (phase 2 failed)", best1.Rank, best1.Score))
		}
		return failed(2, "phase 2 search failed: "+err.Error())
	}

	phase2 := s.scoreResults(resp2.Results, 2, poiName, languageCode, country)
	all := append(append(make([]domain.Candidate, 0, len(phase1)+len(phase2)), phase1...), phase2...)
	best2, ok2 := selectTranslated(phase2, poiName)

	switch {
	case ok2 && (!ok1 || best2.Score > best1.Score):
		return found(best2, all, fmt.Sprintf("phase 2 organic result #%d scored %d", best2.Rank, best2.Score))
	case ok1:
		return found(best1, all, fmt.Sprintf("phase 1 organic result #%d scored %d", best1.Rank, best1.Score))
	default:
		return domain.TranslationDecision{
			Status:     domain.StatusNotFound,
			Reason:     "no candidate scored above zero",
			Phase:      2,
			Candidates: all,
		}
	}
}

// search runs one query under the configured timeout, consulting the cache first
func (s *SearchService) search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	cacheKey := fmt.Sprintf("search:%s:%s:%s:%s", s.provider.Name(), strings.ToLower(query.LanguageCode), strings.ToLower(query.CountryCode), query.Text)

	// Check cache first
	if s.config.CacheResponses && s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, cacheKey)
		if err == nil && data != nil {
			var cached domain.SearchResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				s.deps.Metrics.ObserveCacheLookup(true)
				return &cached, nil
			}
		}
		s.deps.Metrics.ObserveCacheLookup(false)
	}

	searchCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.Search(searchCtx, query)
	if err == nil && resp == nil {
		err = &coreerrors.ProviderError{Provider: s.provider.Name(), Message: "empty response"}
	}
	if err != nil {
		err = coreerrors.ClassifyProviderError(s.provider.Name(), s.config.Timeout, err)
		s.deps.Logger.Warn("Search query failed", map[string]interface{}{
			"provider": s.provider.Name(),
			"query":    query.Text,
			"language": query.LanguageCode,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.deps.Logger.Debug("Search query completed", map[string]interface{}{
		"provider": s.provider.Name(),
		"query":    query.Text,
		"results":  len(resp.Results),
		"duration": time.Since(start).String(),
	})

	// Cache raw responses for 24 hours
	if s.config.CacheResponses && s.deps.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.config.CacheTTL)
		}
	}

	return resp, nil
}

func (s *SearchService) fromKnowledgePanel(resp *domain.SearchResponse, poiName, languageCode, country string) (domain.TranslationDecision, bool) {
	if resp.KnowledgePanel == nil {
		return domain.TranslationDecision{}, false
	}

	for _, text := range []string{resp.KnowledgePanel.Title, resp.KnowledgePanel.Name} {
		text = strings.TrimSpace(text)
		if text == "" || text == poiName {
			continue
		}
		if utf8.RuneCountInString(text) >= maxPanelLength || scoring.HasDictionaryMarker(text) {
			continue
		}
		class := language.Classify(text, languageCode, country)
		if !class.IsAcceptable {
			s.deps.Logger.Debug("Knowledge panel rejected", map[string]interface{}{
				"text":   text,
				"reason": class.Reason,
			})
			continue
		}
		return domain.TranslationDecision{
			Text:   text,
			Status: domain.StatusFound,
			Reason: "knowledge panel: " + class.Reason,
			Source: SourceKnowledgePanel,
			Phase:  1,
		}, true
	}
	return domain.TranslationDecision{}, false
}

func (s *SearchService) fromDirectAnswer(resp *domain.SearchResponse, poiName string) (domain.TranslationDecision, bool) {
	answer := strings.TrimSpace(resp.DirectAnswer)
	if answer == "" || answer == poiName {
		return domain.TranslationDecision{}, false
	}
	return domain.TranslationDecision{
		Text:   answer,
		Status: domain.StatusFound,
		Reason: "direct answer",
		Source: SourceDirectAnswer,
		Phase:  1,
	}, true
}

func (s *SearchService) scoreResults(results []domain.SearchResult, phase int, poiName, languageCode, country string) []domain.Candidate {
	if len(results) > s.config.MaxResults {
		results = results[:s.config.MaxResults]
	}
	candidates := scoring.ScoreAll(results, poiName, languageCode, country, scoring.Options{PositionBonus: true})
	for i := range candidates {
		candidates[i].Phase = phase
	}
	return candidates
}

// selectTranslated picks the best candidate whose cleaned title differs from
// the POI name. Untranslated titles stay in the candidate list for audit.
func selectTranslated(candidates []domain.Candidate, poiName string) (domain.Candidate, bool) {
	eligible := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.CleanedTitle == poiName {
			continue
		}
		eligible = append(eligible, c)
	}
	return scoring.SelectBest(eligible)
}

func found(best domain.Candidate, all []domain.Candidate, reason string) domain.TranslationDecision {
	return domain.TranslationDecision{
		Text:       best.CleanedTitle,
		Status:     domain.StatusFound,
		Reason:     reason,
		Source:     SourceOrganic,
		Score:      best.Score,
		Phase:      best.Phase,
		Candidates: all,
	}
}

func failed(phase int, reason string) domain.TranslationDecision {
	return domain.TranslationDecision{
		Status: domain.StatusFailed,
		Reason: reason,
		Phase:  phase,
	}
}
