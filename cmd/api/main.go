// ABOUTME: Main entry point for the POI translation API server
// ABOUTME: Wires configuration, providers, engine services and HTTP handlers, then serves until signalled

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poi-translation-api/api"
	"poi-translation-api/api/handlers"
	"poi-translation-api/core/consensus"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/locale"
	"poi-translation-api/core/review"
	"poi-translation-api/core/scoring"
	"poi-translation-api/core/search"
	"poi-translation-api/core/translation"
	"poi-translation-api/core/workers"
	"poi-translation-api/infrastructure/cache/memory"
	"poi-translation-api/infrastructure/cache/redis"
	stdhttp "poi-translation-api/infrastructure/http/standard"
	"poi-translation-api/infrastructure/logger/structured"
	prommetrics "poi-translation-api/infrastructure/metrics/prometheus"
	"poi-translation-api/infrastructure/providers/chat"
	"poi-translation-api/infrastructure/providers/duckduckgo"
	"poi-translation-api/infrastructure/providers/places"
	"poi-translation-api/infrastructure/providers/serpapi"
	"poi-translation-api/infrastructure/storage/sqlite"
	"poi-translation-api/pkg/config"
	"poi-translation-api/pkg/featureflags"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Close()

	// Rule tables are static; a broken table is a programming error
	if err := locale.Validate(); err != nil {
		log.Fatalf("Invalid language table: %v", err)
	}
	if err := scoring.Validate(); err != nil {
		log.Fatalf("Invalid scoring rules: %v", err)
	}

	flags := featureflags.NewEnvManager("")
	ctx := featureflags.WithManager(context.Background(), flags)

	logger.Info("Starting POI Translation API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"sources":    cfg.EnabledSources(),
	})

	// Create cache
	var cache interfaces.Cache
	checks := map[string]handlers.Pinger{}
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			defer redisCache.Close()
			cache = redisCache
			checks["cache"] = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:           cfg.Providers.Timeout,
		RequestsPerSecond: cfg.Providers.RequestsPerSecond,
		Burst:             4,
	})

	metrics := prommetrics.NewMetrics()

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    metrics,
	}

	// Search source
	var searcher translation.Searcher
	var searchProvider interfaces.SearchProvider
	switch {
	case cfg.Providers.SerpAPIKey != "":
		searchProvider = serpapi.NewClient(httpClient, cfg.Providers.SerpAPIKey,
			serpapi.WithNumResults(cfg.Search.MaxResults))
	case featureflags.IsEnabled(ctx, featureflags.DuckDuckGoFallback):
		searchProvider = duckduckgo.NewClient(httpClient, "")
	}
	if searchProvider != nil {
		searchConfig := search.Config{
			Timeout:         cfg.Search.Timeout,
			AcceptThreshold: cfg.Search.AcceptThreshold,
			MaxResults:      cfg.Search.MaxResults,
			CacheResponses:  featureflags.IsEnabled(ctx, featureflags.SearchCacheEnabled),
			CacheTTL:        cfg.Cache.TTL,
		}
		searcher = search.NewSearchService(deps, searchProvider, searchConfig)
		logger.Info("Search source configured", map[string]interface{}{
			"provider": searchProvider.Name(),
		})
	} else {
		logger.Warn("No search provider configured; serp source disabled", nil)
	}

	// Model and maps sources
	var models []*chat.Provider
	if cfg.Providers.PerplexityKey != "" {
		models = append(models, chat.NewPerplexity(httpClient, cfg.Providers.PerplexityKey, cfg.Providers.PerplexityModel))
	}
	if cfg.Providers.OpenAIKey != "" {
		models = append(models, chat.NewOpenAI(httpClient, cfg.Providers.OpenAIKey, cfg.Providers.OpenAIModel))
	}
	if cfg.Providers.OpenRouterKey != "" && featureflags.IsEnabled(ctx, featureflags.OpenRouterEnabled) {
		for _, model := range cfg.Providers.OpenRouterModels {
			models = append(models, chat.NewOpenRouter(httpClient, cfg.Providers.OpenRouterKey, model))
		}
	}

	providers := make([]interfaces.TranslationProvider, 0, len(models)+1)
	for _, m := range models {
		providers = append(providers, m)
		logger.Info("Model source configured", map[string]interface{}{
			"source": m.Source(),
			"model":  m.Model(),
		})
	}
	if cfg.Providers.GoogleMapsKey != "" {
		providers = append(providers, places.NewClient(httpClient, cfg.Providers.GoogleMapsKey, ""))
	}

	translator := translation.NewTranslationService(deps, searcher, providers, consensus.NewReconciler(), translation.Config{
		DefaultTimeout: cfg.Providers.Timeout,
	})

	sources := make([]string, 0, len(providers)+1)
	for _, id := range translator.Sources() {
		sources = append(sources, string(id))
	}

	worker := workers.NewTranslationWorker(translator, logger, workers.WorkerConfig{
		MaxWorkers: cfg.Workers.MaxWorkers,
		QueueSize:  cfg.Workers.QueueSize,
	})
	if err := worker.Start(); err != nil {
		log.Fatalf("Failed to start batch workers: %v", err)
	}

	// Review queue
	var reviewService *review.ReviewService
	var reviewStats handlers.ReviewStatser
	if featureflags.IsEnabled(ctx, featureflags.ReviewQueueEnabled) {
		queue, err := sqlite.NewReviewQueue(cfg.Storage.SQLitePath)
		if err != nil {
			logger.Error("Failed to open review queue, disabling it", map[string]interface{}{
				"path":  cfg.Storage.SQLitePath,
				"error": err.Error(),
			})
			flags.SetEnabled(featureflags.ReviewQueueEnabled, false)
		} else {
			defer queue.Close()
			checks["review_queue"] = queue
			reviewStats = queue
			reviewService = review.NewReviewService(queue, logger)
		}
	}

	apiConfig := api.APIConfig{
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if featureflags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// A nil *ReviewService must not become a non-nil interface
	var enqueuer handlers.ReviewEnqueuer
	if reviewService != nil {
		enqueuer = reviewService
		handlers.NewReviewHandler(reviewService).RegisterRoutes(humaAPI)
	}
	handlers.NewTranslationHandler(translator, worker, enqueuer, logger, cfg.Workers.MaxBatchSize).RegisterRoutes(humaAPI)
	handlers.NewConsensusHandler(consensus.NewReconciler(), cfg.Search.AcceptThreshold).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version, sources, checks).
		WithFlags(flags).
		WithReviewStats(reviewStats).
		RegisterRoutes(humaAPI)

	if featureflags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		router.Handle("/metrics", metrics.Handler())
	}

	// Batch requests wait on several providers per unit
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"sources": sources,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := worker.Stop(); err != nil {
		logger.Warn("Batch workers did not stop cleanly", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
