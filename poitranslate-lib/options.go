// ABOUTME: Configuration options for the POI translation library client
// ABOUTME: Functional options select sources, cache, logger, worker pool and review queue

package poitranslate

import (
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/search"
	"poi-translation-api/core/workers"
	"poi-translation-api/pkg/featureflags"
)

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics

	// SearchProvider feeds the serp source; nil disables it
	SearchProvider interfaces.SearchProvider
	SearchConfig   search.Config

	// Providers are the model and maps sources
	Providers []interfaces.TranslationProvider

	WorkerConfig workers.WorkerConfig

	// ReviewQueue enables automatic queueing of disagreements
	ReviewQueue interfaces.ReviewQueue

	// Flags gates search caching and review queueing
	Flags featureflags.Manager
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics sink
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithSearchProvider sets the search engine used by the progressive search
func WithSearchProvider(provider interfaces.SearchProvider) Option {
	return func(c *Config) error {
		c.SearchProvider = provider
		return nil
	}
}

// WithSearchConfig overrides the progressive search settings
func WithSearchConfig(config search.Config) Option {
	return func(c *Config) error {
		c.SearchConfig = config
		return nil
	}
}

// WithTranslationProviders appends model or maps sources
func WithTranslationProviders(providers ...interfaces.TranslationProvider) Option {
	return func(c *Config) error {
		for _, p := range providers {
			if p == nil {
				return NewError(ErrorTypeConfiguration, "nil translation provider")
			}
		}
		c.Providers = append(c.Providers, providers...)
		return nil
	}
}

// WithWorkerConfig sets the batch worker pool size
func WithWorkerConfig(config workers.WorkerConfig) Option {
	return func(c *Config) error {
		c.WorkerConfig = config
		return nil
	}
}

// WithReviewQueue enables the manual review queue
func WithReviewQueue(queue interfaces.ReviewQueue) Option {
	return func(c *Config) error {
		c.ReviewQueue = queue
		return nil
	}
}

// WithFeatureFlags overrides individual flags; unnamed flags keep the library defaults
func WithFeatureFlags(flags map[featureflags.FeatureFlag]bool) Option {
	return func(c *Config) error {
		for flag, enabled := range flags {
			c.Flags.SetEnabled(flag, enabled)
		}
		return nil
	}
}

// defaultFlags enables search caching and review queueing
func defaultFlags() featureflags.Manager {
	return featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SearchCacheEnabled: true,
		featureflags.ReviewQueueEnabled: true,
	})
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		SearchConfig: search.DefaultConfig(),
		WorkerConfig: workers.DefaultWorkerConfig(),
		Flags:        defaultFlags(),
	}
}
