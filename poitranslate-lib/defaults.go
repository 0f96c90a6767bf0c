// ABOUTME: Default implementations for library dependencies
// ABOUTME: Factory functions and options that build the standard cache, client, logger and queue

package poitranslate

import (
	"time"

	"poi-translation-api/core/interfaces"
	"poi-translation-api/infrastructure/cache/memory"
	httpInfra "poi-translation-api/infrastructure/http/standard"
	"poi-translation-api/infrastructure/logger/structured"
	"poi-translation-api/infrastructure/storage/sqlite"
)

// DefaultHTTPClient creates an HTTP client with a provider-sized timeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(10 * time.Second)
}

// DefaultMemoryCache creates an in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a JSON logger at info level on stdout
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "info", Format: "json"})
}

// QuietLogger discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NoopLogger{}
}

// WithSQLiteReviewQueue opens a review queue database at path
func WithSQLiteReviewQueue(path string) Option {
	return func(c *Config) error {
		if path == "" {
			path = "review_queue.db"
		}
		queue, err := sqlite.NewReviewQueue(path)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to open review queue").WithCause(err)
		}
		c.ReviewQueue = queue
		return nil
	}
}

// WithDefaultDependencies fills any unset cache, HTTP client and logger
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient()
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}

// WithQuietMode suppresses all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
