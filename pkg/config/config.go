// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, cache, provider, storage and logging settings, optionally read from a .env file

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Providers holds API keys, models and timeouts for translation sources
	Providers ProvidersConfig

	// Search tunes the progressive search
	Search SearchConfig

	// Storage holds the review queue database settings
	Storage StorageConfig

	// Log controls log level, format and optional rotated file output
	Log LogConfig

	// Workers sizes the batch translation pool
	Workers WorkersConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client in RateWindow
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// AllowedOrigins lists CORS origins; "*" allows all
	AllowedOrigins []string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// TTL is how long search responses are kept
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix is prepended to every key
	KeyPrefix string
}

// ProvidersConfig holds settings for external sources
type ProvidersConfig struct {
	SerpAPIKey      string
	PerplexityKey   string
	PerplexityModel string
	OpenAIKey       string
	OpenAIModel     string
	OpenRouterKey   string

	// OpenRouterModels lists the models queried as extra sources
	OpenRouterModels []string

	GoogleMapsKey string

	// Timeout bounds each provider call
	Timeout time.Duration

	// RequestsPerSecond limits outbound calls across all providers; 0 disables
	RequestsPerSecond float64
}

// SearchConfig tunes the progressive search
type SearchConfig struct {
	Timeout         time.Duration
	AcceptThreshold int
	MaxResults      int
}

// StorageConfig holds the review queue database path
type StorageConfig struct {
	SQLitePath string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string

	// File enables rotated file output when set
	File string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// WorkersConfig sizes the batch translation pool
type WorkersConfig struct {
	MaxWorkers int
	QueueSize  int

	// MaxBatchSize caps the number of units in one batch request
	MaxBatchSize int
}

// LoadDotEnv reads the given .env files into the environment, ignoring missing ones.
// Existing environment variables take precedence.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RateLimit:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow:     getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
			AllowedOrigins: getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 24*time.Hour),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "poi:"),
			},
		},
		Providers: ProvidersConfig{
			SerpAPIKey:        os.Getenv("SERPAPI_KEY"),
			PerplexityKey:     os.Getenv("PERPLEXITY_API_KEY"),
			PerplexityModel:   getEnvOrDefault("PERPLEXITY_MODEL", "sonar"),
			OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			OpenRouterKey:     os.Getenv("OPENROUTER_API_KEY"),
			OpenRouterModels:  getEnvAsListOrDefault("OPENROUTER_MODELS", nil),
			GoogleMapsKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
			Timeout:           getEnvAsDurationOrDefault("PROVIDER_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getEnvAsFloatOrDefault("PROVIDER_RPS", 5),
		},
		Search: SearchConfig{
			Timeout:         getEnvAsDurationOrDefault("SEARCH_TIMEOUT", 5*time.Second),
			AcceptThreshold: getEnvAsIntOrDefault("SEARCH_ACCEPT_THRESHOLD", 50),
			MaxResults:      getEnvAsIntOrDefault("SEARCH_MAX_RESULTS", 10),
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("REVIEW_DB_PATH", "review_queue.db"),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 28),
		},
		Workers: WorkersConfig{
			MaxWorkers:   getEnvAsIntOrDefault("BATCH_WORKERS", 4),
			QueueSize:    getEnvAsIntOrDefault("BATCH_QUEUE_SIZE", 100),
			MaxBatchSize: getEnvAsIntOrDefault("BATCH_MAX_SIZE", 50),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("5s") or plain seconds ("5")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Providers.Timeout <= 0 || c.Search.Timeout <= 0 {
		return errors.New("provider and search timeouts must be positive")
	}

	if c.Search.MaxResults < 1 {
		return errors.New("search max results must be at least 1")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be 'json' or 'text', got %q", c.Log.Format)
	}

	if c.Workers.MaxWorkers < 1 || c.Workers.MaxBatchSize < 1 {
		return errors.New("batch workers and batch size must be at least 1")
	}

	return nil
}

// EnabledSources lists the sources that have credentials configured
func (c *Config) EnabledSources() []string {
	var sources []string
	if c.Providers.SerpAPIKey != "" {
		sources = append(sources, "serp")
	}
	if c.Providers.PerplexityKey != "" {
		sources = append(sources, "perplexity")
	}
	if c.Providers.OpenAIKey != "" {
		sources = append(sources, "openai")
	}
	if c.Providers.GoogleMapsKey != "" {
		sources = append(sources, "google_maps")
	}
	if c.Providers.OpenRouterKey != "" {
		for _, m := range c.Providers.OpenRouterModels {
			sources = append(sources, "openrouter:"+m)
		}
	}
	return sources
}
