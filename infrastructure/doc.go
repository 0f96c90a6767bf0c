// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// Organized by technical concern:
//
//   - cache/memory: in-process cache backed by go-cache
//   - cache/redis: Redis cache for sharing search responses between instances
//   - http/standard: net/http client with retries and an outbound token bucket
//   - logger/structured: logrus logger with optional lumberjack file rotation
//   - metrics/prometheus: Prometheus collectors and the /metrics handler
//   - storage/sqlite: the manual review queue
//   - providers/serpapi: Google results via SerpAPI
//   - providers/duckduckgo: DuckDuckGo HTML results parsed with goquery
//   - providers/chat: Perplexity, OpenAI and OpenRouter chat completions
//   - providers/places: Google Places text search display names
//
// # Usage Example
//
//	cache := memory.NewMemoryCache()
//	client := standard.NewStandardHTTPClientWithOptions(standard.Options{Timeout: 10 * time.Second, RequestsPerSecond: 5})
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	serp := serpapi.NewClient(client, os.Getenv("SERPAPI_KEY"))
package infrastructure
