// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records provider and decision metrics
	Metrics Metrics
}

// WithDefaults returns a copy with no-op Logger and Metrics filled in where missing
func (d Dependencies) WithDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = NoopLogger{}
	}
	if d.Metrics == nil {
		d.Metrics = NoopMetrics{}
	}
	return d
}
