package interfaces

import "time"

// Metrics records engine activity. Implementations must be safe for concurrent use.
type Metrics interface {
	// ObserveProviderCall records one call to a source with its outcome (found, not_found, failed)
	ObserveProviderCall(source, outcome string, duration time.Duration)

	// ObserveSearchPhase records the phase that produced a search decision
	ObserveSearchPhase(phase int, status string)

	// ObserveDecision records a final decision
	ObserveDecision(status string, needsManualReview bool)

	// ObserveCacheLookup records a search cache hit or miss
	ObserveCacheLookup(hit bool)
}

// NoopMetrics discards all metrics
type NoopMetrics struct{}

func (NoopMetrics) ObserveProviderCall(string, string, time.Duration) {}
func (NoopMetrics) ObserveSearchPhase(int, string)                    {}
func (NoopMetrics) ObserveDecision(string, bool)                      {}
func (NoopMetrics) ObserveCacheLookup(bool)                           {}
