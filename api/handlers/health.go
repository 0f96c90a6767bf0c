// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports configured sources, feature flags and review backlog, and pings the cache and review store

package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"poi-translation-api/api/dto/responses"
	"poi-translation-api/pkg/featureflags"
)

// Pinger is a dependency that can report its own health
type Pinger interface {
	Ping(ctx context.Context) error
}

// FlagReporter exposes the current feature flag states
type FlagReporter interface {
	GetAllFlags() map[featureflags.FeatureFlag]bool
}

// ReviewStatser counts review items per status
type ReviewStatser interface {
	Stats(ctx context.Context) (map[string]int, error)
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves GET /health
type HealthHandler struct {
	version string
	sources []string
	checks  map[string]Pinger
	flags   FlagReporter
	reviews ReviewStatser
}

// NewHealthHandler creates a health handler. checks may be empty.
func NewHealthHandler(version string, sources []string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, sources: sources, checks: checks}
}

// WithFlags reports feature flag states in the health body
func (h *HealthHandler) WithFlags(flags FlagReporter) *HealthHandler {
	h.flags = flags
	return h
}

// WithReviewStats reports the review queue backlog. A nil stats source is ignored.
func (h *HealthHandler) WithReviewStats(stats ReviewStatser) *HealthHandler {
	h.reviews = stats
	return h
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports "degraded" when a dependency ping fails or no source is configured
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := responses.HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Providers: append([]string{}, h.sources...),
		Timestamp: time.Now().UTC(),
	}
	if len(out.Providers) == 0 {
		out.Status = "degraded"
	}

	if len(h.checks) > 0 {
		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		out.Checks = make(map[string]string, len(names))
		for _, name := range names {
			pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
			err := h.checks[name].Ping(pingCtx)
			cancel()
			if err != nil {
				out.Checks[name] = err.Error()
				out.Status = "degraded"
				continue
			}
			out.Checks[name] = "ok"
		}
	}

	if h.flags != nil {
		all := h.flags.GetAllFlags()
		out.Features = make(map[string]bool, len(all))
		for flag, enabled := range all {
			out.Features[string(flag)] = enabled
		}
	}

	if h.reviews != nil {
		statsCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		stats, err := h.reviews.Stats(statsCtx)
		cancel()
		if err != nil {
			out.Status = "degraded"
			if out.Checks == nil {
				out.Checks = map[string]string{}
			}
			out.Checks["review_stats"] = err.Error()
		} else {
			out.ReviewQueue = stats
		}
	}

	return &HealthOutput{Body: out}, nil
}
