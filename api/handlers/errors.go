// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts engine, provider and worker errors to Huma HTTP errors

package handlers

import (
	"context"
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"poi-translation-api/core/errors"
	"poi-translation-api/core/workers"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsTimeout(err) || stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Translation timed out", err)
	}

	if stderrors.Is(err, context.Canceled) {
		// client went away; nobody reads this response
		return huma.NewError(499, "Request canceled", err)
	}

	if stderrors.Is(err, workers.ErrQueueFull) || stderrors.Is(err, workers.ErrWorkerStopped) ||
		stderrors.Is(err, workers.ErrWorkerNotRunning) {
		return huma.Error503ServiceUnavailable("Batch workers unavailable", err)
	}

	var providerErr *errors.ProviderError
	if stderrors.As(err, &providerErr) {
		switch {
		case providerErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by " + providerErr.Provider)
		case providerErr.StatusCode == 401 || providerErr.StatusCode == 403:
			return huma.Error502BadGateway("Provider rejected credentials", err)
		default:
			return huma.Error502BadGateway("Provider error", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
