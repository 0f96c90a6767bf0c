package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"poi-translation-api/core/errors"
	"poi-translation-api/core/workers"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "review item", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "review item not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "language", Message: "unsupported language code"},
			expectedStatus: 400,
			expectedInMsg:  "unsupported language code",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("translate: %w", &errors.ValidationError{Field: "poiName", Message: "empty"}),
			expectedStatus: 400,
			expectedInMsg:  "poiName",
		},
		{
			name:           "ProviderTimeoutError returns 504",
			input:          &errors.ProviderTimeoutError{Provider: "serpapi", Timeout: 5 * time.Second},
			expectedStatus: 504,
			expectedInMsg:  "timed out",
		},
		{
			name:           "deadline exceeded returns 504",
			input:          context.DeadlineExceeded,
			expectedStatus: 504,
		},
		{
			name:           "canceled returns 499",
			input:          fmt.Errorf("batch: %w", context.Canceled),
			expectedStatus: 499,
		},
		{
			name:           "queue full returns 503",
			input:          workers.ErrQueueFull,
			expectedStatus: 503,
			expectedInMsg:  "workers unavailable",
		},
		{
			name:           "provider 429 returns 429",
			input:          &errors.ProviderError{Provider: "openai", StatusCode: 429, Message: "slow down"},
			expectedStatus: 429,
			expectedInMsg:  "openai",
		},
		{
			name:           "provider 500 returns 502",
			input:          &errors.ProviderError{Provider: "serpapi", StatusCode: 500},
			expectedStatus: 502,
			expectedInMsg:  "Provider error",
		},
		{
			name:           "provider 401 returns 502",
			input:          &errors.ProviderError{Provider: "perplexity", StatusCode: 401},
			expectedStatus: 502,
			expectedInMsg:  "credentials",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("boom"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(huma.StatusError)
			if !assert.True(t, ok, "expected huma.StatusError") {
				return
			}
			assert.Equal(t, tt.expectedStatus, humaErr.GetStatus())
			if tt.expectedInMsg != "" {
				assert.Contains(t, humaErr.Error(), tt.expectedInMsg)
			}
		})
	}
}
