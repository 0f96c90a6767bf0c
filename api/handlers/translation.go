// ABOUTME: Translation handlers for the Huma API
// ABOUTME: Provides single and batch POI translation endpoints with optional review queueing

package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"poi-translation-api/api/dto/mappers"
	"poi-translation-api/api/dto/requests"
	"poi-translation-api/api/dto/responses"
	"poi-translation-api/core/domain"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/workers"
)

// DefaultMaxBatchSize caps batch requests when no limit is configured
const DefaultMaxBatchSize = 50

// BatchTranslator runs many translation units on the worker pool
type BatchTranslator interface {
	TranslateBatch(ctx context.Context, requests []domain.TranslationRequest) ([]*domain.TranslationResult, []error)
}

// ReviewEnqueuer stores results that need a human decision
type ReviewEnqueuer interface {
	EnqueueIfNeeded(ctx context.Context, result *domain.TranslationResult) (*domain.ReviewItem, error)
}

// TranslationHandler handles translation HTTP requests
type TranslationHandler struct {
	translator   interfaces.Translator
	batch        BatchTranslator
	review       ReviewEnqueuer
	logger       interfaces.Logger
	maxBatchSize int
}

// NewTranslationHandler creates a new translation handler. review may be nil
// when the review queue is disabled.
func NewTranslationHandler(translator interfaces.Translator, batch BatchTranslator, review ReviewEnqueuer, logger interfaces.Logger, maxBatchSize int) *TranslationHandler {
	if logger == nil {
		logger = interfaces.NoopLogger{}
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &TranslationHandler{
		translator:   translator,
		batch:        batch,
		review:       review,
		logger:       logger,
		maxBatchSize: maxBatchSize,
	}
}

// RegisterRoutes registers all translation routes
func (h *TranslationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "translatePOI",
		Method:      http.MethodPost,
		Path:        "/translate",
		Summary:     "Translate a POI name",
		Description: "Queries web search, maps and language models for the POI name in the target language and reconciles the answers",
		Tags:        []string{"Translation"},
	}, h.Translate)

	huma.Register(api, huma.Operation{
		OperationID: "translateBatch",
		Method:      http.MethodPost,
		Path:        "/translations/batch",
		Summary:     "Translate many POI names",
		Description: "Runs each unit on the worker pool and returns results in request order",
		Tags:        []string{"Translation"},
	}, h.TranslateBatch)
}

// TranslateInput defines the input for the Translate operation
type TranslateInput struct {
	Body requests.TranslateRequest `json:"body"`
}

// TranslateOutput defines the output for the Translate operation
type TranslateOutput struct {
	Body responses.TranslationResponse
}

// Translate handles the POST /translate endpoint
func (h *TranslationHandler) Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	input.Body.ApplyDefaults()

	result, err := h.translator.Translate(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	response := mappers.ToTranslationResponse(result)
	if *input.Body.EnqueueReview {
		response.ReviewID = h.enqueue(ctx, result)
	}

	return &TranslateOutput{Body: *response}, nil
}

// BatchTranslateInput defines the input for the TranslateBatch operation
type BatchTranslateInput struct {
	Body requests.BatchTranslateRequest `json:"body"`
}

// BatchTranslateOutput defines the output for the TranslateBatch operation
type BatchTranslateOutput struct {
	Body responses.BatchTranslationResponse
}

// TranslateBatch handles the POST /translations/batch endpoint
func (h *TranslationHandler) TranslateBatch(ctx context.Context, input *BatchTranslateInput) (*BatchTranslateOutput, error) {
	input.Body.ApplyDefaults()

	if len(input.Body.Items) > h.maxBatchSize {
		return nil, huma.Error400BadRequest(fmt.Sprintf("batch exceeds %d items", h.maxBatchSize))
	}

	start := time.Now()
	reqs := input.Body.ToDomain()
	results, errs := h.batch.TranslateBatch(ctx, reqs)

	if err := poolFailure(errs); err != nil {
		return nil, toHumaError(err)
	}

	out := responses.BatchTranslationResponse{
		Results: make([]responses.TranslationResponse, len(reqs)),
		Total:   len(reqs),
	}

	for i, req := range reqs {
		if errs[i] != nil || results[i] == nil {
			out.Results[i] = failedResponse(req, errs[i])
			continue
		}

		response := mappers.ToTranslationResponse(results[i])
		if *input.Body.EnqueueReview && itemWantsReview(input.Body.Items[i]) {
			response.ReviewID = h.enqueue(ctx, results[i])
		}
		if results[i].Decision.IsFound() {
			out.Found++
		}
		if response.NeedsManualReview {
			out.NeedsReview++
		}
		out.Results[i] = *response
	}

	out.ElapsedMs = time.Since(start).Milliseconds()
	h.logger.Info("Batch translated", map[string]interface{}{
		"total":       out.Total,
		"found":       out.Found,
		"needsReview": out.NeedsReview,
		"elapsedMs":   out.ElapsedMs,
	})

	return &BatchTranslateOutput{Body: out}, nil
}

// enqueue queues a result for review and returns the item ID. Queue failures
// are logged; the translation itself is still returned.
func (h *TranslationHandler) enqueue(ctx context.Context, result *domain.TranslationResult) string {
	if h.review == nil || result == nil {
		return ""
	}
	item, err := h.review.EnqueueIfNeeded(ctx, result)
	if err != nil {
		h.logger.Error("Failed to queue review item", map[string]interface{}{
			"poi":      result.Request.POIName,
			"language": result.Request.LanguageCode,
			"error":    err.Error(),
		})
		return ""
	}
	if item == nil {
		return ""
	}
	return item.ID
}

// itemWantsReview honours a per-item opt-out inside a batch
func itemWantsReview(item requests.TranslateRequest) bool {
	return item.EnqueueReview == nil || *item.EnqueueReview
}

// poolFailure returns the shared error when every unit failed because the
// worker pool or the request itself gave out
func poolFailure(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	var first error
	for _, err := range errs {
		if err == nil {
			return nil
		}
		if !isPoolError(err) {
			return nil
		}
		if first == nil {
			first = err
		}
	}
	return first
}

func isPoolError(err error) bool {
	return stderrors.Is(err, workers.ErrQueueFull) ||
		stderrors.Is(err, workers.ErrWorkerStopped) ||
		stderrors.Is(err, workers.ErrWorkerNotRunning) ||
		stderrors.Is(err, context.Canceled) ||
		stderrors.Is(err, context.DeadlineExceeded)
}

func failedResponse(req domain.TranslationRequest, err error) responses.TranslationResponse {
	reason := "translation failed"
	if err != nil {
		reason = err.Error()
	}
	return responses.TranslationResponse{
		POIName:  req.POIName,
		Language: req.LanguageCode,
		Country:  req.CountryCode,
		Status:   string(domain.StatusFailed),
		Reason:   reason,
		Sources:  []responses.SourceOutcomeResponse{},
	}
}
