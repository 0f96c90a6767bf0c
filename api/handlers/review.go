// ABOUTME: Review queue handlers for the Huma API
// ABOUTME: Lists, fetches and resolves translations waiting for a human decision

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"poi-translation-api/api/dto/mappers"
	"poi-translation-api/api/dto/requests"
	"poi-translation-api/api/dto/responses"
	"poi-translation-api/core/domain"
)

// ReviewService is the review queue surface the handler needs
type ReviewService interface {
	Get(ctx context.Context, id string) (*domain.ReviewItem, error)
	List(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.ReviewItem, error)
	Resolve(ctx context.Context, id, text string) (*domain.ReviewItem, error)
}

// ReviewHandler handles review queue requests
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers all review queue routes
func (h *ReviewHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listReviewItems",
		Method:      http.MethodGet,
		Path:        "/review-queue",
		Summary:     "List review items",
		Tags:        []string{"Review"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "getReviewItem",
		Method:      http.MethodGet,
		Path:        "/review-queue/{id}",
		Summary:     "Get a review item",
		Tags:        []string{"Review"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "resolveReviewItem",
		Method:      http.MethodPost,
		Path:        "/review-queue/{id}/resolve",
		Summary:     "Resolve a review item",
		Description: "Records the reviewer's final translation",
		Tags:        []string{"Review"},
	}, h.Resolve)
}

// ListReviewInput defines the input for the List operation
type ListReviewInput struct {
	Status string `query:"status" enum:"pending,resolved" doc:"Filter by status; omit for all"`
	Limit  int    `query:"limit" minimum:"0" maximum:"500" doc:"Maximum items to return (default: 50)"`
}

// ListReviewOutput defines the output for the List operation
type ListReviewOutput struct {
	Body responses.ReviewListResponse
}

// List handles the GET /review-queue endpoint
func (h *ReviewHandler) List(ctx context.Context, input *ListReviewInput) (*ListReviewOutput, error) {
	items, err := h.service.List(ctx, domain.ReviewStatus(input.Status), input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := mappers.ToReviewItemResponses(items)
	return &ListReviewOutput{Body: responses.ReviewListResponse{Items: out, Count: len(out)}}, nil
}

// ReviewItemInput identifies a review item
type ReviewItemInput struct {
	ID string `path:"id" doc:"Review item ID"`
}

// ReviewItemOutput wraps a single review item
type ReviewItemOutput struct {
	Body responses.ReviewItemResponse
}

// Get handles the GET /review-queue/{id} endpoint
func (h *ReviewHandler) Get(ctx context.Context, input *ReviewItemInput) (*ReviewItemOutput, error) {
	item, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ReviewItemOutput{Body: *mappers.ToReviewItemResponse(item)}, nil
}

// ResolveReviewInput defines the input for the Resolve operation
type ResolveReviewInput struct {
	ID   string                        `path:"id" doc:"Review item ID"`
	Body requests.ResolveReviewRequest `json:"body"`
}

// Resolve handles the POST /review-queue/{id}/resolve endpoint
func (h *ReviewHandler) Resolve(ctx context.Context, input *ResolveReviewInput) (*ReviewItemOutput, error) {
	item, err := h.service.Resolve(ctx, input.ID, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ReviewItemOutput{Body: *mappers.ToReviewItemResponse(item)}, nil
}
