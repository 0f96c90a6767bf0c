// ABOUTME: Consensus and scoring handlers for the Huma API
// ABOUTME: Exposes reconciliation and candidate scoring without calling external providers

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"poi-translation-api/api/dto/mappers"
	"poi-translation-api/api/dto/requests"
	"poi-translation-api/api/dto/responses"
	"poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/locale"
	"poi-translation-api/core/scoring"
	"poi-translation-api/core/search"
)

// ConsensusHandler serves offline reconciliation, scoring and the language table
type ConsensusHandler struct {
	reconciler      interfaces.Reconciler
	acceptThreshold int
}

// NewConsensusHandler creates a new consensus handler
func NewConsensusHandler(reconciler interfaces.Reconciler, acceptThreshold int) *ConsensusHandler {
	if acceptThreshold <= 0 {
		acceptThreshold = search.DefaultAcceptThreshold
	}
	return &ConsensusHandler{reconciler: reconciler, acceptThreshold: acceptThreshold}
}

// RegisterRoutes registers consensus, scoring and language routes
func (h *ConsensusHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reconcileSources",
		Method:      http.MethodPost,
		Path:        "/reconcile",
		Summary:     "Reconcile source translations",
		Description: "Applies the consensus rules to translations already collected from each source",
		Tags:        []string{"Consensus"},
	}, h.Reconcile)

	huma.Register(api, huma.Operation{
		OperationID: "scoreCandidates",
		Method:      http.MethodPost,
		Path:        "/candidates/score",
		Summary:     "Score search results",
		Description: "Scores search result titles as translation candidates and returns the rule breakdown",
		Tags:        []string{"Consensus"},
	}, h.ScoreCandidates)

	huma.Register(api, huma.Operation{
		OperationID: "listLanguages",
		Method:      http.MethodGet,
		Path:        "/languages",
		Summary:     "List supported languages",
		Tags:        []string{"Consensus"},
	}, h.ListLanguages)
}

// ReconcileInput defines the input for the Reconcile operation
type ReconcileInput struct {
	Body requests.ReconcileRequest `json:"body"`
}

// ReconcileOutput defines the output for the Reconcile operation
type ReconcileOutput struct {
	Body responses.ConsensusResponse
}

// Reconcile handles the POST /reconcile endpoint
func (h *ConsensusHandler) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if len(input.Body.Sources) == 0 {
		return nil, toHumaError(&errors.ValidationError{Field: "sources", Message: "at least one source is required"})
	}

	result := h.reconciler.Reconcile(input.Body.ToDomain())
	return &ReconcileOutput{Body: *mappers.ToConsensusResponse(result)}, nil
}

// ScoreCandidatesInput defines the input for the ScoreCandidates operation
type ScoreCandidatesInput struct {
	Body requests.ScoreCandidatesRequest `json:"body"`
}

// ScoreCandidatesOutput defines the output for the ScoreCandidates operation
type ScoreCandidatesOutput struct {
	Body responses.ScoreCandidatesResponse
}

// ScoreCandidates handles the POST /candidates/score endpoint
func (h *ConsensusHandler) ScoreCandidates(ctx context.Context, input *ScoreCandidatesInput) (*ScoreCandidatesOutput, error) {
	body := input.Body
	poi := strings.TrimSpace(body.POIName)
	lang := strings.ToUpper(strings.TrimSpace(body.Language))
	country := strings.ToUpper(strings.TrimSpace(body.Country))

	if poi == "" {
		return nil, toHumaError(&errors.ValidationError{Field: "poiName", Message: "must not be blank"})
	}
	if !locale.IsSupported(lang) {
		return nil, toHumaError(&errors.ValidationError{Field: "language", Message: "unsupported language " + lang})
	}
	if country != "" && len(country) != 2 {
		return nil, toHumaError(&errors.ValidationError{Field: "country", Message: "must be a two-letter ISO code"})
	}
	country = locale.ResolveCountry(lang, country)

	candidates := scoring.ScoreAll(body.ToDomain(), poi, lang, country, scoring.Options{PositionBonus: body.PositionBonus})

	out := responses.ScoreCandidatesResponse{
		Candidates: mappers.ToCandidateResponses(candidates),
		Threshold:  h.acceptThreshold,
	}
	if best, ok := scoring.SelectBest(candidates); ok {
		resp := mappers.ToCandidateResponse(best)
		out.Best = &resp
		out.Accepted = best.Score >= h.acceptThreshold
	}

	return &ScoreCandidatesOutput{Body: out}, nil
}

// ListLanguagesOutput defines the output for the ListLanguages operation
type ListLanguagesOutput struct {
	Body responses.LanguagesResponse
}

// ListLanguages handles the GET /languages endpoint
func (h *ConsensusHandler) ListLanguages(ctx context.Context, input *struct{}) (*ListLanguagesOutput, error) {
	return &ListLanguagesOutput{Body: responses.LanguagesResponse{
		Languages: mappers.ToLanguageResponses(locale.Supported()),
	}}, nil
}
