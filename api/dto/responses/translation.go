// ABOUTME: Response DTOs for translation, reconciliation and review endpoints
// ABOUTME: Shapes engine results for JSON output with OpenAPI documentation

package responses

import "time"

// SourceOutcomeResponse is what one source returned
type SourceOutcomeResponse struct {
	Source     string `json:"source" doc:"Source ID"`
	Text       string `json:"text" doc:"Returned text or failure sentinel"`
	Status     string `json:"status" doc:"found, not_found or failed"`
	Error      string `json:"error,omitempty" doc:"Provider error, if any"`
	DurationMs int64  `json:"durationMs" doc:"Time spent waiting on the source"`
}

// ScoreAdjustmentResponse is one applied scoring rule
type ScoreAdjustmentResponse struct {
	Rule  string `json:"rule" doc:"Rule name"`
	Delta int    `json:"delta" doc:"Score change"`
}

// CandidateResponse is a scored search candidate
type CandidateResponse struct {
	RawTitle     string                    `json:"rawTitle" doc:"Title as returned by search"`
	CleanedTitle string                    `json:"cleanedTitle" doc:"Title after cleanup"`
	SourceLink   string                    `json:"sourceLink" doc:"Result URL"`
	Trusted      bool                      `json:"trusted" doc:"Result is hosted on a trusted domain"`
	Score        int                       `json:"score" doc:"Quality score"`
	Rank         int                       `json:"rank" doc:"1-based result position"`
	Phase        int                       `json:"phase,omitempty" doc:"Search phase that produced the candidate"`
	Breakdown    []ScoreAdjustmentResponse `json:"breakdown,omitempty" doc:"Rules applied in order"`
}

// TranslationResponse is the outcome for one POI and language
type TranslationResponse struct {
	POIName           string                  `json:"poiName" doc:"Original POI name"`
	Language          string                  `json:"language" doc:"Target language code"`
	Country           string                  `json:"country,omitempty" doc:"POI country"`
	Translation       string                  `json:"translation" doc:"Chosen translation, empty when none was found"`
	Status            string                  `json:"status" doc:"found, not_found or failed"`
	NeedsManualReview bool                    `json:"needsManualReview" doc:"Whether a reviewer must confirm the translation"`
	Reason            string                  `json:"reason" doc:"Why the decision was made"`
	Source            string                  `json:"source,omitempty" doc:"Where the translation came from"`
	ReviewID          string                  `json:"reviewId,omitempty" doc:"Review queue item created for this result"`
	Sources           []SourceOutcomeResponse `json:"sources" doc:"Per-source outcomes"`
	Candidates        []CandidateResponse     `json:"candidates,omitempty" doc:"Scored search candidates"`
}

// BatchTranslationResponse holds results in request order
type BatchTranslationResponse struct {
	Results     []TranslationResponse `json:"results" doc:"Results in the order of the request items"`
	Total       int                   `json:"total" doc:"Number of results"`
	Found       int                   `json:"found" doc:"Results with a translation"`
	NeedsReview int                   `json:"needsReview" doc:"Results flagged for manual review"`
	ElapsedMs   int64                 `json:"elapsedMs" doc:"Wall time for the batch"`
}

// ConsensusResponse is the reconciliation output
type ConsensusResponse struct {
	NeedsManualReview bool   `json:"needsManualReview" doc:"Whether the sources disagree"`
	BestTranslation   string `json:"bestTranslation" doc:"Agreed or provisional translation"`
	Reason            string `json:"reason" doc:"Consensus explanation"`
}

// ScoreCandidatesResponse lists scored candidates and the winner
type ScoreCandidatesResponse struct {
	Candidates []CandidateResponse `json:"candidates" doc:"Candidates in result order"`
	Best       *CandidateResponse  `json:"best,omitempty" doc:"Highest positive-scoring candidate, earliest on ties"`
	Threshold  int                 `json:"threshold" doc:"Score at which a first-phase winner ends the search"`
	Accepted   bool                `json:"accepted" doc:"Whether the best candidate reaches the threshold"`
}

// LanguageResponse describes a supported language
type LanguageResponse struct {
	Code           string `json:"code" doc:"Language code"`
	Name           string `json:"name" doc:"English name"`
	NativeName     string `json:"nativeName" doc:"Native name"`
	DefaultCountry string `json:"defaultCountry" doc:"Country used when a request has none"`
	Script         string `json:"script" doc:"script, latin or english"`
}

// LanguagesResponse lists supported languages
type LanguagesResponse struct {
	Languages []LanguageResponse `json:"languages" doc:"Supported languages"`
}

// ReviewItemResponse is a manual review queue entry
type ReviewItemResponse struct {
	ID              string            `json:"id" doc:"Review item ID"`
	POIName         string            `json:"poiName" doc:"Original POI name"`
	LanguageCode    string            `json:"language" doc:"Target language"`
	CountryCode     string            `json:"country,omitempty" doc:"POI country"`
	ProvisionalText string            `json:"provisionalText" doc:"Best guess at enqueue time"`
	Reason          string            `json:"reason" doc:"Why review is needed"`
	Sources         map[string]string `json:"sources,omitempty" doc:"Per-source texts"`
	Status          string            `json:"status" doc:"pending or resolved"`
	ResolvedText    string            `json:"resolvedText,omitempty" doc:"Reviewer's final translation"`
	CreatedAt       time.Time         `json:"createdAt" doc:"When the item was queued"`
	ResolvedAt      *time.Time        `json:"resolvedAt,omitempty" doc:"When the item was resolved"`
}

// ReviewListResponse is a page of review items
type ReviewListResponse struct {
	Items []ReviewItemResponse `json:"items" doc:"Review items, oldest first"`
	Count int                  `json:"count" doc:"Number of items returned"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status      string            `json:"status" doc:"ok or degraded"`
	Version     string            `json:"version" doc:"API version"`
	Providers   []string          `json:"providers" doc:"Configured translation sources"`
	Checks      map[string]string `json:"checks,omitempty" doc:"Dependency checks"`
	Features    map[string]bool   `json:"features,omitempty" doc:"Feature flag states"`
	ReviewQueue map[string]int    `json:"reviewQueue,omitempty" doc:"Review items per status"`
	Timestamp   time.Time         `json:"timestamp" doc:"Server time"`
}
