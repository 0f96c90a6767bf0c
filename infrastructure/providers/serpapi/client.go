// ABOUTME: SerpAPI search provider maps Google result pages into search responses
// ABOUTME: Reads organic results, the knowledge graph and the answer box

package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/core/locale"
	"poi-translation-api/infrastructure/providers"
	"poi-translation-api/pkg/utils/html"
)

const (
	// Name identifies the provider in logs, metrics and cache keys
	Name = "serpapi"

	DefaultBaseURL = "https://serpapi.com"

	defaultNumResults = 10

	// noResultsError is what SerpAPI reports for an empty results page
	noResultsError = "Google hasn't returned any results for this query."
)

// Client queries the SerpAPI Google engine
type Client struct {
	http    interfaces.HTTPClient
	apiKey  string
	baseURL string
	num     int
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host, used by tests
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithNumResults sets how many organic results are requested
func WithNumResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.num = n
		}
	}
}

// NewClient creates a SerpAPI client
func NewClient(httpClient interfaces.HTTPClient, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:    httpClient,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		num:     defaultNumResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements interfaces.SearchProvider
func (c *Client) Name() string {
	return Name
}

type searchPayload struct {
	Error          string          `json:"error"`
	OrganicResults []organicResult `json:"organic_results"`
	KnowledgeGraph *knowledgeGraph `json:"knowledge_graph"`
	AnswerBox      *answerBox      `json:"answer_box"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type knowledgeGraph struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

type answerBox struct {
	Type        string          `json:"type"`
	Translation json.RawMessage `json:"translation"`
	Answer      json.RawMessage `json:"answer"`
}

// Search implements interfaces.SearchProvider
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	if c.apiKey == "" {
		return nil, &coreerrors.ProviderError{Provider: Name, Message: "API key not configured"}
	}

	resp, err := c.http.Do(ctx, http.MethodGet, c.searchURL(query), nil, nil)
	if err != nil {
		return nil, err
	}

	var payload searchPayload
	if err := providers.DecodeJSON(Name, resp, &payload); err != nil {
		return nil, err
	}
	if payload.Error != "" && payload.Error != noResultsError {
		return nil, &coreerrors.ProviderError{Provider: Name, StatusCode: resp.StatusCode(), Message: payload.Error}
	}

	return toResponse(payload), nil
}

func (c *Client) searchURL(query domain.SearchQuery) string {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query.Text)
	params.Set("num", strconv.Itoa(c.num))
	params.Set("api_key", c.apiKey)

	if lang, ok := locale.Lookup(query.LanguageCode); ok {
		params.Set("hl", lang.SearchLanguage)
		params.Set("google_domain", lang.GoogleDomain)
	}
	if query.CountryCode != "" {
		params.Set("gl", strings.ToLower(query.CountryCode))
	}

	return c.baseURL + "/search.json?" + params.Encode()
}

func toResponse(p searchPayload) *domain.SearchResponse {
	out := &domain.SearchResponse{Results: make([]domain.SearchResult, 0, len(p.OrganicResults))}
	for _, r := range p.OrganicResults {
		out.Results = append(out.Results, domain.SearchResult{
			Title:   html.StripHTML(r.Title),
			Link:    r.Link,
			Snippet: html.StripHTML(r.Snippet),
		})
	}

	if kg := p.KnowledgeGraph; kg != nil && (kg.Title != "" || kg.Name != "") {
		out.KnowledgePanel = &domain.KnowledgePanel{Title: html.StripHTML(kg.Title), Name: html.StripHTML(kg.Name)}
	}

	if p.AnswerBox != nil {
		out.DirectAnswer = html.StripHTML(directAnswer(p.AnswerBox))
	}
	return out
}

// directAnswer reads a translation result first, then a plain string answer.
// A translation may be a string, {"text": ...} or {"target": {"text": ...}}.
func directAnswer(box *answerBox) string {
	if box.Type == "translation_result" && len(box.Translation) > 0 {
		if text, err := translationText(box.Translation); err == nil && text != "" {
			return text
		}
	}

	var answer string
	if len(box.Answer) > 0 && json.Unmarshal(box.Answer, &answer) == nil {
		return strings.TrimSpace(answer)
	}
	return ""
}

func translationText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	var obj struct {
		Text   string `json:"text"`
		Target *struct {
			Text string `json:"text"`
		} `json:"target"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	if obj.Target != nil && obj.Target.Text != "" {
		return strings.TrimSpace(obj.Target.Text), nil
	}
	if obj.Text != "" {
		return strings.TrimSpace(obj.Text), nil
	}
	return "", errors.New("translation has no text")
}
