// ABOUTME: OpenAI-compatible chat completion provider for Perplexity, OpenAI and OpenRouter models
// ABOUTME: Each instance is one translation source with its own prompt style and reply cleanup

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/infrastructure/providers"
)

const (
	PerplexityURL = "https://api.perplexity.ai/chat/completions"
	OpenAIURL     = "https://api.openai.com/v1/chat/completions"
	OpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

	DefaultPerplexityModel = "sonar"
	DefaultOpenAIModel     = "gpt-4o-mini"
)

// Provider is a translation source backed by a chat completion endpoint
type Provider struct {
	http        interfaces.HTTPClient
	source      domain.SourceID
	endpoint    string
	apiKey      string
	model       string
	style       PromptStyle
	maxTokens   int
	temperature float64
	headers     map[string]string
}

// Option configures a Provider
type Option func(*Provider)

// WithEndpoint overrides the completion URL, used by tests
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) { p.endpoint = endpoint }
}

// WithHeader adds a request header
func WithHeader(key, value string) Option {
	return func(p *Provider) { p.headers[key] = value }
}

func newProvider(httpClient interfaces.HTTPClient, source domain.SourceID, endpoint, apiKey, model string, style PromptStyle, maxTokens int, temperature float64, opts []Option) *Provider {
	p := &Provider{
		http:        httpClient,
		source:      source,
		endpoint:    endpoint,
		apiKey:      apiKey,
		model:       model,
		style:       style,
		maxTokens:   maxTokens,
		temperature: temperature,
		headers:     map[string]string{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPerplexity creates the perplexity source
func NewPerplexity(httpClient interfaces.HTTPClient, apiKey, model string, opts ...Option) *Provider {
	if model == "" {
		model = DefaultPerplexityModel
	}
	return newProvider(httpClient, domain.SourcePerplexity, PerplexityURL, apiKey, model, StyleConcise, 50, 0, opts)
}

// NewOpenAI creates the openai source
func NewOpenAI(httpClient interfaces.HTTPClient, apiKey, model string, opts ...Option) *Provider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return newProvider(httpClient, domain.SourceOpenAI, OpenAIURL, apiKey, model, StyleInstruct, 50, 0, opts)
}

// NewOpenRouter creates one openrouter:<model> source
func NewOpenRouter(httpClient interfaces.HTTPClient, apiKey, model string, opts ...Option) *Provider {
	opts = append([]Option{
		WithHeader("HTTP-Referer", "https://poi-translation-api.local"),
		WithHeader("X-Title", "POI Translation API"),
	}, opts...)
	return newProvider(httpClient, domain.OpenRouterSource(model), OpenRouterURL, apiKey, model, StyleJSONArray, 500, 0.3, opts)
}

// Source implements interfaces.TranslationProvider
func (p *Provider) Source() domain.SourceID {
	return p.source
}

// Model returns the model name sent with each request
func (p *Provider) Model() string {
	return p.model
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate asks the model for a translation and returns the cleaned reply.
// An empty string means the model gave no usable name.
func (p *Provider) Translate(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
	provider := string(p.source)
	if p.apiKey == "" {
		return "", &coreerrors.ProviderError{Provider: provider, Message: "API key not configured"}
	}

	body, err := json.Marshal(completionRequest{
		Model:       p.model,
		Messages:    buildMessages(p.style, poiName, languageCode, countryCode),
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		return "", err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + p.apiKey,
		"Content-Type":  "application/json",
	}
	for k, v := range p.headers {
		headers[k] = v
	}

	resp, err := p.http.Do(ctx, http.MethodPost, p.endpoint, headers, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var payload completionResponse
	if err := providers.DecodeJSON(provider, resp, &payload); err != nil {
		return "", err
	}
	if len(payload.Choices) == 0 {
		return "", &coreerrors.ProviderError{Provider: provider, StatusCode: resp.StatusCode(), Message: "response has no choices"}
	}

	content := strings.TrimSpace(payload.Choices[0].Message.Content)
	if content == "" {
		return "", nil
	}

	switch p.style {
	case StyleConcise:
		return cleanConcise(content), nil
	case StyleJSONArray:
		return parseJSONArray(content), nil
	default:
		return cleanInstruct(content), nil
	}
}
