package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/infrastructure/http/standard"
)

type capturedRequest struct {
	headers http.Header
	body    completionRequest
}

// completionServer replies with content and records the last request
func completionServer(t *testing.T, status int, content string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.headers = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&captured.body)

		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"bad request"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func httpClient() *standard.StandardHTTPClient {
	return standard.NewStandardHTTPClient(5 * time.Second)
}

func TestPerplexity_Translate(t *testing.T) {
	server, captured := completionServer(t, http.StatusOK, "**Translation:** 東京タワー")
	p := NewPerplexity(httpClient(), "pplx-key", "", WithEndpoint(server.URL))

	got, err := p.Translate(context.Background(), "Tokyo Tower", "JA-JP", "JP")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "東京タワー" {
		t.Errorf("Translate() = %q", got)
	}

	if p.Source() != domain.SourcePerplexity || captured.body.Model != "sonar" {
		t.Errorf("source = %s, model = %s", p.Source(), captured.body.Model)
	}
	if captured.headers.Get("Authorization") != "Bearer pplx-key" {
		t.Errorf("Authorization = %q", captured.headers.Get("Authorization"))
	}
	msgs := captured.body.Messages
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Content != `"Tokyo Tower" in Japanese:` {
		t.Errorf("messages = %+v", msgs)
	}
	if captured.body.Temperature != 0 {
		t.Errorf("temperature = %v", captured.body.Temperature)
	}
}

func TestOpenAI_Translate(t *testing.T) {
	server, captured := completionServer(t, http.StatusOK, `"Tour de Tokyo"`)
	p := NewOpenAI(httpClient(), "sk-key", "gpt-4o", WithEndpoint(server.URL))

	got, err := p.Translate(context.Background(), "Tokyo Tower", "FR-FR", "")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Tour de Tokyo" {
		t.Errorf("Translate() = %q", got)
	}
	if captured.body.Model != "gpt-4o" {
		t.Errorf("model = %q", captured.body.Model)
	}
	if len(captured.body.Messages) != 1 || !strings.Contains(captured.body.Messages[0].Content, `Translate the POI name "Tokyo Tower" to French`) {
		t.Errorf("messages = %+v", captured.body.Messages)
	}
}

func TestOpenRouter_Translate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"json array", `["台北101"]`, "台北101"},
		{"array inside prose", "Sure:\n[\"台北101\", \"台北一〇一\"]", "台北101"},
		{"empty array", `[]`, ""},
		{"no array", `台北101`, "台北101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, captured := completionServer(t, http.StatusOK, tt.content)
			p := NewOpenRouter(httpClient(), "or-key", "anthropic/claude-3.5-sonnet", WithEndpoint(server.URL))

			got, err := p.Translate(context.Background(), "Taipei 101", "ZH-TW", "")
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}

			if p.Source() != "openrouter:anthropic/claude-3.5-sonnet" {
				t.Errorf("Source() = %s", p.Source())
			}
			if captured.headers.Get("X-Title") == "" {
				t.Error("X-Title header missing")
			}
			prompt := captured.body.Messages[0].Content
			if !strings.Contains(prompt, "Target language: Traditional Chinese") || !strings.Contains(prompt, "Target country/region: Taiwan") {
				t.Errorf("prompt = %s", prompt)
			}
		})
	}
}

func TestProvider_Translate_Errors(t *testing.T) {
	server, _ := completionServer(t, http.StatusBadRequest, "")
	p := NewOpenAI(httpClient(), "sk-key", "", WithEndpoint(server.URL))
	if p.Model() != DefaultOpenAIModel {
		t.Errorf("Model() = %q, want %q", p.Model(), DefaultOpenAIModel)
	}

	if _, err := p.Translate(context.Background(), "Tokyo Tower", "JA-JP", ""); !coreerrors.IsProvider(err) {
		t.Errorf("error = %v, want ProviderError", err)
	}

	noKey := NewPerplexity(httpClient(), "", "")
	if _, err := noKey.Translate(context.Background(), "Tokyo Tower", "JA-JP", ""); !coreerrors.IsProvider(err) {
		t.Errorf("missing key error = %v", err)
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()
	p = NewOpenAI(httpClient(), "sk-key", "", WithEndpoint(empty.URL))
	if _, err := p.Translate(context.Background(), "Tokyo Tower", "JA-JP", ""); !coreerrors.IsProvider(err) {
		t.Errorf("no choices error = %v", err)
	}
}

func TestCleanConcise(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"東京タワー", "東京タワー"},
		{`"東京タワー"`, "東京タワー"},
		{"**東京タワー**", "東京タワー"},
		{"**Translation:** 東京タワー", "東京タワー"},
		{"Answer: 도쿄 타워", "도쿄 타워"},
		{"The Japanese translation of Tokyo Tower is 東京タワー", "東京タワー"},
		{`"Louvre" en français se traduit par "Musée du Louvre"`, "Musée du Louvre"},
		{`Tokyo Tower in Korean is "도쿄 타워"`, "도쿄 타워"},
		{"东方明珠 (pinyin: Dōngfāng Míngzhū)", "东方明珠"},
		{"台北101 (pinyin: Táiběi", "台北101"},
	}
	for _, tt := range tests {
		if got := cleanConcise(tt.in); got != tt.want {
			t.Errorf("cleanConcise(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
