package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/infrastructure/http/standard"
)

const resultsPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Tokyo Tower at DuckDuckGo</title></head>
<body>
<div class="result results_links result--ad">
  <h2 class="result__title"><a class="result__a" href="https://ads.example/">Cheap tickets</a></h2>
</div>
<div class="result results_links results_links_deep web-result">
  <h2 class="result__title">
    <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fja.wikipedia.org%2Fwiki%2F%E6%9D%B1%E4%BA%AC%E3%82%BF%E3%83%AF%E3%83%BC&amp;rut=abc">東京タワー - Wikipedia</a>
  </h2>
  <a class="result__snippet" href="#">東京タワーは、東京都港区芝公園にある総合電波塔。</a>
</div>
<div class="result results_links web-result">
  <h2 class="result__title"><a class="result__a" href="https://www.tokyotower.co.jp/">東京タワー公式サイト</a></h2>
</div>
<div class="result"><h2 class="result__title"><a class="result__a" href="https://empty.example/"> </a></h2></div>
</body></html>`

func TestParse(t *testing.T) {
	resp, err := Parse([]byte(resultsPage), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2 (ads and empty titles skipped): %+v", len(resp.Results), resp.Results)
	}

	first := resp.Results[0]
	if first.Title != "東京タワー - Wikipedia" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Link != "https://ja.wikipedia.org/wiki/東京タワー" {
		t.Errorf("Link = %q, want unwrapped redirect", first.Link)
	}
	if first.Snippet == "" {
		t.Error("Snippet should be set")
	}
	if resp.Results[1].Link != "https://www.tokyotower.co.jp/" {
		t.Errorf("direct link = %q", resp.Results[1].Link)
	}
}

func TestParse_Latin1(t *testing.T) {
	// "Musée" encoded as ISO-8859-1
	page := []byte("<html><body><div class=\"result\"><a class=\"result__a\" href=\"https://fr.example/\">Mus\xe9e du Louvre</a></div></body></html>")

	resp, err := Parse(page, "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Musée du Louvre" {
		t.Errorf("Results = %+v", resp.Results)
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://example.com/a", "https://example.com/a"},
		{"//example.com/b", "https://example.com/b"},
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fc", "https://example.com/c"},
	}
	for _, tt := range tests {
		if got := resolveLink(tt.in); got != tt.want {
			t.Errorf("resolveLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotRegion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/html/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotRegion = r.URL.Query().Get("kl")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	client := NewClient(standard.NewStandardHTTPClient(5*time.Second), server.URL)
	resp, err := client.Search(context.Background(), domain.SearchQuery{Text: "Tokyo Tower", LanguageCode: "ja-jp"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotQuery != "Tokyo Tower" || gotRegion != "jp-jp" {
		t.Errorf("q = %q, kl = %q", gotQuery, gotRegion)
	}
	if len(resp.Results) != 2 {
		t.Errorf("got %d results", len(resp.Results))
	}
}

func TestClient_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(standard.NewStandardHTTPClient(5*time.Second), server.URL)
	_, err := client.Search(context.Background(), domain.SearchQuery{Text: "x", LanguageCode: "EN-US"})
	if !coreerrors.IsProvider(err) {
		t.Errorf("error = %v, want ProviderError", err)
	}
}
