// ABOUTME: DuckDuckGo HTML search provider used when no SerpAPI key is configured
// ABOUTME: Decodes the page charset and scrapes organic results with goquery

package duckduckgo

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
	"poi-translation-api/infrastructure/providers"
)

const (
	Name = "duckduckgo"

	DefaultBaseURL = "https://html.duckduckgo.com"

	maxBodyBytes = 2 << 20
)

// regions maps target languages to DuckDuckGo's kl region parameter
var regions = map[string]string{
	"ZH-CN": "cn-zh",
	"ZH-TW": "tw-tzh",
	"JA-JP": "jp-jp",
	"KO-KR": "kr-kr",
	"TH-TH": "th-th",
	"VI-VN": "vn-vi",
	"ID-ID": "id-id",
	"MS-MY": "my-ms",
	"EN-US": "us-en",
	"EN-GB": "uk-en",
	"FR-FR": "fr-fr",
	"DE-DE": "de-de",
	"IT-IT": "it-it",
	"PT-BR": "br-pt",
}

// Client scrapes the DuckDuckGo HTML endpoint
type Client struct {
	http    interfaces.HTTPClient
	baseURL string
}

// NewClient creates a DuckDuckGo client. An empty baseURL uses DefaultBaseURL.
func NewClient(httpClient interfaces.HTTPClient, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Name implements interfaces.SearchProvider
func (c *Client) Name() string {
	return Name
}

// Search implements interfaces.SearchProvider
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query.Text)
	if kl, ok := regions[strings.ToUpper(query.LanguageCode)]; ok {
		params.Set("kl", kl)
	}

	resp, err := c.http.Do(ctx, http.MethodGet, c.baseURL+"/html/?"+params.Encode(), map[string]string{
		"Accept": "text/html",
	}, nil)
	if err != nil {
		return nil, err
	}
	if err := providers.CheckStatus(Name, resp); err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, coreerrors.WrapError(err, "reading duckduckgo response")
	}

	return Parse(data, resp.Header("Content-Type"))
}

// Parse extracts organic results from a DuckDuckGo HTML results page
func Parse(data []byte, contentType string) (*domain.SearchResponse, error) {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
		data = decoded
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &coreerrors.ProviderError{Provider: Name, Message: "unparseable results page: " + err.Error()}
	}

	out := &domain.SearchResponse{Results: []domain.SearchResult{}}
	doc.Find("div.result").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("result--ad") {
			return
		}
		anchor := s.Find("a.result__a").First()
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return
		}
		out.Results = append(out.Results, domain.SearchResult{
			Title:   title,
			Link:    resolveLink(anchor.AttrOr("href", "")),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").First().Text()),
		})
	})

	if answer := strings.TrimSpace(doc.Find(".zci__result").First().Text()); answer != "" {
		out.DirectAnswer = answer
	}
	return out, nil
}

// resolveLink unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=...)
func resolveLink(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
