// ABOUTME: Google Places Text Search provider returns a POI's localized display name
// ABOUTME: Implements TranslationProvider for the google_maps source

package places

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
	DefaultBaseURL = "https://places.googleapis.com"

	fieldMask      = "places.displayName,places.id"
	maxResultCount = 5
)

// languageCodes maps target languages to the Places API languageCode
var languageCodes = map[string]string{
	"ZH-CN": "zh-CN",
	"ZH-TW": "zh-TW",
	"JA-JP": "ja",
	"KO-KR": "ko",
	"TH-TH": "th",
	"VI-VN": "vi",
	"ID-ID": "id",
	"MS-MY": "ms",
	"EN-US": "en",
	"EN-GB": "en-GB",
	"FR-FR": "fr",
	"DE-DE": "de",
	"IT-IT": "it",
	"PT-BR": "pt-BR",
}

// Client calls the Places searchText endpoint
type Client struct {
	http    interfaces.HTTPClient
	apiKey  string
	baseURL string

	// IncludedType narrows the search to one place type; empty searches all types
	IncludedType string
}

// NewClient creates a Places client. An empty baseURL uses DefaultBaseURL.
func NewClient(httpClient interfaces.HTTPClient, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:         httpClient,
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		IncludedType: "tourist_attraction",
	}
}

// Source implements interfaces.TranslationProvider
func (c *Client) Source() domain.SourceID {
	return domain.SourceGoogleMaps
}

type searchTextRequest struct {
	TextQuery      string `json:"textQuery"`
	LanguageCode   string `json:"languageCode"`
	RegionCode     string `json:"regionCode,omitempty"`
	MaxResultCount int    `json:"maxResultCount"`
	IncludedType   string `json:"includedType,omitempty"`
}

type searchTextResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text         string `json:"text"`
			LanguageCode string `json:"languageCode"`
		} `json:"displayName"`
	} `json:"places"`
}

// Translate returns the display name of Google's best match in the target
// language, or "" when there is no match or the name is unchanged.
func (c *Client) Translate(ctx context.Context, poiName, languageCode, countryCode string) (string, error) {
	if c.apiKey == "" {
		return "", &coreerrors.ProviderError{Provider: string(c.Source()), Message: "API key not configured"}
	}

	lang, ok := languageCodes[strings.ToUpper(languageCode)]
	if !ok {
		lang = "en"
	}
	body, err := json.Marshal(searchTextRequest{
		TextQuery:      poiName,
		LanguageCode:   lang,
		RegionCode:     strings.ToLower(countryCode),
		MaxResultCount: maxResultCount,
		IncludedType:   c.IncludedType,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(ctx, http.MethodPost, c.baseURL+"/v1/places:searchText", map[string]string{
		"Content-Type":     "application/json",
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": fieldMask,
	}, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var payload searchTextResponse
	if err := providers.DecodeJSON(string(c.Source()), resp, &payload); err != nil {
		return "", err
	}
	if len(payload.Places) == 0 {
		return "", nil
	}

	name := strings.TrimSpace(payload.Places[0].DisplayName.Text)
	if name == strings.TrimSpace(poiName) {
		return "", nil
	}
	return name, nil
}
