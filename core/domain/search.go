// ABOUTME: Search domain models for web search queries and result pages
// ABOUTME: Defines the provider-neutral shape of a search response consumed by the scoring pipeline

package domain

// SearchQuery is a single localized query sent to a search provider
type SearchQuery struct {
	// Text is the query string
	Text string

	// LanguageCode is the target language (e.g., "JA-JP")
	LanguageCode string

	// CountryCode is the ISO country used for regional results (e.g., "JP")
	CountryCode string
}

// SearchResult is one organic result from a search results page
type SearchResult struct {
	// Title is the page title as displayed by the search engine
	Title string `json:"title"`

	// Link is the result URL
	Link string `json:"link"`

	// Snippet is the summary text shown under the title
	Snippet string `json:"snippet,omitempty"`
}

// KnowledgePanel is the structured entity box some engines show beside results
type KnowledgePanel struct {
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// SearchResponse is a parsed search results page
type SearchResponse struct {
	// Results holds organic results in rank order
	Results []SearchResult `json:"results"`

	// KnowledgePanel is nil when the page had none
	KnowledgePanel *KnowledgePanel `json:"knowledgePanel,omitempty"`

	// DirectAnswer is the answer box text, empty when absent
	DirectAnswer string `json:"directAnswer,omitempty"`
}
