package chat

import (
	"fmt"

	"poi-translation-api/core/locale"
)

// PromptStyle selects how a model is asked for a translation and how its reply is read
type PromptStyle string

const (
	// StyleConcise asks for the bare translation with a terse system prompt
	StyleConcise PromptStyle = "concise"

	// StyleInstruct asks for the translated name in a single instruction
	StyleInstruct PromptStyle = "instruct"

	// StyleJSONArray asks for the name locals use, returned as a one-element JSON array
	StyleJSONArray PromptStyle = "json_array"
)

const conciseSystemPrompt = "You are a translator API. Output format: translation only, no explanations."

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// languageName returns the English language name used in prompts
func languageName(languageCode string) string {
	if lang, ok := locale.Lookup(languageCode); ok {
		return lang.Name
	}
	return "English"
}

// regionName is the country named in the localisation prompt; the language's
// home country when the request has none
func regionName(languageCode, countryCode string) string {
	return locale.CountryName(locale.ResolveCountry(languageCode, countryCode))
}

func buildMessages(style PromptStyle, poiName, languageCode, countryCode string) []message {
	lang := languageName(languageCode)

	switch style {
	case StyleConcise:
		return []message{
			{Role: "system", Content: conciseSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("%q in %s:", poiName, lang)},
		}
	case StyleJSONArray:
		return []message{{Role: "user", Content: localisationPrompt(poiName, lang, regionName(languageCode, countryCode))}}
	default:
		return []message{{Role: "user", Content: fmt.Sprintf(
			"Translate the POI name %q to %s. For Chinese, preserve proper spacing where appropriate "+
				"(e.g., \"ZooTampa at Lowry Park\" should become \"ZooTampa at Lowry 公園\" not \"ZootampaAtLowry公園\"). "+
				"Return ONLY the translated name, no explanation.",
			poiName, lang)}}
	}
}

func localisationPrompt(poiName, lang, region string) string {
	return fmt.Sprintf(`You are helping localize a travel product.

Please translate the following place name into the most commonly used and natural name in %[2]s, as spoken or searched by local people in %[3]s.

Guidelines:

- Avoid official or overly literal translations that locals don't commonly use.
- Do NOT use translations from commercial travel platforms like Klook, KKday, or Trip.com.
- Use what locals actually say or type when referring to the place (e.g. YouTube titles, Google searches, map labels).
- If there is no commonly used name, return an empty array.
- Output only a flat JSON array with the translated name as a single string.
- Do NOT include the original input name, explanation, or any other metadata.

Place name: %[1]s

Target language: %[2]s
Target country/region: %[3]s

Expected output format:
["translated name"]

or if no common translation exists:
[]`, poiName, lang, region)
}
