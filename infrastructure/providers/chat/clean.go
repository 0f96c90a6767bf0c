package chat

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	leadingExplanation = regexp.MustCompile(`(?i)^The .* translation (?:of|is) .*?(?:is|:)\s*`)
	boldLabel          = regexp.MustCompile(`^\*\*[^*]*:\*\*\s*|^\*\*[^*]*\*\*:\s*`)
	translationPrefix  = regexp.MustCompile(`(?i)^(?:Translation|Answer):\s*`)
	curlyQuotes        = strings.NewReplacer("“", `"`, "”", `"`, "「", "", "」", "")

	// sentence forms that wrap the translation, tried in order
	extractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)se traduit par "(.+?)"$`),
		regexp.MustCompile(`(?i)wird übersetzt als "(.+?)"$`),
		regexp.MustCompile(`(?i)si traduce come "(.+?)"$`),
		regexp.MustCompile(`(?i)traduz-se como "(.+?)"$`),
		regexp.MustCompile(`(?i)in .+ is "?(.+?)"?(?:\s+or\s+|\s*$)`),
		regexp.MustCompile(`(?i)in .+ is ([^\s"]+)`),
	}
	afterIs = regexp.MustCompile(`(?i)is\s+(.+?)(?:\s+or\s+|\s*\(|$)`)

	annotations = []*regexp.Regexp{
		regexp.MustCompile(`\s*\([^)]*$`),
		regexp.MustCompile(`(?i)\s*\(pinyin:.*?\)`),
		regexp.MustCompile(`(?i)\s*\(traditional.*?\)`),
		regexp.MustCompile(`(?i)\s*\(simplified.*?\)`),
	}

	jsonArray = regexp.MustCompile(`\[[\s\S]*?\]`)
)

// cleanConcise strips the explanations and markup terse models still add around a name
func cleanConcise(text string) string {
	text = strings.TrimSpace(text)
	text = leadingExplanation.ReplaceAllString(text, "")
	text = boldLabel.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = translationPrefix.ReplaceAllString(text, "")
	text = strings.TrimSpace(curlyQuotes.Replace(text))

	for _, re := range extractPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			text = strings.TrimSpace(m[1])
			break
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, " in ") && strings.Contains(lower, " is ") {
		if m := afterIs.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			text = strings.TrimSpace(strings.ReplaceAll(m[1], `"`, ""))
		}
	}

	for _, re := range annotations {
		text = re.ReplaceAllString(text, "")
	}
	return trimQuotes(text)
}

// cleanInstruct trims whitespace and wrapping quotes
func cleanInstruct(text string) string {
	return trimQuotes(curlyQuotes.Replace(text))
}

// parseJSONArray reads the first JSON array in the reply. An empty array
// means the model knows no common name. Replies without an array are used as is.
func parseJSONArray(text string) string {
	match := jsonArray.FindString(text)
	if match == "" {
		return cleanInstruct(text)
	}

	var names []string
	if err := json.Unmarshal([]byte(match), &names); err != nil {
		return cleanInstruct(text)
	}
	if len(names) == 0 {
		return ""
	}
	return strings.TrimSpace(names[0])
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
