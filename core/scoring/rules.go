// ABOUTME: Static rule tables for candidate scoring: penalty patterns, trusted domains and brands
// ABOUTME: Tables are read-only after package initialization and checked by Validate at startup

package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule names recorded in a candidate's score breakdown
const (
	RuleRelevant         = "relevant"
	RuleIrrelevant       = "irrelevant"
	RuleDictionary       = "dictionary_marker"
	RuleUserReviewLink   = "user_review_link"
	RuleForumLink        = "forum_link"
	RuleReviewPath       = "review_path"
	RuleReviewTitle      = "review_title"
	RuleNewsPath         = "news_path"
	RuleNewsDomain       = "news_domain"
	RuleNewsTitle        = "news_title"
	RuleCommercial       = "commercial"
	RuleInformational    = "informational"
	RuleTargetLanguage   = "target_language"
	RuleMixedEnglish     = "mixed_english"
	RuleTrustedEnglish   = "trusted_english"
	RuleUntrustedEnglish = "untrusted_english"
	RuleUnacceptable     = "unacceptable_language"
	RuleTrustedDomain    = "trusted_domain"
	RuleBrand            = "international_brand"
	RuleNoPOIWord        = "no_poi_word"
	RuleShortTitle       = "short_title"
	RuleLongTitle        = "long_title"
	RuleClean            = "no_special_chars"
	RuleClutter          = "special_chars"
	RulePosition         = "position"
)

// patternPenalty is a regexp applied to one field with a fixed delta
type patternPenalty struct {
	pattern *regexp.Regexp
	delta   int
}

// dictionaryMarkers flag dictionary or translation-tool pages, matched against the raw title
var dictionaryMarkers = []patternPenalty{
	{regexp.MustCompile(`(?i)translation of`), -100},
	{regexp.MustCompile(`(?i)translate`), -50},
	{regexp.MustCompile(`(?i)linguee`), -50},
	{regexp.MustCompile(`(?i)dictionary`), -30},
	{regexp.MustCompile(`英中|中英|日英|英日|韓英|英韓|英汉|汉英`), -50},
}

// newsDomains are news publishers whose titles are headlines, not names
var newsDomains = []string{
	"nytimes.com", "bbc.com", "bbc.co.uk", "cnn.com", "koreatimes.co",
	"reuters.com", "theguardian.com",
}

var (
	newsPath        = regexp.MustCompile(`/(news|article|business)/`)
	newsTitle       = regexp.MustCompile(`(?i)\b(news|video|article|report)\b`)
	commercialTitle = regexp.MustCompile(`(?i)\b(tickets?|booking|book now|tours?|hotels?)\b|门票|門票|チケット|티켓|予約`)
	informational   = regexp.MustCompile(`(?i)\b(history|about|overview)\b`)
	specialChars    = regexp.MustCompile(`[:|/()\[\]]`)
)

const (
	penaltyUserReviewLink = -30
	penaltyForumLink      = -20
	penaltyReviewPath     = -20
	penaltyReviewTitle    = -15
	penaltyNewsPath       = -50
	penaltyNewsDomain     = -40
	penaltyNewsTitle      = -30
	penaltyCommercial     = -30
	penaltyInformational  = -25

	bonusRelevant     = 20
	penaltyIrrelevant = -150

	bonusTargetLanguage     = 50
	bonusMixedEnglish       = 10
	bonusTrustedEnglish     = 20
	penaltyUntrustedEnglish = -10

	bonusBrand       = 15
	penaltyNoPOIWord = -50
	bonusShortTitle  = 10
	penaltyLongTitle = -20
	bonusNoSpecial   = 15
	penaltySpecial   = -10

	shortTitleLimit   = 50
	longRawTitleLimit = 100
	maxSpecialChars   = 3
	minPOIWordLength  = 2

	positionBase = 20
	positionStep = 2
)

// trustedDomain grants a bonus to results hosted on an authoritative site.
// host matches the exact host or any subdomain; path, when set, must prefix the URL path.
type trustedDomain struct {
	host  string
	path  string
	bonus int
	kind  string
}

// trustedDomains is ordered; the first match wins and bonuses never stack
var trustedDomains = []trustedDomain{
	{host: "wikipedia.org", bonus: 50, kind: "encyclopedia"},
	{host: "namu.wiki", bonus: 45, kind: "encyclopedia"},
	{host: "baike.baidu.com", bonus: 40, kind: "encyclopedia"},

	{host: "gov", bonus: 40, kind: "government"},
	{host: "gov.cn", bonus: 40, kind: "government"},
	{host: "gov.tw", bonus: 40, kind: "government"},
	{host: "gov.sg", bonus: 40, kind: "government"},
	{host: "gov.my", bonus: 40, kind: "government"},
	{host: "gov.vn", bonus: 40, kind: "government"},
	{host: "gov.uk", bonus: 40, kind: "government"},
	{host: "gov.hk", bonus: 40, kind: "government"},
	{host: "go.jp", bonus: 40, kind: "government"},
	{host: "go.kr", bonus: 40, kind: "government"},
	{host: "go.th", bonus: 40, kind: "government"},
	{host: "go.id", bonus: 40, kind: "government"},
	{host: "gouv.fr", bonus: 40, kind: "government"},
	{host: "gob.es", bonus: 40, kind: "government"},

	{host: "japan.travel", bonus: 40, kind: "tourism"},
	{host: "visitkorea.or.kr", bonus: 40, kind: "tourism"},
	{host: "taiwan.net.tw", bonus: 40, kind: "tourism"},
	{host: "tourismthailand.org", bonus: 40, kind: "tourism"},
	{host: "visitsingapore.com", bonus: 40, kind: "tourism"},
	{host: "discoverhongkong.com", bonus: 40, kind: "tourism"},
	{host: "malaysia.travel", bonus: 40, kind: "tourism"},
	{host: "indonesia.travel", bonus: 40, kind: "tourism"},
	{host: "vietnam.travel", bonus: 40, kind: "tourism"},
	{host: "spain.info", bonus: 40, kind: "tourism"},
	{host: "esmadrid.com", bonus: 40, kind: "tourism"},
	{host: "france.fr", bonus: 40, kind: "tourism"},
	{host: "germany.travel", bonus: 40, kind: "tourism"},
	{host: "italia.it", bonus: 40, kind: "tourism"},
	{host: "visitbritain.com", bonus: 40, kind: "tourism"},

	{host: "maps.google.com", bonus: 30, kind: "maps"},
	{host: "google.com", path: "/maps", bonus: 30, kind: "maps"},
	{host: "map.naver.com", bonus: 30, kind: "maps"},
	{host: "map.kakao.com", bonus: 30, kind: "maps"},
	{host: "map.baidu.com", bonus: 30, kind: "maps"},
	{host: "amap.com", bonus: 30, kind: "maps"},
	{host: "openstreetmap.org", bonus: 30, kind: "maps"},

	{host: "wikivoyage.org", bonus: 25, kind: "travel guide"},
}

func (d trustedDomain) matches(host, path string) bool {
	if host != d.host && !strings.HasSuffix(host, "."+d.host) {
		return false
	}
	return d.path == "" || strings.HasPrefix(path, d.path)
}

// internationalBrands are chains whose English names are commonly kept untranslated
var internationalBrands = []string{
	"starbucks", "mcdonald", "disney", "universal studios", "ikea", "apple store",
	"legoland", "hard rock cafe", "six flags", "madame tussauds", "sea life",
	"hilton", "marriott", "ritz-carlton", "louis vuitton",
	"迪士尼", "ディズニー", "디즈니", "环球影城", "環球影城", "ユニバーサル",
}

// Validate checks the static tables. It is called once at startup.
func Validate() error {
	for i, d := range trustedDomains {
		if d.host == "" || d.bonus < 25 || d.bonus > 50 {
			return fmt.Errorf("trusted domain %d (%q) has invalid host or bonus %d", i, d.host, d.bonus)
		}
	}
	for i, m := range dictionaryMarkers {
		if m.pattern == nil || m.delta >= 0 {
			return fmt.Errorf("dictionary marker %d must be a penalty", i)
		}
	}
	for _, b := range internationalBrands {
		if b != strings.ToLower(b) {
			return fmt.Errorf("brand %q must be lower case", b)
		}
	}
	return nil
}
