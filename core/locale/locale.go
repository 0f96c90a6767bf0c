// ABOUTME: Static tables of supported target languages and countries
// ABOUTME: Provides search localization, script detection patterns and regional strictness tiers

package locale

import (
	"fmt"
	"regexp"
	"strings"

	"poi-translation-api/core/domain"
)

var languages = []domain.LanguageContext{
	{
		Code: "ZH-CN", Name: "Simplified Chinese", NativeName: "简体中文",
		SearchLanguage: "zh-cn", DefaultCountry: "CN", GoogleDomain: "google.com.hk", Location: "Beijing,China",
		Script:        domain.ScriptDistinct,
		ScriptPattern: regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}]`),
	},
	{
		Code: "ZH-TW", Name: "Traditional Chinese", NativeName: "繁體中文",
		SearchLanguage: "zh-tw", DefaultCountry: "TW", GoogleDomain: "google.com.tw", Location: "Taipei,Taiwan",
		Script:        domain.ScriptDistinct,
		ScriptPattern: regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}]`),
	},
	{
		Code: "JA-JP", Name: "Japanese", NativeName: "日本語",
		SearchLanguage: "ja", DefaultCountry: "JP", GoogleDomain: "google.co.jp", Location: "Tokyo,Japan",
		Script:        domain.ScriptDistinct,
		ScriptPattern: regexp.MustCompile(`[\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{4e00}-\x{9fff}]`),
	},
	{
		Code: "KO-KR", Name: "Korean", NativeName: "한국어",
		SearchLanguage: "ko", DefaultCountry: "KR", GoogleDomain: "google.co.kr", Location: "Seoul,South Korea",
		Script:        domain.ScriptDistinct,
		ScriptPattern: regexp.MustCompile(`[\x{ac00}-\x{d7af}\x{1100}-\x{11ff}\x{3130}-\x{318f}]`),
	},
	{
		Code: "TH-TH", Name: "Thai", NativeName: "ไทย",
		SearchLanguage: "th", DefaultCountry: "TH", GoogleDomain: "google.co.th", Location: "Bangkok,Thailand",
		Script:        domain.ScriptDistinct,
		ScriptPattern: regexp.MustCompile(`[\x{0e00}-\x{0e7f}]`),
	},
	{
		Code: "VI-VN", Name: "Vietnamese", NativeName: "Tiếng Việt",
		SearchLanguage: "vi", DefaultCountry: "VN", GoogleDomain: "google.com.vn", Location: "Ho Chi Minh City,Vietnam",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)[ăđơưạảằắặẳẵầấậẩẫẹẻẽềếệểễịỉĩọỏồốộổỗờớợởỡụủũừứựửữỳỵỷỹ]`),
	},
	{
		Code: "ID-ID", Name: "Indonesian", NativeName: "Bahasa Indonesia",
		SearchLanguage: "id", DefaultCountry: "ID", GoogleDomain: "google.co.id", Location: "Jakarta,Indonesia",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)\b(taman|pantai|pulau|masjid|gereja|pasar|jalan|danau|gunung|air terjun|kebun|candi|dan|yang|kota)\b`),
	},
	{
		Code: "MS-MY", Name: "Malay", NativeName: "Bahasa Melayu",
		SearchLanguage: "ms", DefaultCountry: "MY", GoogleDomain: "google.com.my", Location: "Kuala Lumpur,Malaysia",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)\b(taman|pantai|pulau|masjid|pasar|jalan|tasik|gunung|air terjun|muzium|menara|istana|dan|yang|bandar)\b`),
	},
	{
		Code: "EN-US", Name: "English (United States)", NativeName: "English",
		SearchLanguage: "en", DefaultCountry: "US", GoogleDomain: "google.com", Location: "New York,United States",
		Script: domain.ScriptEnglish,
	},
	{
		Code: "EN-GB", Name: "English (United Kingdom)", NativeName: "English",
		SearchLanguage: "en", DefaultCountry: "GB", GoogleDomain: "google.co.uk", Location: "London,United Kingdom",
		Script: domain.ScriptEnglish,
	},
	{
		Code: "FR-FR", Name: "French", NativeName: "Français",
		SearchLanguage: "fr", DefaultCountry: "FR", GoogleDomain: "google.fr", Location: "Paris,France",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)[àâæçéèêëïîôùûüÿœ]|\b(le|la|les|du|des|aux|et)\b`),
	},
	{
		Code: "DE-DE", Name: "German", NativeName: "Deutsch",
		SearchLanguage: "de", DefaultCountry: "DE", GoogleDomain: "google.de", Location: "Berlin,Germany",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)[äöüß]|\b(der|die|das|und|von|zum|zur|im|am)\b`),
	},
	{
		Code: "IT-IT", Name: "Italian", NativeName: "Italiano",
		SearchLanguage: "it", DefaultCountry: "IT", GoogleDomain: "google.it", Location: "Rome,Italy",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)[àèéìíîòóùú]|\b(il|lo|gli|della|delle|degli|dei|del|di)\b`),
	},
	{
		Code: "PT-BR", Name: "Portuguese (Brazil)", NativeName: "Português",
		SearchLanguage: "pt", DefaultCountry: "BR", GoogleDomain: "google.com.br", Location: "Sao Paulo,Brazil",
		Script:        domain.ScriptLatin,
		MarkerPattern: regexp.MustCompile(`(?i)[ãõáâàçéêíóôú]|\b(do|da|dos|das|em|ao)\b`),
	},
}

// Country describes a POI country
type Country struct {
	Code string
	Name string
	Tier domain.StrictnessTier

	// local holds the country's name keyed by target language code
	local map[string]string
}

// cjk builds localized names for the script languages in table order: ZH-CN, ZH-TW, JA-JP, KO-KR, TH-TH
func cjk(zhCN, zhTW, ja, ko, th string) map[string]string {
	return map[string]string{"ZH-CN": zhCN, "ZH-TW": zhTW, "JA-JP": ja, "KO-KR": ko, "TH-TH": th}
}

func withNative(names map[string]string, lang, native string) map[string]string {
	names[lang] = native
	return names
}

var countries = []Country{
	{Code: "TW", Name: "Taiwan", Tier: domain.TierStrict, local: cjk("台湾", "台灣", "台湾", "대만", "ไต้หวัน")},
	{Code: "JP", Name: "Japan", Tier: domain.TierStrict, local: cjk("日本", "日本", "日本", "일본", "ญี่ปุ่น")},
	{Code: "KR", Name: "South Korea", Tier: domain.TierStrict, local: cjk("韩国", "韓國", "韓国", "한국", "เกาหลีใต้")},
	{Code: "CN", Name: "China", Tier: domain.TierStrict, local: cjk("中国", "中國", "中国", "중국", "จีน")},
	{Code: "TH", Name: "Thailand", Tier: domain.TierStrict, local: cjk("泰国", "泰國", "タイ", "태국", "ประเทศไทย")},
	{Code: "SG", Name: "Singapore", Tier: domain.TierLenient, local: cjk("新加坡", "新加坡", "シンガポール", "싱가포르", "สิงคโปร์")},
	{Code: "MY", Name: "Malaysia", Tier: domain.TierLenient, local: withNative(cjk("马来西亚", "馬來西亞", "マレーシア", "말레이시아", "มาเลเซีย"), "MS-MY", "Malaysia")},
	{Code: "PH", Name: "Philippines", Tier: domain.TierLenient, local: cjk("菲律宾", "菲律賓", "フィリピン", "필리핀", "ฟิลิปปินส์")},
	{Code: "VN", Name: "Vietnam", Tier: domain.TierStrict, local: withNative(cjk("越南", "越南", "ベトナム", "베트남", "เวียดนาม"), "VI-VN", "Việt Nam")},
	{Code: "ID", Name: "Indonesia", Tier: domain.TierStrict, local: withNative(cjk("印度尼西亚", "印尼", "インドネシア", "인도네시아", "อินโดนีเซีย"), "ID-ID", "Indonesia")},
	{Code: "HK", Name: "Hong Kong", Tier: domain.TierLenient, local: cjk("香港", "香港", "香港", "홍콩", "ฮ่องกง")},
	{Code: "MO", Name: "Macau", Tier: domain.TierLenient, local: cjk("澳门", "澳門", "マカオ", "마카오", "มาเก๊า")},
	{Code: "US", Name: "United States", Tier: domain.TierModerate, local: cjk("美国", "美國", "アメリカ", "미국", "สหรัฐอเมริกา")},
	{Code: "ES", Name: "Spain", Tier: domain.TierStrict, local: cjk("西班牙", "西班牙", "スペイン", "스페인", "สเปน")},
	{Code: "FR", Name: "France", Tier: domain.TierStrict, local: cjk("法国", "法國", "フランス", "프랑스", "ฝรั่งเศส")},
	{Code: "DE", Name: "Germany", Tier: domain.TierStrict, local: withNative(cjk("德国", "德國", "ドイツ", "독일", "เยอรมนี"), "DE-DE", "Deutschland")},
	{Code: "IT", Name: "Italy", Tier: domain.TierStrict, local: withNative(cjk("意大利", "義大利", "イタリア", "이탈리아", "อิตาลี"), "IT-IT", "Italia")},
	{Code: "PT", Name: "Portugal", Tier: domain.TierStrict, local: cjk("葡萄牙", "葡萄牙", "ポルトガル", "포르투갈", "โปรตุเกส")},
	{Code: "GB", Name: "United Kingdom", Tier: domain.TierModerate, local: cjk("英国", "英國", "イギリス", "영국", "สหราชอาณาจักร")},
	{Code: "AU", Name: "Australia", Tier: domain.TierModerate, local: cjk("澳大利亚", "澳洲", "オーストラリア", "호주", "ออสเตรเลีย")},
	{Code: "NZ", Name: "New Zealand", Tier: domain.TierModerate, local: cjk("新西兰", "紐西蘭", "ニュージーランド", "뉴질랜드", "นิวซีแลนด์")},
	{Code: "CA", Name: "Canada", Tier: domain.TierModerate, local: cjk("加拿大", "加拿大", "カナダ", "캐나다", "แคนาดา")},
	{Code: "BR", Name: "Brazil", Tier: domain.TierStrict, local: withNative(cjk("巴西", "巴西", "ブラジル", "브라질", "บราซิล"), "PT-BR", "Brasil")},
	{Code: "IN", Name: "India", Tier: domain.TierModerate, local: cjk("印度", "印度", "インド", "인도", "อินเดีย")},
}

var (
	languageIndex = indexLanguages()
	countryIndex  = indexCountries()
)

func indexLanguages() map[string]int {
	idx := make(map[string]int, len(languages))
	for i, l := range languages {
		idx[l.Code] = i
	}
	return idx
}

func indexCountries() map[string]int {
	idx := make(map[string]int, len(countries))
	for i, c := range countries {
		idx[c.Code] = i
	}
	return idx
}

// Lookup returns the context for a language code (case-insensitive)
func Lookup(code string) (domain.LanguageContext, bool) {
	i, ok := languageIndex[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.LanguageContext{}, false
	}
	return languages[i], true
}

// IsSupported reports whether the language code is supported
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Supported returns all supported languages in display order
func Supported() []domain.LanguageContext {
	out := make([]domain.LanguageContext, len(languages))
	copy(out, languages)
	return out
}

// LookupCountry returns the country for an ISO code (case-insensitive)
func LookupCountry(code string) (Country, bool) {
	i, ok := countryIndex[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return countries[i], true
}

// ResolveCountry returns countryCode upper-cased, or the language's default country when empty
func ResolveCountry(languageCode, countryCode string) string {
	if c := strings.ToUpper(strings.TrimSpace(countryCode)); c != "" {
		return c
	}
	if lang, ok := Lookup(languageCode); ok {
		return lang.DefaultCountry
	}
	return ""
}

// StrictnessFor returns the regional strictness tier for a country.
// Unknown countries are moderate.
func StrictnessFor(countryCode string) domain.StrictnessTier {
	if c, ok := LookupCountry(countryCode); ok {
		return c.Tier
	}
	return domain.TierModerate
}

// CountryName returns the English name of a country, or the code itself if unknown
func CountryName(countryCode string) string {
	if c, ok := LookupCountry(countryCode); ok {
		return c.Name
	}
	return countryCode
}

// LocalizedCountryName returns the country's name as written in the target language.
// Latin-script targets without a native entry use the English name.
func LocalizedCountryName(countryCode, languageCode string) string {
	c, ok := LookupCountry(countryCode)
	if !ok {
		return countryCode
	}
	if name, ok := c.local[strings.ToUpper(languageCode)]; ok && name != "" {
		return name
	}
	return c.Name
}

// Validate checks the static tables for consistency. It is called once at startup.
func Validate() error {
	seen := make(map[string]bool, len(languages))
	for _, l := range languages {
		if seen[l.Code] {
			return fmt.Errorf("duplicate language code %s", l.Code)
		}
		seen[l.Code] = true

		if _, ok := countryIndex[l.DefaultCountry]; !ok {
			return fmt.Errorf("language %s has unknown default country %s", l.Code, l.DefaultCountry)
		}
		if l.SearchLanguage == "" || l.GoogleDomain == "" {
			return fmt.Errorf("language %s is missing search localization", l.Code)
		}

		switch l.Script {
		case domain.ScriptDistinct:
			if l.ScriptPattern == nil {
				return fmt.Errorf("language %s has no script pattern", l.Code)
			}
		case domain.ScriptLatin:
			if l.MarkerPattern == nil {
				return fmt.Errorf("language %s has no marker pattern", l.Code)
			}
		case domain.ScriptEnglish:
		default:
			return fmt.Errorf("language %s has unknown script family %q", l.Code, l.Script)
		}
	}

	for _, c := range countries {
		switch c.Tier {
		case domain.TierLenient, domain.TierModerate, domain.TierStrict:
		default:
			return fmt.Errorf("country %s has unknown tier %q", c.Code, c.Tier)
		}
	}
	return nil
}
