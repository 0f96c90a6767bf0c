package language

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		language       string
		country        string
		wantTarget     bool
		wantEnglish    bool
		wantAcceptable bool
	}{
		{
			name: "simplified chinese translation of a spanish poi",
			text: "马德里动物园水族馆", language: "ZH-CN", country: "ES",
			wantTarget: true, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "japanese mixed with english",
			text: "Tokyo Tower 東京タワー", language: "JA-JP", country: "JP",
			wantTarget: true, wantEnglish: true, wantAcceptable: true,
		},
		{
			name: "korean text for japanese target",
			text: "서울타워", language: "JA-JP", country: "JP",
			wantTarget: false, wantEnglish: false, wantAcceptable: false,
		},
		{
			name: "pure english in strict region",
			text: "Madrid Zoo Aquarium", language: "JA-JP", country: "JP",
			wantTarget: false, wantEnglish: true, wantAcceptable: false,
		},
		{
			name: "pure english in lenient region",
			text: "Gardens by the Bay", language: "ZH-CN", country: "SG",
			wantTarget: false, wantEnglish: true, wantAcceptable: true,
		},
		{
			name: "thai script",
			text: "พระบรมมหาราชวัง", language: "TH-TH", country: "",
			wantTarget: true, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "french diacritics",
			text: "Musée du Louvre", language: "FR-FR", country: "FR",
			wantTarget: true, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "short ambiguous latin text",
			text: "Palais royal de Madrid", language: "FR-FR", country: "ES",
			wantTarget: false, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "long english text for french target",
			text: "The best things to do in Madrid and the history of the zoo aquarium", language: "FR-FR", country: "ES",
			wantTarget: false, wantEnglish: true, wantAcceptable: false,
		},
		{
			name: "short english text in strict region",
			text: "The Zoo of the City", language: "DE-DE", country: "DE",
			wantTarget: false, wantEnglish: true, wantAcceptable: false,
		},
		{
			name: "short english text in lenient region",
			text: "The Zoo of the City", language: "MS-MY", country: "MY",
			wantTarget: false, wantEnglish: true, wantAcceptable: true,
		},
		{
			name: "german umlaut",
			text: "Zoo Aquarium Madrid Öffnungszeiten", language: "DE-DE", country: "ES",
			wantTarget: true, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "vietnamese diacritics",
			text: "Vườn thú Madrid", language: "VI-VN", country: "ES",
			wantTarget: true, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "non-latin script for latin target",
			text: "马德里动物园", language: "IT-IT", country: "ES",
			wantTarget: false, wantEnglish: false, wantAcceptable: true,
		},
		{
			name: "english target",
			text: "Zoo Aquarium de Madrid", language: "EN-US", country: "ES",
			wantTarget: true, wantEnglish: true, wantAcceptable: true,
		},
		{
			name: "cjk for english target",
			text: "马德里动物园", language: "EN-GB", country: "ES",
			wantTarget: false, wantEnglish: false, wantAcceptable: false,
		},
		{
			name: "unsupported language",
			text: "Zoo", language: "XX-XX", country: "ES",
		},
		{
			name: "empty text",
			text: "   ", language: "ZH-CN", country: "CN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.language, tt.country)
			if got.HasTargetLanguage != tt.wantTarget {
				t.Errorf("HasTargetLanguage = %v, want %v (%s)", got.HasTargetLanguage, tt.wantTarget, got.Reason)
			}
			if got.HasEnglish != tt.wantEnglish {
				t.Errorf("HasEnglish = %v, want %v (%s)", got.HasEnglish, tt.wantEnglish, got.Reason)
			}
			if got.IsAcceptable != tt.wantAcceptable {
				t.Errorf("IsAcceptable = %v, want %v (%s)", got.IsAcceptable, tt.wantAcceptable, got.Reason)
			}
			if got.Reason == "" {
				t.Error("Reason should never be empty")
			}
		})
	}
}

func TestCountEnglishStopwords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"The Museum of Modern Art", 2},
		{"Musée du Louvre", 0},
		{"the THE The", 3},
		{"", 0},
	}

	for _, tt := range tests {
		if got := CountEnglishStopwords(tt.text); got != tt.want {
			t.Errorf("CountEnglishStopwords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
