package domain

import "fmt"

// Language is a translation target supported by the quiz
type Language string

const (
	LangEnglish  Language = "en"
	LangSpanish  Language = "es"
	LangFrench   Language = "fr"
	LangHindi    Language = "hi"
	LangJapanese Language = "ja"
)

// SourceLanguage is the language quiz meanings are written in
const SourceLanguage = LangEnglish

// Languages returns all supported languages in menu order
func Languages() []Language {
	return []Language{LangEnglish, LangSpanish, LangFrench, LangHindi, LangJapanese}
}

// ParseLanguage validates a language code
func ParseLanguage(code string) (Language, error) {
	for _, lang := range Languages() {
		if string(lang) == code {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language: %q", code)
}

// Name returns user-friendly language name
func (l Language) Name() string {
	switch l {
	case LangEnglish:
		return "🇬🇧 Английский"
	case LangSpanish:
		return "🇪🇸 Испанский"
	case LangFrench:
		return "🇫🇷 Французский"
	case LangHindi:
		return "🇮🇳 Хинди"
	case LangJapanese:
		return "🇯🇵 Японский"
	default:
		return string(l)
	}
}

// VoiceLocale returns the speech service voice hint for the language.
// Only ja, es and fr have their own voices, everything else gets hi-in.
func (l Language) VoiceLocale() string {
	switch l {
	case LangJapanese:
		return "ja-jp"
	case LangSpanish:
		return "es-es"
	case LangFrench:
		return "fr-fr"
	default:
		return "hi-in"
	}
}
