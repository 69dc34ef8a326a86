package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is a supported language code
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageUkrainian Language = "uk"
	LanguageUnknown   Language = "unknown"
)

// Flag returns the flag emoji used in messages
func (l Language) Flag() string {
	switch l {
	case LanguageEnglish:
		return "🇬🇧"
	case LanguageUkrainian:
		return "🇺🇦"
	default:
		return "🌐"
	}
}

// DetectLanguage classifies text as English when it has any Latin letter,
// as Ukrainian when it has Cyrillic letters, and Unknown otherwise.
func DetectLanguage(text string) Language {
	if strings.TrimSpace(text) == "" {
		return LanguageUnknown
	}

	hasCyrillic := false
	for _, r := range text {
		if r < utf8.RuneSelf && ('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return LanguageEnglish
		}
		if unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r) {
			hasCyrillic = true
		}
	}

	if hasCyrillic {
		return LanguageUkrainian
	}
	return LanguageUnknown
}

var lower = cases.Lower(language.Und)

// NormalizeText capitalizes the first letter and lower-cases the rest
func NormalizeText(text string) string {
	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(first)) + lower.String(text[size:])
}

// FormatPair renders a word pair with flags
func FormatPair(english, translation string) string {
	return LanguageEnglish.Flag() + " " + english + "  ➜  " + LanguageUkrainian.Flag() + " " + translation
}
