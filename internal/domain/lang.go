package domain

import "strings"

// NormalizeLang reduces a language tag to its lowercase primary subtag:
// "ko-KR" → "ko", "EN" → "en". Empty input stays empty.
func NormalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	if i := strings.IndexByte(lang, '-'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}

// languageNames maps primary subtags to English display names used in
// translation prompts.
var languageNames = map[string]string{
	"ko": "Korean",
	"en": "English",
	"ja": "Japanese",
	"zh": "Chinese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
}

// LanguageName returns the English display name for a language tag,
// falling back to the normalized tag itself for unknown languages.
func LanguageName(lang string) string {
	code := NormalizeLang(lang)
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
