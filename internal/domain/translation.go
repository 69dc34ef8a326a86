package domain

// TranslationMethod records which path produced a translation
type TranslationMethod string

const (
	MethodNone       TranslationMethod = ""
	MethodDictionary TranslationMethod = "DICTIONARY"
	MethodExternal   TranslationMethod = "GOOGLE_TRANSLATOR"
)

// DisplayName returns a user-facing method name
func (m TranslationMethod) DisplayName() string {
	switch m {
	case MethodDictionary:
		return "Dictionary"
	case MethodExternal:
		return "Google Translator"
	default:
		return "Nobody"
	}
}

// Translation is a resolved text together with its provenance
type Translation struct {
	Text   string
	Method TranslationMethod
}

// StagedTranslation is a candidate pair waiting for user confirmation
type StagedTranslation struct {
	ID          int64
	ChatID      int64
	English     string
	Translation string
	Method      TranslationMethod
}
