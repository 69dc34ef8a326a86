package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record no longer exists
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a word pair is already in the vocabulary
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyVocabulary is returned when a chat has no unlearned words
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	// ErrNotEnoughOptions is returned when four distinct options cannot be built
	ErrNotEnoughOptions = errors.New("not enough words for exercise options")
	// ErrTooManyWords is returned for translate requests with too many words
	ErrTooManyWords = errors.New("too many words")
	// ErrUnsupportedLanguage is returned when the language of a text cannot be detected
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// TranslationErrorKind distinguishes translation failures for messaging
type TranslationErrorKind string

const (
	KindValidation  TranslationErrorKind = "validation"
	KindNotFound    TranslationErrorKind = "not_found"
	KindRateLimited TranslationErrorKind = "rate_limited"
	KindUpstream    TranslationErrorKind = "upstream"
	KindParse       TranslationErrorKind = "parse"
)

// TranslationError is the single error type surfaced by translation paths
type TranslationError struct {
	Kind    TranslationErrorKind
	Message string
	Err     error
}

func (e *TranslationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// NewTranslationError builds a TranslationError
func NewTranslationError(kind TranslationErrorKind, message string, err error) *TranslationError {
	return &TranslationError{Kind: kind, Message: message, Err: err}
}

// IsTranslationKind reports whether err is a TranslationError of the given kind
func IsTranslationKind(err error, kind TranslationErrorKind) bool {
	var te *TranslationError
	return errors.As(err, &te) && te.Kind == kind
}
