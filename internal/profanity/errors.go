package profanity

import "errors"

var (
	// ErrUnsupportedLanguage is returned when a language outside Config.SupportedLanguages is selected.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidConfiguration is returned when a Config fails validation.
	ErrInvalidConfiguration = errors.New("invalid profanity filter configuration")
)
