package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/profanity-filter/internal/metrics"
)

var (
	ErrTextTooShort = errors.New("text too short")
	ErrTextTooLong  = errors.New("text too long")
	ErrInvalidUTF8  = errors.New("text is not valid UTF-8")
)

type TextLimits struct {
	MinLen int
	MaxLen int
	Label  string
}

// InputLimits returns the limits applied to text handed to the filter.
func InputLimits(maxLen int) TextLimits {
	return TextLimits{MinLen: 0, MaxLen: maxLen, Label: "input"}
}

// ValidateText checks the trimmed length of text in characters. A MaxLen of zero disables the upper bound.
func ValidateText(text string, limits TextLimits) error {
	if !utf8.ValidString(text) {
		metrics.RejectedInputsTotal.WithLabelValues("invalid_utf8").Inc()
		return fmt.Errorf("%s: %w", limits.Label, ErrInvalidUTF8)
	}

	length := utf8.RuneCountInString(strings.TrimSpace(text))

	if length < limits.MinLen {
		metrics.RejectedInputsTotal.WithLabelValues("too_short").Inc()
		return fmt.Errorf("%s: %w: minimum %d characters", limits.Label, ErrTextTooShort, limits.MinLen)
	}
	if limits.MaxLen > 0 && length > limits.MaxLen {
		metrics.RejectedInputsTotal.WithLabelValues("too_long").Inc()
		return fmt.Errorf("%s: %w: maximum %d characters, got %d", limits.Label, ErrTextTooLong, limits.MaxLen, length)
	}
	return nil
}

// SanitizeText drops control characters other than newline, tab and carriage return.
func SanitizeText(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, text)
}

// ContainsOnlyPrintable reports whether SanitizeText would leave text unchanged.
func ContainsOnlyPrintable(text string) bool {
	for _, r := range text {
		if (r < 32 || r == 127) && r != '\n' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}
