package validation

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/profanity-filter/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTextTooShort(t *testing.T) {
	err := ValidateText("  ab  ", TextLimits{MinLen: 5, MaxLen: 100, Label: "Test"})
	require.ErrorIs(t, err, ErrTextTooShort)
	assert.True(t, strings.HasPrefix(err.Error(), "Test: "), "expected label prefix in error, got: %v", err)
}

func TestValidateTextTooLong(t *testing.T) {
	before := testutil.ToFloat64(metrics.RejectedInputsTotal.WithLabelValues("too_long"))

	text := strings.Repeat("a", 101)
	err := ValidateText(text, TextLimits{MinLen: 1, MaxLen: 100, Label: "Test"})
	require.ErrorIs(t, err, ErrTextTooLong)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RejectedInputsTotal.WithLabelValues("too_long")))
}

func TestValidateTextValid(t *testing.T) {
	assert.NoError(t, ValidateText("Hello World!", TextLimits{MinLen: 1, MaxLen: 100, Label: "Test"}))
}

func TestValidateTextUnicodeLength(t *testing.T) {
	assert.NoError(t, ValidateText("هذا اختبار", TextLimits{MinLen: 1, MaxLen: 10, Label: "Test"}))
	assert.ErrorIs(t, ValidateText("personnalisé", TextLimits{MaxLen: 11, Label: "Test"}), ErrTextTooLong,
		"12 characters should exceed a limit of 11")
}

func TestValidateTextInputLimits(t *testing.T) {
	assert.NoError(t, ValidateText("", InputLimits(10)), "empty input should be accepted")
	assert.NoError(t, ValidateText(strings.Repeat("x", 50000), InputLimits(0)), "zero max length should not bound input")
	assert.ErrorIs(t, ValidateText(strings.Repeat("x", 11), InputLimits(10)), ErrTextTooLong)
}

func TestValidateTextInvalidUTF8(t *testing.T) {
	assert.ErrorIs(t, ValidateText("d\xffmn", InputLimits(100)), ErrInvalidUTF8)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "  hello  "},
		{"hello\x00world", "helloworld"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
		{"\x01\x02test\x7f", "test"},
		{"d-a-m-n", "d-a-m-n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeText(tt.input), "SanitizeText(%q)", tt.input)
	}
}

func TestContainsOnlyPrintable(t *testing.T) {
	assert.True(t, ContainsOnlyPrintable("C'est un test\n"))
	assert.False(t, ContainsOnlyPrintable("bell\x07"), "control character should be rejected")
}
