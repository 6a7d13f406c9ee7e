package profanity

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Substitution lists the strings that may stand in for Letter in obfuscated text.
type Substitution struct {
	Letter   string
	Variants []string
}

// Config is the immutable set of tunables an Engine is built from.
type Config struct {
	CaseSensitive           bool
	DetectLeetSpeak         bool
	ReplacementChar         string
	Substitutions           []Substitution
	Separators              []string
	BoundaryExemptLanguages []string
	SupportedLanguages      []string
}

// DefaultConfig returns the bundled settings for en, fr and ar.
func DefaultConfig() Config {
	return Config{
		CaseSensitive:   false,
		DetectLeetSpeak: true,
		ReplacementChar: "*",
		Substitutions: []Substitution{
			{Letter: "a", Variants: []string{"@", "4", "^"}},
			{Letter: "b", Variants: []string{"8"}},
			{Letter: "c", Variants: []string{"(", "¢"}},
			{Letter: "e", Variants: []string{"3", "€"}},
			{Letter: "g", Variants: []string{"9", "6"}},
			{Letter: "i", Variants: []string{"1", "!", "|"}},
			{Letter: "l", Variants: []string{"1", "|"}},
			{Letter: "o", Variants: []string{"0"}},
			{Letter: "s", Variants: []string{"$", "5"}},
			{Letter: "t", Variants: []string{"7", "+"}},
			{Letter: "z", Variants: []string{"2"}},
			{Letter: "ك", Variants: []string{"ک"}},
			{Letter: "ي", Variants: []string{"ی", "ى"}},
		},
		Separators:              []string{"-", "_", ".", "*", "#", "~", "/"},
		BoundaryExemptLanguages: []string{"ar"},
		SupportedLanguages:      []string{"en", "fr", "ar"},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfiguration.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.ReplacementChar) != 1 {
		return fmt.Errorf("%w: replacement character must be exactly one character, got %q", ErrInvalidConfiguration, c.ReplacementChar)
	}
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("%w: at least one supported language is required", ErrInvalidConfiguration)
	}
	for _, code := range c.SupportedLanguages {
		if err := checkLanguageCode(code); err != nil {
			return fmt.Errorf("%w: language %q: %v", ErrInvalidConfiguration, code, err)
		}
	}
	for _, code := range c.BoundaryExemptLanguages {
		if !slices.Contains(c.SupportedLanguages, code) {
			return fmt.Errorf("%w: boundary-exempt language %q is not supported", ErrInvalidConfiguration, code)
		}
	}
	for _, sep := range c.Separators {
		if utf8.RuneCountInString(sep) != 1 {
			return fmt.Errorf("%w: separator %q must be a single character", ErrInvalidConfiguration, sep)
		}
	}
	for _, sub := range c.Substitutions {
		if utf8.RuneCountInString(sub.Letter) != 1 {
			return fmt.Errorf("%w: substitution letter %q must be a single character", ErrInvalidConfiguration, sub.Letter)
		}
	}
	return nil
}

// checkLanguageCode accepts well-formed BCP 47 tags, including ones the
// language package does not recognise.
func checkLanguageCode(code string) error {
	if code == "" {
		return errors.New("empty language code")
	}
	_, err := language.Parse(code)
	var unknown language.ValueError
	if err != nil && !errors.As(err, &unknown) {
		return err
	}
	return nil
}

// Supports reports whether code is one of the supported languages.
func (c Config) Supports(code string) bool {
	return slices.Contains(c.SupportedLanguages, code)
}

func (c Config) boundaryExempt(code string) bool {
	return slices.Contains(c.BoundaryExemptLanguages, code)
}

func (c Config) clone() Config {
	out := c
	out.Separators = slices.Clone(c.Separators)
	out.BoundaryExemptLanguages = slices.Clone(c.BoundaryExemptLanguages)
	out.SupportedLanguages = slices.Clone(c.SupportedLanguages)
	out.Substitutions = make([]Substitution, len(c.Substitutions))
	for i, sub := range c.Substitutions {
		out.Substitutions[i] = Substitution{Letter: sub.Letter, Variants: slices.Clone(sub.Variants)}
	}
	return out
}
