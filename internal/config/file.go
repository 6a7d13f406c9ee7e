package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/profanity-filter/internal/profanity"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Absent keys keep their defaults.
type fileConfig struct {
	Language        string              `yaml:"language"`
	CaseSensitive   *bool               `yaml:"case_sensitive"`
	DetectLeetSpeak *bool               `yaml:"detect_leet_speak"`
	ReplacementChar *string             `yaml:"replacement_character"`
	Substitutions   substitutionList    `yaml:"substitutions"`
	Separators      *[]string           `yaml:"separators"`
	BoundaryExempt  *[]string           `yaml:"languages_match_without_boundaries"`
	Languages       []string            `yaml:"supported_languages"`
	CustomWords     map[string][]string `yaml:"custom_words"`
	WordFiles       map[string][]string `yaml:"custom_words_file_path"`
	MaxTextLength   int                 `yaml:"max_text_length"`
}

// substitutionList decodes a YAML mapping of letter to variants, keeping the
// order of the keys as written. Leet folding depends on that order.
type substitutionList []profanity.Substitution

func (s *substitutionList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: substitutions must be a mapping of letter to variants", node.Line)
	}
	out := make(substitutionList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var sub profanity.Substitution
		if err := node.Content[i].Decode(&sub.Letter); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&sub.Variants); err != nil {
			return fmt.Errorf("line %d: variants of %q must be a list of strings: %w", node.Content[i+1].Line, sub.Letter, err)
		}
		out = append(out, sub)
	}
	*s = out
	return nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", profanity.ErrInvalidConfiguration, path, err)
	}

	if fc.Language != "" {
		c.Language = fc.Language
	}
	if fc.CaseSensitive != nil {
		c.Filter.CaseSensitive = *fc.CaseSensitive
	}
	if fc.DetectLeetSpeak != nil {
		c.Filter.DetectLeetSpeak = *fc.DetectLeetSpeak
	}
	if fc.ReplacementChar != nil {
		c.Filter.ReplacementChar = *fc.ReplacementChar
	}
	if fc.Substitutions != nil {
		c.Filter.Substitutions = fc.Substitutions
	}
	if fc.Separators != nil {
		c.Filter.Separators = *fc.Separators
	}
	if fc.BoundaryExempt != nil {
		c.Filter.BoundaryExemptLanguages = *fc.BoundaryExempt
		c.exemptSet = true
	}
	if len(fc.Languages) > 0 {
		c.Filter.SupportedLanguages = fc.Languages
	}
	for lang, words := range fc.CustomWords {
		c.CustomWords[lang] = append(c.CustomWords[lang], words...)
	}
	base := filepath.Dir(path)
	for lang, files := range fc.WordFiles {
		for _, f := range files {
			if !filepath.IsAbs(f) {
				f = filepath.Join(base, f)
			}
			c.WordFiles[lang] = append(c.WordFiles[lang], f)
		}
	}
	if fc.MaxTextLength != 0 {
		c.MaxTextLength = fc.MaxTextLength
	}
	return nil
}
