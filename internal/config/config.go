package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/profanity-filter/internal/dictionary"
	"github.com/profanity-filter/internal/logger"
	"github.com/profanity-filter/internal/profanity"
	"go.uber.org/zap"
)

const DefaultMaxTextLength = 10000

type Config struct {
	AppEnv    string
	LogLevel  string
	SentryDSN string

	// File is the optional YAML file the filter settings were read from.
	File string

	// Language pins the engine to one language; empty means all languages.
	Language      string
	MaxTextLength int

	Filter      profanity.Config
	CustomWords map[string][]string
	WordFiles   map[string][]string

	// exemptSet records that boundary-exempt languages came from the file or
	// the environment rather than the defaults.
	exemptSet bool
}

// environment holds the variables that may override defaults and the YAML file.
// Pointer and slice fields stay nil when the variable is unset.
type environment struct {
	AppEnv          string   `env:"APP_ENV" envDefault:"development"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"warn"`
	SentryDSN       string   `env:"SENTRY_DSN"`
	File            string   `env:"PROFANITY_CONFIG_FILE"`
	Language        *string  `env:"PROFANITY_LANGUAGE"`
	CaseSensitive   *bool    `env:"PROFANITY_CASE_SENSITIVE"`
	DetectLeetSpeak *bool    `env:"PROFANITY_DETECT_LEET"`
	ReplacementChar *string  `env:"PROFANITY_REPLACEMENT_CHAR"`
	Languages       []string `env:"PROFANITY_LANGUAGES" envSeparator:","`
	BoundaryExempt  []string `env:"PROFANITY_BOUNDARY_EXEMPT" envSeparator:","`
	MaxTextLength   *int     `env:"PROFANITY_MAX_TEXT_LENGTH"`
}

func Default() *Config {
	return &Config{
		AppEnv:        "development",
		LogLevel:      "warn",
		MaxTextLength: DefaultMaxTextLength,
		Filter:        profanity.DefaultConfig(),
		CustomWords:   map[string][]string{},
		WordFiles:     map[string][]string{},
	}
}

// Load reads .env, the YAML file named by PROFANITY_CONFIG_FILE and the
// environment, in increasing order of precedence. The result is validated.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to load .env, using existing environment variables", zap.Error(err))
		}
	}

	var ev environment
	if err := env.Parse(&ev); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg := Default()
	cfg.AppEnv = ev.AppEnv
	cfg.LogLevel = ev.LogLevel
	cfg.SentryDSN = ev.SentryDSN

	if ev.File != "" {
		if err := cfg.applyFile(ev.File); err != nil {
			return nil, err
		}
		cfg.File = ev.File
	}
	cfg.applyEnvironment(ev)

	cfg.validate()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded",
		zap.String("file", cfg.File),
		zap.Strings("languages", cfg.Filter.SupportedLanguages),
		zap.String("language", cfg.Language),
		zap.Bool("case_sensitive", cfg.Filter.CaseSensitive),
		zap.Bool("detect_leet_speak", cfg.Filter.DetectLeetSpeak),
	)
	return cfg, nil
}

func (c *Config) applyEnvironment(ev environment) {
	if ev.Language != nil {
		c.Language = *ev.Language
	}
	if ev.CaseSensitive != nil {
		c.Filter.CaseSensitive = *ev.CaseSensitive
	}
	if ev.DetectLeetSpeak != nil {
		c.Filter.DetectLeetSpeak = *ev.DetectLeetSpeak
	}
	if ev.ReplacementChar != nil {
		c.Filter.ReplacementChar = *ev.ReplacementChar
	}
	if ev.Languages != nil {
		c.Filter.SupportedLanguages = trimAll(ev.Languages)
	}
	if ev.BoundaryExempt != nil {
		c.Filter.BoundaryExemptLanguages = trimAll(ev.BoundaryExempt)
		c.exemptSet = true
	}
	if ev.MaxTextLength != nil {
		c.MaxTextLength = *ev.MaxTextLength
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// validate clamps values that have a safe fallback. Default boundary-exempt
// languages follow a narrowed language list; explicit ones are kept as given.
func (c *Config) validate() {
	if c.MaxTextLength <= 0 {
		c.MaxTextLength = DefaultMaxTextLength
	}
	if !c.exemptSet {
		exempt := make([]string, 0, len(c.Filter.BoundaryExemptLanguages))
		for _, lang := range c.Filter.BoundaryExemptLanguages {
			if c.Filter.Supports(lang) {
				exempt = append(exempt, lang)
			}
		}
		c.Filter.BoundaryExemptLanguages = exempt
	}
}

// Validate rejects configurations the engine cannot be built from.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	if c.Language != "" && !c.Filter.Supports(c.Language) {
		return fmt.Errorf("%w: pinned language %q is not supported", profanity.ErrInvalidConfiguration, c.Language)
	}
	for lang := range c.CustomWords {
		if !c.Filter.Supports(lang) {
			logger.Warn("Custom words configured for unsupported language", zap.String("lang", lang))
		}
	}
	return nil
}

// Sources describes the word lists to load for the supported languages.
// Relative file paths from the YAML file are resolved against its directory.
func (c *Config) Sources() dictionary.Sources {
	return dictionary.Sources{
		Languages:   c.Filter.SupportedLanguages,
		CustomWords: c.CustomWords,
		Files:       c.WordFiles,
	}
}
