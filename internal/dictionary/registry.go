// Package dictionary assembles per-language word lists for the profanity
// engine from the bundled lists, inline custom words and imported files.
package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/profanity-filter/internal/logger"
	"github.com/profanity-filter/internal/metrics"
	"github.com/profanity-filter/internal/profanity"
	"github.com/profanity-filter/internal/resilience"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformedImportSource is returned when a word list file cannot be read or parsed.
	ErrMalformedImportSource = errors.New("malformed word list source")

	// ErrUnsupportedFormat is returned for files whose extension is not txt, json, yaml or yml.
	ErrUnsupportedFormat = errors.New("unsupported word list format")
)

type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the import format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Registry collects words per language, dropping duplicates while keeping
// the order in which words were first added.
type Registry struct {
	languages []string
	words     map[string][]string
	seen      map[string]map[string]struct{}
}

func NewRegistry(languages ...string) *Registry {
	r := &Registry{
		words: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
	for _, lang := range languages {
		r.register(lang)
	}
	return r
}

func (r *Registry) register(lang string) {
	if _, ok := r.seen[lang]; ok {
		return
	}
	r.languages = append(r.languages, lang)
	r.seen[lang] = make(map[string]struct{})
}

// Add appends words to lang. Surrounding whitespace is trimmed and empty words are skipped.
func (r *Registry) Add(lang string, words ...string) {
	r.register(lang)
	seen := r.seen[lang]
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		r.words[lang] = append(r.words[lang], w)
	}
}

// AddBuiltin appends the bundled list for lang, if there is one.
func (r *Registry) AddBuiltin(lang string) {
	r.Add(lang, Builtin(lang)...)
}

// ImportFile appends the words of a .txt, .json, .yaml or .yml file. Read
// errors other than a missing or unreadable file are retried. On error
// nothing is added.
func (r *Registry) ImportFile(ctx context.Context, lang, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := resilience.RetryWithResult(ctx, resilience.FileRetryConfig(), func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, resilience.Permanent(err)
		}
		return data, err
	})
	if err != nil {
		metrics.ImportFailures.WithLabelValues(string(format)).Inc()
		return fmt.Errorf("%w: %s: %v", ErrMalformedImportSource, path, err)
	}

	if err := r.ImportReader(lang, format, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Imported word list", zap.String("lang", lang), zap.String("path", path))
	return nil
}

// ImportReader parses src in the given format and appends the words to lang.
func (r *Registry) ImportReader(lang string, format Format, src io.Reader) error {
	words, err := parse(format, src)
	if err != nil {
		metrics.ImportFailures.WithLabelValues(string(format)).Inc()
		return err
	}
	r.Add(lang, words...)
	return nil
}

func parse(format Format, src io.Reader) ([]string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImportSource, err)
	}
	switch format {
	case FormatText:
		return parseText(data)
	case FormatJSON:
		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("%w: expected a JSON array of strings: %v", ErrMalformedImportSource, err)
		}
		return words, nil
	case FormatYAML:
		var words []string
		if err := yaml.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("%w: expected a YAML sequence of strings: %v", ErrMalformedImportSource, err)
		}
		return words, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// parseText reads one word per line. Blank lines and lines starting with # are ignored.
func parseText(data []byte) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImportSource, err)
	}
	return words, nil
}

// Languages returns the registered languages in registration order.
func (r *Registry) Languages() []string {
	out := make([]string, len(r.languages))
	copy(out, r.languages)
	return out
}

// Build returns the collected words as an engine dictionary.
func (r *Registry) Build() profanity.Dictionary {
	dict := make(profanity.Dictionary, len(r.languages))
	for _, lang := range r.languages {
		words := make([]string, len(r.words[lang]))
		copy(words, r.words[lang])
		dict[lang] = words
	}
	return dict
}

// Sources describes everything that goes into a dictionary.
type Sources struct {
	Languages   []string
	CustomWords map[string][]string
	Files       map[string][]string
}

// Load merges, for every language, the bundled list, the custom words and
// the words of each file, in that order.
func Load(ctx context.Context, src Sources) (profanity.Dictionary, error) {
	r := NewRegistry(src.Languages...)
	bundled := BuiltinLanguages()
	for _, lang := range src.Languages {
		if !slices.Contains(bundled, lang) {
			logger.Debug("No bundled word list", zap.String("lang", lang))
		}
		r.AddBuiltin(lang)
		r.Add(lang, src.CustomWords[lang]...)
		for _, path := range src.Files[lang] {
			if err := r.ImportFile(ctx, lang, path); err != nil {
				return nil, err
			}
		}
	}
	for _, lang := range r.Languages() {
		logger.Debug("Word list ready", zap.String("lang", lang), zap.Int("words", len(r.words[lang])))
	}
	return r.Build(), nil
}
