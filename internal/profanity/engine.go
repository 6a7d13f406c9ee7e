// Package profanity detects, lists and masks profane words in multilingual
// text. Matching tolerates leet substitutions ("d@mn"), separators inserted
// between letters ("d-a-m-n") and, for case-insensitive filters, accent
// variations.
//
// An Engine is an immutable snapshot of a Config, a Dictionary and an
// optional pinned language. Every With* method returns a new Engine, so a
// single value can be shared between goroutines.
package profanity

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Dictionary maps a language code to its profane words.
type Dictionary map[string][]string

// clone drops empty and duplicate words, keeping first occurrences in order.
func (d Dictionary) clone() Dictionary {
	out := make(Dictionary, len(d))
	for lang, words := range d {
		seen := make(map[string]struct{}, len(words))
		list := make([]string, 0, len(words))
		for _, w := range words {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			list = append(list, w)
		}
		out[lang] = list
	}
	return out
}

// Engine is an immutable filter snapshot. The With* methods return a new
// Engine and leave the receiver untouched, so an Engine is safe for
// concurrent use.
type Engine struct {
	cfg         Config
	dict        Dictionary
	language    string
	replacement rune
	norm        *normalizer
	patterns    *patternCache
	strategy    Strategy
}

// Option configures an Engine built by New.
type Option func(*Engine)

// WithStrategy replaces the policy used to pick a masked candidate when no language is pinned.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		if s != nil {
			e.strategy = s
		}
	}
}

// New validates cfg and builds an engine over dict. Languages of dict that
// are not in cfg.SupportedLanguages are ignored.
func New(cfg Config, dict Dictionary, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{strategy: HighestScore{Score: ReplacementCount}}
	e.reset(cfg.clone(), dict.clone())
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) reset(cfg Config, dict Dictionary) {
	e.cfg = cfg
	e.dict = dict
	e.replacement, _ = utf8.DecodeRuneInString(cfg.ReplacementChar)
	e.norm = newNormalizer(cfg)
	e.patterns = &patternCache{}
}

func (e *Engine) copy() *Engine {
	c := *e
	return &c
}

// WithLanguage pins matching to code. The receiver is left untouched on error.
func (e *Engine) WithLanguage(code string) (*Engine, error) {
	if !e.cfg.Supports(code) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	c := e.copy()
	c.language = code
	return c, nil
}

// WithoutLanguage switches back to multi-language mode.
func (e *Engine) WithoutLanguage() *Engine {
	c := e.copy()
	c.language = ""
	return c
}

// WithConfiguration replaces both the configuration and the dictionary. The
// pinned language survives only if the new configuration still supports it.
func (e *Engine) WithConfiguration(cfg Config, dict Dictionary) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := e.copy()
	c.reset(cfg.clone(), dict.clone())
	if !cfg.Supports(c.language) {
		c.language = ""
	}
	return c, nil
}

// WithCaseSensitivity returns a copy of e with case-sensitive matching toggled.
func (e *Engine) WithCaseSensitivity(caseSensitive bool) *Engine {
	cfg := e.cfg.clone()
	cfg.CaseSensitive = caseSensitive
	c := e.copy()
	c.reset(cfg, e.dict)
	return c
}

// WithLeetDetection returns a copy of e with leet speak detection toggled.
func (e *Engine) WithLeetDetection(detect bool) *Engine {
	cfg := e.cfg.clone()
	cfg.DetectLeetSpeak = detect
	c := e.copy()
	c.reset(cfg, e.dict)
	return c
}

// Language returns the pinned language, or "" in multi-language mode.
func (e *Engine) Language() string { return e.language }

// Config returns a copy of the settings e was built with.
func (e *Engine) Config() Config { return e.cfg.clone() }

// Languages returns the languages consulted by Detect, ExtractMatches and Mask.
func (e *Engine) Languages() []string {
	if e.language != "" {
		return []string{e.language}
	}
	return slices.Clone(e.cfg.SupportedLanguages)
}

// Words returns a copy of the dictionary entries for code.
func (e *Engine) Words(code string) []string {
	return slices.Clone(e.dict[code])
}

func (e *Engine) plain(word string, bounded bool) *matcher {
	return e.patterns.get(patternKey{kind: kindPlain, word: word, bounded: bounded}, func() patternSpec {
		return buildPlain(word, bounded, !e.cfg.CaseSensitive)
	})
}

// tolerant uses substitutions only while leet detection is enabled.
func (e *Engine) tolerant(word string, bounded bool) *matcher {
	return e.patterns.get(patternKey{kind: kindTolerant, word: word, bounded: bounded}, func() patternSpec {
		var variants map[rune][]string
		if e.norm.leet {
			variants = e.norm.variants
		}
		return buildTolerant(word, variants, bounded, !e.cfg.CaseSensitive)
	})
}

func (e *Engine) accent(word string) *matcher {
	return e.patterns.get(patternKey{kind: kindAccent, word: word, bounded: true}, func() patternSpec {
		return buildPlain(foldAccents(word).text, true, true)
	})
}
