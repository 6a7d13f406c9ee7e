package profanity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mask replaces profane words with the replacement character. With a pinned
// language only that language is applied. Otherwise every supported language
// masks the original text on its own and the engine's Strategy picks one
// result; words of two different languages are therefore not masked together.
func (e *Engine) Mask(text string) string {
	if e.language != "" {
		return e.maskLanguage(text, e.language)
	}
	candidates := make([]Candidate, 0, len(e.cfg.SupportedLanguages))
	for _, lang := range e.cfg.SupportedLanguages {
		candidates = append(candidates, Candidate{
			Language:    lang,
			Text:        e.maskLanguage(text, lang),
			Replacement: e.cfg.ReplacementChar,
		})
	}
	return e.strategy.Choose(text, candidates)
}

// maskLanguage applies the words of lang one after another; each pass works
// on the output of the previous one.
func (e *Engine) maskLanguage(text, lang string) string {
	bounded := !e.cfg.boundaryExempt(lang)
	for _, word := range e.dict[lang] {
		matched := false
		if m := e.tolerant(word, bounded); m != nil {
			if spans := m.findAll(text); len(spans) > 0 {
				text = e.maskLetters(text, spans)
				matched = true
			}
		}
		if !bounded {
			continue
		}
		if !matched {
			text = e.maskFolded(text, word)
		}
		if !e.cfg.CaseSensitive {
			text = e.maskAccentFolded(text, word)
		}
	}
	return text
}

func (e *Engine) maskable(r rune) bool {
	return r != e.replacement && (unicode.IsLetter(r) || unicode.IsNumber(r))
}

// maskLetters replaces letters and digits inside spans, leaving separators
// and punctuation in place.
func (e *Engine) maskLetters(text string, spans []span) string {
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		b.WriteString(text[prev:sp.start])
		for i := sp.start; i < sp.end; {
			r, size := utf8.DecodeRuneInString(text[i:])
			if e.maskable(r) {
				b.WriteString(e.cfg.ReplacementChar)
			} else {
				b.WriteString(text[i : i+size])
			}
			i += size
		}
		prev = sp.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// blank replaces each span wholesale, one replacement character per rune.
// spans must be sorted and must not overlap.
func (e *Engine) blank(text string, spans []span) string {
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		if sp.start < prev {
			continue
		}
		b.WriteString(text[prev:sp.start])
		b.WriteString(strings.Repeat(e.cfg.ReplacementChar, utf8.RuneCountInString(text[sp.start:sp.end])))
		prev = sp.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// maskFolded is the fallback for words the tolerant pattern missed: the
// plain word is searched in the leet-folded text and the raw span behind
// every hit is blanked.
func (e *Engine) maskFolded(text, word string) string {
	m := e.plain(word, true)
	if m == nil {
		return text
	}
	f := e.norm.foldLeet(text)
	hits := m.findAll(f.text)
	if len(hits) == 0 {
		return text
	}
	spans := make([]span, 0, len(hits))
	for _, h := range hits {
		if sp := f.rawSpan(h.start, h.end); sp.end > sp.start {
			spans = append(spans, sp)
		}
	}
	return e.blank(text, spans)
}

// maskAccentFolded matches the word with accents stripped from both sides
// and blanks the whole token of text that contains each hit.
func (e *Engine) maskAccentFolded(text, word string) string {
	m := e.accent(word)
	if m == nil {
		return text
	}
	f := foldAccents(text)
	hits := m.findAll(f.text)
	if len(hits) == 0 {
		return text
	}
	var spans []span
	for _, h := range hits {
		pos := f.rawSpan(h.start, h.end).start
		tok := tokenAt(text, pos)
		if !containsLetter(text[tok.start:tok.end]) {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].end > tok.start {
			continue
		}
		spans = append(spans, tok)
	}
	return e.blank(text, spans)
}

// tokenAt returns the boundary-delimited token of text containing byte offset pos.
func tokenAt(text string, pos int) span {
	if pos >= len(text) {
		return span{len(text), len(text)}
	}
	start := pos
	for start > 0 && !isBoundary(text, start) {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	end := pos + size
	for end < len(text) && !isBoundary(text, end) {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return span{start, end}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
