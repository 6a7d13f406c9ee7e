package profanity

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// filler accepts anything that is neither a letter nor a digit between two characters of a word.
const filler = `[^\p{L}\p{N}]*`

// atom is one character of a word and the alternatives accepted in its place.
type atom struct {
	alts []string
}

// patternSpec is the dialect independent form of a word matcher.
type patternSpec struct {
	atoms    []atom
	filler   bool
	bounded  bool
	foldCase bool
}

// buildTolerant expands every character of word into itself plus its
// substitutes and allows filler between consecutive characters.
func buildTolerant(word string, variants map[rune][]string, withBoundaries, caseInsensitive bool) patternSpec {
	spec := patternSpec{filler: true, bounded: withBoundaries, foldCase: caseInsensitive}
	for _, r := range word {
		a := atom{alts: []string{string(r)}}
		a.alts = append(a.alts, variants[r]...)
		spec.atoms = append(spec.atoms, a)
	}
	return spec
}

// buildPlain matches word literally.
func buildPlain(word string, withBoundaries, caseInsensitive bool) patternSpec {
	return patternSpec{
		atoms:    []atom{{alts: []string{word}}},
		bounded:  withBoundaries,
		foldCase: caseInsensitive,
	}
}

func (p patternSpec) expr() string {
	var b strings.Builder
	if p.foldCase {
		b.WriteString("(?i)")
	}
	for i, a := range p.atoms {
		if i > 0 && p.filler {
			b.WriteString(filler)
		}
		if len(a.alts) == 1 {
			b.WriteString(regexp.QuoteMeta(a.alts[0]))
			continue
		}
		b.WriteString("(?:")
		for k, alt := range a.alts {
			if k > 0 {
				b.WriteByte('|')
			}
			b.WriteString(regexp.QuoteMeta(alt))
		}
		b.WriteByte(')')
	}
	return b.String()
}

func (p patternSpec) compile() (*matcher, error) {
	re, err := regexp.Compile(p.expr())
	if err != nil {
		return nil, err
	}
	return &matcher{re: re, bounded: p.bounded}, nil
}

// matcher searches raw text. Word boundaries are checked here rather than in
// the expression because RE2 only knows ASCII boundaries.
type matcher struct {
	re      *regexp.Regexp
	bounded bool
}

func (m *matcher) match(text string) bool {
	_, ok := m.find(text, 0)
	return ok
}

func (m *matcher) findAll(text string) []span {
	var out []span
	for from := 0; from < len(text); {
		loc, ok := m.find(text, from)
		if !ok {
			break
		}
		out = append(out, loc)
		from = loc.end
	}
	return out
}

func (m *matcher) find(text string, from int) (span, bool) {
	for from < len(text) {
		loc := m.re.FindStringIndex(text[from:])
		if loc == nil || loc[1] == loc[0] {
			return span{}, false
		}
		s, e := from+loc[0], from+loc[1]
		if !m.bounded || (isBoundary(text, s) && isBoundary(text, e)) {
			return span{s, e}, true
		}
		_, size := utf8.DecodeRuneInString(text[s:])
		from = s + size
	}
	return span{}, false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r)
}

// isBoundary reports whether byte offset i of text sits between a word and a non-word character.
func isBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

type patternKind uint8

const (
	kindPlain patternKind = iota
	kindTolerant
	kindAccent
)

type patternKey struct {
	kind    patternKind
	word    string
	bounded bool
}

// patternCache memoizes compiled matchers for one engine snapshot. Words
// that fail to compile are cached as nil and never match.
type patternCache struct {
	m sync.Map
}

func (c *patternCache) get(key patternKey, build func() patternSpec) *matcher {
	if v, ok := c.m.Load(key); ok {
		return v.(*matcher)
	}
	m, err := build().compile()
	if err != nil {
		m = nil
	}
	v, _ := c.m.LoadOrStore(key, m)
	return v.(*matcher)
}
