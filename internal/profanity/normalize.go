package profanity

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// span is a byte range of the raw text.
type span struct {
	start, end int
}

// unit is one rune of a normalized text together with the raw span it was produced from.
type unit struct {
	r   rune
	src span
}

// folded is a normalized text that can map its matches back onto the raw text.
type folded struct {
	text    string
	units   []unit
	offsets []int // byte offset in text of each unit
}

func toUnits(text string) []unit {
	units := make([]unit, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		units = append(units, unit{r: r, src: span{i, i + size}})
		i += size
	}
	return units
}

func assemble(units []unit) folded {
	var b strings.Builder
	offsets := make([]int, len(units))
	for i, u := range units {
		offsets[i] = b.Len()
		b.WriteRune(u.r)
	}
	return folded{text: b.String(), units: units, offsets: offsets}
}

// identity wraps text without altering it. Invalid UTF-8 is kept byte for byte.
func identity(text string) folded {
	units := toUnits(text)
	offsets := make([]int, len(units))
	for i, u := range units {
		offsets[i] = u.src.start
	}
	return folded{text: text, units: units, offsets: offsets}
}

// rawSpan maps the byte range [start, end) of f.text onto the raw text.
func (f folded) rawSpan(start, end int) span {
	first := sort.SearchInts(f.offsets, start)
	last := sort.SearchInts(f.offsets, end) - 1
	if first >= len(f.units) || last < first {
		return span{}
	}
	return span{f.units[first].src.start, f.units[last].src.end}
}

type substitute struct {
	letter   []rune
	variants [][]rune // longest first
}

// normalizer folds leet speak, separators and accents for matching purposes only.
type normalizer struct {
	leet       bool
	subs       []substitute
	variants   map[rune][]string
	separators map[rune]struct{}
}

func newNormalizer(cfg Config) *normalizer {
	n := &normalizer{
		leet:       cfg.DetectLeetSpeak,
		variants:   make(map[rune][]string),
		separators: make(map[rune]struct{}),
	}
	for _, sub := range cfg.Substitutions {
		letter := []rune(sub.Letter)
		s := substitute{letter: letter}
		for _, v := range sub.Variants {
			if v == "" || v == sub.Letter {
				continue
			}
			s.variants = append(s.variants, []rune(v))
			if len(letter) == 1 && !slices.Contains(n.variants[letter[0]], v) {
				n.variants[letter[0]] = append(n.variants[letter[0]], v)
			}
		}
		sort.SliceStable(s.variants, func(i, j int) bool { return len(s.variants[i]) > len(s.variants[j]) })
		if len(s.variants) > 0 {
			n.subs = append(n.subs, s)
		}
	}
	for _, sep := range cfg.Separators {
		if r, _ := utf8.DecodeRuneInString(sep); r != utf8.RuneError {
			n.separators[r] = struct{}{}
		}
	}
	return n
}

// foldLeet reverses configured substitutions and collapses separators.
// With leet detection disabled the text is returned unchanged.
func (n *normalizer) foldLeet(text string) folded {
	if !n.leet {
		return identity(text)
	}
	units := toUnits(text)
	for _, s := range n.subs {
		units = s.replace(units)
	}
	return assemble(n.collapseSeparators(units))
}

// replace performs one left-to-right pass, substituting the longest variant
// found at each position with the letter.
func (s substitute) replace(units []unit) []unit {
	out := make([]unit, 0, len(units))
	for i := 0; i < len(units); {
		n := s.match(units[i:])
		if n == 0 {
			out = append(out, units[i])
			i++
			continue
		}
		src := span{units[i].src.start, units[i+n-1].src.end}
		for _, r := range s.letter {
			out = append(out, unit{r: r, src: src})
		}
		i += n
	}
	return out
}

func (s substitute) match(units []unit) int {
	for _, v := range s.variants {
		if len(v) > len(units) {
			continue
		}
		ok := true
		for k, r := range v {
			if units[k].r != r {
				ok = false
				break
			}
		}
		if ok {
			return len(v)
		}
	}
	return 0
}

func isDefaultSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(".-_,;:!?", r)
}

// collapseSeparators drops configured separators entirely. Without a
// configured set, runs of whitespace and common punctuation become one space.
func (n *normalizer) collapseSeparators(units []unit) []unit {
	out := make([]unit, 0, len(units))
	if len(n.separators) > 0 {
		for _, u := range units {
			if _, ok := n.separators[u.r]; !ok {
				out = append(out, u)
			}
		}
		return out
	}
	for i := 0; i < len(units); {
		if !isDefaultSeparator(units[i].r) {
			out = append(out, units[i])
			i++
			continue
		}
		j := i
		for j < len(units) && isDefaultSeparator(units[j].r) {
			j++
		}
		out = append(out, unit{r: ' ', src: span{units[i].src.start, units[j-1].src.end}})
		i = j
	}
	return out
}

var accentTable = map[rune]string{
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'à': "a", 'â': "a", 'ä': "a",
	'ç': "c",
	'ù': "u", 'û': "u", 'ü': "u",
	'î': "i", 'ï': "i",
	'ô': "o", 'ö': "o",
	'œ': "oe", 'æ': "ae",
	'É': "E", 'È': "E", 'Ê': "E", 'Ë': "E",
	'À': "A", 'Â': "A", 'Ä': "A",
	'Ç': "C",
	'Ù': "U", 'Û': "U", 'Ü': "U",
	'Î': "I", 'Ï': "I",
	'Ô': "O", 'Ö': "O",
	'Œ': "OE", 'Æ': "AE",
}

// foldAccents maps accented Latin letters to their unaccented base.
func foldAccents(text string) folded {
	units := toUnits(text)
	out := make([]unit, 0, len(units))
	for _, u := range units {
		base, ok := accentTable[u.r]
		if !ok {
			out = append(out, u)
			continue
		}
		for _, r := range base {
			out = append(out, unit{r: r, src: u.src})
		}
	}
	return assemble(out)
}
