package profanity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldLeet(t *testing.T) {
	n := newNormalizer(DefaultConfig())

	tests := []struct {
		input    string
		expected string
	}{
		{"d@mn", "damn"},
		{"s.h.i.t", "shit"},
		{"sh!t", "shit"},
		{"8reasts", "breasts"},
		{"f#u#c#k", "fuck"},
		{"کلب", "كلب"},
		{"hello world", "hello world"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, n.foldLeet(tt.input).text, "foldLeet(%q)", tt.input)
	}
}

func TestFoldLeetDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetectLeetSpeak = false
	n := newNormalizer(cfg)

	assert.Equal(t, "d@mn", n.foldLeet("d@mn").text)
	assert.Equal(t, "s.h.i.t", n.foldLeet("s.h.i.t").text)
}

func TestFoldLeetMapsBackToRawText(t *testing.T) {
	n := newNormalizer(DefaultConfig())
	raw := "x d-a-m-n y"

	f := n.foldLeet(raw)
	require.Equal(t, "x damn y", f.text)

	idx := strings.Index(f.text, "damn")
	sp := f.rawSpan(idx, idx+len("damn"))
	assert.Equal(t, "d-a-m-n", raw[sp.start:sp.end])
}

func TestFoldLeetPrefersLongestVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Substitutions = []Substitution{{Letter: "f", Variants: []string{"p", "ph"}}}
	n := newNormalizer(cfg)

	f := n.foldLeet("phuck")
	require.Equal(t, "fuck", f.text)
	sp := f.rawSpan(0, 1)
	assert.Equal(t, "ph", "phuck"[sp.start:sp.end])
}

func TestCollapseSeparatorsWithoutConfiguredSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Substitutions = nil
	cfg.Separators = nil
	n := newNormalizer(cfg)

	assert.Equal(t, "hello world ", n.foldLeet("hello,  world!?").text)
	assert.Equal(t, "d a m n", n.foldLeet("d-a-m-n").text)
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "OEuvre eleve", foldAccents("Œuvre élève").text)
	assert.Equal(t, "encule", foldAccents("enculé").text)
	assert.Equal(t, "كلب", foldAccents("كلب").text)

	f := foldAccents("ça œuf")
	idx := strings.Index(f.text, "oeuf")
	sp := f.rawSpan(idx, idx+len("oeuf"))
	assert.Equal(t, "œuf", "ça œuf"[sp.start:sp.end])
}

func TestIdentityKeepsInvalidUTF8(t *testing.T) {
	raw := "ab\xffcd"
	f := identity(raw)
	assert.Equal(t, raw, f.text)
	sp := f.rawSpan(3, 5)
	assert.Equal(t, "cd", raw[sp.start:sp.end])
}
