package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternExpr(t *testing.T) {
	tolerant := buildTolerant("ab", map[rune][]string{'a': {"@", "4"}}, false, true)
	assert.Equal(t, `(?i)(?:a|@|4)[^\p{L}\p{N}]*b`, tolerant.expr())

	plain := buildPlain("a.b", true, false)
	assert.Equal(t, `a\.b`, plain.expr())
}

func TestMatcherBoundaries(t *testing.T) {
	m, err := buildPlain("damn", true, true).compile()
	require.NoError(t, err)

	assert.False(t, m.match("damnation"))
	assert.False(t, m.match("goddamn"))
	assert.True(t, m.match("damn!"))
	assert.True(t, m.match("DAMN"))
	assert.Equal(t, []span{{6, 10}}, m.findAll("xdamn damn"))
}

func TestMatcherUnicodeBoundaries(t *testing.T) {
	m, err := buildPlain("merde", true, true).compile()
	require.NoError(t, err)

	assert.True(t, m.match("quelle merde!"))
	// é is a letter, so "merdé" is one word
	assert.False(t, m.match("merdé"))
	assert.False(t, m.match("émerde"))

	exempt, err := buildPlain("سكس", false, true).compile()
	require.NoError(t, err)
	assert.True(t, exempt.match("سكسي"))
}

func TestTolerantMatcherAcceptsFiller(t *testing.T) {
	m, err := buildTolerant("damn", map[rune][]string{'a': {"@"}}, true, true).compile()
	require.NoError(t, err)

	assert.Equal(t, []span{{0, 7}}, m.findAll("d-a-m-n"))
	assert.True(t, m.match("D@MN"))
	assert.True(t, m.match("d . @ . m . n"))
	assert.False(t, m.match("d x a m n"))
}

func TestIsBoundary(t *testing.T) {
	assert.True(t, isBoundary("abc", 0))
	assert.False(t, isBoundary("abc", 1))
	assert.True(t, isBoundary("abc", 3))
	assert.True(t, isBoundary("a b", 1))
	assert.False(t, isBoundary("", 0))
	assert.False(t, isBoundary("a_b", 1))
	assert.False(t, isBoundary("كلب", 2))
}

func TestPatternCacheIsPerSnapshot(t *testing.T) {
	e, err := New(DefaultConfig(), Dictionary{"en": {"damn"}})
	require.NoError(t, err)

	first := e.plain("damn", true)
	assert.Same(t, first, e.plain("damn", true))

	sensitive := e.WithCaseSensitivity(true)
	assert.NotSame(t, first, sensitive.plain("damn", true))

	pinned, err := e.WithLanguage("en")
	require.NoError(t, err)
	assert.Same(t, first, pinned.plain("damn", true))
}
