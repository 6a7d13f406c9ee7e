package profanity_test

import (
	"testing"

	"github.com/profanity-filter/internal/profanity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighestScore(t *testing.T) {
	s := profanity.HighestScore{Score: profanity.ReplacementCount}

	candidates := []profanity.Candidate{
		{Language: "en", Text: "** b", Replacement: "*"},
		{Language: "fr", Text: "** **", Replacement: "*"},
		{Language: "ar", Text: "a ****", Replacement: "*"},
	}
	assert.Equal(t, "** **", s.Choose("ab cd", candidates))

	// ties keep the earlier candidate
	assert.Equal(t, "** b", s.Choose("ab b", candidates[:1]))
	assert.Equal(t, "** **", s.Choose("ab cd", []profanity.Candidate{candidates[1], candidates[2]}))

	assert.Equal(t, "clean", s.Choose("clean", []profanity.Candidate{{Language: "en", Text: "clean", Replacement: "*"}}))
	assert.Equal(t, "clean", s.Choose("clean", nil))
}

func TestHighestScoreDefaultsToReplacementCount(t *testing.T) {
	var s profanity.HighestScore
	got := s.Choose("x y", []profanity.Candidate{
		{Text: "x y", Replacement: "#"},
		{Text: "# y", Replacement: "#"},
	})
	assert.Equal(t, "# y", got)
}

type preferLanguage string

func (p preferLanguage) Choose(original string, candidates []profanity.Candidate) string {
	for _, c := range candidates {
		if c.Language == string(p) {
			return c.Text
		}
	}
	return original
}

func TestWithStrategy(t *testing.T) {
	e, err := profanity.New(profanity.DefaultConfig(), profanity.Dictionary{
		"en": {"damn"},
		"fr": {"merde"},
	}, profanity.WithStrategy(preferLanguage("en")))
	require.NoError(t, err)

	assert.Equal(t, "**** merde merde", e.Mask("damn merde merde"))

	// snapshots derived from e keep its strategy
	assert.Equal(t, "**** merde merde", e.WithCaseSensitivity(true).Mask("damn merde merde"))
}
