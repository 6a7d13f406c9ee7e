package profanity

import "strings"

// Candidate is the output of masking the original text with one language.
type Candidate struct {
	Language    string
	Text        string
	Replacement string
}

// Strategy decides which candidate Mask returns when no language is pinned.
type Strategy interface {
	Choose(original string, candidates []Candidate) string
}

// Scorer rates a candidate; higher is better.
type Scorer func(c Candidate) int

// ReplacementCount counts replacement characters in the candidate text.
func ReplacementCount(c Candidate) int {
	if c.Replacement == "" {
		return 0
	}
	return strings.Count(c.Text, c.Replacement)
}

// HighestScore returns the candidate with the strictly highest positive
// score. Ties keep the earlier candidate; when nothing scores, the original
// text is returned.
type HighestScore struct {
	Score Scorer
}

func (s HighestScore) Choose(original string, candidates []Candidate) string {
	score := s.Score
	if score == nil {
		score = ReplacementCount
	}
	best, top := original, 0
	for _, c := range candidates {
		if n := score(c); n > top {
			best, top = c.Text, n
		}
	}
	return best
}
