package profanity

// Detect reports whether text contains a dictionary word of any active
// language. Each word is tried against the leet-folded text and against the
// raw text, so a literal occurrence always counts.
func (e *Engine) Detect(text string) bool {
	normalized := e.norm.foldLeet(text).text
	for _, lang := range e.Languages() {
		bounded := !e.cfg.boundaryExempt(lang)
		for _, word := range e.dict[lang] {
			m := e.plain(word, bounded)
			if m == nil {
				continue
			}
			if m.match(normalized) || m.match(text) {
				return true
			}
		}
	}
	return false
}

// ExtractMatches returns every dictionary word found in text, without
// duplicates, in language then dictionary order.
//
// Unlike Detect, only the leet-folded text is searched when leet detection is
// enabled. A word that appears literally but is broken by folding (for
// example "foo!" where '!' folds to 'i') is detected but not extracted.
func (e *Engine) ExtractMatches(text string) []string {
	normalized := e.norm.foldLeet(text).text
	seen := make(map[string]struct{})
	found := []string{}
	for _, lang := range e.Languages() {
		bounded := !e.cfg.boundaryExempt(lang)
		for _, word := range e.dict[lang] {
			if _, ok := seen[word]; ok {
				continue
			}
			m := e.plain(word, bounded)
			if m == nil || !m.match(normalized) {
				continue
			}
			seen[word] = struct{}{}
			found = append(found, word)
		}
	}
	return found
}
