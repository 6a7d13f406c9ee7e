package service

import "github.com/profanity-filter/internal/profanity"

type ProfanityChecker interface {
	IsBad(text string) bool
	Clean(text string) string
	Words(text string) []string
}

type ProfanityConfigurer interface {
	SetLanguage(code string) error
	ClearLanguage()
	SetCaseSensitive(caseSensitive bool)
	SetDetectLeetSpeak(detect bool)
	SetConfig(cfg profanity.Config, dict profanity.Dictionary) error
}

var (
	_ ProfanityChecker    = (*ProfanityService)(nil)
	_ ProfanityConfigurer = (*ProfanityService)(nil)
)
