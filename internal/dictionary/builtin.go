package dictionary

import (
	"maps"
	"slices"
)

var builtin = map[string][]string{
	"en": {
		"damn", "shit", "fuck", "fck", "bitch", "bastard", "asshole", "breasts",
		"crap", "dick", "piss", "slut", "whore", "cunt", "motherfucker",
		"bullshit", "wanker", "twat", "bollocks", "prick",
	},
	"fr": {
		"merde", "putain", "connard", "connasse", "salope", "salaud", "enculé",
		"bordel", "pétasse", "foutre", "couilles", "chiasse", "pute", "nique",
	},
	"ar": {
		"كلب", "حمار", "سكس", "شرموط", "عاهرة", "قحبة", "منيوك", "طيز",
	},
}

// Builtin returns a copy of the bundled word list for lang, or nil.
func Builtin(lang string) []string {
	return slices.Clone(builtin[lang])
}

// BuiltinLanguages lists the languages with a bundled word list, sorted.
func BuiltinLanguages() []string {
	return slices.Sorted(maps.Keys(builtin))
}
