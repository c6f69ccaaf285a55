// Package locale selects between the two fixed message sets (Czech and
// English) the modules ship with. The active language comes from the
// online.locale config key; Czech is the historical default.
package locale

import "strings"

type Lang int

const (
	CS Lang = iota
	EN
)

// Parse maps a config value to a language. Anything that is not an
// explicit English marker falls back to Czech.
func Parse(s string) Lang {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return EN
	default:
		return CS
	}
}

type Localizer struct {
	lang Lang
}

func New(lang Lang) *Localizer {
	return &Localizer{lang: lang}
}

func (l *Localizer) Lang() Lang {
	return l.lang
}

// T picks the message matching the active language.
func (l *Localizer) T(cs, en string) string {
	if l.lang == EN {
		return en
	}
	return cs
}
