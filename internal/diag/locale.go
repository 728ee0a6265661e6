package diag

import (
	"golang.org/x/text/language"
)

// Locale selects which text the message catalogs render.
type Locale int

const (
	// Root is the default (English) locale.
	Root Locale = iota
	Japanese

	numLocales
)

var localeTags = [numLocales]language.Tag{
	Root:     language.English,
	Japanese: language.Japanese,
}

var matcher = language.NewMatcher(localeTags[:])

func (l Locale) index() int {
	if l < 0 || l >= numLocales {
		return int(Root)
	}
	return int(l)
}

func (l Locale) String() string {
	if l == Japanese {
		return "ja"
	}
	return "root"
}

// Tag returns the BCP 47 tag the locale is matched by.
func (l Locale) Tag() language.Tag { return localeTags[l.index()] }

// MatchLocale maps a BCP 47 tag or Accept-Language style list ("ja-JP",
// "en;q=0.8, ja") to the closest supported locale. Empty, "root" and
// unparsable input select Root.
func MatchLocale(s string) Locale {
	if s == "" || s == "root" {
		return Root
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return Root
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Root
	}
	return Locale(idx)
}

// Locales returns the supported locales.
func Locales() []Locale {
	out := make([]Locale, numLocales)
	for i := range out {
		out[i] = Locale(i)
	}
	return out
}
