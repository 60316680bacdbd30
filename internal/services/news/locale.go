package news

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the short calendar-date layout for "Published:" lines.
type Locale struct {
	tag    language.Tag
	layout string
}

type dateLocale struct {
	tag    language.Tag
	layout string
}

// dateLocales lists the supported short-date layouts. The first entry is the
// fallback when nothing matches.
var dateLocales = []dateLocale{
	{tag: language.AmericanEnglish, layout: "1/2/2006"},
	{tag: language.BritishEnglish, layout: "02/01/2006"},
	{tag: language.German, layout: "2.1.2006"},
	{tag: language.French, layout: "02/01/2006"},
	{tag: language.Spanish, layout: "2/1/2006"},
	{tag: language.Italian, layout: "2/1/2006"},
	{tag: language.Dutch, layout: "2-1-2006"},
	{tag: language.Polish, layout: "2.01.2006"},
	{tag: language.Russian, layout: "02.01.2006"},
	{tag: language.Swedish, layout: "2006-01-02"},
	{tag: language.BrazilianPortuguese, layout: "02/01/2006"},
	{tag: language.Japanese, layout: "2006/1/2"},
	{tag: language.Chinese, layout: "2006/1/2"},
	{tag: language.Korean, layout: "2006. 1. 2."},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// DefaultLocale is en-US.
func DefaultLocale() Locale {
	return Locale{tag: dateLocales[0].tag, layout: dateLocales[0].layout}
}

// ParseLocale resolves a BCP 47 tag or a POSIX locale name such as
// "ja_JP.UTF-8" to the closest supported Locale. Unknown, empty, "C" and
// "POSIX" values resolve to DefaultLocale.
func ParseLocale(raw string) Locale {
	name := strings.TrimSpace(raw)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return DefaultLocale()
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return DefaultLocale()
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale()
	}
	return Locale{tag: dateLocales[idx].tag, layout: dateLocales[idx].layout}
}

// HostLocale resolves the locale from override, then LC_ALL, LC_TIME and
// LANG as reported by lookup.
func HostLocale(override string, lookup func(string) (string, bool)) Locale {
	if strings.TrimSpace(override) != "" {
		return ParseLocale(override)
	}
	if lookup == nil {
		return DefaultLocale()
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return ParseLocale(v)
		}
	}
	return DefaultLocale()
}

// Tag returns the matched language tag.
func (l Locale) Tag() language.Tag {
	if l.layout == "" {
		return DefaultLocale().tag
	}
	return l.tag
}

// Layout returns the time layout for short dates.
func (l Locale) Layout() string {
	if l.layout == "" {
		return DefaultLocale().layout
	}
	return l.layout
}
