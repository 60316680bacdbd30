package news

import (
	"strings"
	"time"
)

// Fallback literals for absent article fields.
const (
	FallbackUnknown   = "Unknown"
	FallbackSummary   = "No summary available"
	FallbackURL       = "No URL available"
	articleSeparator  = "---"
	articleFieldCount = 6
)

// publishedLayouts are tried in order. Layouts without a zone are read in
// the formatter's location; a bare date is read as UTC.
var publishedLayouts = []struct {
	layout string
	local  bool
}{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04:05.999999999", local: true},
	{layout: "2006-01-02T15:04", local: true},
	{layout: time.DateOnly},
}

// Formatter renders articles as plain text. The zero value formats dates
// with DefaultLocale in time.Local.
type Formatter struct {
	locale   Locale
	location *time.Location
}

// NewFormatter builds a Formatter for the given locale and time zone. A nil
// location means time.Local.
func NewFormatter(locale Locale, location *time.Location) Formatter {
	return Formatter{locale: locale, location: location}
}

// Article renders one article as six lines: title, published date, source,
// summary, URL and a "---" separator.
func (f Formatter) Article(a Article) string {
	lines := make([]string, 0, articleFieldCount)
	lines = append(lines,
		"Title: "+orDefault(a.Title, FallbackUnknown),
		"Published: "+f.PublishedDate(a.PublishedAt),
		"Source: "+orDefault(a.NewsSite, FallbackUnknown),
		"Summary: "+orDefault(a.Summary, FallbackSummary),
		"URL: "+orDefault(a.URL, FallbackURL),
		articleSeparator,
	)
	return strings.Join(lines, "\n")
}

// Articles renders every article in resp joined by newlines. A nil resp or
// an empty result set yields fallback unchanged.
func (f Formatter) Articles(resp *ArticlesResponse, fallback string) string {
	if resp == nil || len(resp.Results) == 0 {
		return fallback
	}
	blocks := make([]string, len(resp.Results))
	for i, a := range resp.Results {
		blocks[i] = f.Article(a)
	}
	return strings.Join(blocks, "\n")
}

// PublishedDate renders raw as a localized short date, or "Unknown" when raw
// is empty or cannot be parsed.
func (f Formatter) PublishedDate(raw string) string {
	t, ok := f.parsePublished(raw)
	if !ok {
		return FallbackUnknown
	}
	return t.In(f.loc()).Format(f.locale.Layout())
}

func (f Formatter) parsePublished(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, p := range publishedLayouts {
		var (
			t   time.Time
			err error
		)
		if p.local {
			t, err = time.ParseInLocation(p.layout, raw, f.loc())
		} else {
			t, err = time.Parse(p.layout, raw)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (f Formatter) loc() *time.Location {
	if f.location == nil {
		return time.Local
	}
	return f.location
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
