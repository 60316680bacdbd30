package news

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatterArticleAllFields(t *testing.T) {
	f := NewFormatter(DefaultLocale(), time.UTC)
	got := f.Article(Article{
		ID:          7,
		Title:       "Starship flies",
		URL:         "https://example.test/7",
		Summary:     "Booster caught",
		PublishedAt: "2024-06-06T12:50:00Z",
		NewsSite:    "SpaceNews",
	})

	want := strings.Join([]string{
		"Title: Starship flies",
		"Published: 6/6/2024",
		"Source: SpaceNews",
		"Summary: Booster caught",
		"URL: https://example.test/7",
		"---",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFormatterArticleFallbacks(t *testing.T) {
	f := NewFormatter(DefaultLocale(), time.UTC)
	want := "Title: Unknown\n" +
		"Published: Unknown\n" +
		"Source: Unknown\n" +
		"Summary: No summary available\n" +
		"URL: No URL available\n" +
		"---"
	require.Equal(t, want, f.Article(Article{ID: 1}))
}

func TestFormatterArticlesJoinsBlocks(t *testing.T) {
	f := NewFormatter(DefaultLocale(), time.UTC)
	resp := &ArticlesResponse{Results: []Article{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	}}

	got := f.Articles(resp, "unused")
	blocks := strings.Split(got, "---\n")
	require.Len(t, blocks, 2)
	require.True(t, strings.HasPrefix(blocks[0], "Title: First\n"))
	require.True(t, strings.HasPrefix(blocks[1], "Title: Second\n"))
	require.True(t, strings.HasSuffix(got, "---"))
	require.Equal(t, f.Article(resp.Results[0])+"\n"+f.Article(resp.Results[1]), got)
}

func TestFormatterArticlesFallback(t *testing.T) {
	f := NewFormatter(DefaultLocale(), time.UTC)
	const fallback = `No articles found for keyword: "x"`

	t.Run("nil response", func(t *testing.T) {
		require.Equal(t, fallback, f.Articles(nil, fallback))
	})
	t.Run("empty results", func(t *testing.T) {
		require.Equal(t, fallback, f.Articles(&ArticlesResponse{}, fallback))
	})
	t.Run("count without results", func(t *testing.T) {
		require.Equal(t, fallback, f.Articles(&ArticlesResponse{Count: 12}, fallback))
	})
}

func TestFormatterPublishedDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name   string
		locale Locale
		loc    *time.Location
		raw    string
		want   string
	}{
		{name: "rfc3339 en-US", locale: DefaultLocale(), loc: time.UTC, raw: "2023-12-01T15:30:00Z", want: "12/1/2023"},
		{name: "rfc3339 ja", locale: ParseLocale("ja_JP.UTF-8"), loc: time.UTC, raw: "2023-12-01T15:30:00Z", want: "2023/12/1"},
		{name: "fractional seconds", locale: DefaultLocale(), loc: time.UTC, raw: "2024-01-05T10:00:00.123456Z", want: "1/5/2024"},
		{name: "offset shifts day", locale: DefaultLocale(), loc: tokyo, raw: "2023-12-01T20:00:00Z", want: "12/2/2023"},
		{name: "zoneless is local", locale: DefaultLocale(), loc: tokyo, raw: "2023-12-01T23:00:00", want: "12/1/2023"},
		{name: "date only", locale: ParseLocale("de-DE"), loc: time.UTC, raw: "2024-03-09", want: "9.3.2024"},
		{name: "british", locale: ParseLocale("en_GB"), loc: time.UTC, raw: "2024-03-09T00:00:00Z", want: "09/03/2024"},
		{name: "empty", locale: DefaultLocale(), loc: time.UTC, raw: "", want: "Unknown"},
		{name: "garbage", locale: DefaultLocale(), loc: time.UTC, raw: "yesterday", want: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.locale, tt.loc)
			require.Equal(t, tt.want, f.PublishedDate(tt.raw))
		})
	}
}

func TestFormatterZeroValue(t *testing.T) {
	var f Formatter
	require.Equal(t, "Published: Unknown", strings.Split(f.Article(Article{}), "\n")[1])
	require.NotEqual(t, FallbackUnknown, f.PublishedDate("2024-06-06T12:00:00Z"))
}
