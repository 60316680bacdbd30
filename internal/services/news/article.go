package news

import "encoding/json"

// Article is a read-only projection of one upstream news item. Empty
// strings mean the upstream omitted the field.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"publishedAt"`
	NewsSite    string `json:"newsSite"`
}

// UnmarshalJSON accepts both the camelCase field names and the snake_case
// names the v4 API emits. camelCase wins when both are present.
func (a *Article) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID               int64   `json:"id"`
		Title            *string `json:"title"`
		URL              *string `json:"url"`
		Summary          *string `json:"summary"`
		PublishedAt      *string `json:"publishedAt"`
		PublishedAtSnake *string `json:"published_at"`
		NewsSite         *string `json:"newsSite"`
		NewsSiteSnake    *string `json:"news_site"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*a = Article{
		ID:          wire.ID,
		Title:       deref(wire.Title),
		URL:         deref(wire.URL),
		Summary:     deref(wire.Summary),
		PublishedAt: firstNonEmpty(deref(wire.PublishedAt), deref(wire.PublishedAtSnake)),
		NewsSite:    firstNonEmpty(deref(wire.NewsSite), deref(wire.NewsSiteSnake)),
	}
	return nil
}

// ArticlesResponse is one page of articles. Results keep upstream order.
type ArticlesResponse struct {
	Results []Article `json:"results"`
	Count   int       `json:"count"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
