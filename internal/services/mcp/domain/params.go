package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidParams marks tool arguments that violate their declared contract.
var ErrInvalidParams = errors.New("invalid tool parameters")

// LimitRange is an inclusive integer bound with a default for absent values.
type LimitRange struct {
	Min     int
	Max     int
	Default int
}

// KeywordRule constrains free-text search input. MinLength counts characters.
type KeywordRule struct {
	MinLength int
}

var (
	// ArticleLimit bounds the number of articles either tool may request.
	ArticleLimit = LimitRange{Min: 1, Max: 50, Default: 10}
	// SearchKeyword requires a non-empty keyword.
	SearchKeyword = KeywordRule{MinLength: 1}
)

// Normalize returns the default when limit is nil and rejects values outside
// the range.
func (r LimitRange) Normalize(limit *int) (int, error) {
	if limit == nil {
		return r.Default, nil
	}
	if *limit < r.Min || *limit > r.Max {
		return 0, fmt.Errorf("%w: limit must be between %d and %d, got %d", ErrInvalidParams, r.Min, r.Max, *limit)
	}
	return *limit, nil
}

// Schema describes the range as a JSON Schema integer.
func (r LimitRange) Schema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: description,
		Minimum:     float64Ptr(float64(r.Min)),
		Maximum:     float64Ptr(float64(r.Max)),
		Default:     json.RawMessage(strconv.Itoa(r.Default)),
	}
}

// Validate rejects keywords shorter than MinLength characters.
func (r KeywordRule) Validate(keyword string) error {
	if n := utf8.RuneCountInString(keyword); n < r.MinLength {
		return fmt.Errorf("%w: keyword must be at least %d characters, got %d", ErrInvalidParams, r.MinLength, n)
	}
	return nil
}

// Schema describes the rule as a JSON Schema string.
func (r KeywordRule) Schema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: description,
		MinLength:   intPtr(r.MinLength),
	}
}

// LatestArticlesInput is the raw get-latest-articles argument object.
type LatestArticlesInput struct {
	Limit *int `json:"limit,omitempty"`
}

// LatestArticlesParams are validated get-latest-articles arguments.
type LatestArticlesParams struct {
	Limit int
}

// Normalize validates the input and fills defaults.
func (in LatestArticlesInput) Normalize() (LatestArticlesParams, error) {
	limit, err := ArticleLimit.Normalize(in.Limit)
	if err != nil {
		return LatestArticlesParams{}, err
	}
	return LatestArticlesParams{Limit: limit}, nil
}

// SearchArticlesInput is the raw search-articles argument object.
type SearchArticlesInput struct {
	Keyword string `json:"keyword"`
	Limit   *int   `json:"limit,omitempty"`
}

// SearchArticlesParams are validated search-articles arguments.
type SearchArticlesParams struct {
	Keyword string
	Limit   int
}

// Normalize validates the input and fills defaults. The keyword is kept
// verbatim.
func (in SearchArticlesInput) Normalize() (SearchArticlesParams, error) {
	if err := SearchKeyword.Validate(in.Keyword); err != nil {
		return SearchArticlesParams{}, err
	}
	limit, err := ArticleLimit.Normalize(in.Limit)
	if err != nil {
		return SearchArticlesParams{}, err
	}
	return SearchArticlesParams{Keyword: in.Keyword, Limit: limit}, nil
}

const (
	limitDescription   = "Number of articles to retrieve (1-50)"
	keywordDescription = "Keyword to search for in articles"
)

func latestArticlesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit": ArticleLimit.Schema(limitDescription),
		},
	}
}

func searchArticlesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"keyword": SearchKeyword.Schema(keywordDescription),
			"limit":   ArticleLimit.Schema(limitDescription),
		},
		Required: []string{"keyword"},
	}
}

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
