package domain

import (
	"context"
	"errors"
	"log/slog"

	"github.com/WMs784/space-flight-news/internal/platform/telemetry/metrics"
	"github.com/WMs784/space-flight-news/internal/services/news"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// LatestArticlesToolName is the MCP name of the latest-articles tool.
	LatestArticlesToolName = "get-latest-articles"
	// SearchArticlesToolName is the MCP name of the keyword search tool.
	SearchArticlesToolName = "search-articles"

	latestArticlesFallback = "No latest articles available."
	latestArticlesPrefix   = "Latest space flight news:\n\n"
)

var errSourceMissing = errors.New("article source is not configured")

// ArticleSource fetches article pages. *news.Client satisfies it.
type ArticleSource interface {
	Latest(ctx context.Context, limit int) news.Result[news.ArticlesResponse]
	Search(ctx context.Context, keyword string, limit int) news.Result[news.ArticlesResponse]
}

// Deps are the collaborators shared by the article tools.
type Deps struct {
	Source    ArticleSource
	Formatter news.Formatter
	// Logger is the base logger for tool calls. Defaults to the logger in
	// the request context.
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// LatestArticlesTool defines the MCP tool schema for the newest articles.
func LatestArticlesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        LatestArticlesToolName,
		Description: "Get latest space flight news articles",
		InputSchema: latestArticlesSchema(),
	}
}

// SearchArticlesTool defines the MCP tool schema for keyword search.
func SearchArticlesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        SearchArticlesToolName,
		Description: "Search space flight news articles by keyword",
		InputSchema: searchArticlesSchema(),
	}
}

// LatestArticlesHandler renders the newest articles.
func LatestArticlesHandler(deps Deps) mcp.ToolHandlerFor[LatestArticlesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LatestArticlesInput) (*mcp.CallToolResult, any, error) {
		deps.Metrics.ToolCalled(LatestArticlesToolName)

		params, err := input.Normalize()
		if err != nil {
			return nil, nil, err
		}
		if deps.Source == nil {
			return nil, nil, errSourceMissing
		}
		ctx, lg, err := withInvocation(ctx, deps.Logger, LatestArticlesToolName)
		if err != nil {
			return nil, nil, err
		}
		lg.Debug("tool call", slog.Int("limit", params.Limit))

		text := renderArticles(deps.Formatter, deps.Source.Latest(ctx, params.Limit), latestArticlesFallback)
		return textResult(latestArticlesPrefix + text), nil, nil
	}
}

// SearchArticlesHandler renders the articles matching a keyword.
func SearchArticlesHandler(deps Deps) mcp.ToolHandlerFor[SearchArticlesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchArticlesInput) (*mcp.CallToolResult, any, error) {
		deps.Metrics.ToolCalled(SearchArticlesToolName)

		params, err := input.Normalize()
		if err != nil {
			return nil, nil, err
		}
		if deps.Source == nil {
			return nil, nil, errSourceMissing
		}
		ctx, lg, err := withInvocation(ctx, deps.Logger, SearchArticlesToolName)
		if err != nil {
			return nil, nil, err
		}
		lg.Debug("tool call", slog.String("keyword", params.Keyword), slog.Int("limit", params.Limit))

		result := deps.Source.Search(ctx, params.Keyword, params.Limit)
		text := renderArticles(deps.Formatter, result, searchFallback(params.Keyword))
		return textResult(searchPrefix(params.Keyword) + text), nil, nil
	}
}

// The keyword is quoted verbatim, without escaping.
func searchFallback(keyword string) string {
	return `No articles found for keyword: "` + keyword + `"`
}

func searchPrefix(keyword string) string {
	return `Search results for "` + keyword + "\":\n\n"
}

// renderArticles formats a fetched page, or fallback when the fetch failed.
func renderArticles(f news.Formatter, result news.Result[news.ArticlesResponse], fallback string) string {
	resp, ok := result.Ok()
	if !ok {
		return f.Articles(nil, fallback)
	}
	return f.Articles(&resp, fallback)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
