// Package domain maps MCP tool calls onto Space Flight News queries.
//
// Each tool is declared by a XxxTool constructor carrying its input schema and
// a XxxHandler that validates parameters, fetches through an ArticleSource and
// renders the result as a single text content block. Upstream failures never
// surface as tool errors; callers always get text back.
package domain
