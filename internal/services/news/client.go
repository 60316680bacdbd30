package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/WMs784/space-flight-news/internal/platform/branding"
	"github.com/WMs784/space-flight-news/internal/platform/logging"
	"github.com/WMs784/space-flight-news/internal/platform/telemetry/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/WMs784/space-flight-news/internal/services/news"

	// bodyPreviewLimit caps how many characters of a response body are logged.
	bodyPreviewLimit = 300
)

// ClientConfig configures the news API client.
type ClientConfig struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient performs requests. Defaults to a client with the default
	// transport wrapped by otelhttp and no timeout of its own.
	HTTPClient *http.Client
	// Logger receives request diagnostics. A logger stored in the request
	// context takes precedence. Defaults to slog.Default.
	Logger *slog.Logger
	// Metrics records request outcomes. May be nil.
	Metrics *metrics.Metrics
}

// Client fetches article pages from the news API. It is safe for concurrent
// use and keeps no state between requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

// NewClient builds a Client from cfg, filling defaults.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer(tracerName),
	}
}

// BaseURL returns the API root requests are built against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Latest fetches the most recent limit articles.
func (c *Client) Latest(ctx context.Context, limit int) Result[ArticlesResponse] {
	return c.Articles(ctx, LatestURL(c.baseURL, limit))
}

// Search fetches up to limit articles matching keyword.
func (c *Client) Search(ctx context.Context, keyword string, limit int) Result[ArticlesResponse] {
	return c.Articles(ctx, SearchURL(c.baseURL, keyword, limit))
}

// Articles fetches and decodes an article page from rawURL.
func (c *Client) Articles(ctx context.Context, rawURL string) Result[ArticlesResponse] {
	return fetchJSON[ArticlesResponse](ctx, c, rawURL)
}

// fetchJSON performs one GET and decodes the body as T. It never returns an
// error: every failure is logged and folded into the Result.
func fetchJSON[T any](ctx context.Context, c *Client, rawURL string) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	lg := c.logger
	if l, ok := logging.Lookup(ctx); ok {
		lg = l
	}

	ctx, span := c.tracer.Start(ctx, "news.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", rawURL)),
	)
	defer span.End()

	start := time.Now()
	value, err := getJSON[T](ctx, c.httpClient, rawURL, lg, span)
	outcome := Outcome(err)
	c.metrics.ObserveUpstream(outcome, time.Since(start))
	span.SetAttributes(attribute.String("news.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		lg.Error("Error making Space Flight News request",
			slog.String("url", rawURL),
			slog.String("outcome", outcome),
			slog.String("err", err.Error()),
		)
		return Failed[T](err)
	}
	return Succeeded(value)
}

func getJSON[T any](ctx context.Context, client *http.Client, rawURL string, lg *slog.Logger, span trace.Span) (T, error) {
	const op = "news.getJSON"

	var zero T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return zero, fmt.Errorf("%s: new request: %w: %w", op, ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.UserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s: do: %w: %w", op, ErrUnreachable, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// The body is read in full before the status check so failed responses
	// still show up in diagnostics.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%s: read body: %w: %w", op, ErrUnreachable, err)
	}
	lg.Info("news api response",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.String("body", preview(body, bodyPreviewLimit)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, fmt.Errorf("%s: %w: status %d", op, ErrStatus, resp.StatusCode)
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		return zero, fmt.Errorf("%s: decode: %w: %w", op, ErrMalformed, err)
	}
	return value, nil
}

// preview returns at most limit characters of body.
func preview(body []byte, limit int) string {
	if utf8.RuneCount(body) <= limit {
		return string(body)
	}
	n := 0
	for i := range string(body) {
		if n == limit {
			return string(body[:i])
		}
		n++
	}
	return string(body)
}
