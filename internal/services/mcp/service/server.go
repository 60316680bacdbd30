package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/WMs784/space-flight-news/internal/platform/branding"
	"github.com/WMs784/space-flight-news/internal/platform/telemetry/metrics"
	"github.com/WMs784/space-flight-news/internal/services/mcp/domain"
	"github.com/WMs784/space-flight-news/internal/services/news"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// defaultHTTPAddr keeps the HTTP transport local unless configured otherwise.
const defaultHTTPAddr = "localhost:8081"

// Config configures the MCP server.
type Config struct {
	// APIURL is the news API root. Defaults to news.DefaultBaseURL.
	APIURL    string
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081").
	// Locale selects the published date layout. The zero value is en-US.
	Locale news.Locale
	// Location is the zone dates are rendered in. Defaults to time.Local.
	Location *time.Location
	Logger   *slog.Logger
	// HTTPClient performs upstream requests. Defaults to an otelhttp client.
	HTTPClient *http.Client
	// Metrics collects upstream and tool counters. Created when nil.
	Metrics *metrics.Metrics
}

// Server hosts the MCP server and the article tools bound to it.
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New creates an MCP server with both article tools registered against a
// news API client built from cfg.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}
	client := news.NewClient(news.ClientConfig{
		BaseURL:    cfg.APIURL,
		HTTPClient: cfg.HTTPClient,
		Logger:     logger,
		Metrics:    m,
	})
	return newServer(domain.Deps{
		Source:    client,
		Formatter: news.NewFormatter(cfg.Locale, cfg.Location),
		Logger:    logger,
		Metrics:   m,
	})
}

// newServer registers tool handlers once against deps.
func newServer(deps domain.Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: branding.ServerName, Version: branding.Version}, nil)

	for _, module := range newMCPRegistrationModules(deps) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return &Server{mcpServer: mcpServer, logger: deps.Logger, metrics: deps.Metrics}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation
// or until the client disconnects.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		server, err := New(cfg)
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithHTTPTransport creates a server and serves it over streamable HTTP.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}
	server, err := New(cfg)
	if err != nil {
		return err
	}
	transport, err := NewHTTPTransport(httpAddr, server)
	if err != nil {
		return err
	}
	return transport.Start(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{}, TransportStdio)
}

// serveWithTransport connects one session over transport and waits for it
// to end. Context cancellation and end of input are clean exits.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport, kind TransportKind) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := s.mcpServer.Connect(ctx, transport, nil)
	if err != nil {
		if isCleanExit(err) {
			return nil
		}
		return fmt.Errorf("connect MCP transport: %w", err)
	}
	s.logger.Info(fmt.Sprintf("%s MCP Server running on %s", branding.AppName, kind))

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = session.Close()
		<-done
		return nil
	case err := <-done:
		if isCleanExit(err) {
			return nil
		}
		return fmt.Errorf("serve MCP: %w", err)
	}
}

func isCleanExit(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF)
}
