package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/WMs784/space-flight-news/internal/platform/branding"
	"github.com/WMs784/space-flight-news/internal/platform/config"
	"github.com/WMs784/space-flight-news/internal/platform/logging"
	"github.com/WMs784/space-flight-news/internal/platform/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var listenTCP = net.Listen

// mcpHTTPEnv holds env-parsed configuration for the MCP HTTP transport.
type mcpHTTPEnv struct {
	AllowedHosts []string `env:"SPACEFLIGHT_NEWS_MCP_ALLOWED_HOSTS" envSeparator:","`
}

// HTTPTransport serves MCP over streamable HTTP at /mcp, next to /healthz
// and Prometheus /metrics.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	server       *Server
	httpServer   *http.Server
}

// NewHTTPTransport creates an HTTP transport for server. Extra allowed hosts
// are read from SPACEFLIGHT_NEWS_MCP_ALLOWED_HOSTS; loopback is always allowed.
func NewHTTPTransport(addr string, server *Server) (*HTTPTransport, error) {
	if server == nil || server.mcpServer == nil {
		return nil, fmt.Errorf("MCP server is not configured")
	}
	if addr == "" {
		addr = defaultHTTPAddr
	}
	var raw mcpHTTPEnv
	if err := config.ParseEnv(&raw); err != nil {
		return nil, err
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(raw.AllowedHosts),
		server:       server,
	}, nil
}

// Handler builds the router. Middleware runs outermost first.
func (t *HTTPTransport) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(
		recoverer(),
		requestID(),
		requestLogging(t.server.logger),
	)

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server.mcpServer
	}, nil)
	router.Group(func(r chi.Router) {
		r.Use(t.localOnly)
		r.Handle("/mcp", mcpHandler)
		r.Get("/healthz", handleHealth)
	})
	router.Handle("/metrics", t.server.metrics.Handler())
	return router
}

// Start serves HTTP until ctx ends, then shuts down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	return t.serve(ctx, listener)
}

func (t *HTTPTransport) serve(ctx context.Context, listener net.Listener) error {
	t.httpServer = &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	logger := t.server.logger
	logger.Info(fmt.Sprintf("%s MCP Server running on %s", branding.AppName, TransportHTTP),
		slog.String("addr", listener.Addr().String()),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// handleHealth handles GET /healthz.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logging.From(r.Context()).Warn("write health response", slog.String("err", err.Error()))
	}
}
