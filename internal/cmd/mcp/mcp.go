// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/WMs784/space-flight-news/internal/platform/cmd"
	"github.com/WMs784/space-flight-news/internal/platform/logging"
	"github.com/WMs784/space-flight-news/internal/services/mcp/service"
	"github.com/WMs784/space-flight-news/internal/services/news"
)

// Config holds MCP command configuration.
type Config struct {
	APIURL    string `env:"SPACEFLIGHT_NEWS_API_URL"       envDefault:"https://api.spaceflightnewsapi.net/v4"`
	Transport string `env:"SPACEFLIGHT_NEWS_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"SPACEFLIGHT_NEWS_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	LogLevel  string `env:"SPACEFLIGHT_NEWS_LOG_LEVEL"     envDefault:"info"`
	LogFormat string `env:"SPACEFLIGHT_NEWS_LOG_FORMAT"    envDefault:"text"`
	Locale    string `env:"SPACEFLIGHT_NEWS_LOCALE"`
}

// ParseConfig parses environment and flags into a Config. Flags override
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Space Flight News API base URL")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for published dates (defaults to LC_ALL, LC_TIME or LANG)")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server. Diagnostics go to stderr; stdout is left to the
// stdio transport.
func Run(ctx context.Context, cfg Config, stderr io.Writer) error {
	if stderr == nil {
		stderr = os.Stderr
	}
	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	slog.SetDefault(logger)

	serviceCfg := service.Config{
		APIURL:    cfg.APIURL,
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
		Locale:    news.HostLocale(cfg.Locale, os.LookupEnv),
		Logger:    logger,
	}
	return cmd.RunWithTelemetryAndOptions(ctx, cmd.ServiceMCP, cmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return service.Run(logging.Into(ctx, logger), serviceCfg)
	})
}
