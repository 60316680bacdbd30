package mcp

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
)

var configEnvKeys = []string{
	"SPACEFLIGHT_NEWS_API_URL",
	"SPACEFLIGHT_NEWS_MCP_TRANSPORT",
	"SPACEFLIGHT_NEWS_MCP_HTTP_ADDR",
	"SPACEFLIGHT_NEWS_LOG_LEVEL",
	"SPACEFLIGHT_NEWS_LOG_FORMAT",
	"SPACEFLIGHT_NEWS_LOCALE",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.APIURL != "https://api.spaceflightnewsapi.net/v4" {
		t.Fatalf("expected default api url, got %q", cfg.APIURL)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("expected info/text logging, got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Locale != "" {
		t.Fatalf("expected empty locale, got %q", cfg.Locale)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SPACEFLIGHT_NEWS_API_URL", "http://env-api/v4")
	t.Setenv("SPACEFLIGHT_NEWS_MCP_HTTP_ADDR", "env-http")
	t.Setenv("SPACEFLIGHT_NEWS_LOCALE", "ja_JP.UTF-8")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	args := []string{"-http-addr", "flag-http", "-transport", "http", "-log-format", "json"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.APIURL != "http://env-api/v4" {
		t.Fatalf("expected env api url, got %q", cfg.APIURL)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %q", cfg.LogFormat)
	}
	if cfg.Locale != "ja_JP.UTF-8" {
		t.Fatalf("expected env locale, got %q", cfg.Locale)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	clearConfigEnv(t)
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-addr", "x"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRejectsBadLogging(t *testing.T) {
	var stderr bytes.Buffer
	err := Run(context.Background(), Config{Transport: "stdio", LogLevel: "info", LogFormat: "xml"}, &stderr)
	if err == nil || !strings.Contains(err.Error(), "configure logging") {
		t.Fatalf("expected logging error, got %v", err)
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	t.Setenv("SPACEFLIGHT_NEWS_OTEL_ENABLED", "false")
	var stderr bytes.Buffer
	err := Run(context.Background(), Config{Transport: "smoke-signal", LogLevel: "info", LogFormat: "text"}, &stderr)
	if err == nil || !strings.Contains(err.Error(), `transport "smoke-signal" is not supported`) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
