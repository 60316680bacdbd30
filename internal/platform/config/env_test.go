package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Limit  int    `env:"SPACEFLIGHT_NEWS_TEST_LIMIT" envDefault:"10"`
	Source string `env:"SPACEFLIGHT_NEWS_TEST_SOURCE" envDefault:"api"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", cfg.Limit)
	}
	if cfg.Source != "api" {
		t.Fatalf("expected default source api, got %q", cfg.Source)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SPACEFLIGHT_NEWS_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	if err := LoadDotEnv(missing); err != nil {
		t.Fatalf("expected missing file to be skipped, got %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "SPACEFLIGHT_NEWS_TEST_SOURCE=from-file\nSPACEFLIGHT_NEWS_TEST_DOTENV_ONLY=loaded\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("SPACEFLIGHT_NEWS_TEST_SOURCE", "from-env")
	t.Setenv("SPACEFLIGHT_NEWS_TEST_DOTENV_ONLY", "")
	os.Unsetenv("SPACEFLIGHT_NEWS_TEST_DOTENV_ONLY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("SPACEFLIGHT_NEWS_TEST_SOURCE"); got != "from-env" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
	if got := os.Getenv("SPACEFLIGHT_NEWS_TEST_DOTENV_ONLY"); got != "loaded" {
		t.Fatalf("expected dotenv value, got %q", got)
	}
}

func TestLoadDotEnvRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	if err := os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	err := LoadDotEnv(path)
	if err == nil {
		t.Fatal("expected error for malformed dotenv file")
	}
	if !strings.Contains(err.Error(), "load ") {
		t.Fatalf("expected load prefix, got %v", err)
	}
}
