package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	mcpcmd "github.com/WMs784/space-flight-news/internal/cmd/mcp"
	"github.com/WMs784/space-flight-news/internal/platform/config"
)

// main starts the MCP server on stdio or HTTP.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("Fatal error in main(): %v", err)
	}
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Fatal error in main(): parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpcmd.Run(ctx, cfg, os.Stderr); err != nil {
		stop()
		config.Exitf("Fatal error in main(): %v", err)
	}
}
