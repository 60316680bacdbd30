// Package timeouts defines shared timeout constants. Centralizing these
// values keeps the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP transport waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the final span flush when the process exits.
const TelemetryShutdown = 5 * time.Second
