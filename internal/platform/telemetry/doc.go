// Package telemetry groups the server's operational observability.
//
// Tracing lives in platform/otel and is opt-in. Prometheus metrics live in
// telemetry/metrics and are always collected; they are exposed over HTTP only
// when the server runs the HTTP transport.
package telemetry
