// Package metrics provides operational metrics collection.
//
// # Metric Categories
//
//   - Upstream: news API request counts by outcome and request latency
//   - Usage: MCP tool invocation counts by tool name
//
// # Integration
//
// Each Metrics value owns a private Prometheus registry. Handler exposes the
// registry in Prometheus text format.
package metrics
