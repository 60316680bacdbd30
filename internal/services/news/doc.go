// Package news talks to the Spaceflight News API.
//
// It builds request URLs, performs single GET requests whose failures are
// folded into an explicit Result value, and renders articles as fixed-layout
// plain text for MCP tool output.
package news
