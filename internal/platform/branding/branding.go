// Package branding holds the identity the server reports to MCP clients.
package branding

const (
	// AppName is the human-readable product name used in diagnostics.
	AppName = "Space Flight News"
	// ServerName is the MCP implementation name advertised during initialize.
	ServerName = "space-flight-news"
	// Version is the MCP implementation version advertised during initialize.
	Version = "1.0.0"
)

// UserAgent identifies outbound requests to the news API.
func UserAgent() string {
	return ServerName + "/" + Version
}
