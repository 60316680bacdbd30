// Package service wires protocol transport to the article tools.
//
// It is the transport adapter layer: the package knows how to run MCP over
// stdio or streamable HTTP and delegates the meaning of each tool to handlers
// in the domain package.
package service
