package service

import (
	"fmt"

	"github.com/WMs784/space-flight-news/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const mcpArticleToolsModuleName = "article-tools"

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.LatestArticlesInput, any](),
	newMCPToolRegistrar[domain.SearchArticlesInput, any](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(deps domain.Deps) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpArticleToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerArticleTools(registrar, deps)
			},
		},
	}
}

func registerArticleTools(registrar mcpRegistrationTarget, deps domain.Deps) error {
	if err := registerTool(registrar, domain.LatestArticlesTool(), domain.LatestArticlesHandler(deps)); err != nil {
		return err
	}
	return registerTool(registrar, domain.SearchArticlesTool(), domain.SearchArticlesHandler(deps))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
