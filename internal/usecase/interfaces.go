package usecase

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"github.com/i2y/acapyclient/internal/domain"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/types"
)

// Standard errors returned by use cases and adapters.
var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrInvalidParams    = errors.New("invalid parameters")
)

// --- Endpoint Catalog ---

// EndpointCatalog stores the endpoint descriptors the client can call.
type EndpointCatalog interface {
	// Register adds endpoints, replacing any with the same name.
	Register(ctx context.Context, endpoints []client.Endpoint) error

	// List returns all endpoints in registration order.
	List(ctx context.Context) ([]client.Endpoint, error)

	// Find returns the endpoint with the given operation name or ErrEndpointNotFound.
	Find(ctx context.Context, name string) (*client.Endpoint, error)
}

// --- API Document Source ---

// DocumentFetcher loads the API description an agent publishes.
type DocumentFetcher interface {
	Fetch(ctx context.Context, source string) (domain.APIDocument, error)
}

// --- Invocation ---

// EndpointInvoker calls an endpoint with loosely typed parameters, the way a
// tool call or a command line arrives.
type EndpointInvoker interface {
	Invoke(ctx context.Context, endpoint client.Endpoint, params map[string]any) (*types.Response[map[string]any], error)
}

// --- MCP Server Abstraction ---

// MCPServerAdapter is the part of the MCP server ServeToolsUseCase needs.
type MCPServerAdapter interface {
	AddTool(tool mcp.Tool, handlerFunc mcpGoServer.ToolHandlerFunc)
}
