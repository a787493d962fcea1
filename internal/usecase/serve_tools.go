package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/i2y/acapyclient/pkg/client"
)

// BodyArgument is the tool argument that carries a request body.
const BodyArgument = "body"

// ServeToolsUseCase lists catalog endpoints and exposes them as MCP tools.
type ServeToolsUseCase struct {
	catalog EndpointCatalog
	invoke  *InvokeEndpointUseCase
	logger  *slog.Logger
}

func NewServeToolsUseCase(catalog EndpointCatalog, invoke *InvokeEndpointUseCase, logger *slog.Logger) *ServeToolsUseCase {
	return &ServeToolsUseCase{
		catalog: catalog,
		invoke:  invoke,
		logger:  logger.With("usecase", "ServeTools"),
	}
}

// Execute retrieves all endpoints currently in the catalog.
func (uc *ServeToolsUseCase) Execute(ctx context.Context) ([]client.Endpoint, error) {
	uc.logger.Info("Listing endpoints")
	endpoints, err := uc.catalog.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list endpoints from catalog", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list endpoints from catalog: %w", err)
	}
	uc.logger.Info("Successfully listed endpoints", slog.Int("count", len(endpoints)))
	return endpoints, nil
}

// Register adds one tool per catalog endpoint to srv and returns how many
// were added.
func (uc *ServeToolsUseCase) Register(ctx context.Context, srv MCPServerAdapter) (int, error) {
	endpoints, err := uc.Execute(ctx)
	if err != nil {
		return 0, err
	}
	for _, ep := range endpoints {
		srv.AddTool(ToolFor(ep), uc.handler(ep.Name))
		uc.logger.Debug("Registered tool", slog.String("tool_name", ep.Name))
	}
	uc.logger.Info("Registered MCP tools", slog.Int("count", len(endpoints)))
	return len(endpoints), nil
}

// ToolFor describes ep as an MCP tool. Path parameters are required strings,
// query parameters optional strings, and the body an object argument.
func ToolFor(ep client.Endpoint) mcp.Tool {
	desc := ep.Summary
	if desc == "" {
		desc = ep.Name
	}
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s (%s %s)", desc, ep.Method, ep.Path)),
	}
	for _, name := range ep.PathParams() {
		opts = append(opts, mcp.WithString(name, mcp.Required(), mcp.Description("Path parameter "+name)))
	}
	for _, name := range ep.Query {
		opts = append(opts, mcp.WithString(name, mcp.Description("Query parameter "+name)))
	}
	if ep.HasBody {
		bodyOpts := []mcp.PropertyOption{mcp.Description("JSON request body")}
		if !ep.BodyOptional {
			bodyOpts = append(bodyOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithObject(BodyArgument, bodyOpts...))
	}
	return mcp.NewTool(ep.Name, opts...)
}

func (uc *ServeToolsUseCase) handler(name string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := uc.invoke.Execute(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		body := strings.TrimSpace(string(resp.Content))
		if !resp.IsSuccess() {
			return mcp.NewToolResultError(fmt.Sprintf("agent returned status %d: %s", resp.StatusCode, resp.ErrorDetail())), nil
		}
		if body == "" {
			body = "{}"
		}
		return mcp.NewToolResultText(body), nil
	}
}
