package usecase_test

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/mock"

	"github.com/i2y/acapyclient/internal/domain"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/types"
)

// MockEndpointCatalog is a mock implementation of the EndpointCatalog interface.
type MockEndpointCatalog struct {
	mock.Mock
}

func (m *MockEndpointCatalog) Register(ctx context.Context, endpoints []client.Endpoint) error {
	args := m.Called(ctx, endpoints)
	return args.Error(0)
}

func (m *MockEndpointCatalog) List(ctx context.Context) ([]client.Endpoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Endpoint), args.Error(1)
}

func (m *MockEndpointCatalog) Find(ctx context.Context, name string) (*client.Endpoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Endpoint), args.Error(1)
}

// MockEndpointInvoker is a mock implementation of the EndpointInvoker interface.
type MockEndpointInvoker struct {
	mock.Mock
}

func (m *MockEndpointInvoker) Invoke(ctx context.Context, endpoint client.Endpoint, params map[string]any) (*types.Response[map[string]any], error) {
	args := m.Called(ctx, endpoint, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Response[map[string]any]), args.Error(1)
}

// MockDocumentFetcher is a mock implementation of the DocumentFetcher interface.
type MockDocumentFetcher struct {
	mock.Mock
}

func (m *MockDocumentFetcher) Fetch(ctx context.Context, source string) (domain.APIDocument, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(domain.APIDocument), args.Error(1)
}

// recordingServer captures tools registered through MCPServerAdapter.
type recordingServer struct {
	tools    []mcp.Tool
	handlers map[string]mcpGoServer.ToolHandlerFunc
}

func (s *recordingServer) AddTool(tool mcp.Tool, handler mcpGoServer.ToolHandlerFunc) {
	if s.handlers == nil {
		s.handlers = map[string]mcpGoServer.ToolHandlerFunc{}
	}
	s.tools = append(s.tools, tool)
	s.handlers[tool.Name] = handler
}
