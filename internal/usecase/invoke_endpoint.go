package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/i2y/acapyclient/pkg/types"
)

// InvokeEndpointUseCase calls a catalog endpoint by operation name.
type InvokeEndpointUseCase struct {
	catalog EndpointCatalog
	invoker EndpointInvoker
	logger  *slog.Logger
}

func NewInvokeEndpointUseCase(catalog EndpointCatalog, invoker EndpointInvoker, logger *slog.Logger) *InvokeEndpointUseCase {
	return &InvokeEndpointUseCase{
		catalog: catalog,
		invoker: invoker,
		logger:  logger.With("usecase", "InvokeEndpoint"),
	}
}

// Execute looks up name in the catalog and performs the call. A status the
// endpoint does not document is returned as a response, not an error.
func (uc *InvokeEndpointUseCase) Execute(ctx context.Context, name string, params map[string]any) (*types.Response[map[string]any], error) {
	log := uc.logger.With(slog.String("operation", name))
	log.Info("Executing endpoint invocation")

	endpoint, err := uc.catalog.Find(ctx, name)
	if err != nil {
		log.Warn("Endpoint not found", slog.Any("error", err))
		return nil, fmt.Errorf("endpoint '%s': %w", name, err)
	}

	resp, err := uc.invoker.Invoke(ctx, *endpoint, params)
	if err != nil {
		log.Error("Failed to invoke endpoint", slog.Any("error", err))
		return nil, fmt.Errorf("failed to invoke %s: %w", name, err)
	}

	log.Info("Endpoint invocation finished", slog.Int("status_code", resp.StatusCode))
	return resp, nil
}
