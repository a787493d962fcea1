package memcatalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/client"
)

// Catalog is an in-memory EndpointCatalog. It is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	endpoints map[string]client.Endpoint
	order     []string
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Catalog {
	return &Catalog{
		endpoints: make(map[string]client.Endpoint),
		logger:    logger.With("component", "mem_catalog"),
	}
}

// Register stores endpoints. Entries without a name are skipped. A malformed
// entry rejects the whole batch and leaves the catalog unchanged.
func (c *Catalog) Register(ctx context.Context, endpoints []client.Endpoint) error {
	for i, ep := range endpoints {
		if ep.Name == "" {
			continue
		}
		if ep.Method == "" || !strings.HasPrefix(ep.Path, "/") {
			c.logger.Error("Rejecting malformed endpoint", slog.Int("index", i), slog.String("name", ep.Name))
			return fmt.Errorf("register failed: endpoint %s has method %q and path %q", ep.Name, ep.Method, ep.Path)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for i, ep := range endpoints {
		if ep.Name == "" {
			c.logger.Warn("Skipping endpoint with empty name during register", slog.Int("index", i))
			continue
		}
		if _, exists := c.endpoints[ep.Name]; !exists {
			c.order = append(c.order, ep.Name)
		}
		c.endpoints[ep.Name] = ep
		count++
	}
	c.logger.Info("Registered endpoints", slog.Int("count", count), slog.Int("total_endpoints", len(c.endpoints)))
	return nil
}

// List returns all endpoints in registration order.
func (c *Catalog) List(ctx context.Context) ([]client.Endpoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]client.Endpoint, 0, len(c.order))
	for _, name := range c.order {
		list = append(list, c.endpoints[name])
	}
	c.logger.Debug("Listed endpoints from catalog", slog.Int("count", len(list)))
	return list, nil
}

// Find retrieves an endpoint by operation name.
func (c *Catalog) Find(ctx context.Context, name string) (*client.Endpoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ep, ok := c.endpoints[name]
	if !ok {
		c.logger.Warn("Endpoint not found", slog.String("name", name))
		return nil, usecase.ErrEndpointNotFound
	}
	return &ep, nil
}
