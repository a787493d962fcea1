// Package server wraps the admin API status endpoints.
package server

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "server"

var (
	statusEndpoint = client.Endpoint{
		Name:    "get_status",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/status",
		Summary: "Fetch the server status",
	}
	readyEndpoint = client.Endpoint{
		Name:    "get_ready",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/status/ready",
		Summary: "Readiness check",
	}
	liveEndpoint = client.Endpoint{
		Name:    "get_live",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/status/live",
		Summary: "Liveliness check",
	}
	resetEndpoint = client.Endpoint{
		Name:    "reset_status",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/status/reset",
		Summary: "Reset statistics",
	}
)

// Endpoints lists the status operations.
var Endpoints = []client.Endpoint{statusEndpoint, readyEndpoint, liveEndpoint, resetEndpoint}

var (
	statusDecoders = client.Decoders[models.AdminStatus]{
		http.StatusOK: models.AdminStatusFromMap,
	}
	readyDecoders = client.Decoders[models.AdminStatusReadiness]{
		http.StatusOK: models.AdminStatusReadinessFromMap,
	}
	liveDecoders = client.Decoders[models.AdminStatusLiveliness]{
		http.StatusOK: models.AdminStatusLivelinessFromMap,
	}
	resetDecoders = client.Decoders[models.ModuleResponse]{
		http.StatusOK: models.ModuleResponseFromMap,
	}
)

func GetStatusDetailed(ctx context.Context, c *client.Client) (*types.Response[models.AdminStatus], error) {
	return client.Do(ctx, c, client.Operation{Endpoint: statusEndpoint}, statusDecoders)
}

// GetStatus returns the agent version, label and conductor statistics.
func GetStatus(ctx context.Context, c *client.Client) (*models.AdminStatus, error) {
	return client.Parsed(GetStatusDetailed(ctx, c))
}

func GetStatusAsync(ctx context.Context, c *client.Client) *client.Future[models.AdminStatus] {
	return client.DoAsync(ctx, c, client.Operation{Endpoint: statusEndpoint}, statusDecoders)
}

func GetReadyDetailed(ctx context.Context, c *client.Client) (*types.Response[models.AdminStatusReadiness], error) {
	return client.Do(ctx, c, client.Operation{Endpoint: readyEndpoint}, readyDecoders)
}

// GetReady reports whether the agent has finished starting up. An agent that
// is not ready answers 503, which yields (nil, nil).
func GetReady(ctx context.Context, c *client.Client) (*models.AdminStatusReadiness, error) {
	return client.Parsed(GetReadyDetailed(ctx, c))
}

func GetReadyAsync(ctx context.Context, c *client.Client) *client.Future[models.AdminStatusReadiness] {
	return client.DoAsync(ctx, c, client.Operation{Endpoint: readyEndpoint}, readyDecoders)
}

func GetLiveDetailed(ctx context.Context, c *client.Client) (*types.Response[models.AdminStatusLiveliness], error) {
	return client.Do(ctx, c, client.Operation{Endpoint: liveEndpoint}, liveDecoders)
}

func GetLive(ctx context.Context, c *client.Client) (*models.AdminStatusLiveliness, error) {
	return client.Parsed(GetLiveDetailed(ctx, c))
}

func GetLiveAsync(ctx context.Context, c *client.Client) *client.Future[models.AdminStatusLiveliness] {
	return client.DoAsync(ctx, c, client.Operation{Endpoint: liveEndpoint}, liveDecoders)
}

func ResetStatusDetailed(ctx context.Context, c *client.Client) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, client.Operation{Endpoint: resetEndpoint}, resetDecoders)
}

// ResetStatus clears the conductor statistics.
func ResetStatus(ctx context.Context, c *client.Client) (*models.ModuleResponse, error) {
	return client.Parsed(ResetStatusDetailed(ctx, c))
}

func ResetStatusAsync(ctx context.Context, c *client.Client) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, client.Operation{Endpoint: resetEndpoint}, resetDecoders)
}
