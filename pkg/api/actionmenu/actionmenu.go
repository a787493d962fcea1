// Package actionmenu wraps the admin API action menu endpoints.
package actionmenu

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "action-menu"

var (
	fetchEndpoint = client.Endpoint{
		Name:    "fetch_menu",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/action-menu/{conn_id}/fetch",
		Summary: "Fetch the active menu",
	}
	performEndpoint = client.Endpoint{
		Name:    "perform_action",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/action-menu/{conn_id}/perform",
		HasBody: true,
		Summary: "Perform an action associated with the active menu",
	}
	requestEndpoint = client.Endpoint{
		Name:    "request_menu",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/action-menu/{conn_id}/request",
		Summary: "Request the active menu",
	}
	closeEndpoint = client.Endpoint{
		Name:    "close_menu",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/action-menu/{conn_id}/close",
		Summary: "Close the active menu associated with a connection",
	}
)

// Endpoints lists the action menu operations.
var Endpoints = []client.Endpoint{fetchEndpoint, performEndpoint, requestEndpoint, closeEndpoint}

var (
	fetchDecoders = client.Decoders[models.ActionMenuFetchResult]{
		http.StatusOK: models.ActionMenuFetchResultFromMap,
	}
	moduleResponseDecoders = client.Decoders[models.ModuleResponse]{
		http.StatusOK: models.ModuleResponseFromMap,
	}
)

func connOp(ep client.Endpoint, connID string) client.Operation {
	return client.Operation{
		Endpoint:   ep,
		PathValues: map[string]string{"conn_id": connID},
	}
}

func FetchMenuDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.ActionMenuFetchResult], error) {
	return client.Do(ctx, c, connOp(fetchEndpoint, connID), fetchDecoders)
}

// FetchMenu returns the menu the peer last offered on connID, if any.
func FetchMenu(ctx context.Context, c *client.Client, connID string) (*models.ActionMenuFetchResult, error) {
	return client.Parsed(FetchMenuDetailed(ctx, c, connID))
}

func FetchMenuAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.ActionMenuFetchResult] {
	return client.DoAsync(ctx, c, connOp(fetchEndpoint, connID), fetchDecoders)
}

func performOp(connID string, body models.PerformRequest) client.Operation {
	op := connOp(performEndpoint, connID)
	op.Body = body
	return op
}

func PerformActionDetailed(ctx context.Context, c *client.Client, connID string, body models.PerformRequest) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, performOp(connID, body), moduleResponseDecoders)
}

// PerformAction selects a menu option, passing its form parameters.
func PerformAction(ctx context.Context, c *client.Client, connID string, body models.PerformRequest) (*models.ModuleResponse, error) {
	return client.Parsed(PerformActionDetailed(ctx, c, connID, body))
}

func PerformActionAsync(ctx context.Context, c *client.Client, connID string, body models.PerformRequest) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, performOp(connID, body), moduleResponseDecoders)
}

func RequestMenuDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, connOp(requestEndpoint, connID), moduleResponseDecoders)
}

// RequestMenu asks the peer to send its menu.
func RequestMenu(ctx context.Context, c *client.Client, connID string) (*models.ModuleResponse, error) {
	return client.Parsed(RequestMenuDetailed(ctx, c, connID))
}

func RequestMenuAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, connOp(requestEndpoint, connID), moduleResponseDecoders)
}

func CloseMenuDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, connOp(closeEndpoint, connID), moduleResponseDecoders)
}

func CloseMenu(ctx context.Context, c *client.Client, connID string) (*models.ModuleResponse, error) {
	return client.Parsed(CloseMenuDetailed(ctx, c, connID))
}

func CloseMenuAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, connOp(closeEndpoint, connID), moduleResponseDecoders)
}
