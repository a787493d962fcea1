// Package trustping wraps the admin API trust ping endpoint.
package trustping

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

var sendPingEndpoint = client.Endpoint{
	Name:    "send_ping",
	Tag:     "trustping",
	Method:  http.MethodPost,
	Path:    "/connections/{conn_id}/send-ping",
	HasBody: true,
	Summary: "Send a trust ping to a connection",
}

// Endpoints lists the trust ping operations.
var Endpoints = []client.Endpoint{sendPingEndpoint}

var decoders = client.Decoders[models.PingRequestResponse]{
	http.StatusOK: models.PingRequestResponseFromMap,
}

func sendPingOp(connID string, body models.PingRequest) client.Operation {
	return client.Operation{
		Endpoint:   sendPingEndpoint,
		PathValues: map[string]string{"conn_id": connID},
		Body:       body,
	}
}

func SendPingDetailed(ctx context.Context, c *client.Client, connID string, body models.PingRequest) (*types.Response[models.PingRequestResponse], error) {
	return client.Do(ctx, c, sendPingOp(connID, body), decoders)
}

// SendPing sends a trust ping and returns the thread id it was sent on.
func SendPing(ctx context.Context, c *client.Client, connID string, body models.PingRequest) (*models.PingRequestResponse, error) {
	return client.Parsed(SendPingDetailed(ctx, c, connID, body))
}

func SendPingAsync(ctx context.Context, c *client.Client, connID string, body models.PingRequest) *client.Future[models.PingRequestResponse] {
	return client.DoAsync(ctx, c, sendPingOp(connID, body), decoders)
}
