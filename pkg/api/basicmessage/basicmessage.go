// Package basicmessage wraps the admin API basic message endpoint.
package basicmessage

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

var sendMessageEndpoint = client.Endpoint{
	Name:    "send_basic_message",
	Tag:     "basicmessage",
	Method:  http.MethodPost,
	Path:    "/connections/{conn_id}/send-message",
	HasBody: true,
	Summary: "Send a basic message to a connection",
}

// Endpoints lists the basic message operations.
var Endpoints = []client.Endpoint{sendMessageEndpoint}

var decoders = client.Decoders[models.ModuleResponse]{
	http.StatusOK: models.ModuleResponseFromMap,
}

func sendMessageOp(connID string, body models.SendMessage) client.Operation {
	return client.Operation{
		Endpoint:   sendMessageEndpoint,
		PathValues: map[string]string{"conn_id": connID},
		Body:       body,
	}
}

func SendMessageDetailed(ctx context.Context, c *client.Client, connID string, body models.SendMessage) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, sendMessageOp(connID, body), decoders)
}

// SendMessage sends body over the connection connID.
func SendMessage(ctx context.Context, c *client.Client, connID string, body models.SendMessage) (*models.ModuleResponse, error) {
	return client.Parsed(SendMessageDetailed(ctx, c, connID, body))
}

func SendMessageAsync(ctx context.Context, c *client.Client, connID string, body models.SendMessage) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, sendMessageOp(connID, body), decoders)
}
