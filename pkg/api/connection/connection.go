// Package connection wraps the admin API connection endpoints.
//
// Each operation comes in three forms: X returns the decoded payload, or nil
// when the agent answered with a status the operation does not document;
// XDetailed returns the full response; XAsync starts the call and returns a
// future.
package connection

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "connection"

var (
	getConnectionsEndpoint = client.Endpoint{
		Name:    "get_connections",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/connections",
		Query:   []string{"alias", "connection_protocol", "invitation_key", "my_did", "state", "their_did", "their_role"},
		Summary: "Query agent-to-agent connections",
	}
	getConnectionEndpoint = client.Endpoint{
		Name:    "get_connection",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/connections/{conn_id}",
		Summary: "Fetch a single connection record",
	}
	deleteConnectionEndpoint = client.Endpoint{
		Name:    "delete_connection",
		Tag:     tag,
		Method:  http.MethodDelete,
		Path:    "/connections/{conn_id}",
		Summary: "Remove an existing connection record",
	}
	getMetadataEndpoint = client.Endpoint{
		Name:    "get_connection_metadata",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/connections/{conn_id}/metadata",
		Query:   []string{"key"},
		Summary: "Fetch connection metadata",
	}
	setMetadataEndpoint = client.Endpoint{
		Name:    "set_connection_metadata",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/{conn_id}/metadata",
		HasBody: true,
		Summary: "Set connection metadata",
	}
	getEndpointsEndpoint = client.Endpoint{
		Name:    "get_connection_endpoints",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/connections/{conn_id}/endpoints",
		Summary: "Fetch connection remote endpoint",
	}
)

// Endpoints lists the connection operations.
var Endpoints = []client.Endpoint{
	getConnectionsEndpoint,
	getConnectionEndpoint,
	deleteConnectionEndpoint,
	createInvitationEndpoint,
	receiveInvitationEndpoint,
	acceptInvitationEndpoint,
	acceptRequestEndpoint,
	createStaticEndpoint,
	establishInboundEndpoint,
	getMetadataEndpoint,
	setMetadataEndpoint,
	getEndpointsEndpoint,
}

var (
	connRecordDecoders = client.Decoders[models.ConnRecord]{
		http.StatusOK: models.ConnRecordFromMap,
	}
	connectionListDecoders = client.Decoders[models.ConnectionList]{
		http.StatusOK: models.ConnectionListFromMap,
	}
	moduleResponseDecoders = client.Decoders[models.ModuleResponse]{
		http.StatusOK: models.ModuleResponseFromMap,
	}
	metadataDecoders = client.Decoders[models.ConnectionMetadata]{
		http.StatusOK: models.ConnectionMetadataFromMap,
	}
	endpointsDecoders = client.Decoders[models.EndpointsResult]{
		http.StatusOK: models.EndpointsResultFromMap,
	}
)

// GetConnectionsParams filters the connection list. Unset fields are not sent.
type GetConnectionsParams struct {
	Alias              types.Opt[string]
	ConnectionProtocol types.Opt[models.ConnectionProtocol]
	InvitationKey      types.Opt[string]
	MyDID              types.Opt[string]
	State              types.Opt[models.ConnectionState]
	TheirDID           types.Opt[string]
	TheirRole          types.Opt[models.ConnRecordTheirRole]
}

func getConnectionsOp(p GetConnectionsParams) client.Operation {
	return client.Operation{
		Endpoint: getConnectionsEndpoint,
		Params: []client.Param{
			client.Query("alias", p.Alias),
			client.Query("connection_protocol", p.ConnectionProtocol),
			client.Query("invitation_key", p.InvitationKey),
			client.Query("my_did", p.MyDID),
			client.Query("state", p.State),
			client.Query("their_did", p.TheirDID),
			client.Query("their_role", p.TheirRole),
		},
	}
}

func GetConnectionsDetailed(ctx context.Context, c *client.Client, p GetConnectionsParams) (*types.Response[models.ConnectionList], error) {
	return client.Do(ctx, c, getConnectionsOp(p), connectionListDecoders)
}

// GetConnections lists connections matching p.
func GetConnections(ctx context.Context, c *client.Client, p GetConnectionsParams) (*models.ConnectionList, error) {
	return client.Parsed(GetConnectionsDetailed(ctx, c, p))
}

func GetConnectionsAsync(ctx context.Context, c *client.Client, p GetConnectionsParams) *client.Future[models.ConnectionList] {
	return client.DoAsync(ctx, c, getConnectionsOp(p), connectionListDecoders)
}

func connOp(ep client.Endpoint, connID string) client.Operation {
	return client.Operation{
		Endpoint:   ep,
		PathValues: map[string]string{"conn_id": connID},
	}
}

func GetConnectionDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.ConnRecord], error) {
	return client.Do(ctx, c, connOp(getConnectionEndpoint, connID), connRecordDecoders)
}

// GetConnection fetches one connection record.
func GetConnection(ctx context.Context, c *client.Client, connID string) (*models.ConnRecord, error) {
	return client.Parsed(GetConnectionDetailed(ctx, c, connID))
}

func GetConnectionAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.ConnRecord] {
	return client.DoAsync(ctx, c, connOp(getConnectionEndpoint, connID), connRecordDecoders)
}

func DeleteConnectionDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, connOp(deleteConnectionEndpoint, connID), moduleResponseDecoders)
}

// DeleteConnection removes a connection record.
func DeleteConnection(ctx context.Context, c *client.Client, connID string) (*models.ModuleResponse, error) {
	return client.Parsed(DeleteConnectionDetailed(ctx, c, connID))
}

func DeleteConnectionAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, connOp(deleteConnectionEndpoint, connID), moduleResponseDecoders)
}

func getMetadataOp(connID string, key types.Opt[string]) client.Operation {
	op := connOp(getMetadataEndpoint, connID)
	op.Params = []client.Param{client.Query("key", key)}
	return op
}

func GetMetadataDetailed(ctx context.Context, c *client.Client, connID string, key types.Opt[string]) (*types.Response[models.ConnectionMetadata], error) {
	return client.Do(ctx, c, getMetadataOp(connID, key), metadataDecoders)
}

// GetMetadata fetches the metadata of a connection, or a single key of it.
func GetMetadata(ctx context.Context, c *client.Client, connID string, key types.Opt[string]) (*models.ConnectionMetadata, error) {
	return client.Parsed(GetMetadataDetailed(ctx, c, connID, key))
}

func GetMetadataAsync(ctx context.Context, c *client.Client, connID string, key types.Opt[string]) *client.Future[models.ConnectionMetadata] {
	return client.DoAsync(ctx, c, getMetadataOp(connID, key), metadataDecoders)
}

func setMetadataOp(connID string, body models.ConnectionMetadataSetRequest) client.Operation {
	op := connOp(setMetadataEndpoint, connID)
	op.Body = body
	return op
}

func SetMetadataDetailed(ctx context.Context, c *client.Client, connID string, body models.ConnectionMetadataSetRequest) (*types.Response[models.ConnectionMetadata], error) {
	return client.Do(ctx, c, setMetadataOp(connID, body), metadataDecoders)
}

// SetMetadata merges body.Metadata into the connection metadata.
func SetMetadata(ctx context.Context, c *client.Client, connID string, body models.ConnectionMetadataSetRequest) (*models.ConnectionMetadata, error) {
	return client.Parsed(SetMetadataDetailed(ctx, c, connID, body))
}

func SetMetadataAsync(ctx context.Context, c *client.Client, connID string, body models.ConnectionMetadataSetRequest) *client.Future[models.ConnectionMetadata] {
	return client.DoAsync(ctx, c, setMetadataOp(connID, body), metadataDecoders)
}

func GetEndpointsDetailed(ctx context.Context, c *client.Client, connID string) (*types.Response[models.EndpointsResult], error) {
	return client.Do(ctx, c, connOp(getEndpointsEndpoint, connID), endpointsDecoders)
}

// GetEndpoints returns both ends' service endpoints for a connection.
func GetEndpoints(ctx context.Context, c *client.Client, connID string) (*models.EndpointsResult, error) {
	return client.Parsed(GetEndpointsDetailed(ctx, c, connID))
}

func GetEndpointsAsync(ctx context.Context, c *client.Client, connID string) *client.Future[models.EndpointsResult] {
	return client.DoAsync(ctx, c, connOp(getEndpointsEndpoint, connID), endpointsDecoders)
}
