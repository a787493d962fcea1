// Package schema wraps the admin API schema endpoints.
package schema

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "schema"

var (
	publishEndpoint = client.Endpoint{
		Name:    "publish_schema",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/schemas",
		Query:   []string{"conn_id", "create_transaction_for_endorser"},
		HasBody: true,
		Summary: "Send a schema to the ledger",
	}
	getEndpoint = client.Endpoint{
		Name:    "get_schema",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/schemas/{schema_id}",
		Summary: "Get a schema from the ledger",
	}
	createdEndpoint = client.Endpoint{
		Name:    "get_created_schemas",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/schemas/created",
		Query:   []string{"schema_id", "schema_issuer_did", "schema_name", "schema_version"},
		Summary: "Search for matching schemas that the agent originated",
	}
)

// Endpoints lists the schema operations.
var Endpoints = []client.Endpoint{publishEndpoint, getEndpoint, createdEndpoint}

var (
	sendDecoders = client.Decoders[models.SchemaSendResult]{
		http.StatusOK: models.SchemaSendResultFromMap,
	}
	getDecoders = client.Decoders[models.SchemaGetResult]{
		http.StatusOK: models.SchemaGetResultFromMap,
	}
	createdDecoders = client.Decoders[models.SchemasCreatedResult]{
		http.StatusOK: models.SchemasCreatedResultFromMap,
	}
)

// PublishParams are the endorsement options of PublishSchema.
type PublishParams struct {
	ConnID                       types.Opt[string]
	CreateTransactionForEndorser types.Opt[bool]
}

func publishOp(body models.SchemaSendRequest, p PublishParams) client.Operation {
	return client.Operation{
		Endpoint: publishEndpoint,
		Params: []client.Param{
			client.Query("conn_id", p.ConnID),
			client.Query("create_transaction_for_endorser", p.CreateTransactionForEndorser),
		},
		Body: body,
	}
}

func PublishSchemaDetailed(ctx context.Context, c *client.Client, body models.SchemaSendRequest, p PublishParams) (*types.Response[models.SchemaSendResult], error) {
	return client.Do(ctx, c, publishOp(body, p), sendDecoders)
}

// PublishSchema writes a schema to the ledger.
func PublishSchema(ctx context.Context, c *client.Client, body models.SchemaSendRequest, p PublishParams) (*models.SchemaSendResult, error) {
	return client.Parsed(PublishSchemaDetailed(ctx, c, body, p))
}

func PublishSchemaAsync(ctx context.Context, c *client.Client, body models.SchemaSendRequest, p PublishParams) *client.Future[models.SchemaSendResult] {
	return client.DoAsync(ctx, c, publishOp(body, p), sendDecoders)
}

func getOp(schemaID string) client.Operation {
	return client.Operation{
		Endpoint:   getEndpoint,
		PathValues: map[string]string{"schema_id": schemaID},
	}
}

func GetSchemaDetailed(ctx context.Context, c *client.Client, schemaID string) (*types.Response[models.SchemaGetResult], error) {
	return client.Do(ctx, c, getOp(schemaID), getDecoders)
}

// GetSchema reads a schema from the ledger by id or sequence number.
func GetSchema(ctx context.Context, c *client.Client, schemaID string) (*models.SchemaGetResult, error) {
	return client.Parsed(GetSchemaDetailed(ctx, c, schemaID))
}

func GetSchemaAsync(ctx context.Context, c *client.Client, schemaID string) *client.Future[models.SchemaGetResult] {
	return client.DoAsync(ctx, c, getOp(schemaID), getDecoders)
}

// CreatedParams filters GetCreatedSchemas.
type CreatedParams struct {
	SchemaID        types.Opt[string]
	SchemaIssuerDID types.Opt[string]
	SchemaName      types.Opt[string]
	SchemaVersion   types.Opt[string]
}

func createdOp(p CreatedParams) client.Operation {
	return client.Operation{
		Endpoint: createdEndpoint,
		Params: []client.Param{
			client.Query("schema_id", p.SchemaID),
			client.Query("schema_issuer_did", p.SchemaIssuerDID),
			client.Query("schema_name", p.SchemaName),
			client.Query("schema_version", p.SchemaVersion),
		},
	}
}

func GetCreatedSchemasDetailed(ctx context.Context, c *client.Client, p CreatedParams) (*types.Response[models.SchemasCreatedResult], error) {
	return client.Do(ctx, c, createdOp(p), createdDecoders)
}

// GetCreatedSchemas lists ids of schemas this agent published.
func GetCreatedSchemas(ctx context.Context, c *client.Client, p CreatedParams) (*models.SchemasCreatedResult, error) {
	return client.Parsed(GetCreatedSchemasDetailed(ctx, c, p))
}

func GetCreatedSchemasAsync(ctx context.Context, c *client.Client, p CreatedParams) *client.Future[models.SchemasCreatedResult] {
	return client.DoAsync(ctx, c, createdOp(p), createdDecoders)
}
