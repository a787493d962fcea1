// Package credentialdefinition wraps the admin API credential definition
// endpoints.
package credentialdefinition

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "credential-definition"

var (
	publishEndpoint = client.Endpoint{
		Name:    "publish_cred_def",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/credential-definitions",
		Query:   []string{"conn_id", "create_transaction_for_endorser"},
		HasBody: true,
		Summary: "Send a credential definition to the ledger",
	}
	getEndpoint = client.Endpoint{
		Name:    "get_cred_def",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/credential-definitions/{cred_def_id}",
		Summary: "Get a credential definition from the ledger",
	}
	createdEndpoint = client.Endpoint{
		Name:    "get_created_cred_defs",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/credential-definitions/created",
		Query:   []string{"cred_def_id", "issuer_did", "schema_id", "schema_issuer_did", "schema_name", "schema_version"},
		Summary: "Search for matching credential definitions that the agent originated",
	}
)

// Endpoints lists the credential definition operations.
var Endpoints = []client.Endpoint{publishEndpoint, getEndpoint, createdEndpoint}

var (
	sendDecoders = client.Decoders[models.CredentialDefinitionSendResult]{
		http.StatusOK: models.CredentialDefinitionSendResultFromMap,
	}
	getDecoders = client.Decoders[models.CredentialDefinitionGetResult]{
		http.StatusOK: models.CredentialDefinitionGetResultFromMap,
	}
	createdDecoders = client.Decoders[models.CredentialDefinitionsCreatedResult]{
		http.StatusOK: models.CredentialDefinitionsCreatedResultFromMap,
	}
)

type PublishParams struct {
	ConnID                       types.Opt[string]
	CreateTransactionForEndorser types.Opt[bool]
}

func publishOp(body models.CredentialDefinitionSendRequest, p PublishParams) client.Operation {
	return client.Operation{
		Endpoint: publishEndpoint,
		Params: []client.Param{
			client.Query("conn_id", p.ConnID),
			client.Query("create_transaction_for_endorser", p.CreateTransactionForEndorser),
		},
		Body: body,
	}
}

func PublishCredentialDefinitionDetailed(ctx context.Context, c *client.Client, body models.CredentialDefinitionSendRequest, p PublishParams) (*types.Response[models.CredentialDefinitionSendResult], error) {
	return client.Do(ctx, c, publishOp(body, p), sendDecoders)
}

// PublishCredentialDefinition writes a credential definition for an existing
// schema to the ledger.
func PublishCredentialDefinition(ctx context.Context, c *client.Client, body models.CredentialDefinitionSendRequest, p PublishParams) (*models.CredentialDefinitionSendResult, error) {
	return client.Parsed(PublishCredentialDefinitionDetailed(ctx, c, body, p))
}

func PublishCredentialDefinitionAsync(ctx context.Context, c *client.Client, body models.CredentialDefinitionSendRequest, p PublishParams) *client.Future[models.CredentialDefinitionSendResult] {
	return client.DoAsync(ctx, c, publishOp(body, p), sendDecoders)
}

func getOp(credDefID string) client.Operation {
	return client.Operation{
		Endpoint:   getEndpoint,
		PathValues: map[string]string{"cred_def_id": credDefID},
	}
}

func GetCredentialDefinitionDetailed(ctx context.Context, c *client.Client, credDefID string) (*types.Response[models.CredentialDefinitionGetResult], error) {
	return client.Do(ctx, c, getOp(credDefID), getDecoders)
}

func GetCredentialDefinition(ctx context.Context, c *client.Client, credDefID string) (*models.CredentialDefinitionGetResult, error) {
	return client.Parsed(GetCredentialDefinitionDetailed(ctx, c, credDefID))
}

func GetCredentialDefinitionAsync(ctx context.Context, c *client.Client, credDefID string) *client.Future[models.CredentialDefinitionGetResult] {
	return client.DoAsync(ctx, c, getOp(credDefID), getDecoders)
}

// CreatedParams filters GetCreatedCredentialDefinitions.
type CreatedParams struct {
	CredDefID       types.Opt[string]
	IssuerDID       types.Opt[string]
	SchemaID        types.Opt[string]
	SchemaIssuerDID types.Opt[string]
	SchemaName      types.Opt[string]
	SchemaVersion   types.Opt[string]
}

func createdOp(p CreatedParams) client.Operation {
	return client.Operation{
		Endpoint: createdEndpoint,
		Params: []client.Param{
			client.Query("cred_def_id", p.CredDefID),
			client.Query("issuer_did", p.IssuerDID),
			client.Query("schema_id", p.SchemaID),
			client.Query("schema_issuer_did", p.SchemaIssuerDID),
			client.Query("schema_name", p.SchemaName),
			client.Query("schema_version", p.SchemaVersion),
		},
	}
}

func GetCreatedCredentialDefinitionsDetailed(ctx context.Context, c *client.Client, p CreatedParams) (*types.Response[models.CredentialDefinitionsCreatedResult], error) {
	return client.Do(ctx, c, createdOp(p), createdDecoders)
}

// GetCreatedCredentialDefinitions lists ids of credential definitions this
// agent published.
func GetCreatedCredentialDefinitions(ctx context.Context, c *client.Client, p CreatedParams) (*models.CredentialDefinitionsCreatedResult, error) {
	return client.Parsed(GetCreatedCredentialDefinitionsDetailed(ctx, c, p))
}

func GetCreatedCredentialDefinitionsAsync(ctx context.Context, c *client.Client, p CreatedParams) *client.Future[models.CredentialDefinitionsCreatedResult] {
	return client.DoAsync(ctx, c, createdOp(p), createdDecoders)
}
