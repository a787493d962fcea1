package credentialdefinition_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/api/credentialdefinition"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const credDefID = "WgWxqztrNooG92RXvxSTWv:3:CL:20:tag"

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithHTTPClient(srv.Client()))
}

func TestPublishCredentialDefinition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/credential-definitions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"schema_id":"s1","support_revocation":false,"tag":"default"}`, string(body))
		w.Write([]byte(`{"credential_definition_id":"` + credDefID + `"}`))
	})

	res, err := credentialdefinition.PublishCredentialDefinition(context.Background(), c, models.CredentialDefinitionSendRequest{
		SchemaID:          types.Some("s1"),
		SupportRevocation: types.Some(false),
		Tag:               types.Some("default"),
	}, credentialdefinition.PublishParams{})
	require.NoError(t, err)
	assert.Equal(t, credDefID, res.CredentialDefinitionID.OrElse(""))
}

func TestGetCredentialDefinition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credential-definitions/"+credDefID, r.URL.Path)
		w.Write([]byte(`{"credential_definition":{"id":"` + credDefID + `","ver":"1.0"}}`))
	})

	res, err := credentialdefinition.GetCredentialDefinition(context.Background(), c, credDefID)
	require.NoError(t, err)
	def, ok := res.CredentialDefinition.Get()
	require.True(t, ok)
	assert.Equal(t, credDefID, def["id"])
}

func TestGetCreatedCredentialDefinitions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credential-definitions/created", r.URL.Path)
		assert.Equal(t, "did:sov:1", r.URL.Query().Get("issuer_did"))
		assert.Len(t, r.URL.Query(), 1)
		w.Write([]byte(`{"credential_definition_ids":["` + credDefID + `"]}`))
	})

	res, err := credentialdefinition.GetCreatedCredentialDefinitions(context.Background(), c, credentialdefinition.CreatedParams{
		IssuerDID: types.Some("did:sov:1"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{credDefID}, res.CredentialDefinitionIDs.OrElse(nil))
}
