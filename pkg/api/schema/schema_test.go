package schema_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/api/schema"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const schemaID = "WgWxqztrNooG92RXvxSTWv:2:schema_name:1.0"

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithHTTPClient(srv.Client()))
}

func TestPublishSchema(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schemas", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("create_transaction_for_endorser"))
		assert.False(t, r.URL.Query().Has("conn_id"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"attributes":["name","age"],"schema_name":"prefs","schema_version":"1.0"}`, string(body))
		w.Write([]byte(`{"schema_id":"` + schemaID + `","schema":{"id":"` + schemaID + `","seqNo":10,"attrNames":["name","age"]}}`))
	})

	res, err := schema.PublishSchema(context.Background(), c, models.SchemaSendRequest{
		Attributes:    []string{"name", "age"},
		SchemaName:    "prefs",
		SchemaVersion: "1.0",
	}, schema.PublishParams{CreateTransactionForEndorser: types.Some(true)})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, schemaID, res.SchemaID)

	s, ok := res.Schema.Get()
	require.True(t, ok)
	assert.Equal(t, 10, s.SeqNo.OrElse(0))
}

func TestPublishSchema_MissingAttributes(t *testing.T) {
	var hits int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	})

	res, err := schema.PublishSchema(context.Background(), c, models.SchemaSendRequest{
		SchemaName:    "prefs",
		SchemaVersion: "1.0",
	}, schema.PublishParams{})
	require.Error(t, err)
	assert.Nil(t, res)
	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "attributes", missing.Key)
	assert.Zero(t, hits)
}

func TestGetSchema(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schemas/"+schemaID, r.URL.Path)
		w.Write([]byte(`{"schema":{"id":"` + schemaID + `","name":"schema_name","version":"1.0"}}`))
	})

	res, err := schema.GetSchema(context.Background(), c, schemaID)
	require.NoError(t, err)
	s, ok := res.Schema.Get()
	require.True(t, ok)
	assert.Equal(t, "schema_name", s.Name.OrElse(""))
}

func TestGetCreatedSchemas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schemas/created", r.URL.Path)
		assert.Equal(t, "prefs", r.URL.Query().Get("schema_name"))
		w.Write([]byte(`{"schema_ids":["` + schemaID + `"]}`))
	})

	res, err := schema.GetCreatedSchemas(context.Background(), c, schema.CreatedParams{SchemaName: types.Some("prefs")})
	require.NoError(t, err)
	assert.Equal(t, []string{schemaID}, res.SchemaIDs.OrElse(nil))
}
