package client_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
)

var connRecordDecoders = client.Decoders[models.ConnRecord]{
	http.StatusOK: models.ConnRecordFromMap,
}

func TestDecode_MappedStatus(t *testing.T) {
	header := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`{"connection_id":"c1","state":"active","their_role":"inviter"}`)

	resp, err := client.Decode(http.StatusOK, header, body, connRecordDecoders)
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, body, resp.Content)
	assert.Equal(t, header, resp.Headers)
	assert.Equal(t, "c1", resp.Parsed.ConnectionID)
	role, ok := resp.Parsed.TheirRole.Get()
	assert.True(t, ok)
	assert.Equal(t, models.ConnRecordTheirRoleInviter, role)
}

func TestDecode_UnmappedStatus(t *testing.T) {
	body := []byte(`{"message":"Record not found"}`)

	resp, err := client.Decode(http.StatusNotFound, nil, body, connRecordDecoders)
	require.NoError(t, err)
	assert.Nil(t, resp.Parsed)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, body, resp.Content)
	assert.Equal(t, "Record not found", resp.ErrorDetail())
}

func TestDecode_UnmappedStatusIgnoresBadBody(t *testing.T) {
	resp, err := client.Decode(http.StatusInternalServerError, nil, []byte("<html>oops"), connRecordDecoders)
	require.NoError(t, err)
	assert.Nil(t, resp.Parsed)
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "malformed json", body: `{"connection_id":`},
		{name: "array body", body: `[1,2]`},
		{name: "null body", body: `null`, wantErr: models.ErrNotObject},
		{name: "missing required field", body: `{"state":"active"}`, wantErr: models.ErrMissingField},
		{name: "wrong field type", body: `{"connection_id":1,"state":"active"}`, wantErr: models.ErrFieldType},
		{name: "unknown enum literal", body: `{"connection_id":"c1","state":"active","their_role":"boss"}`, wantErr: models.ErrInvalidEnumValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Decode(http.StatusOK, nil, []byte(tt.body), connRecordDecoders)
			require.Error(t, err)
			assert.Nil(t, resp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecode_RawObject(t *testing.T) {
	dec := client.Decoders[map[string]any]{http.StatusOK: client.RawObject}

	resp, err := client.Decode(http.StatusOK, nil, []byte(`{"a":{"b":true}}`), dec)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": true}}, *resp.Parsed)
}
