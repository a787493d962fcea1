package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

// roundTrip decodes raw, re-encodes it and checks that a second pass is stable.
func roundTrip[M models.Model](t *testing.T, raw string, decode models.DecodeFunc[M]) string {
	t.Helper()
	src, err := models.DecodeObject([]byte(raw))
	require.NoError(t, err)

	first, err := decode(src)
	require.NoError(t, err)
	encoded, err := json.Marshal(first.ToMap())
	require.NoError(t, err)

	again, err := models.DecodeObject(encoded)
	require.NoError(t, err)
	second, err := decode(again)
	require.NoError(t, err)
	reencoded, err := json.Marshal(second.ToMap())
	require.NoError(t, err)

	assert.JSONEq(t, string(encoded), string(reencoded))
	return string(encoded)
}

func TestConnRecord_ExampleScenario(t *testing.T) {
	assert := assert.New(t)

	src := map[string]any{"connection_id": "c1", "state": "active", "alias": "Bob"}
	rec, err := models.ConnRecordFromMap(src)
	require.NoError(t, err)

	assert.Equal("c1", rec.ConnectionID)
	assert.Equal("active", rec.State)
	assert.Equal(types.Some("Bob"), rec.Alias)
	assert.False(rec.TheirDID.IsSet())
	assert.Nil(rec.AdditionalProperties)

	assert.Equal(src, rec.ToMap())
}

func TestModels_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		run  func(t *testing.T, raw string) string
	}{
		{
			name: "ConnRecord with enums and extras",
			raw: `{"connection_id": "c1", "state": "active", "accept": "auto", "their_role": "inviter",
				"routing_state": "none", "invitation_mode": "once", "connection_protocol": "connections/1.0",
				"foo": 42, "nested_extra": {"a": [1, 2]}}`,
			run: func(t *testing.T, raw string) string { return roundTrip(t, raw, models.ConnRecordFromMap) },
		},
		{
			name: "ConnectionList",
			raw:  `{"results": [{"connection_id": "a", "state": "init"}, {"connection_id": "b", "state": "active", "x": true}]}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.ConnectionListFromMap) },
		},
		{
			name: "InvitationResult with DIDComm keys",
			raw: `{"connection_id": "c1", "invitation_url": "http://a/?c_i=x",
				"invitation": {"@id": "i1", "@type": "https://didcomm.org/connections/1.0/invitation",
				"label": "Alice", "recipientKeys": ["k1"], "serviceEndpoint": "http://a", "imageUrl": null}}`,
			run: func(t *testing.T, raw string) string { return roundTrip(t, raw, models.InvitationResultFromMap) },
		},
		{
			name: "ConnectionStaticResult",
			raw: `{"my_did": "d1", "my_endpoint": "http://a", "my_verkey": "v1", "their_did": "d2", "their_verkey": "v2",
				"record": {"connection_id": "c1", "state": "active"}}`,
			run: func(t *testing.T, raw string) string { return roundTrip(t, raw, models.ConnectionStaticResultFromMap) },
		},
		{
			name: "Menu with hyphenated form key",
			raw: `{"@id": "m1", "@type": "https://didcomm.org/action-menu/1.0/menu", "title": "Main",
				"options": [{"name": "opt", "title": "Option", "disabled": false,
				"form": {"submit-label": "Go", "params": [{"name": "p", "title": "P", "required": true}]}}]}`,
			run: func(t *testing.T, raw string) string { return roundTrip(t, raw, models.MenuFromMap) },
		},
		{
			name: "AttachDecorator with mime-type",
			raw:  `{"@id": "a1", "mime-type": "application/json", "byte_count": 12, "data": {"json": {"k": [1, "v"]}}}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.AttachDecoratorFromMap) },
		},
		{
			name: "SchemaSendResult",
			raw:  `{"schema_id": "s1", "schema": {"attrNames": ["name", "age"], "seqNo": 10, "ver": "1.0"}}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.SchemaSendResultFromMap) },
		},
		{
			name: "PerformRequest",
			raw:  `{"name": "opt", "params": {"p": "v"}}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.PerformRequestFromMap) },
		},
		{
			name: "AdminStatus",
			raw:  `{"label": "Alice", "version": "0.7.5", "conductor": {"in_sessions": 0}, "timing": {}}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.AdminStatusFromMap) },
		},
		{
			name: "V10CredentialExchange with nested messages",
			raw: `{"credential_exchange_id": "ce1", "connection_id": "c1", "role": "issuer", "initiator": "self",
				"state": "offer_sent", "auto_issue": true, "thread_id": "t1",
				"credential_offer": {"schema_id": "s1", "cred_def_id": "cd1", "nonce": "123"},
				"credential_offer_dict": {"@id": "o1", "@type": "https://didcomm.org/issue-credential/1.0/offer-credential",
					"credential_preview": {"@type": "https://didcomm.org/issue-credential/1.0/credential-preview",
						"attributes": [{"name": "name", "value": "Alice"}, {"name": "photo", "value": "aGk=", "mime-type": "image/png"}]},
					"offers~attach": [{"@id": "libindy-cred-offer-0", "mime-type": "application/json", "data": {"base64": "e30="}}]},
				"credential_proposal_dict": {"comment": "please", "cred_def_id": "cd1",
					"credential_proposal": {"attributes": []}},
				"raw_credential": {"values": {"name": {"raw": "Alice", "encoded": "1"}}},
				"x-extra": [1]}`,
			run: func(t *testing.T, raw string) string { return roundTrip(t, raw, models.V10CredentialExchangeFromMap) },
		},
		{
			name: "V10CredentialExchangeListResult",
			raw:  `{"results": [{"credential_exchange_id": "ce1", "role": "holder"}, {"state": "credential_acked"}]}`,
			run: func(t *testing.T, raw string) string {
				return roundTrip(t, raw, models.V10CredentialExchangeListResultFromMap)
			},
		},
		{
			name: "V10CredentialOfferRequest",
			raw: `{"connection_id": "c1", "cred_def_id": "cd1", "auto_remove": false, "comment": null,
				"credential_preview": {"attributes": [{"name": "age", "value": "30"}]}}`,
			run: func(t *testing.T, raw string) string {
				return roundTrip(t, raw, models.V10CredentialOfferRequestFromMap)
			},
		},
		{
			name: "ModuleResponse",
			raw:  `{}`,
			run:  func(t *testing.T, raw string) string { return roundTrip(t, raw, models.ModuleResponseFromMap) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(t, tt.raw)
			assert.JSONEq(t, tt.raw, got)
		})
	}
}

func TestModels_ExtrasPreserved(t *testing.T) {
	var msg models.SendMessage
	require.NoError(t, json.Unmarshal([]byte(`{"content": "hi", "foo": 42}`), &msg))
	assert.Equal(t, "hi", msg.Content.OrElse(""))
	assert.Contains(t, msg.AdditionalProperties, "foo")

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content": "hi", "foo": 42}`, string(out))
}

func TestModels_InvalidEnum(t *testing.T) {
	_, err := models.ConnRecordFromMap(map[string]any{"connection_id": "c1", "state": "active", "their_role": "stranger"})
	require.Error(t, err)

	var enumErr *models.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ConnRecordTheirRole", enumErr.Enum)
	assert.Equal(t, "stranger", enumErr.Value)
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)
}

func TestModels_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		key  string
	}{
		{
			name: "ConnRecord state",
			run: func() error {
				_, err := models.ConnRecordFromMap(map[string]any{"connection_id": "c1"})
				return err
			},
			key: "state",
		},
		{
			name: "nested record",
			run: func() error {
				_, err := models.InvitationResultFromMap(map[string]any{"connection_id": "c1", "invitation_url": "u"})
				return err
			},
			key: "invitation",
		},
		{
			name: "offer request preview",
			run: func() error {
				_, err := models.V10CredentialOfferRequestFromMap(map[string]any{"connection_id": "c1", "cred_def_id": "cd1"})
				return err
			},
			key: "credential_preview",
		},
		{
			name: "inside list",
			run: func() error {
				_, err := models.ConnectionListFromMap(map[string]any{"results": []any{map[string]any{"state": "x"}}})
				return err
			},
			key: "connection_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var missing *models.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.key, missing.Key)
			assert.ErrorIs(t, err, models.ErrMissingField)
		})
	}
}

func TestParseEnums(t *testing.T) {
	s, err := models.ParseConnectionState("active")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStateActive, s)
	assert.Equal(t, "active", s.String())

	_, err = models.ParseConnectionProtocol("didexchange/2.0")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)
}

func TestCredentialExchange_Enums(t *testing.T) {
	ex, err := models.V10CredentialExchangeFromMap(map[string]any{"role": "holder", "initiator": "external"})
	require.NoError(t, err)
	assert.Equal(t, types.Some(models.V10CredentialExchangeRoleHolder), ex.Role)
	assert.Equal(t, types.Some(models.V10CredentialExchangeInitiatorExternal), ex.Initiator)

	_, err = models.V10CredentialExchangeFromMap(map[string]any{"role": "verifier"})
	var enumErr *models.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "V10CredentialExchangeRole", enumErr.Enum)

	state, err := models.ParseV10CredentialExchangeState("credential_acked")
	require.NoError(t, err)
	assert.Equal(t, models.V10CredentialExchangeStateCredentialAcked, state)
	_, err = models.ParseV10CredentialExchangeInitiator("other")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)
}

func TestRequestModels_Validate(t *testing.T) {
	preview := models.NewCredentialPreview(models.CredAttrSpec{Name: "age", Value: "30"})

	tests := []struct {
		name    string
		body    models.Validator
		wantKey string
	}{
		{
			name: "complete schema",
			body: models.SchemaSendRequest{Attributes: []string{"a"}, SchemaName: "n", SchemaVersion: "1.0"},
		},
		{
			name:    "schema without attributes",
			body:    models.SchemaSendRequest{SchemaName: "n", SchemaVersion: "1.0"},
			wantKey: "attributes",
		},
		{
			name: "complete offer",
			body: models.V10CredentialOfferRequest{ConnectionID: "c1", CredDefID: "cd1", CredentialPreview: preview},
		},
		{
			name:    "offer without connection",
			body:    models.V10CredentialOfferRequest{CredDefID: "cd1", CredentialPreview: preview},
			wantKey: "connection_id",
		},
		{
			name:    "offer without preview attributes",
			body:    models.V10CredentialOfferRequest{ConnectionID: "c1", CredDefID: "cd1"},
			wantKey: "attributes",
		},
		{
			name: "offer with unnamed attribute",
			body: models.V10CredentialOfferRequest{ConnectionID: "c1", CredDefID: "cd1",
				CredentialPreview: models.NewCredentialPreview(models.CredAttrSpec{Value: "30"})},
			wantKey: "name",
		},
		{
			name:    "metadata without map",
			body:    models.ConnectionMetadataSetRequest{},
			wantKey: "metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			var missing *models.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantKey, missing.Key)
		})
	}
}

func TestSchemaSendRequest_NilAttributesEncodeAsArray(t *testing.T) {
	out, err := json.Marshal(models.SchemaSendRequest{SchemaName: "n", SchemaVersion: "1.0"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"attributes": [], "schema_name": "n", "schema_version": "1.0"}`, string(out))
}

func TestNewConnectionInvitation(t *testing.T) {
	inv := models.NewConnectionInvitation("Alice", []string{"k1"}, "http://alice:8020")
	m := inv.ToMap()

	assert.NotEmpty(t, m["@id"])
	assert.Equal(t, models.InvitationMessageType, m["@type"])
	assert.Equal(t, []string{"k1"}, m["recipientKeys"])
	assert.NotContains(t, m, "routingKeys")
}
