package models

import "github.com/i2y/acapyclient/pkg/types"

// CredentialDefinitionSendRequest publishes a credential definition.
type CredentialDefinitionSendRequest struct {
	RevocationRegistrySize types.Opt[int]
	SchemaID               types.Opt[string]
	SupportRevocation      types.Opt[bool]
	Tag                    types.Opt[string]
	AdditionalProperties   map[string]any
}

func (c CredentialDefinitionSendRequest) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "revocation_registry_size", c.RevocationRegistrySize)
	Put(w, "schema_id", c.SchemaID)
	Put(w, "support_revocation", c.SupportRevocation)
	Put(w, "tag", c.Tag)
	return w.Map()
}

func CredentialDefinitionSendRequestFromMap(src map[string]any) (CredentialDefinitionSendRequest, error) {
	r := NewReader("CredentialDefinitionSendRequest", src)
	c := CredentialDefinitionSendRequest{
		RevocationRegistrySize: r.OptInt("revocation_registry_size"),
		SchemaID:               r.OptString("schema_id"),
		SupportRevocation:      r.OptBool("support_revocation"),
		Tag:                    r.OptString("tag"),
	}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c CredentialDefinitionSendRequest) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *CredentialDefinitionSendRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, CredentialDefinitionSendRequestFromMap)
}

// CredentialDefinitionSendResult carries the id of the published definition.
type CredentialDefinitionSendResult struct {
	CredentialDefinitionID types.Opt[string]
	AdditionalProperties   map[string]any
}

func (c CredentialDefinitionSendResult) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "credential_definition_id", c.CredentialDefinitionID)
	return w.Map()
}

func CredentialDefinitionSendResultFromMap(src map[string]any) (CredentialDefinitionSendResult, error) {
	r := NewReader("CredentialDefinitionSendResult", src)
	c := CredentialDefinitionSendResult{CredentialDefinitionID: r.OptString("credential_definition_id")}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c CredentialDefinitionSendResult) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *CredentialDefinitionSendResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, CredentialDefinitionSendResultFromMap)
}

// CredentialDefinitionGetResult wraps a ledger credential definition. The
// definition body is ledger specific and kept free-form.
type CredentialDefinitionGetResult struct {
	CredentialDefinition types.Opt[map[string]any]
	AdditionalProperties map[string]any
}

func (c CredentialDefinitionGetResult) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "credential_definition", c.CredentialDefinition)
	return w.Map()
}

func CredentialDefinitionGetResultFromMap(src map[string]any) (CredentialDefinitionGetResult, error) {
	r := NewReader("CredentialDefinitionGetResult", src)
	c := CredentialDefinitionGetResult{CredentialDefinition: r.OptObject("credential_definition")}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c CredentialDefinitionGetResult) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *CredentialDefinitionGetResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, CredentialDefinitionGetResultFromMap)
}

// CredentialDefinitionsCreatedResult lists the ids of definitions this agent created.
type CredentialDefinitionsCreatedResult struct {
	CredentialDefinitionIDs types.Opt[[]string]
	AdditionalProperties    map[string]any
}

func (c CredentialDefinitionsCreatedResult) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "credential_definition_ids", c.CredentialDefinitionIDs)
	return w.Map()
}

func CredentialDefinitionsCreatedResultFromMap(src map[string]any) (CredentialDefinitionsCreatedResult, error) {
	r := NewReader("CredentialDefinitionsCreatedResult", src)
	c := CredentialDefinitionsCreatedResult{CredentialDefinitionIDs: r.OptStrings("credential_definition_ids")}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c CredentialDefinitionsCreatedResult) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *CredentialDefinitionsCreatedResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, CredentialDefinitionsCreatedResultFromMap)
}
