package models

import "github.com/i2y/acapyclient/pkg/types"

// Schema is a credential schema as stored on the ledger.
type Schema struct {
	AttrNames            types.Opt[[]string]
	ID                   types.Opt[string]
	Name                 types.Opt[string]
	SeqNo                types.Opt[int]
	Ver                  types.Opt[string]
	Version              types.Opt[string]
	AdditionalProperties map[string]any
}

func (s Schema) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "attrNames", s.AttrNames)
	Put(w, "id", s.ID)
	Put(w, "name", s.Name)
	Put(w, "seqNo", s.SeqNo)
	Put(w, "ver", s.Ver)
	Put(w, "version", s.Version)
	return w.Map()
}

func SchemaFromMap(src map[string]any) (Schema, error) {
	r := NewReader("Schema", src)
	s := Schema{
		AttrNames: r.OptStrings("attrNames"),
		ID:        r.OptString("id"),
		Name:      r.OptString("name"),
		SeqNo:     r.OptInt("seqNo"),
		Ver:       r.OptString("ver"),
		Version:   r.OptString("version"),
	}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s Schema) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *Schema) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SchemaFromMap)
}

// SchemaSendRequest publishes a new schema.
type SchemaSendRequest struct {
	Attributes           []string
	SchemaName           string
	SchemaVersion        string
	AdditionalProperties map[string]any
}

func (s SchemaSendRequest) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	SetList(w, "attributes", s.Attributes)
	w.Set("schema_name", s.SchemaName)
	w.Set("schema_version", s.SchemaVersion)
	return w.Map()
}

// Validate reports the first required field left unset.
func (s SchemaSendRequest) Validate() error {
	switch {
	case s.Attributes == nil:
		return &MissingFieldError{Model: "SchemaSendRequest", Key: "attributes"}
	case s.SchemaName == "":
		return &MissingFieldError{Model: "SchemaSendRequest", Key: "schema_name"}
	case s.SchemaVersion == "":
		return &MissingFieldError{Model: "SchemaSendRequest", Key: "schema_version"}
	}
	return nil
}

func SchemaSendRequestFromMap(src map[string]any) (SchemaSendRequest, error) {
	r := NewReader("SchemaSendRequest", src)
	s := SchemaSendRequest{
		Attributes:    r.Strings("attributes"),
		SchemaName:    r.String("schema_name"),
		SchemaVersion: r.String("schema_version"),
	}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s SchemaSendRequest) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *SchemaSendRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SchemaSendRequestFromMap)
}

// SchemaSendResult is returned after publishing a schema.
type SchemaSendResult struct {
	SchemaID             string
	Schema               types.Opt[Schema]
	AdditionalProperties map[string]any
}

func (s SchemaSendResult) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	w.Set("schema_id", s.SchemaID)
	PutModel(w, "schema", s.Schema)
	return w.Map()
}

func SchemaSendResultFromMap(src map[string]any) (SchemaSendResult, error) {
	r := NewReader("SchemaSendResult", src)
	s := SchemaSendResult{
		SchemaID: r.String("schema_id"),
		Schema:   OptNested(r, "schema", SchemaFromMap),
	}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s SchemaSendResult) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *SchemaSendResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SchemaSendResultFromMap)
}

// SchemaGetResult wraps a schema fetched by id.
type SchemaGetResult struct {
	Schema               types.Opt[Schema]
	AdditionalProperties map[string]any
}

func (s SchemaGetResult) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	PutModel(w, "schema", s.Schema)
	return w.Map()
}

func SchemaGetResultFromMap(src map[string]any) (SchemaGetResult, error) {
	r := NewReader("SchemaGetResult", src)
	s := SchemaGetResult{Schema: OptNested(r, "schema", SchemaFromMap)}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s SchemaGetResult) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *SchemaGetResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SchemaGetResultFromMap)
}

// SchemasCreatedResult lists the ids of schemas this agent created.
type SchemasCreatedResult struct {
	SchemaIDs            types.Opt[[]string]
	AdditionalProperties map[string]any
}

func (s SchemasCreatedResult) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "schema_ids", s.SchemaIDs)
	return w.Map()
}

func SchemasCreatedResultFromMap(src map[string]any) (SchemasCreatedResult, error) {
	r := NewReader("SchemasCreatedResult", src)
	s := SchemasCreatedResult{SchemaIDs: r.OptStrings("schema_ids")}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s SchemasCreatedResult) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *SchemasCreatedResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SchemasCreatedResultFromMap)
}
