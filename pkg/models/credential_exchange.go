package models

import "github.com/i2y/acapyclient/pkg/types"

// CredentialPreviewType is the @type of an issue-credential/1.0 preview.
const CredentialPreviewType = "https://didcomm.org/issue-credential/1.0/credential-preview"

// CredAttrSpec is one attribute of a credential preview.
type CredAttrSpec struct {
	Name                 string
	Value                string
	MimeType             types.Opt[string]
	AdditionalProperties map[string]any
}

func (a CredAttrSpec) ToMap() map[string]any {
	w := NewWriter(a.AdditionalProperties)
	w.Set("name", a.Name)
	w.Set("value", a.Value)
	Put(w, "mime-type", a.MimeType)
	return w.Map()
}

func CredAttrSpecFromMap(src map[string]any) (CredAttrSpec, error) {
	r := NewReader("CredAttrSpec", src)
	a := CredAttrSpec{
		Name:     r.String("name"),
		Value:    r.String("value"),
		MimeType: r.OptString("mime-type"),
	}
	a.AdditionalProperties = r.Rest()
	return a, r.Err()
}

func (a CredAttrSpec) MarshalJSON() ([]byte, error) { return marshalModel(a) }

func (a *CredAttrSpec) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, a, CredAttrSpecFromMap)
}

// CredentialPreview lists the attribute values a credential will carry.
type CredentialPreview struct {
	Type                 types.Opt[string]
	Attributes           []CredAttrSpec
	AdditionalProperties map[string]any
}

// NewCredentialPreview returns a preview of attrs with the issue-credential/1.0
// @type set.
func NewCredentialPreview(attrs ...CredAttrSpec) CredentialPreview {
	return CredentialPreview{Type: types.Some(CredentialPreviewType), Attributes: attrs}
}

func (p CredentialPreview) ToMap() map[string]any {
	w := NewWriter(p.AdditionalProperties)
	Put(w, "@type", p.Type)
	w.Set("attributes", Maps(p.Attributes))
	return w.Map()
}

func (p CredentialPreview) Validate() error {
	if p.Attributes == nil {
		return &MissingFieldError{Model: "CredentialPreview", Key: "attributes"}
	}
	for _, a := range p.Attributes {
		if a.Name == "" {
			return &MissingFieldError{Model: "CredAttrSpec", Key: "name"}
		}
	}
	return nil
}

func CredentialPreviewFromMap(src map[string]any) (CredentialPreview, error) {
	r := NewReader("CredentialPreview", src)
	p := CredentialPreview{
		Type:       r.OptString("@type"),
		Attributes: List(r, "attributes", CredAttrSpecFromMap),
	}
	p.AdditionalProperties = r.Rest()
	return p, r.Err()
}

func (p CredentialPreview) MarshalJSON() ([]byte, error) { return marshalModel(p) }

func (p *CredentialPreview) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, p, CredentialPreviewFromMap)
}

// CredentialOfferMessage is the offer-credential message kept on an exchange.
type CredentialOfferMessage struct {
	ID                   types.Opt[string]
	Type                 types.Opt[string]
	Comment              types.Opt[string]
	CredentialPreview    types.Opt[CredentialPreview]
	OffersAttach         types.Opt[[]AttachDecorator]
	AdditionalProperties map[string]any
}

func (m CredentialOfferMessage) ToMap() map[string]any {
	w := NewWriter(m.AdditionalProperties)
	Put(w, "@id", m.ID)
	Put(w, "@type", m.Type)
	Put(w, "comment", m.Comment)
	PutModel(w, "credential_preview", m.CredentialPreview)
	PutModels(w, "offers~attach", m.OffersAttach)
	return w.Map()
}

func CredentialOfferMessageFromMap(src map[string]any) (CredentialOfferMessage, error) {
	r := NewReader("CredentialOfferMessage", src)
	m := CredentialOfferMessage{
		ID:                r.OptString("@id"),
		Type:              r.OptString("@type"),
		Comment:           r.OptString("comment"),
		CredentialPreview: OptNested(r, "credential_preview", CredentialPreviewFromMap),
		OffersAttach:      OptList(r, "offers~attach", AttachDecoratorFromMap),
	}
	m.AdditionalProperties = r.Rest()
	return m, r.Err()
}

func (m CredentialOfferMessage) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *CredentialOfferMessage) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, m, CredentialOfferMessageFromMap)
}

// CredentialProposalMessage is the propose-credential message kept on an
// exchange.
type CredentialProposalMessage struct {
	ID                   types.Opt[string]
	Type                 types.Opt[string]
	Comment              types.Opt[string]
	CredDefID            types.Opt[string]
	CredentialProposal   types.Opt[CredentialPreview]
	IssuerDID            types.Opt[string]
	SchemaID             types.Opt[string]
	SchemaIssuerDID      types.Opt[string]
	SchemaName           types.Opt[string]
	SchemaVersion        types.Opt[string]
	AdditionalProperties map[string]any
}

func (m CredentialProposalMessage) ToMap() map[string]any {
	w := NewWriter(m.AdditionalProperties)
	Put(w, "@id", m.ID)
	Put(w, "@type", m.Type)
	Put(w, "comment", m.Comment)
	Put(w, "cred_def_id", m.CredDefID)
	PutModel(w, "credential_proposal", m.CredentialProposal)
	Put(w, "issuer_did", m.IssuerDID)
	Put(w, "schema_id", m.SchemaID)
	Put(w, "schema_issuer_did", m.SchemaIssuerDID)
	Put(w, "schema_name", m.SchemaName)
	Put(w, "schema_version", m.SchemaVersion)
	return w.Map()
}

func CredentialProposalMessageFromMap(src map[string]any) (CredentialProposalMessage, error) {
	r := NewReader("CredentialProposalMessage", src)
	m := CredentialProposalMessage{
		ID:                 r.OptString("@id"),
		Type:               r.OptString("@type"),
		Comment:            r.OptString("comment"),
		CredDefID:          r.OptString("cred_def_id"),
		CredentialProposal: OptNested(r, "credential_proposal", CredentialPreviewFromMap),
		IssuerDID:          r.OptString("issuer_did"),
		SchemaID:           r.OptString("schema_id"),
		SchemaIssuerDID:    r.OptString("schema_issuer_did"),
		SchemaName:         r.OptString("schema_name"),
		SchemaVersion:      r.OptString("schema_version"),
	}
	m.AdditionalProperties = r.Rest()
	return m, r.Err()
}

func (m CredentialProposalMessage) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *CredentialProposalMessage) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, m, CredentialProposalMessageFromMap)
}

// V10CredentialExchange is the record an agent keeps for one
// issue-credential/1.0 exchange. The Indy payloads (offer, request, request
// metadata, credential and raw credential) are kept as plain JSON objects.
type V10CredentialExchange struct {
	AutoIssue                 types.Opt[bool]
	AutoOffer                 types.Opt[bool]
	AutoRemove                types.Opt[bool]
	ConnectionID              types.Opt[string]
	CreatedAt                 types.Opt[string]
	Credential                types.Opt[map[string]any]
	CredentialDefinitionID    types.Opt[string]
	CredentialExchangeID      types.Opt[string]
	CredentialID              types.Opt[string]
	CredentialOffer           types.Opt[map[string]any]
	CredentialOfferDict       types.Opt[CredentialOfferMessage]
	CredentialProposalDict    types.Opt[CredentialProposalMessage]
	CredentialRequest         types.Opt[map[string]any]
	CredentialRequestMetadata types.Opt[map[string]any]
	ErrorMsg                  types.Opt[string]
	Initiator                 types.Opt[V10CredentialExchangeInitiator]
	ParentThreadID            types.Opt[string]
	RawCredential             types.Opt[map[string]any]
	RevocRegID                types.Opt[string]
	RevocationID              types.Opt[string]
	Role                      types.Opt[V10CredentialExchangeRole]
	SchemaID                  types.Opt[string]
	State                     types.Opt[string]
	ThreadID                  types.Opt[string]
	Trace                     types.Opt[bool]
	UpdatedAt                 types.Opt[string]
	AdditionalProperties      map[string]any
}

func (e V10CredentialExchange) ToMap() map[string]any {
	w := NewWriter(e.AdditionalProperties)
	Put(w, "auto_issue", e.AutoIssue)
	Put(w, "auto_offer", e.AutoOffer)
	Put(w, "auto_remove", e.AutoRemove)
	Put(w, "connection_id", e.ConnectionID)
	Put(w, "created_at", e.CreatedAt)
	Put(w, "credential", e.Credential)
	Put(w, "credential_definition_id", e.CredentialDefinitionID)
	Put(w, "credential_exchange_id", e.CredentialExchangeID)
	Put(w, "credential_id", e.CredentialID)
	Put(w, "credential_offer", e.CredentialOffer)
	PutModel(w, "credential_offer_dict", e.CredentialOfferDict)
	PutModel(w, "credential_proposal_dict", e.CredentialProposalDict)
	Put(w, "credential_request", e.CredentialRequest)
	Put(w, "credential_request_metadata", e.CredentialRequestMetadata)
	Put(w, "error_msg", e.ErrorMsg)
	PutEnum(w, "initiator", e.Initiator)
	Put(w, "parent_thread_id", e.ParentThreadID)
	Put(w, "raw_credential", e.RawCredential)
	Put(w, "revoc_reg_id", e.RevocRegID)
	Put(w, "revocation_id", e.RevocationID)
	PutEnum(w, "role", e.Role)
	Put(w, "schema_id", e.SchemaID)
	Put(w, "state", e.State)
	Put(w, "thread_id", e.ThreadID)
	Put(w, "trace", e.Trace)
	Put(w, "updated_at", e.UpdatedAt)
	return w.Map()
}

func V10CredentialExchangeFromMap(src map[string]any) (V10CredentialExchange, error) {
	r := NewReader("V10CredentialExchange", src)
	e := V10CredentialExchange{
		AutoIssue:                 r.OptBool("auto_issue"),
		AutoOffer:                 r.OptBool("auto_offer"),
		AutoRemove:                r.OptBool("auto_remove"),
		ConnectionID:              r.OptString("connection_id"),
		CreatedAt:                 r.OptString("created_at"),
		Credential:                r.OptObject("credential"),
		CredentialDefinitionID:    r.OptString("credential_definition_id"),
		CredentialExchangeID:      r.OptString("credential_exchange_id"),
		CredentialID:              r.OptString("credential_id"),
		CredentialOffer:           r.OptObject("credential_offer"),
		CredentialOfferDict:       OptNested(r, "credential_offer_dict", CredentialOfferMessageFromMap),
		CredentialProposalDict:    OptNested(r, "credential_proposal_dict", CredentialProposalMessageFromMap),
		CredentialRequest:         r.OptObject("credential_request"),
		CredentialRequestMetadata: r.OptObject("credential_request_metadata"),
		ErrorMsg:                  r.OptString("error_msg"),
		Initiator:                 OptEnum(r, "initiator", ParseV10CredentialExchangeInitiator),
		ParentThreadID:            r.OptString("parent_thread_id"),
		RawCredential:             r.OptObject("raw_credential"),
		RevocRegID:                r.OptString("revoc_reg_id"),
		RevocationID:              r.OptString("revocation_id"),
		Role:                      OptEnum(r, "role", ParseV10CredentialExchangeRole),
		SchemaID:                  r.OptString("schema_id"),
		State:                     r.OptString("state"),
		ThreadID:                  r.OptString("thread_id"),
		Trace:                     r.OptBool("trace"),
		UpdatedAt:                 r.OptString("updated_at"),
	}
	e.AdditionalProperties = r.Rest()
	return e, r.Err()
}

func (e V10CredentialExchange) MarshalJSON() ([]byte, error) { return marshalModel(e) }

func (e *V10CredentialExchange) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, e, V10CredentialExchangeFromMap)
}

// V10CredentialExchangeListResult is a page of credential exchange records.
type V10CredentialExchangeListResult struct {
	Results              types.Opt[[]V10CredentialExchange]
	AdditionalProperties map[string]any
}

func (l V10CredentialExchangeListResult) ToMap() map[string]any {
	w := NewWriter(l.AdditionalProperties)
	PutModels(w, "results", l.Results)
	return w.Map()
}

func V10CredentialExchangeListResultFromMap(src map[string]any) (V10CredentialExchangeListResult, error) {
	r := NewReader("V10CredentialExchangeListResult", src)
	l := V10CredentialExchangeListResult{Results: OptList(r, "results", V10CredentialExchangeFromMap)}
	l.AdditionalProperties = r.Rest()
	return l, r.Err()
}

func (l V10CredentialExchangeListResult) MarshalJSON() ([]byte, error) { return marshalModel(l) }

func (l *V10CredentialExchangeListResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, l, V10CredentialExchangeListResultFromMap)
}

// V10CredentialOfferRequest offers a credential to a connected holder.
type V10CredentialOfferRequest struct {
	ConnectionID         string
	CredDefID            string
	CredentialPreview    CredentialPreview
	AutoIssue            types.Opt[bool]
	AutoRemove           types.Opt[bool]
	Comment              types.Opt[string]
	Trace                types.Opt[bool]
	AdditionalProperties map[string]any
}

func (o V10CredentialOfferRequest) ToMap() map[string]any {
	w := NewWriter(o.AdditionalProperties)
	w.Set("connection_id", o.ConnectionID)
	w.Set("cred_def_id", o.CredDefID)
	w.Set("credential_preview", o.CredentialPreview.ToMap())
	Put(w, "auto_issue", o.AutoIssue)
	Put(w, "auto_remove", o.AutoRemove)
	Put(w, "comment", o.Comment)
	Put(w, "trace", o.Trace)
	return w.Map()
}

func (o V10CredentialOfferRequest) Validate() error {
	switch {
	case o.ConnectionID == "":
		return &MissingFieldError{Model: "V10CredentialOfferRequest", Key: "connection_id"}
	case o.CredDefID == "":
		return &MissingFieldError{Model: "V10CredentialOfferRequest", Key: "cred_def_id"}
	}
	return o.CredentialPreview.Validate()
}

func V10CredentialOfferRequestFromMap(src map[string]any) (V10CredentialOfferRequest, error) {
	r := NewReader("V10CredentialOfferRequest", src)
	o := V10CredentialOfferRequest{
		ConnectionID:      r.String("connection_id"),
		CredDefID:         r.String("cred_def_id"),
		CredentialPreview: Nested(r, "credential_preview", CredentialPreviewFromMap),
		AutoIssue:         r.OptBool("auto_issue"),
		AutoRemove:        r.OptBool("auto_remove"),
		Comment:           r.OptString("comment"),
		Trace:             r.OptBool("trace"),
	}
	o.AdditionalProperties = r.Rest()
	return o, r.Err()
}

func (o V10CredentialOfferRequest) MarshalJSON() ([]byte, error) { return marshalModel(o) }

func (o *V10CredentialOfferRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, o, V10CredentialOfferRequestFromMap)
}

// V10CredentialIssueRequest is the optional body of an issue call.
type V10CredentialIssueRequest struct {
	Comment              types.Opt[string]
	AdditionalProperties map[string]any
}

func (i V10CredentialIssueRequest) ToMap() map[string]any {
	w := NewWriter(i.AdditionalProperties)
	Put(w, "comment", i.Comment)
	return w.Map()
}

func V10CredentialIssueRequestFromMap(src map[string]any) (V10CredentialIssueRequest, error) {
	r := NewReader("V10CredentialIssueRequest", src)
	i := V10CredentialIssueRequest{Comment: r.OptString("comment")}
	i.AdditionalProperties = r.Rest()
	return i, r.Err()
}

func (i V10CredentialIssueRequest) MarshalJSON() ([]byte, error) { return marshalModel(i) }

func (i *V10CredentialIssueRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, i, V10CredentialIssueRequestFromMap)
}

// V10CredentialStoreRequest names the wallet id a received credential is
// stored under.
type V10CredentialStoreRequest struct {
	CredentialID         types.Opt[string]
	AdditionalProperties map[string]any
}

func (s V10CredentialStoreRequest) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "credential_id", s.CredentialID)
	return w.Map()
}

func V10CredentialStoreRequestFromMap(src map[string]any) (V10CredentialStoreRequest, error) {
	r := NewReader("V10CredentialStoreRequest", src)
	s := V10CredentialStoreRequest{CredentialID: r.OptString("credential_id")}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s V10CredentialStoreRequest) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *V10CredentialStoreRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, V10CredentialStoreRequestFromMap)
}
