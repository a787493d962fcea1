package models

import (
	"github.com/google/uuid"

	"github.com/i2y/acapyclient/pkg/types"
)

// ConnRecord is a stored connection between this agent and a peer.
type ConnRecord struct {
	ConnectionID         string
	State                string
	Accept               types.Opt[ConnRecordAccept]
	Alias                types.Opt[string]
	ConnectionProtocol   types.Opt[ConnectionProtocol]
	CreatedAt            types.Opt[string]
	ErrorMsg             types.Opt[string]
	InboundConnectionID  types.Opt[string]
	InvitationKey        types.Opt[string]
	InvitationMode       types.Opt[ConnRecordInvitationMode]
	InvitationMsgID      types.Opt[string]
	MyDID                types.Opt[string]
	RequestID            types.Opt[string]
	RFC23State           types.Opt[string]
	RoutingState         types.Opt[ConnRecordRoutingState]
	TheirDID             types.Opt[string]
	TheirLabel           types.Opt[string]
	TheirPublicDID       types.Opt[string]
	TheirRole            types.Opt[ConnRecordTheirRole]
	UpdatedAt            types.Opt[string]
	AdditionalProperties map[string]any
}

func (c ConnRecord) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	w.Set("connection_id", c.ConnectionID)
	w.Set("state", c.State)
	PutEnum(w, "accept", c.Accept)
	Put(w, "alias", c.Alias)
	PutEnum(w, "connection_protocol", c.ConnectionProtocol)
	Put(w, "created_at", c.CreatedAt)
	Put(w, "error_msg", c.ErrorMsg)
	Put(w, "inbound_connection_id", c.InboundConnectionID)
	Put(w, "invitation_key", c.InvitationKey)
	PutEnum(w, "invitation_mode", c.InvitationMode)
	Put(w, "invitation_msg_id", c.InvitationMsgID)
	Put(w, "my_did", c.MyDID)
	Put(w, "request_id", c.RequestID)
	Put(w, "rfc23_state", c.RFC23State)
	PutEnum(w, "routing_state", c.RoutingState)
	Put(w, "their_did", c.TheirDID)
	Put(w, "their_label", c.TheirLabel)
	Put(w, "their_public_did", c.TheirPublicDID)
	PutEnum(w, "their_role", c.TheirRole)
	Put(w, "updated_at", c.UpdatedAt)
	return w.Map()
}

func ConnRecordFromMap(src map[string]any) (ConnRecord, error) {
	r := NewReader("ConnRecord", src)
	c := ConnRecord{
		ConnectionID:        r.String("connection_id"),
		State:               r.String("state"),
		Accept:              OptEnum(r, "accept", ParseConnRecordAccept),
		Alias:               r.OptString("alias"),
		ConnectionProtocol:  OptEnum(r, "connection_protocol", ParseConnectionProtocol),
		CreatedAt:           r.OptString("created_at"),
		ErrorMsg:            r.OptString("error_msg"),
		InboundConnectionID: r.OptString("inbound_connection_id"),
		InvitationKey:       r.OptString("invitation_key"),
		InvitationMode:      OptEnum(r, "invitation_mode", ParseConnRecordInvitationMode),
		InvitationMsgID:     r.OptString("invitation_msg_id"),
		MyDID:               r.OptString("my_did"),
		RequestID:           r.OptString("request_id"),
		RFC23State:          r.OptString("rfc23_state"),
		RoutingState:        OptEnum(r, "routing_state", ParseConnRecordRoutingState),
		TheirDID:            r.OptString("their_did"),
		TheirLabel:          r.OptString("their_label"),
		TheirPublicDID:      r.OptString("their_public_did"),
		TheirRole:           OptEnum(r, "their_role", ParseConnRecordTheirRole),
		UpdatedAt:           r.OptString("updated_at"),
	}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c ConnRecord) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *ConnRecord) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, ConnRecordFromMap)
}

// ConnectionList is the result of listing connections.
type ConnectionList struct {
	Results              types.Opt[[]ConnRecord]
	AdditionalProperties map[string]any
}

func (l ConnectionList) ToMap() map[string]any {
	w := NewWriter(l.AdditionalProperties)
	PutModels(w, "results", l.Results)
	return w.Map()
}

func ConnectionListFromMap(src map[string]any) (ConnectionList, error) {
	r := NewReader("ConnectionList", src)
	l := ConnectionList{Results: OptList(r, "results", ConnRecordFromMap)}
	l.AdditionalProperties = r.Rest()
	return l, r.Err()
}

func (l ConnectionList) MarshalJSON() ([]byte, error) { return marshalModel(l) }

func (l *ConnectionList) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, l, ConnectionListFromMap)
}

// ConnectionInvitation is a connections/1.0 invitation message.
type ConnectionInvitation struct {
	ID                   types.Opt[string]
	Type                 types.Opt[string]
	DID                  types.Opt[string]
	ImageURL             types.Opt[string]
	Label                types.Opt[string]
	RecipientKeys        types.Opt[[]string]
	RoutingKeys          types.Opt[[]string]
	ServiceEndpoint      types.Opt[string]
	AdditionalProperties map[string]any
}

// InvitationMessageType is the @type of a connections/1.0 invitation.
const InvitationMessageType = "https://didcomm.org/connections/1.0/invitation"

// NewConnectionInvitation returns an invitation with a fresh @id and the
// connections/1.0 @type.
func NewConnectionInvitation(label string, recipientKeys []string, serviceEndpoint string) ConnectionInvitation {
	return ConnectionInvitation{
		ID:              types.Some(uuid.NewString()),
		Type:            types.Some(InvitationMessageType),
		Label:           types.Some(label),
		RecipientKeys:   types.Some(recipientKeys),
		ServiceEndpoint: types.Some(serviceEndpoint),
	}
}

func (i ConnectionInvitation) ToMap() map[string]any {
	w := NewWriter(i.AdditionalProperties)
	Put(w, "@id", i.ID)
	Put(w, "@type", i.Type)
	Put(w, "did", i.DID)
	Put(w, "imageUrl", i.ImageURL)
	Put(w, "label", i.Label)
	Put(w, "recipientKeys", i.RecipientKeys)
	Put(w, "routingKeys", i.RoutingKeys)
	Put(w, "serviceEndpoint", i.ServiceEndpoint)
	return w.Map()
}

func ConnectionInvitationFromMap(src map[string]any) (ConnectionInvitation, error) {
	r := NewReader("ConnectionInvitation", src)
	i := ConnectionInvitation{
		ID:              r.OptString("@id"),
		Type:            r.OptString("@type"),
		DID:             r.OptString("did"),
		ImageURL:        r.OptString("imageUrl"),
		Label:           r.OptString("label"),
		RecipientKeys:   r.OptStrings("recipientKeys"),
		RoutingKeys:     r.OptStrings("routingKeys"),
		ServiceEndpoint: r.OptString("serviceEndpoint"),
	}
	i.AdditionalProperties = r.Rest()
	return i, r.Err()
}

func (i ConnectionInvitation) MarshalJSON() ([]byte, error) { return marshalModel(i) }

func (i *ConnectionInvitation) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, i, ConnectionInvitationFromMap)
}

// ReceiveInvitationRequest is the body of receive-invitation. It carries the
// same fields as the invitation message itself.
type ReceiveInvitationRequest = ConnectionInvitation

// CreateInvitationRequest is the optional body of create-invitation.
type CreateInvitationRequest struct {
	MediationID          types.Opt[string]
	Metadata             types.Opt[map[string]any]
	MyLabel              types.Opt[string]
	RecipientKeys        types.Opt[[]string]
	RoutingKeys          types.Opt[[]string]
	ServiceEndpoint      types.Opt[string]
	AdditionalProperties map[string]any
}

func (c CreateInvitationRequest) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "mediation_id", c.MediationID)
	Put(w, "metadata", c.Metadata)
	Put(w, "my_label", c.MyLabel)
	Put(w, "recipient_keys", c.RecipientKeys)
	Put(w, "routing_keys", c.RoutingKeys)
	Put(w, "service_endpoint", c.ServiceEndpoint)
	return w.Map()
}

func CreateInvitationRequestFromMap(src map[string]any) (CreateInvitationRequest, error) {
	r := NewReader("CreateInvitationRequest", src)
	c := CreateInvitationRequest{
		MediationID:     r.OptString("mediation_id"),
		Metadata:        r.OptObject("metadata"),
		MyLabel:         r.OptString("my_label"),
		RecipientKeys:   r.OptStrings("recipient_keys"),
		RoutingKeys:     r.OptStrings("routing_keys"),
		ServiceEndpoint: r.OptString("service_endpoint"),
	}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c CreateInvitationRequest) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *CreateInvitationRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, CreateInvitationRequestFromMap)
}

// InvitationResult is returned by create-invitation.
type InvitationResult struct {
	ConnectionID         string
	Invitation           ConnectionInvitation
	InvitationURL        string
	AdditionalProperties map[string]any
}

func (i InvitationResult) ToMap() map[string]any {
	w := NewWriter(i.AdditionalProperties)
	w.Set("connection_id", i.ConnectionID)
	w.Set("invitation", i.Invitation.ToMap())
	w.Set("invitation_url", i.InvitationURL)
	return w.Map()
}

func InvitationResultFromMap(src map[string]any) (InvitationResult, error) {
	r := NewReader("InvitationResult", src)
	i := InvitationResult{
		ConnectionID:  r.String("connection_id"),
		Invitation:    Nested(r, "invitation", ConnectionInvitationFromMap),
		InvitationURL: r.String("invitation_url"),
	}
	i.AdditionalProperties = r.Rest()
	return i, r.Err()
}

func (i InvitationResult) MarshalJSON() ([]byte, error) { return marshalModel(i) }

func (i *InvitationResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, i, InvitationResultFromMap)
}

// ConnectionStaticRequest creates a static connection to a known peer.
type ConnectionStaticRequest struct {
	Alias                types.Opt[string]
	MyDID                types.Opt[string]
	MySeed               types.Opt[string]
	TheirDID             types.Opt[string]
	TheirEndpoint        types.Opt[string]
	TheirLabel           types.Opt[string]
	TheirSeed            types.Opt[string]
	TheirVerkey          types.Opt[string]
	AdditionalProperties map[string]any
}

func (c ConnectionStaticRequest) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "alias", c.Alias)
	Put(w, "my_did", c.MyDID)
	Put(w, "my_seed", c.MySeed)
	Put(w, "their_did", c.TheirDID)
	Put(w, "their_endpoint", c.TheirEndpoint)
	Put(w, "their_label", c.TheirLabel)
	Put(w, "their_seed", c.TheirSeed)
	Put(w, "their_verkey", c.TheirVerkey)
	return w.Map()
}

func ConnectionStaticRequestFromMap(src map[string]any) (ConnectionStaticRequest, error) {
	r := NewReader("ConnectionStaticRequest", src)
	c := ConnectionStaticRequest{
		Alias:         r.OptString("alias"),
		MyDID:         r.OptString("my_did"),
		MySeed:        r.OptString("my_seed"),
		TheirDID:      r.OptString("their_did"),
		TheirEndpoint: r.OptString("their_endpoint"),
		TheirLabel:    r.OptString("their_label"),
		TheirSeed:     r.OptString("their_seed"),
		TheirVerkey:   r.OptString("their_verkey"),
	}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c ConnectionStaticRequest) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *ConnectionStaticRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, ConnectionStaticRequestFromMap)
}

// ConnectionStaticResult describes both ends of a new static connection.
type ConnectionStaticResult struct {
	MyDID                string
	MyEndpoint           string
	MyVerkey             string
	Record               ConnRecord
	TheirDID             string
	TheirVerkey          string
	AdditionalProperties map[string]any
}

func (c ConnectionStaticResult) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	w.Set("my_did", c.MyDID)
	w.Set("my_endpoint", c.MyEndpoint)
	w.Set("my_verkey", c.MyVerkey)
	w.Set("record", c.Record.ToMap())
	w.Set("their_did", c.TheirDID)
	w.Set("their_verkey", c.TheirVerkey)
	return w.Map()
}

func ConnectionStaticResultFromMap(src map[string]any) (ConnectionStaticResult, error) {
	r := NewReader("ConnectionStaticResult", src)
	c := ConnectionStaticResult{
		MyDID:       r.String("my_did"),
		MyEndpoint:  r.String("my_endpoint"),
		MyVerkey:    r.String("my_verkey"),
		Record:      Nested(r, "record", ConnRecordFromMap),
		TheirDID:    r.String("their_did"),
		TheirVerkey: r.String("their_verkey"),
	}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c ConnectionStaticResult) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *ConnectionStaticResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, ConnectionStaticResultFromMap)
}

// ConnectionMetadata holds the metadata stored on a connection.
type ConnectionMetadata struct {
	Results              types.Opt[map[string]any]
	AdditionalProperties map[string]any
}

func (c ConnectionMetadata) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	Put(w, "results", c.Results)
	return w.Map()
}

func ConnectionMetadataFromMap(src map[string]any) (ConnectionMetadata, error) {
	r := NewReader("ConnectionMetadata", src)
	c := ConnectionMetadata{Results: r.OptObject("results")}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c ConnectionMetadata) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *ConnectionMetadata) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, ConnectionMetadataFromMap)
}

// ConnectionMetadataSetRequest replaces metadata keys on a connection.
type ConnectionMetadataSetRequest struct {
	Metadata             map[string]any
	AdditionalProperties map[string]any
}

func (c ConnectionMetadataSetRequest) ToMap() map[string]any {
	w := NewWriter(c.AdditionalProperties)
	w.Set("metadata", c.Metadata)
	return w.Map()
}

func (c ConnectionMetadataSetRequest) Validate() error {
	if c.Metadata == nil {
		return &MissingFieldError{Model: "ConnectionMetadataSetRequest", Key: "metadata"}
	}
	return nil
}

func ConnectionMetadataSetRequestFromMap(src map[string]any) (ConnectionMetadataSetRequest, error) {
	r := NewReader("ConnectionMetadataSetRequest", src)
	c := ConnectionMetadataSetRequest{Metadata: r.Object("metadata")}
	c.AdditionalProperties = r.Rest()
	return c, r.Err()
}

func (c ConnectionMetadataSetRequest) MarshalJSON() ([]byte, error) { return marshalModel(c) }

func (c *ConnectionMetadataSetRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, c, ConnectionMetadataSetRequestFromMap)
}

// EndpointsResult holds the endpoints on either side of a connection.
type EndpointsResult struct {
	MyEndpoint           types.Opt[string]
	TheirEndpoint        types.Opt[string]
	AdditionalProperties map[string]any
}

func (e EndpointsResult) ToMap() map[string]any {
	w := NewWriter(e.AdditionalProperties)
	Put(w, "my_endpoint", e.MyEndpoint)
	Put(w, "their_endpoint", e.TheirEndpoint)
	return w.Map()
}

func EndpointsResultFromMap(src map[string]any) (EndpointsResult, error) {
	r := NewReader("EndpointsResult", src)
	e := EndpointsResult{
		MyEndpoint:    r.OptString("my_endpoint"),
		TheirEndpoint: r.OptString("their_endpoint"),
	}
	e.AdditionalProperties = r.Rest()
	return e, r.Err()
}

func (e EndpointsResult) MarshalJSON() ([]byte, error) { return marshalModel(e) }

func (e *EndpointsResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, e, EndpointsResultFromMap)
}
