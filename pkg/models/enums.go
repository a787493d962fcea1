package models

func parseEnum[E ~string](name, s string, values []E) (E, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &InvalidEnumError{Enum: name, Value: s}
}

// ConnRecordAccept is how a connection's requests are accepted.
type ConnRecordAccept string

// ConnRecordAccept enum values
const (
	ConnRecordAcceptAuto   ConnRecordAccept = "auto"
	ConnRecordAcceptManual ConnRecordAccept = "manual"
)

func (e ConnRecordAccept) String() string { return string(e) }

func ParseConnRecordAccept(s string) (ConnRecordAccept, error) {
	return parseEnum("ConnRecordAccept", s, []ConnRecordAccept{ConnRecordAcceptAuto, ConnRecordAcceptManual})
}

// ConnRecordInvitationMode is how often an invitation may be used.
type ConnRecordInvitationMode string

// ConnRecordInvitationMode enum values
const (
	ConnRecordInvitationModeMulti  ConnRecordInvitationMode = "multi"
	ConnRecordInvitationModeOnce   ConnRecordInvitationMode = "once"
	ConnRecordInvitationModeStatic ConnRecordInvitationMode = "static"
)

func (e ConnRecordInvitationMode) String() string { return string(e) }

func ParseConnRecordInvitationMode(s string) (ConnRecordInvitationMode, error) {
	return parseEnum("ConnRecordInvitationMode", s, []ConnRecordInvitationMode{
		ConnRecordInvitationModeMulti, ConnRecordInvitationModeOnce, ConnRecordInvitationModeStatic,
	})
}

// ConnRecordRoutingState is the mediation routing state of a connection.
type ConnRecordRoutingState string

// ConnRecordRoutingState enum values
const (
	ConnRecordRoutingStateActive  ConnRecordRoutingState = "active"
	ConnRecordRoutingStateError   ConnRecordRoutingState = "error"
	ConnRecordRoutingStateNone    ConnRecordRoutingState = "none"
	ConnRecordRoutingStateRequest ConnRecordRoutingState = "request"
)

func (e ConnRecordRoutingState) String() string { return string(e) }

func ParseConnRecordRoutingState(s string) (ConnRecordRoutingState, error) {
	return parseEnum("ConnRecordRoutingState", s, []ConnRecordRoutingState{
		ConnRecordRoutingStateActive, ConnRecordRoutingStateError, ConnRecordRoutingStateNone, ConnRecordRoutingStateRequest,
	})
}

// ConnRecordTheirRole is the role the remote party plays.
type ConnRecordTheirRole string

// ConnRecordTheirRole enum values
const (
	ConnRecordTheirRoleInvitee   ConnRecordTheirRole = "invitee"
	ConnRecordTheirRoleInviter   ConnRecordTheirRole = "inviter"
	ConnRecordTheirRoleRequester ConnRecordTheirRole = "requester"
	ConnRecordTheirRoleResponder ConnRecordTheirRole = "responder"
)

func (e ConnRecordTheirRole) String() string { return string(e) }

func ParseConnRecordTheirRole(s string) (ConnRecordTheirRole, error) {
	return parseEnum("ConnRecordTheirRole", s, []ConnRecordTheirRole{
		ConnRecordTheirRoleInvitee, ConnRecordTheirRoleInviter, ConnRecordTheirRoleRequester, ConnRecordTheirRoleResponder,
	})
}

// ConnectionProtocol is the DIDComm protocol a connection was made with.
type ConnectionProtocol string

// ConnectionProtocol enum values
const (
	ConnectionProtocolConnections ConnectionProtocol = "connections/1.0"
	ConnectionProtocolDIDExchange ConnectionProtocol = "didexchange/1.0"
)

func (e ConnectionProtocol) String() string { return string(e) }

func ParseConnectionProtocol(s string) (ConnectionProtocol, error) {
	return parseEnum("ConnectionProtocol", s, []ConnectionProtocol{ConnectionProtocolConnections, ConnectionProtocolDIDExchange})
}

// ConnectionState filters the connection list by state.
type ConnectionState string

// ConnectionState enum values
const (
	ConnectionStateAbandoned  ConnectionState = "abandoned"
	ConnectionStateActive     ConnectionState = "active"
	ConnectionStateCompleted  ConnectionState = "completed"
	ConnectionStateError      ConnectionState = "error"
	ConnectionStateInit       ConnectionState = "init"
	ConnectionStateInvitation ConnectionState = "invitation"
	ConnectionStateRequest    ConnectionState = "request"
	ConnectionStateResponse   ConnectionState = "response"
	ConnectionStateStart      ConnectionState = "start"
)

func (e ConnectionState) String() string { return string(e) }

func ParseConnectionState(s string) (ConnectionState, error) {
	return parseEnum("ConnectionState", s, []ConnectionState{
		ConnectionStateAbandoned, ConnectionStateActive, ConnectionStateCompleted,
		ConnectionStateError, ConnectionStateInit, ConnectionStateInvitation,
		ConnectionStateRequest, ConnectionStateResponse, ConnectionStateStart,
	})
}

// V10CredentialExchangeRole is this agent's side of a credential exchange.
type V10CredentialExchangeRole string

// V10CredentialExchangeRole enum values
const (
	V10CredentialExchangeRoleHolder V10CredentialExchangeRole = "holder"
	V10CredentialExchangeRoleIssuer V10CredentialExchangeRole = "issuer"
)

func (e V10CredentialExchangeRole) String() string { return string(e) }

func ParseV10CredentialExchangeRole(s string) (V10CredentialExchangeRole, error) {
	return parseEnum("V10CredentialExchangeRole", s, []V10CredentialExchangeRole{
		V10CredentialExchangeRoleHolder, V10CredentialExchangeRoleIssuer,
	})
}

// V10CredentialExchangeInitiator records which side started an exchange.
type V10CredentialExchangeInitiator string

// V10CredentialExchangeInitiator enum values
const (
	V10CredentialExchangeInitiatorExternal V10CredentialExchangeInitiator = "external"
	V10CredentialExchangeInitiatorSelf     V10CredentialExchangeInitiator = "self"
)

func (e V10CredentialExchangeInitiator) String() string { return string(e) }

func ParseV10CredentialExchangeInitiator(s string) (V10CredentialExchangeInitiator, error) {
	return parseEnum("V10CredentialExchangeInitiator", s, []V10CredentialExchangeInitiator{
		V10CredentialExchangeInitiatorExternal, V10CredentialExchangeInitiatorSelf,
	})
}

// V10CredentialExchangeState filters credential exchange records by state.
type V10CredentialExchangeState string

// V10CredentialExchangeState enum values
const (
	V10CredentialExchangeStateProposalSent       V10CredentialExchangeState = "proposal_sent"
	V10CredentialExchangeStateProposalReceived   V10CredentialExchangeState = "proposal_received"
	V10CredentialExchangeStateOfferSent          V10CredentialExchangeState = "offer_sent"
	V10CredentialExchangeStateOfferReceived      V10CredentialExchangeState = "offer_received"
	V10CredentialExchangeStateRequestSent        V10CredentialExchangeState = "request_sent"
	V10CredentialExchangeStateRequestReceived    V10CredentialExchangeState = "request_received"
	V10CredentialExchangeStateCredentialIssued   V10CredentialExchangeState = "credential_issued"
	V10CredentialExchangeStateCredentialReceived V10CredentialExchangeState = "credential_received"
	V10CredentialExchangeStateCredentialAcked    V10CredentialExchangeState = "credential_acked"
)

func (e V10CredentialExchangeState) String() string { return string(e) }

func ParseV10CredentialExchangeState(s string) (V10CredentialExchangeState, error) {
	return parseEnum("V10CredentialExchangeState", s, []V10CredentialExchangeState{
		V10CredentialExchangeStateProposalSent, V10CredentialExchangeStateProposalReceived,
		V10CredentialExchangeStateOfferSent, V10CredentialExchangeStateOfferReceived,
		V10CredentialExchangeStateRequestSent, V10CredentialExchangeStateRequestReceived,
		V10CredentialExchangeStateCredentialIssued, V10CredentialExchangeStateCredentialReceived,
		V10CredentialExchangeStateCredentialAcked,
	})
}
