package connection

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

var (
	createInvitationEndpoint = client.Endpoint{
		Name:         "create_invitation",
		Tag:          tag,
		Method:       http.MethodPost,
		Path:         "/connections/create-invitation",
		Query:        []string{"alias", "auto_accept", "multi_use", "public"},
		HasBody:      true,
		BodyOptional: true,
		Summary:      "Create a new connection invitation",
	}
	receiveInvitationEndpoint = client.Endpoint{
		Name:    "receive_invitation",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/receive-invitation",
		Query:   []string{"alias", "auto_accept", "mediation_id"},
		HasBody: true,
		Summary: "Receive a new connection invitation",
	}
	acceptInvitationEndpoint = client.Endpoint{
		Name:    "accept_invitation",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/{conn_id}/accept-invitation",
		Query:   []string{"mediation_id", "my_endpoint", "my_label"},
		Summary: "Accept a stored connection invitation",
	}
	acceptRequestEndpoint = client.Endpoint{
		Name:    "accept_request",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/{conn_id}/accept-request",
		Query:   []string{"my_endpoint"},
		Summary: "Accept a stored connection request",
	}
	createStaticEndpoint = client.Endpoint{
		Name:    "create_static",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/create-static",
		HasBody: true,
		Summary: "Create a new static connection",
	}
	establishInboundEndpoint = client.Endpoint{
		Name:    "establish_inbound",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/connections/{conn_id}/establish-inbound/{ref_id}",
		Summary: "Assign another connection as the inbound connection",
	}
)

var (
	invitationResultDecoders = client.Decoders[models.InvitationResult]{
		http.StatusOK: models.InvitationResultFromMap,
	}
	staticResultDecoders = client.Decoders[models.ConnectionStaticResult]{
		http.StatusOK: models.ConnectionStaticResultFromMap,
	}
)

// CreateInvitationParams are the query options of create-invitation. Body is
// optional; an unset Body sends no request body at all.
type CreateInvitationParams struct {
	Alias      types.Opt[string]
	AutoAccept types.Opt[bool]
	MultiUse   types.Opt[bool]
	Public     types.Opt[bool]
	Body       types.Opt[models.CreateInvitationRequest]
}

func createInvitationOp(p CreateInvitationParams) client.Operation {
	op := client.Operation{
		Endpoint: createInvitationEndpoint,
		Params: []client.Param{
			client.Query("alias", p.Alias),
			client.Query("auto_accept", p.AutoAccept),
			client.Query("multi_use", p.MultiUse),
			client.Query("public", p.Public),
		},
	}
	if body, ok := p.Body.Get(); ok {
		op.Body = body
	}
	return op
}

func CreateInvitationDetailed(ctx context.Context, c *client.Client, p CreateInvitationParams) (*types.Response[models.InvitationResult], error) {
	return client.Do(ctx, c, createInvitationOp(p), invitationResultDecoders)
}

// CreateInvitation creates a connections/1.0 invitation.
func CreateInvitation(ctx context.Context, c *client.Client, p CreateInvitationParams) (*models.InvitationResult, error) {
	return client.Parsed(CreateInvitationDetailed(ctx, c, p))
}

func CreateInvitationAsync(ctx context.Context, c *client.Client, p CreateInvitationParams) *client.Future[models.InvitationResult] {
	return client.DoAsync(ctx, c, createInvitationOp(p), invitationResultDecoders)
}

type ReceiveInvitationParams struct {
	Alias       types.Opt[string]
	AutoAccept  types.Opt[bool]
	MediationID types.Opt[string]
}

func receiveInvitationOp(body models.ReceiveInvitationRequest, p ReceiveInvitationParams) client.Operation {
	return client.Operation{
		Endpoint: receiveInvitationEndpoint,
		Params: []client.Param{
			client.Query("alias", p.Alias),
			client.Query("auto_accept", p.AutoAccept),
			client.Query("mediation_id", p.MediationID),
		},
		Body: body,
	}
}

func ReceiveInvitationDetailed(ctx context.Context, c *client.Client, body models.ReceiveInvitationRequest, p ReceiveInvitationParams) (*types.Response[models.ConnRecord], error) {
	return client.Do(ctx, c, receiveInvitationOp(body, p), connRecordDecoders)
}

// ReceiveInvitation stores an invitation received out of band.
func ReceiveInvitation(ctx context.Context, c *client.Client, body models.ReceiveInvitationRequest, p ReceiveInvitationParams) (*models.ConnRecord, error) {
	return client.Parsed(ReceiveInvitationDetailed(ctx, c, body, p))
}

func ReceiveInvitationAsync(ctx context.Context, c *client.Client, body models.ReceiveInvitationRequest, p ReceiveInvitationParams) *client.Future[models.ConnRecord] {
	return client.DoAsync(ctx, c, receiveInvitationOp(body, p), connRecordDecoders)
}

type AcceptInvitationParams struct {
	MediationID types.Opt[string]
	MyEndpoint  types.Opt[string]
	MyLabel     types.Opt[string]
}

func acceptInvitationOp(connID string, p AcceptInvitationParams) client.Operation {
	op := connOp(acceptInvitationEndpoint, connID)
	op.Params = []client.Param{
		client.Query("mediation_id", p.MediationID),
		client.Query("my_endpoint", p.MyEndpoint),
		client.Query("my_label", p.MyLabel),
	}
	return op
}

func AcceptInvitationDetailed(ctx context.Context, c *client.Client, connID string, p AcceptInvitationParams) (*types.Response[models.ConnRecord], error) {
	return client.Do(ctx, c, acceptInvitationOp(connID, p), connRecordDecoders)
}

// AcceptInvitation answers a stored invitation with a connection request.
func AcceptInvitation(ctx context.Context, c *client.Client, connID string, p AcceptInvitationParams) (*models.ConnRecord, error) {
	return client.Parsed(AcceptInvitationDetailed(ctx, c, connID, p))
}

func AcceptInvitationAsync(ctx context.Context, c *client.Client, connID string, p AcceptInvitationParams) *client.Future[models.ConnRecord] {
	return client.DoAsync(ctx, c, acceptInvitationOp(connID, p), connRecordDecoders)
}

func acceptRequestOp(connID string, myEndpoint types.Opt[string]) client.Operation {
	op := connOp(acceptRequestEndpoint, connID)
	op.Params = []client.Param{client.Query("my_endpoint", myEndpoint)}
	return op
}

func AcceptRequestDetailed(ctx context.Context, c *client.Client, connID string, myEndpoint types.Opt[string]) (*types.Response[models.ConnRecord], error) {
	return client.Do(ctx, c, acceptRequestOp(connID, myEndpoint), connRecordDecoders)
}

// AcceptRequest answers a stored connection request with a response.
func AcceptRequest(ctx context.Context, c *client.Client, connID string, myEndpoint types.Opt[string]) (*models.ConnRecord, error) {
	return client.Parsed(AcceptRequestDetailed(ctx, c, connID, myEndpoint))
}

func AcceptRequestAsync(ctx context.Context, c *client.Client, connID string, myEndpoint types.Opt[string]) *client.Future[models.ConnRecord] {
	return client.DoAsync(ctx, c, acceptRequestOp(connID, myEndpoint), connRecordDecoders)
}

func createStaticOp(body models.ConnectionStaticRequest) client.Operation {
	return client.Operation{Endpoint: createStaticEndpoint, Body: body}
}

func CreateStaticDetailed(ctx context.Context, c *client.Client, body models.ConnectionStaticRequest) (*types.Response[models.ConnectionStaticResult], error) {
	return client.Do(ctx, c, createStaticOp(body), staticResultDecoders)
}

// CreateStatic creates a connection to a peer whose keys are already known.
func CreateStatic(ctx context.Context, c *client.Client, body models.ConnectionStaticRequest) (*models.ConnectionStaticResult, error) {
	return client.Parsed(CreateStaticDetailed(ctx, c, body))
}

func CreateStaticAsync(ctx context.Context, c *client.Client, body models.ConnectionStaticRequest) *client.Future[models.ConnectionStaticResult] {
	return client.DoAsync(ctx, c, createStaticOp(body), staticResultDecoders)
}

func establishInboundOp(connID, refID string) client.Operation {
	return client.Operation{
		Endpoint:   establishInboundEndpoint,
		PathValues: map[string]string{"conn_id": connID, "ref_id": refID},
	}
}

func EstablishInboundDetailed(ctx context.Context, c *client.Client, connID, refID string) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, establishInboundOp(connID, refID), moduleResponseDecoders)
}

// EstablishInbound routes inbound traffic for connID over the connection refID.
func EstablishInbound(ctx context.Context, c *client.Client, connID, refID string) (*models.ModuleResponse, error) {
	return client.Parsed(EstablishInboundDetailed(ctx, c, connID, refID))
}

func EstablishInboundAsync(ctx context.Context, c *client.Client, connID, refID string) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, establishInboundOp(connID, refID), moduleResponseDecoders)
}
