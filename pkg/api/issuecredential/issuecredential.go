// Package issuecredential wraps the admin API issue-credential/1.0 endpoints.
//
// An issuer starts with SendOffer. The holder answers the stored offer with
// SendRequest, the issuer answers with Issue and the holder keeps the result
// with Store. Agents running with auto-respond flags skip the manual steps.
package issuecredential

import (
	"context"
	"net/http"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

const tag = "issue-credential"

var (
	getRecordsEndpoint = client.Endpoint{
		Name:    "get_issue_credential_records",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/issue-credential/records",
		Query:   []string{"connection_id", "role", "state", "thread_id"},
		Summary: "Fetch all credential exchange records",
	}
	getRecordEndpoint = client.Endpoint{
		Name:    "get_issue_credential_record",
		Tag:     tag,
		Method:  http.MethodGet,
		Path:    "/issue-credential/records/{cred_ex_id}",
		Summary: "Fetch a single credential exchange record",
	}
	deleteRecordEndpoint = client.Endpoint{
		Name:    "delete_issue_credential_record",
		Tag:     tag,
		Method:  http.MethodDelete,
		Path:    "/issue-credential/records/{cred_ex_id}",
		Summary: "Remove an existing credential exchange record",
	}
	sendOfferEndpoint = client.Endpoint{
		Name:    "issue_credential_send_offer",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/issue-credential/send-offer",
		HasBody: true,
		Summary: "Send holder a credential offer, independent of any proposal",
	}
	sendRequestEndpoint = client.Endpoint{
		Name:    "issue_credential_send_request",
		Tag:     tag,
		Method:  http.MethodPost,
		Path:    "/issue-credential/records/{cred_ex_id}/send-request",
		Summary: "Send issuer a credential request",
	}
	issueEndpoint = client.Endpoint{
		Name:         "issue_credential_issue",
		Tag:          tag,
		Method:       http.MethodPost,
		Path:         "/issue-credential/records/{cred_ex_id}/issue",
		HasBody:      true,
		BodyOptional: true,
		Summary:      "Send holder a credential",
	}
	storeEndpoint = client.Endpoint{
		Name:         "issue_credential_store",
		Tag:          tag,
		Method:       http.MethodPost,
		Path:         "/issue-credential/records/{cred_ex_id}/store",
		HasBody:      true,
		BodyOptional: true,
		Summary:      "Store a received credential",
	}
)

// Endpoints lists the issue-credential operations.
var Endpoints = []client.Endpoint{
	getRecordsEndpoint,
	getRecordEndpoint,
	deleteRecordEndpoint,
	sendOfferEndpoint,
	sendRequestEndpoint,
	issueEndpoint,
	storeEndpoint,
}

var (
	listDecoders = client.Decoders[models.V10CredentialExchangeListResult]{
		http.StatusOK: models.V10CredentialExchangeListResultFromMap,
	}
	exchangeDecoders = client.Decoders[models.V10CredentialExchange]{
		http.StatusOK: models.V10CredentialExchangeFromMap,
	}
	moduleResponseDecoders = client.Decoders[models.ModuleResponse]{
		http.StatusOK: models.ModuleResponseFromMap,
	}
)

func recordOp(ep client.Endpoint, credExID string) client.Operation {
	return client.Operation{
		Endpoint:   ep,
		PathValues: map[string]string{"cred_ex_id": credExID},
	}
}

// GetRecordsParams filters the exchange record list. Unset fields are not sent.
type GetRecordsParams struct {
	ConnectionID types.Opt[string]
	Role         types.Opt[models.V10CredentialExchangeRole]
	State        types.Opt[models.V10CredentialExchangeState]
	ThreadID     types.Opt[string]
}

func getRecordsOp(p GetRecordsParams) client.Operation {
	return client.Operation{
		Endpoint: getRecordsEndpoint,
		Params: []client.Param{
			client.Query("connection_id", p.ConnectionID),
			client.Query("role", p.Role),
			client.Query("state", p.State),
			client.Query("thread_id", p.ThreadID),
		},
	}
}

func GetRecordsDetailed(ctx context.Context, c *client.Client, p GetRecordsParams) (*types.Response[models.V10CredentialExchangeListResult], error) {
	return client.Do(ctx, c, getRecordsOp(p), listDecoders)
}

// GetRecords lists credential exchange records matching p.
func GetRecords(ctx context.Context, c *client.Client, p GetRecordsParams) (*models.V10CredentialExchangeListResult, error) {
	return client.Parsed(GetRecordsDetailed(ctx, c, p))
}

func GetRecordsAsync(ctx context.Context, c *client.Client, p GetRecordsParams) *client.Future[models.V10CredentialExchangeListResult] {
	return client.DoAsync(ctx, c, getRecordsOp(p), listDecoders)
}

func GetRecordDetailed(ctx context.Context, c *client.Client, credExID string) (*types.Response[models.V10CredentialExchange], error) {
	return client.Do(ctx, c, recordOp(getRecordEndpoint, credExID), exchangeDecoders)
}

// GetRecord fetches one credential exchange record.
func GetRecord(ctx context.Context, c *client.Client, credExID string) (*models.V10CredentialExchange, error) {
	return client.Parsed(GetRecordDetailed(ctx, c, credExID))
}

func GetRecordAsync(ctx context.Context, c *client.Client, credExID string) *client.Future[models.V10CredentialExchange] {
	return client.DoAsync(ctx, c, recordOp(getRecordEndpoint, credExID), exchangeDecoders)
}

func DeleteRecordDetailed(ctx context.Context, c *client.Client, credExID string) (*types.Response[models.ModuleResponse], error) {
	return client.Do(ctx, c, recordOp(deleteRecordEndpoint, credExID), moduleResponseDecoders)
}

// DeleteRecord removes a credential exchange record.
func DeleteRecord(ctx context.Context, c *client.Client, credExID string) (*models.ModuleResponse, error) {
	return client.Parsed(DeleteRecordDetailed(ctx, c, credExID))
}

func DeleteRecordAsync(ctx context.Context, c *client.Client, credExID string) *client.Future[models.ModuleResponse] {
	return client.DoAsync(ctx, c, recordOp(deleteRecordEndpoint, credExID), moduleResponseDecoders)
}

func sendOfferOp(body models.V10CredentialOfferRequest) client.Operation {
	return client.Operation{Endpoint: sendOfferEndpoint, Body: body}
}

func SendOfferDetailed(ctx context.Context, c *client.Client, body models.V10CredentialOfferRequest) (*types.Response[models.V10CredentialExchange], error) {
	return client.Do(ctx, c, sendOfferOp(body), exchangeDecoders)
}

// SendOffer offers a credential over an active connection.
func SendOffer(ctx context.Context, c *client.Client, body models.V10CredentialOfferRequest) (*models.V10CredentialExchange, error) {
	return client.Parsed(SendOfferDetailed(ctx, c, body))
}

func SendOfferAsync(ctx context.Context, c *client.Client, body models.V10CredentialOfferRequest) *client.Future[models.V10CredentialExchange] {
	return client.DoAsync(ctx, c, sendOfferOp(body), exchangeDecoders)
}

func SendRequestDetailed(ctx context.Context, c *client.Client, credExID string) (*types.Response[models.V10CredentialExchange], error) {
	return client.Do(ctx, c, recordOp(sendRequestEndpoint, credExID), exchangeDecoders)
}

// SendRequest answers a received offer with a credential request.
func SendRequest(ctx context.Context, c *client.Client, credExID string) (*models.V10CredentialExchange, error) {
	return client.Parsed(SendRequestDetailed(ctx, c, credExID))
}

func SendRequestAsync(ctx context.Context, c *client.Client, credExID string) *client.Future[models.V10CredentialExchange] {
	return client.DoAsync(ctx, c, recordOp(sendRequestEndpoint, credExID), exchangeDecoders)
}

func issueOp(credExID string, body types.Opt[models.V10CredentialIssueRequest]) client.Operation {
	op := recordOp(issueEndpoint, credExID)
	if b, ok := body.Get(); ok {
		op.Body = b
	}
	return op
}

func IssueDetailed(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialIssueRequest]) (*types.Response[models.V10CredentialExchange], error) {
	return client.Do(ctx, c, issueOp(credExID, body), exchangeDecoders)
}

// Issue sends the credential for a received request. An unset body sends no
// request body at all.
func Issue(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialIssueRequest]) (*models.V10CredentialExchange, error) {
	return client.Parsed(IssueDetailed(ctx, c, credExID, body))
}

func IssueAsync(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialIssueRequest]) *client.Future[models.V10CredentialExchange] {
	return client.DoAsync(ctx, c, issueOp(credExID, body), exchangeDecoders)
}

func storeOp(credExID string, body types.Opt[models.V10CredentialStoreRequest]) client.Operation {
	op := recordOp(storeEndpoint, credExID)
	if b, ok := body.Get(); ok {
		op.Body = b
	}
	return op
}

func StoreDetailed(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialStoreRequest]) (*types.Response[models.V10CredentialExchange], error) {
	return client.Do(ctx, c, storeOp(credExID, body), exchangeDecoders)
}

// Store saves a received credential in the holder's wallet.
func Store(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialStoreRequest]) (*models.V10CredentialExchange, error) {
	return client.Parsed(StoreDetailed(ctx, c, credExID, body))
}

func StoreAsync(ctx context.Context, c *client.Client, credExID string, body types.Opt[models.V10CredentialStoreRequest]) *client.Future[models.V10CredentialExchange] {
	return client.DoAsync(ctx, c, storeOp(credExID, body), exchangeDecoders)
}
