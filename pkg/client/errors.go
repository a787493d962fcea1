package client

import (
	"errors"
	"fmt"
)

// Standard errors returned by the client.
var (
	ErrMissingPathParam  = errors.New("missing path parameter")
	ErrMissingBody       = errors.New("missing request body")
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrUnknownQueryParam = errors.New("undeclared query parameter")
)

// MissingPathParamError reports a path template placeholder with no value.
type MissingPathParamError struct {
	Operation string
	Name      string
}

func (e *MissingPathParamError) Error() string {
	return fmt.Sprintf("%s: %s {%s}", e.Operation, ErrMissingPathParam, e.Name)
}

func (e *MissingPathParamError) Unwrap() error { return ErrMissingPathParam }

// UnexpectedStatusError is returned for unmapped status codes when the client
// was built WithRaiseOnUnexpectedStatus.
type UnexpectedStatusError struct {
	Operation  string
	StatusCode int
	Content    []byte
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s: %s %d: %s", e.Operation, ErrUnexpectedStatus, e.StatusCode, string(e.Content))
}

func (e *UnexpectedStatusError) Unwrap() error { return ErrUnexpectedStatus }
