package types

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Response is the outcome of one admin API call.
//
// Parsed is non-nil only when the status code was one the operation knows how
// to decode. Any other status leaves Parsed nil and the caller inspects
// StatusCode and Content.
type Response[T any] struct {
	StatusCode int
	Content    []byte
	Headers    http.Header
	Parsed     *T
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

var errorDetailPaths = []string{"message", "detail", "error", "reason"}

// ErrorDetail extracts a human readable message from the raw body. JSON bodies
// are searched for the usual error keys; anything else is returned trimmed.
func (r *Response[T]) ErrorDetail() string {
	if gjson.ValidBytes(r.Content) {
		for _, p := range errorDetailPaths {
			if v := gjson.GetBytes(r.Content, p); v.Exists() && v.String() != "" {
				return v.String()
			}
		}
	}
	return strings.TrimSpace(string(r.Content))
}
