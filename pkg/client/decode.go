package client

import (
	"fmt"
	"net/http"

	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

// Decoders maps the status codes an operation knows to the decoder for its body.
type Decoders[T any] map[int]models.DecodeFunc[T]

// Decode interprets a raw response. A mapped status whose body does not parse
// is an error; an unmapped status is not, and yields a response with Parsed nil.
func Decode[T any](status int, header http.Header, content []byte, decoders Decoders[T]) (*types.Response[T], error) {
	resp := &types.Response[T]{
		StatusCode: status,
		Content:    content,
		Headers:    header,
	}
	decode, ok := decoders[status]
	if !ok {
		return resp, nil
	}
	obj, err := models.DecodeObject(content)
	if err != nil {
		return nil, fmt.Errorf("parse %d response body: %w", status, err)
	}
	v, err := decode(obj)
	if err != nil {
		return nil, fmt.Errorf("decode %d response body: %w", status, err)
	}
	resp.Parsed = &v
	return resp, nil
}

// RawObject passes the decoded JSON object through unchanged.
func RawObject(m map[string]any) (map[string]any, error) {
	return m, nil
}
