package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/i2y/acapyclient/pkg/models"
)

// Request is a transport-ready request built from an Operation. Building one
// performs no I/O.
type Request struct {
	Operation string
	Method    string
	URL       string
	Header    http.Header
	Cookies   []*http.Cookie
	Timeout   time.Duration
	Params    url.Values
	JSON      map[string]any
}

// Build assembles the request for op: placeholders are filled from
// PathValues, omitted query parameters are dropped and the body is validated
// and flattened.
func (c *Client) Build(op Operation) (*Request, error) {
	ep := op.Endpoint
	path, err := expandPath(ep, op.PathValues)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for _, p := range op.Params {
		if !ep.Accepts(p.Name) {
			return nil, fmt.Errorf("%s: %w %q", ep.Name, ErrUnknownQueryParam, p.Name)
		}
		values := encodeParam(p.value)
		if !p.set {
			continue
		}
		for _, v := range values {
			params.Add(p.Name, v)
		}
	}

	var body map[string]any
	switch {
	case op.Body != nil:
		if v, ok := op.Body.(models.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", ep.Name, err)
			}
		}
		body = op.Body.ToMap()
	case ep.HasBody && !ep.BodyOptional:
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrMissingBody)
	}

	return &Request{
		Operation: ep.Name,
		Method:    ep.Method,
		URL:       c.baseURL + path,
		Header:    c.headers.Clone(),
		Cookies:   c.Cookies(),
		Timeout:   c.timeout,
		Params:    params,
		JSON:      body,
	}, nil
}

func expandPath(ep Endpoint, values map[string]string) (string, error) {
	var missing string
	path := placeholderRe.ReplaceAllStringFunc(ep.Path, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := values[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return url.PathEscape(v)
	})
	if missing != "" {
		return "", &MissingPathParamError{Operation: ep.Name, Name: missing}
	}
	return path, nil
}

// encodeParam renders a query value as its wire strings. Enums are reduced to
// their literal through fmt.Stringer. A list yields one value per element, so
// an empty list yields none.
func encodeParam(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case fmt.Stringer:
		return []string{x.String()}
	case string:
		return []string{x}
	case bool:
		return []string{strconv.FormatBool(x)}
	case int:
		return []string{strconv.Itoa(x)}
	case int64:
		return []string{strconv.FormatInt(x, 10)}
	case float64:
		return []string{strconv.FormatFloat(x, 'f', -1, 64)}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, encodeParam(item)...)
		}
		return out
	}
	return []string{fmt.Sprint(v)}
}
