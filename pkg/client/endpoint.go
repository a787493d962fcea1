package client

import (
	"regexp"
	"slices"

	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

// Endpoint describes one admin API operation: a fixed method and path
// template plus the query parameters it accepts.
type Endpoint struct {
	// Name is the operation id, e.g. "get_connections".
	Name string `json:"name"`
	// Tag groups endpoints the way the admin API documents them.
	Tag          string   `json:"tag"`
	Method       string   `json:"method"`
	Path         string   `json:"path"`
	Query        []string `json:"query,omitempty"`
	HasBody      bool     `json:"has_body,omitempty"`
	BodyOptional bool     `json:"body_optional,omitempty"`
	Summary      string   `json:"summary,omitempty"`
}

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// PathParams returns the placeholder names of the path template in order.
func (e Endpoint) PathParams() []string {
	matches := placeholderRe.FindAllStringSubmatch(e.Path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Accepts reports whether name is a declared query parameter.
func (e Endpoint) Accepts(name string) bool {
	return slices.Contains(e.Query, name)
}

// Param is one optional query parameter as supplied by the caller.
type Param struct {
	Name  string
	value any
	set   bool
}

// Query wraps an omittable value. Not provided and explicit null are both
// left out of the request.
func Query[T any](name string, v types.Opt[T]) Param {
	val, ok := v.Get()
	return Param{Name: name, value: val, set: ok}
}

// QueryValue is a query parameter that is always sent.
func QueryValue(name string, v any) Param {
	return Param{Name: name, value: v, set: true}
}

// Operation is one call to an Endpoint with its arguments bound.
type Operation struct {
	Endpoint   Endpoint
	PathValues map[string]string
	Params     []Param
	Body       models.Model
}
