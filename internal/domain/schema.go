package domain

import (
	"regexp"
	"strings"
)

// DocumentFormat is the dialect an agent publishes its API description in.
type DocumentFormat string

const (
	DocumentFormatSwagger2 DocumentFormat = "swagger2"
	DocumentFormatOpenAPI3 DocumentFormat = "openapi3"
)

// OperationRef identifies an HTTP operation by method and path template.
type OperationRef struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	// Name is the operationId when the document declares one.
	Name string `json:"name,omitempty"`
}

func (o OperationRef) String() string { return o.Method + " " + o.Path }

// Key is the identity used to match operations across sources. Placeholder
// names are ignored, so /connections/{id} and /connections/{conn_id} match.
func (o OperationRef) Key() string {
	return strings.ToUpper(o.Method) + " " + NormalizePath(o.Path)
}

var placeholderRe = regexp.MustCompile(`\{[^{}]+\}`)

// NormalizePath strips placeholder names and any trailing slash.
func NormalizePath(path string) string {
	p := placeholderRe.ReplaceAllString(path, "{}")
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// APIDocument is the operation surface an agent publishes.
type APIDocument struct {
	// Source is where the document was read from (URL or file path).
	Source     string
	Format     DocumentFormat
	Title      string
	Version    string
	Operations []OperationRef
	// RawData holds the unprocessed document bytes.
	RawData []byte
}
