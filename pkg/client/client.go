// Package client turns admin API operation descriptors into HTTP requests and
// HTTP responses into typed results.
//
// Every endpoint wrapper in pkg/api goes through Do or DoAsync. The client
// holds only configuration; no state is shared between calls.
package client

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// APIKeyHeader is the header the admin API reads its key from.
const APIKeyHeader = "X-API-Key"

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the configuration shared by all calls: base URL, default headers,
// cookies, timeout and the underlying transport.
type Client struct {
	baseURL                 string
	headers                 http.Header
	cookies                 []*http.Cookie
	timeout                 time.Duration
	raiseOnUnexpectedStatus bool
	httpClient              Doer
	logger                  *slog.Logger
	tracerProvider          trace.TracerProvider
	meterProvider           metric.MeterProvider
	inst                    *instruments
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport. Defaults to a plain *http.Client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.httpClient = d }
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithHeaders adds several default headers.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers.Set(k, v)
		}
	}
}

// WithAPIKey sets the admin API key header.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.headers.Set(APIKeyHeader, key)
		}
	}
}

// WithCookie adds a cookie sent on every request.
func WithCookie(cookie *http.Cookie) Option {
	return func(c *Client) { c.cookies = append(c.cookies, cookie) }
}

// WithTimeout bounds each call. Zero means no client-imposed limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRaiseOnUnexpectedStatus makes unmapped status codes return an
// *UnexpectedStatusError instead of a response with no parsed payload.
func WithRaiseOnUnexpectedStatus(raise bool) Option {
	return func(c *Client) { c.raiseOnUnexpectedStatus = raise }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) { c.meterProvider = mp }
}

// New creates a client for the admin API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "acapy_client")
	if c.tracerProvider == nil {
		c.tracerProvider = otel.GetTracerProvider()
	}
	if c.meterProvider == nil {
		c.meterProvider = otel.GetMeterProvider()
	}
	c.inst = newInstruments(c.tracerProvider, c.meterProvider, c.logger)
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Timeout() time.Duration { return c.timeout }

// Headers returns a copy of the default headers.
func (c *Client) Headers() http.Header { return c.headers.Clone() }

// Cookies returns a copy of the default cookies.
func (c *Client) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, len(c.cookies))
	copy(out, c.cookies)
	return out
}

// With returns a copy of the client with extra options applied.
func (c *Client) With(opts ...Option) *Client {
	cp := *c
	cp.headers = c.headers.Clone()
	cp.cookies = c.Cookies()
	for _, opt := range opts {
		opt(&cp)
	}
	cp.inst = newInstruments(cp.tracerProvider, cp.meterProvider, cp.logger)
	return &cp
}
