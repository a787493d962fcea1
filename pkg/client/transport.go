package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// send performs the round trip for req. Transport errors are returned as the
// transport reported them.
func (c *Client) send(ctx context.Context, req *Request) exchange {
	log := c.logger.With(
		slog.String("operation", req.Operation),
		slog.String("method", req.Method),
		slog.String("url", req.URL),
	)

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	ctx, span := c.inst.startSpan(ctx, req)
	defer span.End()

	log.Debug("Sending admin API request", slog.Int("query_params", len(req.Params)))
	began := time.Now()
	raw, err := c.roundTrip(ctx, req)
	c.inst.record(ctx, span, req, raw, err, time.Since(began))
	if err != nil {
		log.Error("Admin API request failed", slog.Any("error", err))
		return exchange{err: err}
	}
	log.Debug("Received admin API response",
		slog.Int("status_code", raw.statusCode),
		slog.Int("size", len(raw.content)))
	return exchange{raw: raw}
}

func (c *Client) roundTrip(ctx context.Context, req *Request) (*rawResponse, error) {
	var body io.Reader
	if req.JSON != nil {
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := req.URL
	if len(req.Params) > 0 {
		target += "?" + req.Params.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range req.Cookies {
		httpReq.AddCookie(ck)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &rawResponse{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		content:    content,
	}, nil
}
