package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/i2y/acapyclient/pkg/client"

// Metric names recorded per call.
const (
	MetricRequests = "acapy.client.requests"
	MetricDuration = "acapy.client.duration"
)

type instruments struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider, logger *slog.Logger) *instruments {
	meter := mp.Meter(instrumentationName)
	requests, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("Admin API calls by operation and status code."),
		metric.WithUnit("{request}"))
	if err != nil {
		logger.Warn("Failed to create request counter", slog.Any("error", err))
		requests = noop.Int64Counter{}
	}
	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Admin API call latency."),
		metric.WithUnit("s"))
	if err != nil {
		logger.Warn("Failed to create duration histogram", slog.Any("error", err))
		duration = noop.Float64Histogram{}
	}
	return &instruments{
		tracer:   tp.Tracer(instrumentationName),
		requests: requests,
		duration: duration,
	}
}

func (i *instruments) startSpan(ctx context.Context, req *Request) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, "acapy "+req.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("acapy.operation", req.Operation),
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		))
}

func (i *instruments) record(ctx context.Context, span trace.Span, req *Request, raw *rawResponse, err error, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("acapy.operation", req.Operation),
		attribute.String("http.request.method", req.Method),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		attrs = append(attrs, attribute.String("error.type", "transport"))
	} else {
		status := attribute.Int("http.response.status_code", raw.statusCode)
		span.SetAttributes(status)
		if raw.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(raw.statusCode))
		}
		attrs = append(attrs, status)
	}
	set := metric.WithAttributes(attrs...)
	i.requests.Add(ctx, 1, set)
	i.duration.Record(ctx, elapsed.Seconds(), set)
}
