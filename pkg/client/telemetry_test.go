package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/i2y/acapyclient/pkg/client"
)

func TestTelemetry_SpansAndMetrics(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	status := http.StatusOK
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{}`))
	}), client.WithTracerProvider(tp), client.WithMeterProvider(mp))

	_, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	require.NoError(t, err)
	status = http.StatusServiceUnavailable
	_, err = client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "acapy send_message", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusOK))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	requests, ok := byName[client.MetricRequests].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, requests.DataPoints, 2)
	var total int64
	for _, dp := range requests.DataPoints {
		total += dp.Value
		op, _ := dp.Attributes.Value("acapy.operation")
		assert.Equal(t, "send_message", op.AsString())
	}
	assert.Equal(t, int64(2), total)

	duration, ok := byName[client.MetricDuration].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.Len(t, duration.DataPoints, 2)
}
