package client_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

var moduleResponseDecoders = client.Decoders[models.ModuleResponse]{
	http.StatusOK: models.ModuleResponseFromMap,
}

func newTestClient(t *testing.T, handler http.Handler, opts ...client.Option) *client.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]client.Option{client.WithHTTPClient(server.Client()), client.WithLogger(logger)}, opts...)
	return client.New(server.URL, opts...)
}

func sendMessageOp(connID string) client.Operation {
	return client.Operation{
		Endpoint:   sendMessageEndpoint,
		PathValues: map[string]string{"conn_id": connID},
		Body:       models.SendMessage{Content: types.Some("hi")},
	}
}

func TestDo_SendMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/connections/abc/send-message", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get(client.APIKeyHeader))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		session, err := r.Cookie("session")
		if assert.NoError(t, err) {
			assert.Equal(t, "s1", session.Value)
		}

		data, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"content":"hi"}`, string(data))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}),
		client.WithAPIKey("secret"),
		client.WithHeader("X-Extra", "yes"),
		client.WithCookie(&http.Cookie{Name: "session", Value: "s1"}),
	)

	resp, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	require.NotNil(t, resp.Parsed)
	assert.Empty(t, resp.Parsed.AdditionalProperties)
}

func TestDo_QueryString(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/connections", r.URL.Path)
		assert.Equal(t, "inviter", r.URL.Query().Get("their_role"))
		assert.Equal(t, "false", r.URL.Query().Get("multi_use"))
		assert.False(t, r.URL.Query().Has("alias"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`{"results":[]}`))
	}))

	op := client.Operation{
		Endpoint: listEndpoint,
		Params: []client.Param{
			client.Query("alias", types.Unset[string]()),
			client.Query("their_role", types.Some(models.ConnRecordTheirRoleInviter)),
			client.Query("multi_use", types.Some(false)),
		},
	}
	dec := client.Decoders[models.ConnectionList]{http.StatusOK: models.ConnectionListFromMap}

	list, err := client.Parsed(client.Do(context.Background(), c, op, dec))
	require.NoError(t, err)
	require.NotNil(t, list)
	results, ok := list.Results.Get()
	assert.True(t, ok)
	assert.Empty(t, results)
}

func TestDo_UnmappedStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Record not found"}`))
	}))

	resp, err := client.Do(context.Background(), c, sendMessageOp("missing"), moduleResponseDecoders)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Nil(t, resp.Parsed)
	assert.Equal(t, "Record not found", resp.ErrorDetail())

	parsed, err := client.Parsed(client.Do(context.Background(), c, sendMessageOp("missing"), moduleResponseDecoders))
	assert.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestDo_RaiseOnUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`bad input`))
	}), client.WithRaiseOnUnexpectedStatus(true))

	_, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	require.ErrorIs(t, err, client.ErrUnexpectedStatus)

	var unexpected *client.UnexpectedStatusError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusUnprocessableEntity, unexpected.StatusCode)
	assert.Equal(t, "send_message", unexpected.Operation)
	assert.Equal(t, []byte("bad input"), unexpected.Content)
}

func TestDo_MalformedMappedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	resp, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestDo_BuildErrorSendsNothing(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	op := sendMessageOp("abc")
	op.PathValues = nil
	_, err := client.Do(context.Background(), c, op, moduleResponseDecoders)
	assert.ErrorIs(t, err, client.ErrMissingPathParam)
	assert.False(t, called)
}

func TestDo_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := client.New(url)
	_, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	assert.Error(t, err)
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}), client.WithTimeout(50*time.Millisecond))
	t.Cleanup(func() { close(release) })

	_, err := client.Do(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoAsync_Await(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"thread_id": "t-1"})
	}))
	dec := client.Decoders[models.PingRequestResponse]{http.StatusOK: models.PingRequestResponseFromMap}
	op := client.Operation{
		Endpoint:   sendMessageEndpoint,
		PathValues: map[string]string{"conn_id": "abc"},
		Body:       models.PingRequest{},
	}

	f := client.DoAsync(context.Background(), c, op, dec)
	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed)
	assert.Equal(t, "t-1", resp.Parsed.ThreadID.OrElse(""))

	again, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Same(t, resp, again)
}

func TestDoAsync_AbandonedWaitCanResume(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{}`))
	}))

	f := client.DoAsync(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Await(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoAsync_ConcurrentAwaitHonoursOwnContext(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{}`))
	}))

	f := client.DoAsync(context.Background(), c, sendMessageOp("abc"), moduleResponseDecoders)

	first := make(chan error, 1)
	go func() {
		_, err := f.Await(context.Background())
		first <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	second := make(chan error, 1)
	go func() {
		_, err := f.Await(cancelled)
		second <- err
	}()

	select {
	case err := <-second:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Error("Await with a cancelled context blocked behind another caller")
	}

	close(release)
	require.NoError(t, <-first)

	resp, err := f.Await(cancelled)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoAsync_CancelStopsRequest(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	f := client.DoAsync(ctx, c, sendMessageOp("abc"), moduleResponseDecoders)
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoAsync_BuildError(t *testing.T) {
	c := client.New("http://agent:8031")
	f := client.DoAsync(context.Background(), c, client.Operation{Endpoint: sendMessageEndpoint}, moduleResponseDecoders)

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, client.ErrMissingPathParam)
}

func TestClient_With(t *testing.T) {
	base := client.New("http://agent:8031/", client.WithHeader("A", "1"))
	derived := base.With(client.WithHeader("B", "2"), client.WithTimeout(time.Second))

	assert.Equal(t, "http://agent:8031", base.BaseURL())
	assert.Empty(t, base.Headers().Get("B"))
	assert.Equal(t, time.Duration(0), base.Timeout())
	assert.Equal(t, "1", derived.Headers().Get("A"))
	assert.Equal(t, "2", derived.Headers().Get("B"))
	assert.Equal(t, time.Second, derived.Timeout())
}
