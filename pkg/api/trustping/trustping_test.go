package trustping_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/api/trustping"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

func TestSendPing(t *testing.T) {
	tests := []struct {
		name     string
		body     models.PingRequest
		wantJSON string
	}{
		{name: "with comment", body: models.PingRequest{Comment: types.Some("hello")}, wantJSON: `{"comment":"hello"}`},
		{name: "null comment", body: models.PingRequest{Comment: types.Null[string]()}, wantJSON: `{"comment":null}`},
		{name: "empty", body: models.PingRequest{}, wantJSON: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/connections/abc/send-ping", r.URL.Path)
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, tt.wantJSON, string(body))
				w.Write([]byte(`{"thread_id":"t-1"}`))
			}))
			defer server.Close()
			c := client.New(server.URL, client.WithHTTPClient(server.Client()))

			res, err := trustping.SendPing(context.Background(), c, "abc", tt.body)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, "t-1", res.ThreadID.OrElse(""))
		})
	}
}
