package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/types"
)

var sendMessageEndpoint = client.Endpoint{
	Name:    "send_basic_message",
	Tag:     "basicmessage",
	Method:  "POST",
	Path:    "/connections/{conn_id}/send-message",
	HasBody: true,
	Summary: "Send a basic message to a connection",
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestInvokeEndpointUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	params := map[string]any{"conn_id": "abc", "body": map[string]any{"content": "hi"}}
	okResp := &types.Response[map[string]any]{StatusCode: 200, Content: []byte(`{}`), Parsed: &map[string]any{}}
	invokerErr := errors.New("connection refused")

	tests := []struct {
		name          string
		mockSetup     func(*MockEndpointCatalog, *MockEndpointInvoker)
		wantErr       error
		expectErrText string
		wantResp      *types.Response[map[string]any]
	}{
		{
			name: "Success - endpoint invoked",
			mockSetup: func(cat *MockEndpointCatalog, inv *MockEndpointInvoker) {
				cat.On("Find", mock.Anything, "send_basic_message").Return(&sendMessageEndpoint, nil).Once()
				inv.On("Invoke", mock.Anything, sendMessageEndpoint, params).Return(okResp, nil).Once()
			},
			wantResp: okResp,
		},
		{
			name: "Failure - endpoint not in catalog",
			mockSetup: func(cat *MockEndpointCatalog, inv *MockEndpointInvoker) {
				cat.On("Find", mock.Anything, "send_basic_message").Return(nil, usecase.ErrEndpointNotFound).Once()
			},
			wantErr: usecase.ErrEndpointNotFound,
		},
		{
			name: "Failure - invoker error",
			mockSetup: func(cat *MockEndpointCatalog, inv *MockEndpointInvoker) {
				cat.On("Find", mock.Anything, "send_basic_message").Return(&sendMessageEndpoint, nil).Once()
				inv.On("Invoke", mock.Anything, sendMessageEndpoint, params).Return(nil, invokerErr).Once()
			},
			wantErr:       invokerErr,
			expectErrText: "failed to invoke send_basic_message: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := new(MockEndpointCatalog)
			inv := new(MockEndpointInvoker)
			tt.mockSetup(cat, inv)

			uc := usecase.NewInvokeEndpointUseCase(cat, inv, testLogger())
			resp, err := uc.Execute(ctx, "send_basic_message", params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.expectErrText != "" {
					assert.EqualError(t, err, tt.expectErrText)
				}
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Same(t, tt.wantResp, resp)
			}

			cat.AssertExpectations(t)
			inv.AssertExpectations(t)
		})
	}
}
