package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/internal/domain"
	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/client"
)

func TestCheckDriftUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	catalogEndpoints := []client.Endpoint{
		{Name: "get_status", Method: "GET", Path: "/status"},
		{Name: "get_connection", Method: "GET", Path: "/connections/{conn_id}"},
		{Name: "fetch_menu", Method: "POST", Path: "/action-menu/{conn_id}/fetch"},
	}
	doc := domain.APIDocument{
		Source:  "http://agent:8031/api/docs/swagger.json",
		Format:  domain.DocumentFormatSwagger2,
		Version: "v0.7.4",
		Operations: []domain.OperationRef{
			{Method: "GET", Path: "/status"},
			{Method: "GET", Path: "/connections/{id}"},
			{Method: "POST", Path: "/present-proof/send-request"},
			{Method: "GET", Path: "/present-proof/records"},
		},
	}

	t.Run("reports both directions", func(t *testing.T) {
		cat := new(MockEndpointCatalog)
		fetcher := new(MockDocumentFetcher)
		fetcher.On("Fetch", mock.Anything, "http://agent:8031").Return(doc, nil).Once()
		cat.On("List", mock.Anything).Return(catalogEndpoints, nil).Once()

		uc := usecase.NewCheckDriftUseCase(cat, fetcher, testLogger())
		report, err := uc.Execute(ctx, "http://agent:8031")
		require.NoError(t, err)

		assert.Equal(t, doc.Source, report.Source)
		assert.Equal(t, "v0.7.4", report.AgentVersion)
		assert.Equal(t, 2, report.Matched)
		assert.False(t, report.InSync())
		assert.Equal(t, []domain.OperationRef{
			{Method: "POST", Path: "/action-menu/{conn_id}/fetch", Name: "fetch_menu"},
		}, report.MissingOnServer)
		assert.Equal(t, []domain.OperationRef{
			{Method: "GET", Path: "/present-proof/records"},
			{Method: "POST", Path: "/present-proof/send-request"},
		}, report.Uncovered)

		cat.AssertExpectations(t)
		fetcher.AssertExpectations(t)
	})

	t.Run("fetch failure", func(t *testing.T) {
		cat := new(MockEndpointCatalog)
		fetcher := new(MockDocumentFetcher)
		fetchErr := errors.New("status 404")
		fetcher.On("Fetch", mock.Anything, "http://agent:8031").Return(domain.APIDocument{}, fetchErr).Once()

		uc := usecase.NewCheckDriftUseCase(cat, fetcher, testLogger())
		report, err := uc.Execute(ctx, "http://agent:8031")
		assert.ErrorIs(t, err, fetchErr)
		assert.Nil(t, report)
		cat.AssertNotCalled(t, "List", mock.Anything)
	})
}
