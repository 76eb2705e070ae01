package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/usecase"
	mockUsecase "cardportal/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCardHandler_Verify(t *testing.T) {
	expiry := testNow.AddDate(4, 0, 0)
	tests := []struct {
		name       string
		result     *usecase.CardVerification
		err        error
		wantStatus int
		wantBody   string
		absent     string
	}{
		{
			name: "valid",
			result: &usecase.CardVerification{
				CardNumber: "2025COM0007",
				State:      approval.CardValid,
				FullName:   "Ayesha Khan",
				Department: entity.DeptComputerScience,
				ExpiryDate: &expiry,
			},
			wantStatus: http.StatusOK,
			wantBody:   `"valid":true`,
		},
		{
			name: "expired",
			result: &usecase.CardVerification{
				CardNumber: "2025COM0007",
				State:      approval.CardExpired,
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"expired"`,
			absent:     `"full_name"`,
		},
		{
			name:       "unknown",
			err:        domainerrors.ErrCardNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"CARD_NOT_FOUND"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cardUC := mockUsecase.NewMockCardUsecase(t)
			h := NewCardHandler(CardHandlerParams{CardUC: cardUC})
			e := newTestEcho()

			cardUC.EXPECT().Verify(mock.Anything, "2025COM0007").Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/cards/2025COM0007/verify", nil), rec)
			c.SetParamNames("number")
			c.SetParamValues("2025COM0007")

			require.NoError(t, h.Verify(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.absent != "" {
				assert.NotContains(t, rec.Body.String(), tt.absent)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
