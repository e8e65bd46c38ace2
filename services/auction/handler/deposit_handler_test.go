package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"net/http/httptest"

	"auction-room/internal/auctionerrors"
	"auction-room/internal/deposit"
	model "auction-room/internal/models"
	"auction-room/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newDepositRouter(t *testing.T) (*gin.Engine, *MockDepositServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockDepositServiceInterface(ctrl)
	h := NewDepositHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/deposits/initiate", h.InitiateHandler)
	router.GET("/deposits/:deposit_id/status", h.StatusHandler)
	router.POST("/deposits/webhook", h.WebhookHandler)
	return router, mockService
}

func TestInitiateHandler(t *testing.T) {
	router, mockService := newDepositRouter(t)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success",
			requestBody: helpers.InitiateDepositRequest{
				UserID:      "bidder1",
				AmountCents: 5000,
				AuctionID:   "auction1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Initiate(gomock.Any(), "bidder1", int64(5000), "auction1").
					Return(model.Deposit{ID: "dep1", Status: model.DepositPending}, deposit.InitiateResult{
						DepositID: "dep1",
						Order:     deposit.Order{ID: "order1", AmountCents: 5000, Currency: "USD"},
						KeyID:     "key-live",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "dep1", data["depositId"])
				require.Equal(t, "key-live", data["key_id"])
				order := data["order"].(map[string]any)
				require.Equal(t, "order1", order["id"])
				require.Equal(t, float64(5000), order["amount"])
			},
		},
		{
			name:           "missing_user",
			requestBody:    helpers.InitiateDepositRequest{AmountCents: 5000},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero_amount",
			requestBody:    helpers.InitiateDepositRequest{UserID: "bidder1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "provider_down",
			requestBody: helpers.InitiateDepositRequest{
				UserID:      "bidder1",
				AmountCents: 5000,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Initiate(gomock.Any(), "bidder1", int64(5000), "").
					Return(model.Deposit{}, deposit.InitiateResult{},
						fmt.Errorf("initiate: %w", auctionerrors.ErrDepositInitFailed))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/deposits/initiate", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	router, mockService := newDepositRouter(t)

	mockService.EXPECT().Status(gomock.Any(), "dep1").
		Return(model.Deposit{ID: "dep1", Status: model.DepositVerified, AmountCents: 5000}, nil)

	w, resp := doJSON(t, router, http.MethodGet, "/deposits/dep1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, string(model.DepositVerified), data["status"])
	require.Equal(t, float64(5000), data["amountCents"])

	// wait=true switches to the bounded polling path.
	mockService.EXPECT().PollUntilSettled(gomock.Any(), "dep2").
		Return(model.Deposit{ID: "dep2", Status: model.DepositVerified, AmountCents: 7000}, nil)

	w, resp = doJSON(t, router, http.MethodGet, "/deposits/dep2/status?wait=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, string(model.DepositVerified), resp["data"].(map[string]any)["status"])

	mockService.EXPECT().Status(gomock.Any(), "ghost").
		Return(model.Deposit{}, fmt.Errorf("status: %w", auctionerrors.ErrDepositNotFound))

	w, _ = doJSON(t, router, http.MethodGet, "/deposits/ghost/status", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// A poll that never settles is an upstream failure, not a client error.
	mockService.EXPECT().PollUntilSettled(gomock.Any(), "slow").
		Return(model.Deposit{}, fmt.Errorf("poll: %w", auctionerrors.ErrDepositStatusFailed))

	w, _ = doJSON(t, router, http.MethodGet, "/deposits/slow/status?wait=true", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWebhookHandler(t *testing.T) {
	router, mockService := newDepositRouter(t)

	body := `{"depositId":"dep1","orderId":"order1","status":"verified"}`

	mockService.EXPECT().HandleWebhook([]byte(body), "valid-sig").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/deposits/webhook", strings.NewReader(body))
	req.Header.Set(SignatureHeader, "valid-sig")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().HandleWebhook([]byte(body), "bad-sig").
		Return(fmt.Errorf("webhook: %w", auctionerrors.ErrAuthFailed))

	req = httptest.NewRequest(http.MethodPost, "/deposits/webhook", strings.NewReader(body))
	req.Header.Set(SignatureHeader, "bad-sig")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
