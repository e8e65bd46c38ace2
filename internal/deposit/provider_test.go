package deposit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"

	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	p, err := NewProvider("mock", "")
	require.NoError(t, err)
	require.IsType(t, &MockProvider{}, p)

	p, err = NewProvider("http", "http://payments.local")
	require.NoError(t, err)
	require.IsType(t, &HTTPProvider{}, p)

	_, err = NewProvider("carrier-pigeon", "")
	require.Error(t, err)
}

func TestHTTPProvider_CreateOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/deposits/initiate", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, float64(5000), req["amountCents"])
		require.Equal(t, "auction1", req["auctionId"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InitiateResult{
			DepositID: "dep-77",
			Order:     Order{ID: "order-77", AmountCents: 5000, Currency: "USD"},
			KeyID:     "key-live",
		})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	result, err := p.CreateOrder(context.Background(), 5000, "auction1")
	require.NoError(t, err)
	require.Equal(t, "dep-77", result.DepositID)
	require.Equal(t, "order-77", result.Order.ID)
	require.Equal(t, int64(5000), result.Order.AmountCents)
}

func TestHTTPProvider_CreateOrder_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	_, err := p.CreateOrder(context.Background(), 5000, "auction1")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrDepositInitFailed))
}

func TestHTTPProvider_FetchPayment(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deposits/dep-77/status", r.URL.Path)
		json.NewEncoder(w).Encode(Payment{ID: "dep-77", Status: model.DepositVerified, AmountCents: 5000})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	payment, err := p.FetchPayment(context.Background(), "dep-77")
	require.NoError(t, err)
	require.Equal(t, model.DepositVerified, payment.Status)
	require.Equal(t, int64(5000), payment.AmountCents)
}

func TestHTTPProvider_FetchPayment_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	p := NewHTTPProvider(srv.URL)
	_, err := p.FetchPayment(context.Background(), "dep-77")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrDepositStatusFailed))
}

func TestHTTPProvider_Refund(t *testing.T) {
	t.Parallel()

	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/deposits/dep-77/refund", r.URL.Path)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	require.NoError(t, p.Refund(context.Background(), "dep-77"))
	require.True(t, called)
}

func TestMockProvider_VerifiesAfterConfiguredFetches(t *testing.T) {
	t.Parallel()

	p := NewMockProvider()
	p.VerifyAfter = 2

	result, err := p.CreateOrder(context.Background(), 5000, "auction1")
	require.NoError(t, err)

	first, err := p.FetchPayment(context.Background(), result.DepositID)
	require.NoError(t, err)
	require.Equal(t, model.DepositPending, first.Status)

	second, err := p.FetchPayment(context.Background(), result.DepositID)
	require.NoError(t, err)
	require.Equal(t, model.DepositVerified, second.Status)

	require.NoError(t, p.Refund(context.Background(), result.DepositID))
	refunded, err := p.FetchPayment(context.Background(), result.DepositID)
	require.NoError(t, err)
	require.Equal(t, model.DepositRefunded, refunded.Status)

	_, err = p.FetchPayment(context.Background(), "ghost")
	require.Error(t, err)
	require.Error(t, p.Refund(context.Background(), "ghost"))
}
