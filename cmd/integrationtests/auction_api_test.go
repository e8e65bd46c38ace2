package integrationtests

import (
	"net/http"
	"testing"

	model "auction-room/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAuctionLifecycleOverAPI(t *testing.T) {
	env := SetupTestEnv(t)

	// Schedule
	resp, code := env.DoJSON(t, http.MethodPost, "/auctions", map[string]any{
		"title":                "vintage guitar",
		"starting_price_cents": 10000,
		"min_increment_cents":  500,
	})
	require.Equal(t, http.StatusCreated, code)
	data := resp["data"].(map[string]any)
	auctionID := data["id"].(string)
	require.Equal(t, string(model.AuctionScheduled), data["status"])

	// Result is unavailable before the auction ends.
	_, code = env.DoJSON(t, http.MethodGet, "/auctions/"+auctionID+"/result", nil)
	require.Equal(t, http.StatusInternalServerError, code)

	// Start
	resp, code = env.DoJSON(t, http.MethodPost, "/auctions/"+auctionID+"/start", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, string(model.AuctionLive), resp["data"].(map[string]any)["status"])

	// Fetch
	resp, code = env.DoJSON(t, http.MethodGet, "/auctions/"+auctionID, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(10000), resp["data"].(map[string]any)["current_price_cents"])

	// End with no accepted bids
	resp, code = env.DoJSON(t, http.MethodPost, "/auctions/"+auctionID+"/end", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, false, resp["data"].(map[string]any)["has_winner"])

	// Ending again stays idempotent.
	_, code = env.DoJSON(t, http.MethodPost, "/auctions/"+auctionID+"/end", nil)
	require.Equal(t, http.StatusOK, code)

	resp, code = env.DoJSON(t, http.MethodGet, "/auctions/"+auctionID+"/result", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, false, resp["data"].(map[string]any)["has_winner"])

	// Unknown auctions 404 across the surface.
	_, code = env.DoJSON(t, http.MethodGet, "/auctions/ghost", nil)
	require.Equal(t, http.StatusNotFound, code)
	_, code = env.DoJSON(t, http.MethodPost, "/auctions/ghost/start", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestDepositFlowOverAPI(t *testing.T) {
	env := SetupTestEnv(t)
	env.Provider.VerifyAfter = 1

	// Initiate
	resp, code := env.DoJSON(t, http.MethodPost, "/deposits/initiate", map[string]any{
		"user_id":      "bidder1",
		"amount_cents": 5000,
		"auction_id":   "auction1",
	})
	require.Equal(t, http.StatusCreated, code)
	data := resp["data"].(map[string]any)
	depositID := data["depositId"].(string)
	require.NotEmpty(t, depositID)
	require.Equal(t, float64(5000), data["order"].(map[string]any)["amount"])

	// Status mirrors the provider's settlement.
	resp, code = env.DoJSON(t, http.MethodGet, "/deposits/"+depositID+"/status", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, string(model.DepositVerified), resp["data"].(map[string]any)["status"])

	_, code = env.DoJSON(t, http.MethodGet, "/deposits/ghost/status", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestDepositWebhookOverAPI(t *testing.T) {
	env := SetupTestEnv(t)
	env.Provider.VerifyAfter = 1 << 30 // settle only via webhook

	resp, code := env.DoJSON(t, http.MethodPost, "/deposits/initiate", map[string]any{
		"user_id":      "bidder1",
		"amount_cents": 5000,
	})
	require.Equal(t, http.StatusCreated, code)
	depositID := resp["data"].(map[string]any)["depositId"].(string)

	payload := map[string]any{"depositId": depositID, "status": "verified"}

	// A forged signature changes nothing.
	code = env.PostWebhook(t, payload, func([]byte) string { return "deadbeef" })
	require.Equal(t, http.StatusUnauthorized, code)

	resp, _ = env.DoJSON(t, http.MethodGet, "/deposits/"+depositID+"/status", nil)
	require.Equal(t, string(model.DepositPending), resp["data"].(map[string]any)["status"])

	// The provider's genuine signature settles the deposit.
	code = env.PostWebhook(t, payload, env.DepositSvc.Sign)
	require.Equal(t, http.StatusOK, code)

	stored, err := env.Repo.GetDeposit(depositID)
	require.NoError(t, err)
	require.Equal(t, model.DepositVerified, stored.Status)
}

func TestModerationViewsOverAPI(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := env.ScheduleAndStart(t, "lot 1", 10000, nil)

	resp, code := env.DoJSON(t, http.MethodGet, "/auctions/"+auctionID+"/bids", nil)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp["data"].([]any))

	resp, code = env.DoJSON(t, http.MethodGet, "/auctions/"+auctionID+"/actions", nil)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp["data"].([]any))
}
