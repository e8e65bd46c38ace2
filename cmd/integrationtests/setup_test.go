package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-room/internal/auth"
	"auction-room/internal/bidding"
	"auction-room/internal/deposit"
	"auction-room/internal/hub"
	"auction-room/internal/lifecycle"
	"auction-room/internal/repository"
	"auction-room/internal/server"
	handler "auction-room/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "integration-secret"

// testEnv wires the full application against in-memory infrastructure,
// exactly as main does, behind a real HTTP listener so websocket clients
// can dial in.
type testEnv struct {
	Server     *httptest.Server
	Repo       *repository.MemoryRepo
	Manager    *lifecycle.Manager
	DepositSvc *deposit.Service
	Provider   *deposit.MockProvider
}

type registry struct {
	manager *lifecycle.Manager
}

func (r registry) ActorFor(auctionID string) (bidding.Enqueuer, bool) {
	a, ok := r.manager.ActorFor(auctionID)
	if !ok {
		return nil, false
	}
	return a, true
}

// SetupTestEnv builds the complete application for integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	roomHub := hub.NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	manager := lifecycle.NewManager(ctx, repo, roomHub)

	provider := deposit.NewMockProvider()
	depositSvc := deposit.NewService(repo, provider, webhookSecret)
	submitter := bidding.NewSubmitter(repo, deposit.NewGate(repo), registry{manager})

	validator := auth.NewStaticValidator(map[string]auth.Principal{
		"bidder-token":  {UserID: "bidder1", Username: "Alice"},
		"bidder2-token": {UserID: "bidder2", Username: "Bob"},
		"admin-token":   {UserID: "admin1", Username: "Moderator", Admin: true},
	})

	router := server.SetupRouter(
		handler.NewAuctionHandler(manager, repo),
		handler.NewDepositHandler(depositSvc),
		handler.NewWSHandler(roomHub, validator, manager, submitter, manager),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		Server:     srv,
		Repo:       repo,
		Manager:    manager,
		DepositSvc: depositSvc,
		Provider:   provider,
	}
}

// DoJSON executes an HTTP request against the test server and parses the
// standard response wrapper.
func (e *testEnv) DoJSON(t *testing.T, method, path string, body any) (map[string]any, int) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, bytes.NewReader(reqBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed, resp.StatusCode
}

// PostWebhook delivers a signed provider webhook.
func (e *testEnv) PostWebhook(t *testing.T, payload map[string]any, sign func([]byte) string) int {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, e.Server.URL+"/deposits/webhook", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.SignatureHeader, sign(body))

	resp, err := e.Server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// wsSession is one websocket client against the test server.
type wsSession struct {
	conn *websocket.Conn
}

// DialWS connects a websocket session.
func (e *testEnv) DialWS(t *testing.T) *wsSession {
	t.Helper()

	url := "ws" + strings.TrimPrefix(e.Server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &wsSession{conn: conn}
}

func (s *wsSession) Send(t *testing.T, eventType string, payload any) {
	t.Helper()
	require.NoError(t, s.conn.WriteJSON(hub.NewEnvelope(eventType, payload)))
}

// ReadUntil reads frames until one of the wanted type arrives.
func (s *wsSession) ReadUntil(t *testing.T, eventType string) hub.Envelope {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for {
		s.conn.SetReadDeadline(deadline)
		var env hub.Envelope
		require.NoError(t, s.conn.ReadJSON(&env), "waiting for %s", eventType)
		if env.Type == eventType {
			return env
		}
	}
}

// Join authenticates and enters the auction room, consuming the ack.
func (s *wsSession) Join(t *testing.T, auctionID, token string) {
	t.Helper()
	s.Send(t, hub.EventJoinAuction, hub.JoinPayload{AuctionID: auctionID, Token: token})
	s.ReadUntil(t, hub.EventJoined)
}

// ScheduleAndStart creates a live auction over the API and returns its ID.
func (e *testEnv) ScheduleAndStart(t *testing.T, title string, startingPriceCents int64, minDepositCents *int64) string {
	t.Helper()

	body := map[string]any{
		"title":                title,
		"starting_price_cents": startingPriceCents,
	}
	if minDepositCents != nil {
		body["min_deposit_cents"] = *minDepositCents
	}

	resp, code := e.DoJSON(t, http.MethodPost, "/auctions", body)
	require.Equal(t, http.StatusCreated, code)
	auctionID := resp["data"].(map[string]any)["id"].(string)

	_, code = e.DoJSON(t, http.MethodPost, "/auctions/"+auctionID+"/start", nil)
	require.Equal(t, http.StatusOK, code)
	return auctionID
}
