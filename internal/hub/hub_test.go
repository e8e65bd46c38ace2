package hub

import (
	"encoding/json"
	"testing"
	"time"

	"auction-room/internal/auth"
	model "auction-room/internal/models"

	"github.com/stretchr/testify/require"
)

func newMember(t *testing.T, h *Hub, auctionID string, p auth.Principal) *Client {
	t.Helper()
	c := NewClient("client-"+p.UserID, nil)
	c.SetPrincipal(p)
	h.Register(c)
	h.Join(auctionID, c)
	return c
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case env := <-c.send:
		return env
	case <-time.After(time.Second):
		t.Fatal("no envelope delivered")
		return Envelope{}
	}
}

func requireEmpty(t *testing.T, c *Client) {
	t.Helper()
	select {
	case env := <-c.send:
		t.Fatalf("unexpected envelope %q", env.Type)
	default:
	}
}

func TestHub_JoinIsIdempotent(t *testing.T) {
	h := NewHub()
	c := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})

	h.Join("auction1", c)
	h.Join("auction1", c)
	require.True(t, h.Joined("auction1", c))

	h.PublishEnded("auction1")
	receive(t, c)
	// One membership means one delivery, however many joins happened.
	requireEmpty(t, c)
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	h := NewHub()
	c := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})

	h.Leave("auction1", c)
	require.False(t, h.Joined("auction1", c))

	h.PublishEnded("auction1")
	requireEmpty(t, c)
}

func TestHub_DecisionReachesWholeRoom(t *testing.T) {
	h := NewHub()
	bidder := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1", Username: "Alice"})
	other := newMember(t, h, "auction1", auth.Principal{UserID: "bidder2", Username: "Bob"})
	elsewhere := newMember(t, h, "auction2", auth.Principal{UserID: "bidder3"})

	bid := model.Bid{ID: "bid1", AuctionID: "auction1", BidderID: "bidder1", AmountCents: 12000, Status: model.BidAccepted}
	h.PublishDecision("auction1", bid, 12000)

	for _, c := range []*Client{bidder, other} {
		env := receive(t, c)
		require.Equal(t, EventNewBid, env.Type)

		var payload NewBidPayload
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		require.True(t, payload.Accepted)
		require.Equal(t, int64(12000), payload.CurrentPriceCents)
		require.Equal(t, "bid1", payload.Bid.ID)
	}
	requireEmpty(t, elsewhere)
}

func TestHub_RejectionReachesSubmitterOnly(t *testing.T) {
	h := NewHub()
	submitter := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})
	secondSession := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})
	rival := newMember(t, h, "auction1", auth.Principal{UserID: "bidder2"})

	bid := model.Bid{ID: "bid1", AuctionID: "auction1", BidderID: "bidder1", Status: model.BidRejected}
	h.PublishRejection("auction1", bid)

	// Every session of the submitting bidder hears it; nobody else does.
	for _, c := range []*Client{submitter, secondSession} {
		env := receive(t, c)
		require.Equal(t, EventNewBid, env.Type)

		var payload NewBidPayload
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		require.False(t, payload.Accepted)
	}
	requireEmpty(t, rival)
}

func TestHub_AdminActionReachesAdminsOnly(t *testing.T) {
	h := NewHub()
	admin := newMember(t, h, "auction1", auth.Principal{UserID: "admin1", Admin: true})
	bidder := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})

	h.PublishAdminAction("auction1", model.AdminAction{
		Type: model.ActionOverride, AuctionID: "auction1", BidID: "bid1", AdminID: "admin1",
		PreviousAmountCents: 9000, NewAmountCents: 13000,
	})

	env := receive(t, admin)
	require.Equal(t, EventAdminActionLog, env.Type)

	var payload AdminActionPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	require.Equal(t, model.ActionOverride, payload.Action.Type)
	require.Equal(t, int64(13000), payload.Action.NewAmountCents)

	requireEmpty(t, bidder)
}

func TestHub_OverlayResolvesDisplayName(t *testing.T) {
	h := NewHub()
	bidder := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1", Username: "Alice"})

	h.PublishOverlay("auction1", model.OverlayEvent{
		AmountCents:       13000,
		BidderDisplayName: "bidder1",
		Flags:             map[string]string{"type": model.OverlayFlagAdminOverride},
	})

	env := receive(t, bidder)
	require.Equal(t, EventBidOverlay, env.Type)

	var ev model.OverlayEvent
	require.NoError(t, json.Unmarshal(env.Payload, &ev))
	// The connected session's username replaces the raw bidder ID.
	require.Equal(t, "Alice", ev.BidderDisplayName)
	require.Equal(t, model.OverlayFlagAdminOverride, ev.Flags["type"])
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := NewHub()
	slow := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})

	// Fill the buffer without a consumer.
	for i := 0; i < sendBuffer; i++ {
		require.True(t, slow.TrySend(NewEnvelope(EventAuctionEnded, struct{}{})))
	}

	h.PublishEnded("auction1")

	// The overflowing client is disconnected rather than blocking fan-out.
	require.Eventually(t, func() bool {
		return !h.Joined("auction1", slow)
	}, time.Second, 5*time.Millisecond)
}

func TestHub_DisconnectRemovesAllMemberships(t *testing.T) {
	h := NewHub()
	c := newMember(t, h, "auction1", auth.Principal{UserID: "bidder1"})
	h.Join("auction2", c)

	h.Disconnect(c)
	require.False(t, h.Joined("auction1", c))
	require.False(t, h.Joined("auction2", c))

	// The send channel is closed; further sends are swallowed, not panics.
	require.False(t, c.TrySend(NewEnvelope(EventAuctionEnded, struct{}{})))

	// A second disconnect is harmless.
	h.Disconnect(c)
}
