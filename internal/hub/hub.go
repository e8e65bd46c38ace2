package hub

import (
	"sync"

	"auction-room/internal/metrics"
	model "auction-room/internal/models"
	"auction-room/utils"
)

// Hub owns room membership and the fan-out of outcomes to connected
// clients. It implements the actor's Broadcaster contract. Delivery is
// fire-and-forget: a client whose buffer is full is dropped rather than
// allowed to stall a decision.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	// membership per client, for disconnect cleanup
	memberships map[*Client]map[string]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms:       make(map[string]map[*Client]struct{}),
		memberships: make(map[*Client]map[string]struct{}),
	}
}

// Register tracks a newly connected client.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.memberships[c]; !ok {
		h.memberships[c] = make(map[string]struct{})
		metrics.ConnectedClients.Inc()
	}
}

// Join adds the client to an auction room. Re-joining a room the client
// already belongs to is a no-op, not an error.
func (h *Hub) Join(auctionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[auctionID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[auctionID] = room
	}
	room[c] = struct{}{}

	if _, ok := h.memberships[c]; !ok {
		h.memberships[c] = make(map[string]struct{})
		metrics.ConnectedClients.Inc()
	}
	h.memberships[c][auctionID] = struct{}{}
}

// Leave removes the client from one room. Auction state is untouched.
func (h *Hub) Leave(auctionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[auctionID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, auctionID)
		}
	}
	if m, ok := h.memberships[c]; ok {
		delete(m, auctionID)
	}
}

// Disconnect removes the client from every room and closes its send
// channel. Pending bids the client submitted are unaffected; only further
// delivery stops.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	if m, ok := h.memberships[c]; ok {
		for auctionID := range m {
			if room, ok := h.rooms[auctionID]; ok {
				delete(room, c)
				if len(room) == 0 {
					delete(h.rooms, auctionID)
				}
			}
		}
		delete(h.memberships, c)
		metrics.ConnectedClients.Dec()
	}
	h.mu.Unlock()

	c.close()
}

// Joined reports whether the client is currently a member of the room.
func (h *Hub) Joined(auctionID string, c *Client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[auctionID][c]
	return ok
}

// broadcast delivers to room members, optionally admins only. Slow clients
// are dropped asynchronously so fan-out never blocks the caller.
func (h *Hub) broadcast(auctionID string, env Envelope, adminOnly bool) {
	h.mu.RLock()
	var dropped []*Client
	for c := range h.rooms[auctionID] {
		if adminOnly {
			p, ok := c.Principal()
			if !ok || !p.Admin {
				continue
			}
		}
		if !c.TrySend(env) {
			dropped = append(dropped, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range dropped {
		utils.Warn("dropping slow client", map[string]any{"client_id": c.ID, "auction_id": auctionID})
		go h.Disconnect(c)
	}
}

// toBidder delivers to every connected session of one bidder in the room.
func (h *Hub) toBidder(auctionID, bidderID string, env Envelope) {
	h.mu.RLock()
	var dropped []*Client
	for c := range h.rooms[auctionID] {
		p, ok := c.Principal()
		if !ok || p.UserID != bidderID {
			continue
		}
		if !c.TrySend(env) {
			dropped = append(dropped, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range dropped {
		go h.Disconnect(c)
	}
}

// displayName resolves a bidder's username from a connected session,
// falling back to the bidder ID.
func (h *Hub) displayName(auctionID, bidderID string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[auctionID] {
		if p, ok := c.Principal(); ok && p.UserID == bidderID && p.Username != "" {
			return p.Username
		}
	}
	return bidderID
}

// PublishDecision announces an accepted or overridden bid room-wide with
// the new authoritative price.
func (h *Hub) PublishDecision(auctionID string, bid model.Bid, currentPriceCents int64) {
	h.broadcast(auctionID, NewEnvelope(EventNewBid, NewBidPayload{
		Bid:               bid,
		Accepted:          true,
		CurrentPriceCents: currentPriceCents,
	}), false)
}

// PublishRejection informs only the submitting bidder, so losing-bid
// information does not leak to the room.
func (h *Hub) PublishRejection(auctionID string, bid model.Bid) {
	h.toBidder(auctionID, bid.BidderID, NewEnvelope(EventNewBid, NewBidPayload{
		Bid:      bid,
		Accepted: false,
	}))
}

// PublishOverlay fans out the ephemeral display event to the whole room.
func (h *Hub) PublishOverlay(auctionID string, ev model.OverlayEvent) {
	if ev.BidderDisplayName != "" {
		ev.BidderDisplayName = h.displayName(auctionID, ev.BidderDisplayName)
	}
	h.broadcast(auctionID, NewEnvelope(EventBidOverlay, ev), false)
}

// PublishAdminAction delivers a moderation log entry to admin members only.
func (h *Hub) PublishAdminAction(auctionID string, action model.AdminAction) {
	h.broadcast(auctionID, NewEnvelope(EventAdminActionLog, AdminActionPayload{Action: action}), true)
}

// PublishEnded announces that the auction is over; clients query the winner.
func (h *Hub) PublishEnded(auctionID string) {
	h.broadcast(auctionID, NewEnvelope(EventAuctionEnded, struct{}{}), false)
}
