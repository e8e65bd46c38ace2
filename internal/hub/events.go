package hub

import (
	"encoding/json"

	model "auction-room/internal/models"
)

// Wire event types for the auction room channel.
const (
	EventJoinAuction     = "join-auction"
	EventLeaveAuction    = "leave-auction"
	EventPlaceBid        = "place-bid"
	EventBidPending      = "bid-pending"
	EventNewBid          = "new-bid"
	EventBidOverlay      = "bid-overlay"
	EventAdminApproveBid = "admin-approve-bid"
	EventAdminActionLog  = "admin-action-log"
	EventDepositRequired = "deposit-required"
	EventAuctionEnded    = "auction-ended"
	EventJoined          = "joined"
	EventError           = "error"
)

// Client-side retention bounds advertised by the protocol. Overlay delivery
// is at-least-once per connected session and never authoritative; clients
// keep only the trailing window.
const (
	OverlayRetention  = 3
	AdminLogRetention = 50
)

// Envelope is the JSON frame exchanged over the room websocket.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope marshals the payload into an envelope. Marshalling failures
// are programming errors and yield an empty payload.
func NewEnvelope(eventType string, payload any) Envelope {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{Type: eventType}
	}
	return Envelope{Type: eventType, Payload: data}
}

// JoinPayload is the client request to enter an auction room.
type JoinPayload struct {
	AuctionID string `json:"auctionId"`
	Token     string `json:"token"`
}

// PlaceBidPayload is the client bid submission.
type PlaceBidPayload struct {
	AuctionID      string `json:"auctionId"`
	AmountCents    int64  `json:"amountCents"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// ApproveBidPayload is the moderator decision request.
type ApproveBidPayload struct {
	BidID               string `json:"bidId"`
	Action              string `json:"action"` // accept | reject | override
	OverrideAmountCents int64  `json:"overrideAmountCents,omitempty"`
}

// BidPendingPayload acknowledges a submission to the submitter only.
type BidPendingPayload struct {
	BidID string `json:"bidId"`
}

// NewBidPayload announces a decided bid. Accepted decisions go room-wide
// with the new price; rejections go to the submitter only.
type NewBidPayload struct {
	Bid               model.Bid `json:"bid"`
	Accepted          bool      `json:"accepted"`
	CurrentPriceCents int64     `json:"currentPriceCents,omitempty"`
}

// AdminActionPayload carries a moderation log entry to admin members.
type AdminActionPayload struct {
	Action model.AdminAction `json:"action"`
}

// DepositRequiredPayload tells the submitter how much funding is missing.
type DepositRequiredPayload struct {
	MinDepositCents int64 `json:"minDepositCents"`
}

// JoinedPayload confirms room membership to the joining client.
type JoinedPayload struct {
	AuctionID         string `json:"auctionId"`
	CurrentPriceCents int64  `json:"currentPriceCents"`
	Status            string `json:"status"`
}

// ErrorPayload carries a wire-level error code to one client.
type ErrorPayload struct {
	Code string `json:"code"`
}
