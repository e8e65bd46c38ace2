package models

import "time"

// AuctionStatus is the lifecycle state of an auction room.
type AuctionStatus string

const (
	AuctionScheduled AuctionStatus = "scheduled"
	AuctionLive      AuctionStatus = "live"
	AuctionEnded     AuctionStatus = "ended"
)

// BidStatus is the moderation state of a bid. All states other than
// pending are terminal.
type BidStatus string

const (
	BidPending    BidStatus = "pending"
	BidAccepted   BidStatus = "accepted"
	BidRejected   BidStatus = "rejected"
	BidOverridden BidStatus = "overridden"
)

// DepositStatus mirrors the states reported by the external deposit service.
type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositVerified DepositStatus = "verified"
	DepositFailed   DepositStatus = "failed"
	DepositRefunded DepositStatus = "refunded"
)

// AdminActionType classifies a moderator decision.
type AdminActionType string

const (
	ActionAccept   AdminActionType = "accept"
	ActionReject   AdminActionType = "reject"
	ActionOverride AdminActionType = "override"
)

// DecidedBySystem marks decisions made by the pipeline itself
// (cascading invalidation, end-of-auction cleanup) rather than a moderator.
const DecidedBySystem = "system"

// Auction holds the mutable price state of one auction room. It is owned
// exclusively by that auction's actor; all mutations pass through the
// actor's serialized decision path.
type Auction struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Status               AuctionStatus `json:"status"`
	CurrentPriceCents    int64         `json:"current_price_cents"`
	MinIncrementCents    int64         `json:"min_increment_cents"`
	MinDepositCents      *int64        `json:"min_deposit_cents,omitempty"`
	HighestAcceptedBidID string        `json:"highest_accepted_bid_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	EndsAt               *time.Time    `json:"ends_at,omitempty"`
	EndedAt              *time.Time    `json:"ended_at,omitempty"`
}

// Bid represents a bidder's offer on an auction. (AuctionID, IdempotencyKey)
// is unique: a retried submission resolves to the already-created Bid.
// FinalAmountCents is the effective amount after a decision; it differs from
// AmountCents only for overridden bids.
type Bid struct {
	ID               string     `json:"id"`
	AuctionID        string     `json:"auction_id"`
	BidderID         string     `json:"bidder_id"`
	AmountCents      int64      `json:"amount_cents"`
	FinalAmountCents int64      `json:"final_amount_cents,omitempty"`
	IdempotencyKey   string     `json:"idempotency_key"`
	Status           BidStatus  `json:"status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	DecidedBy        string     `json:"decided_by,omitempty"`
}

// EffectiveAmount returns the amount a decided bid counts for, falling back
// to the submitted amount while the bid is still pending.
func (b Bid) EffectiveAmount() int64 {
	if b.FinalAmountCents > 0 {
		return b.FinalAmountCents
	}
	return b.AmountCents
}

// Deposit records funding initiated against the external deposit service.
// An empty AuctionID means a wallet-wide deposit usable in any auction.
// Status transitions come only from the deposit service (webhook or polled
// status); the auction pipeline never mutates deposits.
type Deposit struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	AuctionID   string        `json:"auction_id,omitempty"`
	OrderID     string        `json:"order_id"`
	AmountCents int64         `json:"amount_cents"`
	Status      DepositStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AdminAction is an append-only audit record of a moderation decision.
// For overrides PreviousAmountCents is the bid's original amount and
// NewAmountCents the admin-adjusted one.
type AdminAction struct {
	Type                AdminActionType `json:"type"`
	AuctionID           string          `json:"auction_id"`
	BidID               string          `json:"bid_id"`
	AdminID             string          `json:"admin_id"`
	PreviousAmountCents int64           `json:"previous_amount_cents"`
	NewAmountCents      int64           `json:"new_amount_cents"`
	Timestamp           time.Time       `json:"timestamp"`
}

// OverlayEvent is the ephemeral payload broadcast for live display. It is
// never persisted and never authoritative; clients keep only the most
// recent few.
type OverlayEvent struct {
	AmountCents       int64             `json:"amount_cents"`
	BidderDisplayName string            `json:"username"`
	Flags             map[string]string `json:"flags,omitempty"`
}

// OverlayFlagAdminOverride marks an overlay produced by an admin override.
const OverlayFlagAdminOverride = "admin_override"
