package helpers

import "time"

// Request/Response DTOs
type ScheduleAuctionRequest struct {
	Title              string     `json:"title" binding:"required"`
	StartingPriceCents int64      `json:"starting_price_cents" binding:"required,gt=0"`
	MinIncrementCents  int64      `json:"min_increment_cents"`
	MinDepositCents    *int64     `json:"min_deposit_cents,omitempty"`
	EndsAt             *time.Time `json:"ends_at,omitempty"`
}

type AuctionResponse struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Status               string `json:"status"`
	CurrentPriceCents    int64  `json:"current_price_cents"`
	MinIncrementCents    int64  `json:"min_increment_cents"`
	MinDepositCents      *int64 `json:"min_deposit_cents,omitempty"`
	HighestAcceptedBidID string `json:"highest_accepted_bid_id,omitempty"`
	CreatedAt            string `json:"created_at"`
	EndedAt              string `json:"ended_at,omitempty"`
}

type ResultResponse struct {
	HasWinner      bool   `json:"has_winner"`
	WinnerBidderID string `json:"winner_bidder_id,omitempty"`
	WinningBidID   string `json:"winning_bid_id,omitempty"`
	AmountCents    int64  `json:"amount_cents,omitempty"`
}

type InitiateDepositRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	AuctionID   string `json:"auction_id,omitempty"`
}

type InitiateDepositResponse struct {
	DepositID string        `json:"depositId"`
	Order     OrderResponse `json:"order"`
	KeyID     string        `json:"key_id"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type DepositStatusResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AmountCents int64  `json:"amountCents"`
}
