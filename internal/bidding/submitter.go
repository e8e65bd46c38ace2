package bidding

import (
	"errors"
	"fmt"
	"time"

	"auction-room/internal/auctionerrors"
	"auction-room/internal/deposit"
	"auction-room/internal/metrics"
	"auction-room/internal/models"
	"auction-room/internal/repository"
	"auction-room/utils"
)

// Enqueuer receives freshly created pending bids. The auction actor
// satisfies this.
type Enqueuer interface {
	Enqueue(bid models.Bid)
}

// ActorRegistry resolves the live actor for an auction room.
type ActorRegistry interface {
	ActorFor(auctionID string) (Enqueuer, bool)
}

// Submitter turns a client bid request into exactly one durable pending
// bid. Submissions run concurrently across bidders and auctions; only the
// decision path behind the actor is serialized.
type Submitter struct {
	repo   repository.AuctionDB
	gate   *deposit.Gate
	actors ActorRegistry
}

// NewSubmitter creates a Submitter instance.
func NewSubmitter(repo repository.AuctionDB, gate *deposit.Gate, actors ActorRegistry) *Submitter {
	return &Submitter{
		repo:   repo,
		gate:   gate,
		actors: actors,
	}
}

// Submit validates and records a bid. A repeated idempotency key returns
// the already-created bid unchanged, with created=false and no further
// validation: retries, double-clicks and reconnect races must resolve to
// the original bid even after the price has moved.
func (s *Submitter) Submit(auctionID, bidderID string, amountCents int64, idempotencyKey string) (models.Bid, bool, error) {
	if err := s.validateInput(auctionID, bidderID, amountCents, idempotencyKey); err != nil {
		return models.Bid{}, false, err
	}

	// Replay check first: a duplicate must short-circuit before any gate or
	// price validation re-runs.
	if existing, err := s.repo.GetBidByKey(auctionID, idempotencyKey); err == nil {
		metrics.BidsDuplicateTotal.Inc()
		return existing, false, nil
	} else if !errors.Is(err, auctionerrors.ErrBidNotFound) {
		return models.Bid{}, false, fmt.Errorf("submitter: lookup key %s: %w", idempotencyKey, err)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("submitter: %w", err)
	}
	if auction.Status != models.AuctionLive {
		return models.Bid{}, false, fmt.Errorf("submitter: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrAuctionNotLive)
	}

	eligibility, err := s.gate.CheckEligibility(bidderID, auctionID)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("submitter: %w", err)
	}
	if !eligibility.Eligible {
		return models.Bid{}, false, fmt.Errorf("submitter: bidder %s: %w", bidderID,
			&auctionerrors.DepositRequiredError{MinDepositCents: eligibility.MinDepositCents})
	}

	// Advisory pre-check only. The authoritative comparison happens again
	// inside the actor at decision time, because the price may move between
	// here and there.
	if err := s.precheckAmount(auction, amountCents); err != nil {
		return models.Bid{}, false, err
	}

	bid := models.Bid{
		ID:             utils.GenerateID(),
		AuctionID:      auctionID,
		BidderID:       bidderID,
		AmountCents:    amountCents,
		IdempotencyKey: idempotencyKey,
		Status:         models.BidPending,
		SubmittedAt:    time.Now().UTC(),
	}

	stored, created, err := s.repo.CreateBidIfAbsent(bid)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("submitter: record bid for auction %s by bidder %s: %w", auctionID, bidderID, err)
	}
	if !created {
		// A concurrent submission with the same key won the race.
		metrics.BidsDuplicateTotal.Inc()
		return stored, false, nil
	}

	metrics.BidsSubmittedTotal.Inc()
	if a, ok := s.actors.ActorFor(auctionID); ok {
		a.Enqueue(stored)
	}

	utils.Info("bid submitted", map[string]any{
		"bid_id": stored.ID, "auction_id": auctionID, "bidder_id": bidderID, "amount_cents": amountCents,
	})
	return stored, true, nil
}

// validateInput checks request shape before touching any shared state.
func (s *Submitter) validateInput(auctionID, bidderID string, amountCents int64, idempotencyKey string) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("submitter: %w: missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if idempotencyKey == "" {
		return fmt.Errorf("submitter: %w: missing idempotency key", auctionerrors.ErrInvalidBid)
	}
	if amountCents <= 0 {
		return fmt.Errorf("submitter: %w: non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return nil
}

// precheckAmount enforces the advisory floor: above current price, and at
// least the configured increment over it.
func (s *Submitter) precheckAmount(auction models.Auction, amountCents int64) error {
	floor := auction.CurrentPriceCents
	if auction.MinIncrementCents > 0 {
		floor += auction.MinIncrementCents - 1
	}
	if amountCents <= floor {
		return fmt.Errorf("submitter: %w: amount %d, current price %d", auctionerrors.ErrBidTooLow, amountCents, auction.CurrentPriceCents)
	}
	return nil
}
