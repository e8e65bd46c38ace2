package deposit

import (
	"fmt"

	"auction-room/internal/metrics"
	"auction-room/internal/repository"
)

// Eligibility is the deposit gate's answer for one (bidder, auction) pair.
// When not eligible, MinDepositCents carries the amount the bidder must
// fund so the caller can present a funding flow.
type Eligibility struct {
	Eligible        bool  `json:"eligible"`
	MinDepositCents int64 `json:"min_deposit_cents,omitempty"`
}

// Gate decides whether a bidder may submit bids into a given auction. It
// only reads deposit status; deposits are created and settled elsewhere.
type Gate struct {
	repo repository.AuctionDB
}

// NewGate creates a deposit gate over the given store.
func NewGate(repo repository.AuctionDB) *Gate {
	return &Gate{repo: repo}
}

// CheckEligibility reports whether the bidder holds a verified deposit
// covering the auction's minimum. Auctions without a minimum admit everyone.
func (g *Gate) CheckEligibility(userID, auctionID string) (Eligibility, error) {
	auction, err := g.repo.GetAuction(auctionID)
	if err != nil {
		return Eligibility{}, fmt.Errorf("gate: check eligibility for auction %s: %w", auctionID, err)
	}

	if auction.MinDepositCents == nil {
		metrics.DepositChecksTotal.WithLabelValues("eligible").Inc()
		return Eligibility{Eligible: true}, nil
	}

	verified, err := g.repo.VerifiedDepositCents(userID, auctionID)
	if err != nil {
		return Eligibility{}, fmt.Errorf("gate: check deposits for user %s: %w", userID, err)
	}

	if verified >= *auction.MinDepositCents {
		metrics.DepositChecksTotal.WithLabelValues("eligible").Inc()
		return Eligibility{Eligible: true}, nil
	}

	metrics.DepositChecksTotal.WithLabelValues("deposit_required").Inc()
	return Eligibility{Eligible: false, MinDepositCents: *auction.MinDepositCents}, nil
}
