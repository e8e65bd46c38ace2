package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-room/internal/actor"
	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"
	"auction-room/internal/repository"
	"auction-room/utils"
)

// Manager governs the scheduled → live → ended state machine for every
// auction and owns the one actor per live auction. Ending is terminal and
// may be operator- or timer-triggered.
type Manager struct {
	repo repository.AuctionDB
	bc   actor.Broadcaster
	ctx  context.Context

	mu     sync.RWMutex
	actors map[string]*actor.Actor
	timers map[string]*time.Timer
}

// NewManager creates a lifecycle manager. ctx bounds the lifetime of all
// actor goroutines it spawns.
func NewManager(ctx context.Context, repo repository.AuctionDB, bc actor.Broadcaster) *Manager {
	return &Manager{
		repo:   repo,
		bc:     bc,
		ctx:    ctx,
		actors: make(map[string]*actor.Actor),
		timers: make(map[string]*time.Timer),
	}
}

// Schedule creates a new auction in the scheduled state.
func (m *Manager) Schedule(title string, startingPriceCents, minIncrementCents int64, minDepositCents *int64, endsAt *time.Time) (model.Auction, error) {
	if title == "" {
		return model.Auction{}, fmt.Errorf("lifecycle: schedule: empty title")
	}
	if startingPriceCents < 0 || minIncrementCents < 0 {
		return model.Auction{}, fmt.Errorf("lifecycle: schedule: negative amounts")
	}

	a := model.Auction{
		ID:                utils.GenerateID(),
		Title:             title,
		Status:            model.AuctionScheduled,
		CurrentPriceCents: startingPriceCents,
		MinIncrementCents: minIncrementCents,
		MinDepositCents:   minDepositCents,
		CreatedAt:         time.Now().UTC(),
		EndsAt:            endsAt,
	}
	if err := m.repo.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: schedule: %w", err)
	}

	utils.Info("auction scheduled", map[string]any{
		"auction_id": a.ID, "title": title, "starting_price_cents": startingPriceCents,
	})
	return a, nil
}

// Get returns the auction by ID.
func (m *Manager) Get(auctionID string) (model.Auction, error) {
	return m.repo.GetAuction(auctionID)
}

// Start transitions a scheduled auction to live and spawns its actor.
// Starting an already-live auction is a no-op; it also re-spawns a missing
// actor, which recovers moderation after a process restart.
func (m *Manager) Start(auctionID string) (model.Auction, error) {
	a, err := m.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: start: %w", err)
	}

	switch a.Status {
	case model.AuctionEnded:
		return model.Auction{}, fmt.Errorf("lifecycle: start auction %s: %w", auctionID, auctionerrors.ErrAuctionNotLive)
	case model.AuctionScheduled:
		a.Status = model.AuctionLive
		if err := m.repo.UpdateAuction(a); err != nil {
			return model.Auction{}, fmt.Errorf("lifecycle: start: %w", err)
		}
	}

	m.mu.Lock()
	if _, ok := m.actors[auctionID]; !ok {
		act := actor.New(auctionID, m.repo, m.bc)
		m.actors[auctionID] = act
		go act.Run(m.ctx)

		if a.EndsAt != nil {
			if wait := time.Until(*a.EndsAt); wait > 0 {
				m.timers[auctionID] = time.AfterFunc(wait, func() {
					if _, err := m.End(auctionID); err != nil {
						utils.Error("timed auction end failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
					}
				})
			}
		}
	}
	m.mu.Unlock()

	utils.Info("auction live", map[string]any{"auction_id": auctionID})
	return a, nil
}

// End transitions the auction to ended and determines the winner. Ending an
// already-ended auction returns the stored result. A scheduled auction may
// be ended without ever going live; it ends with no winner.
func (m *Manager) End(auctionID string) (actor.EndResult, error) {
	a, err := m.repo.GetAuction(auctionID)
	if err != nil {
		return actor.EndResult{}, fmt.Errorf("lifecycle: end: %w", err)
	}

	m.mu.Lock()
	act, hasActor := m.actors[auctionID]
	if t, ok := m.timers[auctionID]; ok {
		t.Stop()
		delete(m.timers, auctionID)
	}
	m.mu.Unlock()

	if a.Status == model.AuctionLive && hasActor {
		res, err := act.End()
		if err != nil {
			return actor.EndResult{}, fmt.Errorf("lifecycle: end: %w", err)
		}
		m.mu.Lock()
		delete(m.actors, auctionID)
		m.mu.Unlock()
		return res, nil
	}

	if a.Status != model.AuctionEnded {
		now := time.Now().UTC()
		a.Status = model.AuctionEnded
		a.EndedAt = &now
		if err := m.repo.UpdateAuction(a); err != nil {
			return actor.EndResult{}, fmt.Errorf("lifecycle: end: %w", err)
		}
		m.bc.PublishEnded(auctionID)
	}
	return m.Result(auctionID)
}

// Result reports the terminal outcome of an ended auction. No winner is a
// valid outcome, not an error.
func (m *Manager) Result(auctionID string) (actor.EndResult, error) {
	a, err := m.repo.GetAuction(auctionID)
	if err != nil {
		return actor.EndResult{}, fmt.Errorf("lifecycle: result: %w", err)
	}
	if a.Status != model.AuctionEnded {
		return actor.EndResult{}, fmt.Errorf("lifecycle: result for auction %s: still %s", auctionID, a.Status)
	}

	if a.HighestAcceptedBidID == "" {
		return actor.EndResult{}, nil
	}
	winner, err := m.repo.GetBid(a.HighestAcceptedBidID)
	if err != nil {
		return actor.EndResult{}, fmt.Errorf("lifecycle: result: %w", err)
	}
	return actor.EndResult{
		HasWinner:      true,
		WinningBidID:   winner.ID,
		WinnerBidderID: winner.BidderID,
		AmountCents:    a.CurrentPriceCents,
	}, nil
}

// Decide routes a moderator decision to the owning auction's actor.
func (m *Manager) Decide(bidID string, action model.AdminActionType, overrideAmountCents int64, adminID string) (actor.DecisionResult, error) {
	bid, err := m.repo.GetBid(bidID)
	if err != nil {
		return actor.DecisionResult{}, fmt.Errorf("lifecycle: decide: %w", err)
	}

	m.mu.RLock()
	act, ok := m.actors[bid.AuctionID]
	m.mu.RUnlock()
	if !ok {
		// The actor is gone once the auction ends, but a repeated decision
		// for an already-decided bid must stay a no-op success.
		if bid.Status != model.BidPending && actor.SameOutcome(bid, action, overrideAmountCents) {
			a, err := m.repo.GetAuction(bid.AuctionID)
			if err != nil {
				return actor.DecisionResult{}, fmt.Errorf("lifecycle: decide: %w", err)
			}
			return actor.DecisionResult{Bid: bid, CurrentPriceCents: a.CurrentPriceCents}, nil
		}
		if bid.Status != model.BidPending {
			return actor.DecisionResult{}, fmt.Errorf("lifecycle: decide %s: already %s: %w", bidID, bid.Status, auctionerrors.ErrBidNotPending)
		}
		return actor.DecisionResult{}, fmt.Errorf("lifecycle: decide %s: auction %s: %w", bidID, bid.AuctionID, auctionerrors.ErrAuctionNotLive)
	}

	return act.Decide(bidID, action, overrideAmountCents, adminID)
}

// ActorFor returns the live actor for an auction, if any.
func (m *Manager) ActorFor(auctionID string) (*actor.Actor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.actors[auctionID]
	return a, ok
}
