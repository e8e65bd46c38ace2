package actor

import (
	"context"
	"fmt"
	"time"

	"auction-room/internal/auctionerrors"
	"auction-room/internal/metrics"
	model "auction-room/internal/models"
	"auction-room/internal/repository"
	"auction-room/utils"
)

// Broadcaster is the fan-out surface the actor notifies after each
// serialized step. Implementations must never block; delivery is
// fire-and-forget and failures must not stall moderation.
type Broadcaster interface {
	PublishDecision(auctionID string, bid model.Bid, currentPriceCents int64)
	PublishRejection(auctionID string, bid model.Bid)
	PublishOverlay(auctionID string, ev model.OverlayEvent)
	PublishAdminAction(auctionID string, action model.AdminAction)
	PublishEnded(auctionID string)
}

// DecisionResult reports the outcome of one moderation step.
type DecisionResult struct {
	Bid               model.Bid
	CurrentPriceCents int64
	CascadeRejected   []string
}

// EndResult is the terminal outcome of an auction. HasWinner false is a
// valid outcome, not an error: no bid was ever accepted.
type EndResult struct {
	HasWinner      bool
	WinningBidID   string
	WinnerBidderID string
	AmountCents    int64
}

type cmdKind int

const (
	cmdEnqueue cmdKind = iota
	cmdDecide
	cmdEnd
)

type command struct {
	kind           cmdKind
	bid            model.Bid
	bidID          string
	action         model.AdminActionType
	overrideAmount int64
	adminID        string
	reply          chan result
}

type result struct {
	decision DecisionResult
	end      EndResult
	err      error
}

// Actor is the single serialized authority over one auction's mutable
// state. All price mutations and cascading rejections for the auction
// happen inside its run loop, one command at a time.
type Actor struct {
	auctionID string
	repo      repository.AuctionDB
	bc        Broadcaster

	inbox   chan command
	stopped chan struct{}

	// Owned by the run loop. Never touched from outside it.
	auction model.Auction
	pending map[string]model.Bid
	result  EndResult
}

// New creates an actor for the auction. Run must be started in its own
// goroutine before commands are issued.
func New(auctionID string, repo repository.AuctionDB, bc Broadcaster) *Actor {
	return &Actor{
		auctionID: auctionID,
		repo:      repo,
		bc:        bc,
		inbox:     make(chan command, 64),
		stopped:   make(chan struct{}),
		pending:   make(map[string]model.Bid),
	}
}

// Run executes the serialized moderation loop. It exits when the auction
// ends or the context is cancelled.
func (a *Actor) Run(ctx context.Context) {
	if err := a.load(); err != nil {
		utils.Error("actor failed to load auction state", map[string]any{
			"auction_id": a.auctionID, "error": err.Error(),
		})
		close(a.stopped)
		return
	}

	for {
		select {
		case <-ctx.Done():
			close(a.stopped)
			return
		case cmd := <-a.inbox:
			a.handle(cmd)
			if a.auction.Status == model.AuctionEnded {
				close(a.stopped)
				a.drain()
				return
			}
		}
	}
}

// load restores the auction and its undecided bids, so a restarted process
// resumes moderation where it left off.
func (a *Actor) load() error {
	auction, err := a.repo.GetAuction(a.auctionID)
	if err != nil {
		return err
	}
	a.auction = auction

	pending, err := a.repo.PendingBids(a.auctionID)
	if err != nil {
		return err
	}
	for _, b := range pending {
		a.pending[b.ID] = b
	}
	metrics.PendingBids.WithLabelValues(a.auctionID).Set(float64(len(a.pending)))
	return nil
}

// drain answers every command still queued after the auction ended.
func (a *Actor) drain() {
	for {
		select {
		case cmd := <-a.inbox:
			a.handle(cmd)
		default:
			return
		}
	}
}

func (a *Actor) send(cmd command) result {
	select {
	case a.inbox <- cmd:
	case <-a.stopped:
		return result{err: fmt.Errorf("actor: auction %s: %w", a.auctionID, auctionerrors.ErrAuctionNotLive)}
	}

	select {
	case r := <-cmd.reply:
		return r
	case <-a.stopped:
		// The loop may have replied just before stopping.
		select {
		case r := <-cmd.reply:
			return r
		default:
			return result{err: fmt.Errorf("actor: auction %s: %w", a.auctionID, auctionerrors.ErrAuctionNotLive)}
		}
	}
}

// Enqueue hands a freshly created pending bid to the moderation queue.
// It never blocks the submitter on a decision.
func (a *Actor) Enqueue(bid model.Bid) {
	cmd := command{kind: cmdEnqueue, bid: bid, reply: make(chan result, 1)}
	a.send(cmd)
}

// Decide applies a moderator decision to a pending bid. Re-issuing the same
// decision for an already-decided bid is a no-op success.
func (a *Actor) Decide(bidID string, action model.AdminActionType, overrideAmountCents int64, adminID string) (DecisionResult, error) {
	cmd := command{
		kind:           cmdDecide,
		bidID:          bidID,
		action:         action,
		overrideAmount: overrideAmountCents,
		adminID:        adminID,
		reply:          make(chan result, 1),
	}
	r := a.send(cmd)
	return r.decision, r.err
}

// End transitions the auction to ended, rejecting any still-pending bids,
// and reports the winner. Ending an already-ended auction returns the stored
// result.
func (a *Actor) End() (EndResult, error) {
	cmd := command{kind: cmdEnd, reply: make(chan result, 1)}
	r := a.send(cmd)
	return r.end, r.err
}

// Done is closed once the actor has shut down.
func (a *Actor) Done() <-chan struct{} {
	return a.stopped
}

func (a *Actor) handle(cmd command) {
	switch cmd.kind {
	case cmdEnqueue:
		a.handleEnqueue(cmd)
	case cmdDecide:
		started := time.Now()
		a.handleDecide(cmd)
		metrics.DecisionDuration.Observe(time.Since(started).Seconds())
	case cmdEnd:
		a.handleEnd(cmd)
	}
}

func (a *Actor) handleEnqueue(cmd command) {
	if a.auction.Status == model.AuctionLive && cmd.bid.Status == model.BidPending {
		a.pending[cmd.bid.ID] = cmd.bid
		metrics.PendingBids.WithLabelValues(a.auctionID).Set(float64(len(a.pending)))
	}
	cmd.reply <- result{}
}

func (a *Actor) handleDecide(cmd command) {
	bid, err := a.repo.GetBid(cmd.bidID)
	if err != nil || bid.AuctionID != a.auctionID {
		cmd.reply <- result{err: fmt.Errorf("actor: decide %s: %w", cmd.bidID, auctionerrors.ErrBidNotFound)}
		return
	}

	if bid.Status != model.BidPending {
		// Admin UIs double-click: repeating the decision that already stood
		// is a success, any other outcome is a conflict.
		if SameOutcome(bid, cmd.action, cmd.overrideAmount) {
			cmd.reply <- result{decision: DecisionResult{Bid: bid, CurrentPriceCents: a.auction.CurrentPriceCents}}
		} else {
			cmd.reply <- result{err: fmt.Errorf("actor: decide %s: already %s: %w", bid.ID, bid.Status, auctionerrors.ErrBidNotPending)}
		}
		return
	}

	if a.auction.Status != model.AuctionLive {
		cmd.reply <- result{err: fmt.Errorf("actor: decide %s: %w", bid.ID, auctionerrors.ErrAuctionNotLive)}
		return
	}

	switch cmd.action {
	case model.ActionReject:
		a.finishReject(cmd, bid)
	case model.ActionAccept:
		a.finishAccept(cmd, bid, bid.AmountCents, model.BidAccepted)
	case model.ActionOverride:
		if cmd.overrideAmount <= 0 {
			cmd.reply <- result{err: fmt.Errorf("actor: override %s: non-positive amount: %w", bid.ID, auctionerrors.ErrInvalidBid)}
			return
		}
		a.finishAccept(cmd, bid, cmd.overrideAmount, model.BidOverridden)
	default:
		cmd.reply <- result{err: fmt.Errorf("actor: decide %s: unknown action %q: %w", bid.ID, cmd.action, auctionerrors.ErrInvalidBid)}
	}
}

func (a *Actor) finishReject(cmd command, bid model.Bid) {
	now := time.Now().UTC()
	bid.Status = model.BidRejected
	bid.DecidedAt = &now
	bid.DecidedBy = cmd.adminID
	if err := a.repo.UpdateBid(bid); err != nil {
		cmd.reply <- result{err: fmt.Errorf("actor: reject %s: %w", bid.ID, err)}
		return
	}
	delete(a.pending, bid.ID)
	metrics.PendingBids.WithLabelValues(a.auctionID).Set(float64(len(a.pending)))

	action := model.AdminAction{
		Type:                model.ActionReject,
		AuctionID:           a.auctionID,
		BidID:               bid.ID,
		AdminID:             cmd.adminID,
		PreviousAmountCents: bid.AmountCents,
		Timestamp:           now,
	}
	if err := a.repo.AppendAdminAction(action); err != nil {
		utils.Error("actor: failed to append admin action", map[string]any{"bid_id": bid.ID, "error": err.Error()})
	}
	metrics.BidsDecidedTotal.WithLabelValues(string(model.BidRejected), "admin").Inc()

	// Rejections go to the submitter only, not the room.
	a.bc.PublishRejection(a.auctionID, bid)
	a.bc.PublishAdminAction(a.auctionID, action)

	cmd.reply <- result{decision: DecisionResult{Bid: bid, CurrentPriceCents: a.auction.CurrentPriceCents}}
}

func (a *Actor) finishAccept(cmd command, bid model.Bid, effectiveAmount int64, status model.BidStatus) {
	now := time.Now().UTC()

	if effectiveAmount <= a.auction.CurrentPriceCents {
		if status == model.BidAccepted {
			// Price moved past this bid while it waited: reject it
			// automatically rather than accepting below current price.
			a.rejectStale(bid, now)
		}
		cmd.reply <- result{err: fmt.Errorf("actor: decide %s: amount %d at price %d: %w",
			bid.ID, effectiveAmount, a.auction.CurrentPriceCents, auctionerrors.ErrStaleBid)}
		return
	}

	bid.Status = status
	bid.FinalAmountCents = effectiveAmount
	bid.DecidedAt = &now
	bid.DecidedBy = cmd.adminID
	if err := a.repo.UpdateBid(bid); err != nil {
		cmd.reply <- result{err: fmt.Errorf("actor: accept %s: %w", bid.ID, err)}
		return
	}

	a.auction.CurrentPriceCents = effectiveAmount
	a.auction.HighestAcceptedBidID = bid.ID
	if err := a.repo.UpdateAuction(a.auction); err != nil {
		cmd.reply <- result{err: fmt.Errorf("actor: update price for %s: %w", a.auctionID, err)}
		return
	}
	delete(a.pending, bid.ID)

	actionType := model.ActionAccept
	if status == model.BidOverridden {
		actionType = model.ActionOverride
	}
	action := model.AdminAction{
		Type:                actionType,
		AuctionID:           a.auctionID,
		BidID:               bid.ID,
		AdminID:             cmd.adminID,
		PreviousAmountCents: bid.AmountCents,
		NewAmountCents:      effectiveAmount,
		Timestamp:           now,
	}
	if err := a.repo.AppendAdminAction(action); err != nil {
		utils.Error("actor: failed to append admin action", map[string]any{"bid_id": bid.ID, "error": err.Error()})
	}
	metrics.BidsDecidedTotal.WithLabelValues(string(status), "admin").Inc()

	// Cascade inside the same serialized step: every other pending bid at
	// or below the new price can never be accepted, so reject it now.
	cascade := a.cascadeReject(effectiveAmount, now)
	metrics.PendingBids.WithLabelValues(a.auctionID).Set(float64(len(a.pending)))

	overlay := model.OverlayEvent{
		AmountCents:       effectiveAmount,
		BidderDisplayName: bid.BidderID,
	}
	if status == model.BidOverridden {
		overlay.Flags = map[string]string{"type": model.OverlayFlagAdminOverride}
	}

	a.bc.PublishDecision(a.auctionID, bid, a.auction.CurrentPriceCents)
	a.bc.PublishOverlay(a.auctionID, overlay)
	a.bc.PublishAdminAction(a.auctionID, action)

	utils.Info("bid accepted", map[string]any{
		"auction_id": a.auctionID, "bid_id": bid.ID, "price_cents": effectiveAmount,
		"override": status == model.BidOverridden, "cascade_rejected": len(cascade),
	})

	cmd.reply <- result{decision: DecisionResult{
		Bid:               bid,
		CurrentPriceCents: a.auction.CurrentPriceCents,
		CascadeRejected:   cascade,
	}}
}

// rejectStale system-rejects a pending bid the price has moved past.
func (a *Actor) rejectStale(bid model.Bid, now time.Time) {
	bid.Status = model.BidRejected
	bid.DecidedAt = &now
	bid.DecidedBy = model.DecidedBySystem
	if err := a.repo.UpdateBid(bid); err != nil {
		utils.Error("actor: failed to reject stale bid", map[string]any{"bid_id": bid.ID, "error": err.Error()})
		return
	}
	delete(a.pending, bid.ID)
	metrics.PendingBids.WithLabelValues(a.auctionID).Set(float64(len(a.pending)))
	metrics.BidsDecidedTotal.WithLabelValues(string(model.BidRejected), model.DecidedBySystem).Inc()
	a.bc.PublishRejection(a.auctionID, bid)
}

// cascadeReject rejects every pending bid whose amount no longer exceeds the
// current price. Runs inside the decision step, before the next command.
func (a *Actor) cascadeReject(priceCents int64, now time.Time) []string {
	var rejected []string
	for id, p := range a.pending {
		if p.AmountCents > priceCents {
			continue
		}
		p.Status = model.BidRejected
		p.DecidedAt = &now
		p.DecidedBy = model.DecidedBySystem
		if err := a.repo.UpdateBid(p); err != nil {
			utils.Error("actor: cascade rejection failed", map[string]any{"bid_id": id, "error": err.Error()})
			continue
		}
		delete(a.pending, id)
		rejected = append(rejected, id)
		metrics.BidsDecidedTotal.WithLabelValues(string(model.BidRejected), model.DecidedBySystem).Inc()
		a.bc.PublishRejection(a.auctionID, p)
	}
	return rejected
}

func (a *Actor) handleEnd(cmd command) {
	if a.auction.Status == model.AuctionEnded {
		cmd.reply <- result{end: a.result}
		return
	}

	now := time.Now().UTC()

	// Leftover pending bids have no decision path after the end; close them
	// out as system rejections so no bid is ever left undecided.
	for id, p := range a.pending {
		p.Status = model.BidRejected
		p.DecidedAt = &now
		p.DecidedBy = model.DecidedBySystem
		if err := a.repo.UpdateBid(p); err != nil {
			utils.Error("actor: end-of-auction rejection failed", map[string]any{"bid_id": id, "error": err.Error()})
			continue
		}
		delete(a.pending, id)
		metrics.BidsDecidedTotal.WithLabelValues(string(model.BidRejected), model.DecidedBySystem).Inc()
		a.bc.PublishRejection(a.auctionID, p)
	}
	metrics.PendingBids.WithLabelValues(a.auctionID).Set(0)

	a.auction.Status = model.AuctionEnded
	a.auction.EndedAt = &now
	if err := a.repo.UpdateAuction(a.auction); err != nil {
		cmd.reply <- result{err: fmt.Errorf("actor: end auction %s: %w", a.auctionID, err)}
		return
	}

	end := EndResult{}
	if a.auction.HighestAcceptedBidID != "" {
		if winner, err := a.repo.GetBid(a.auction.HighestAcceptedBidID); err == nil {
			end = EndResult{
				HasWinner:      true,
				WinningBidID:   winner.ID,
				WinnerBidderID: winner.BidderID,
				AmountCents:    a.auction.CurrentPriceCents,
			}
		}
	}
	a.result = end

	a.bc.PublishEnded(a.auctionID)
	utils.Info("auction ended", map[string]any{
		"auction_id": a.auctionID, "has_winner": end.HasWinner,
		"winning_bid_id": end.WinningBidID, "price_cents": end.AmountCents,
	})

	cmd.reply <- result{end: end}
}

// SameOutcome reports whether a decision repeats the one already recorded
// on the bid. Exposed so callers can keep admin double-clicks idempotent
// even after the auction's actor has shut down.
func SameOutcome(bid model.Bid, action model.AdminActionType, overrideAmount int64) bool {
	switch action {
	case model.ActionAccept:
		return bid.Status == model.BidAccepted
	case model.ActionReject:
		return bid.Status == model.BidRejected
	case model.ActionOverride:
		return bid.Status == model.BidOverridden && bid.FinalAmountCents == overrideAmount
	default:
		return false
	}
}
