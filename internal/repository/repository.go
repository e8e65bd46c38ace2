package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the storage contract for the auction room core.
// Implementations must be safe for concurrent use; serialization of price
// decisions is the auction actor's job, not the store's.
type AuctionDB interface {
	CreateAuction(a model.Auction) error
	GetAuction(id string) (model.Auction, error)
	UpdateAuction(a model.Auction) error

	// CreateBidIfAbsent inserts the bid unless one with the same
	// (auctionID, idempotencyKey) already exists, in which case the stored
	// bid is returned unchanged and created is false.
	CreateBidIfAbsent(bid model.Bid) (model.Bid, bool, error)
	GetBid(id string) (model.Bid, error)
	GetBidByKey(auctionID, idempotencyKey string) (model.Bid, error)
	UpdateBid(bid model.Bid) error
	PendingBids(auctionID string) ([]model.Bid, error)

	AppendAdminAction(action model.AdminAction) error
	AdminActions(auctionID string) ([]model.AdminAction, error)

	SaveDeposit(d model.Deposit) error
	GetDeposit(id string) (model.Deposit, error)
	GetDepositByOrder(orderID string) (model.Deposit, error)
	// VerifiedDepositCents returns the largest verified deposit amount the
	// user holds that covers the given auction (auction-specific or
	// wallet-wide). Zero with no error means no verified deposit.
	VerifiedDepositCents(userID, auctionID string) (int64, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction
	bids         map[string]model.Bid
	bidKeys      map[string]string   // (auctionID|idempotencyKey) -> bidID
	auctionBids  map[string][]string // auctionID -> bidIDs in submission order
	actions      map[string][]model.AdminAction
	deposits     map[string]model.Deposit
	orderIndex   map[string]string   // orderID -> depositID
	userDeposits map[string][]string // userID -> depositIDs
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		bids:         make(map[string]model.Bid),
		bidKeys:      make(map[string]string),
		auctionBids:  make(map[string][]string),
		actions:      make(map[string][]model.AdminAction),
		deposits:     make(map[string]model.Deposit),
		orderIndex:   make(map[string]string),
		userDeposits: make(map[string][]string),
	}
}

func bidKey(auctionID, idempotencyKey string) string {
	return auctionID + "|" + idempotencyKey
}

// CreateAuction stores a newly scheduled auction.
func (r *MemoryRepo) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.ID]; ok {
		return fmt.Errorf("create auction %s: already exists", a.ID)
	}
	r.auctions[a.ID] = a
	return nil
}

// GetAuction returns the auction by ID.
func (r *MemoryRepo) GetAuction(id string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// UpdateAuction overwrites the stored auction state.
func (r *MemoryRepo) UpdateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.ID]; !ok {
		return fmt.Errorf("update auction %s: %w", a.ID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[a.ID] = a
	return nil
}

// CreateBidIfAbsent inserts the bid unless the idempotency key is taken.
func (r *MemoryRepo) CreateBidIfAbsent(bid model.Bid) (model.Bid, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return model.Bid{}, false, fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	key := bidKey(bid.AuctionID, bid.IdempotencyKey)
	if existingID, ok := r.bidKeys[key]; ok {
		return r.bids[existingID], false, nil
	}

	r.bids[bid.ID] = bid
	r.bidKeys[key] = bid.ID
	r.auctionBids[bid.AuctionID] = append(r.auctionBids[bid.AuctionID], bid.ID)
	return bid, true, nil
}

// GetBid returns the bid by ID.
func (r *MemoryRepo) GetBid(id string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	return b, nil
}

// GetBidByKey resolves a bid by its idempotency key.
func (r *MemoryRepo) GetBidByKey(auctionID, idempotencyKey string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bidKeys[bidKey(auctionID, idempotencyKey)]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid by key %s: %w", idempotencyKey, auctionerrors.ErrBidNotFound)
	}
	return r.bids[id], nil
}

// UpdateBid overwrites the stored bid.
func (r *MemoryRepo) UpdateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.ID]; !ok {
		return fmt.Errorf("update bid %s: %w", bid.ID, auctionerrors.ErrBidNotFound)
	}
	r.bids[bid.ID] = bid
	return nil
}

// PendingBids returns all pending bids for the auction in submission order.
func (r *MemoryRepo) PendingBids(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []model.Bid
	for _, id := range r.auctionBids[auctionID] {
		if b := r.bids[id]; b.Status == model.BidPending {
			pending = append(pending, b)
		}
	}
	return pending, nil
}

// AppendAdminAction appends to the write-once moderation log.
func (r *MemoryRepo) AppendAdminAction(action model.AdminAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions[action.AuctionID] = append(r.actions[action.AuctionID], action)
	return nil
}

// AdminActions returns the moderation log for an auction, oldest first.
func (r *MemoryRepo) AdminActions(auctionID string) ([]model.AdminAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := append([]model.AdminAction(nil), r.actions[auctionID]...)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Timestamp.Before(actions[j].Timestamp)
	})
	return actions, nil
}

// SaveDeposit inserts or updates a deposit record.
func (r *MemoryRepo) SaveDeposit(d model.Deposit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deposits[d.ID]; !ok {
		r.userDeposits[d.UserID] = append(r.userDeposits[d.UserID], d.ID)
		if d.OrderID != "" {
			r.orderIndex[d.OrderID] = d.ID
		}
	}
	r.deposits[d.ID] = d
	return nil
}

// GetDeposit returns the deposit by ID.
func (r *MemoryRepo) GetDeposit(id string) (model.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.deposits[id]
	if !ok {
		return model.Deposit{}, fmt.Errorf("get deposit %s: %w", id, auctionerrors.ErrDepositNotFound)
	}
	return d, nil
}

// GetDepositByOrder resolves a deposit by its provider order ID.
func (r *MemoryRepo) GetDepositByOrder(orderID string) (model.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.orderIndex[orderID]
	if !ok {
		return model.Deposit{}, fmt.Errorf("get deposit by order %s: %w", orderID, auctionerrors.ErrDepositNotFound)
	}
	return r.deposits[id], nil
}

// VerifiedDepositCents returns the largest verified deposit covering the auction.
func (r *MemoryRepo) VerifiedDepositCents(userID, auctionID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best int64
	for _, id := range r.userDeposits[userID] {
		d := r.deposits[id]
		if d.Status != model.DepositVerified {
			continue
		}
		if d.AuctionID != "" && d.AuctionID != auctionID {
			continue
		}
		if d.AmountCents > best {
			best = d.AmountCents
		}
	}
	return best, nil
}
