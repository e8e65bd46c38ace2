package repository

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"
)

// Bucket layout. bid_keys maps (auctionID|idempotencyKey) -> bidID so the
// idempotency check and the insert happen inside one update transaction.
var (
	bucketAuctions = []byte("auctions")
	bucketBids     = []byte("bids")
	bucketBidKeys  = []byte("bid_keys")
	bucketDeposits = []byte("deposits")
	bucketOrders   = []byte("deposit_orders")
	bucketActions  = []byte("admin_actions")
)

// BoltStore is a BoltDB-backed implementation of AuctionDB. All state lives
// in a single file, which keeps deployments to one process with no external
// database dependency.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file and ensures all buckets
// exist. Bucket creation is idempotent and safe to run on every startup.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketAuctions, bucketBids, bucketBidKeys, bucketDeposits, bucketOrders, bucketActions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init bolt buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func putJSON(b *bolt.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}

// CreateAuction stores a newly scheduled auction.
func (s *BoltStore) CreateAuction(a model.Auction) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuctions)
		if b.Get([]byte(a.ID)) != nil {
			return fmt.Errorf("create auction %s: already exists", a.ID)
		}
		return putJSON(b, a.ID, a)
	})
}

// GetAuction returns the auction by ID.
func (s *BoltStore) GetAuction(id string) (model.Auction, error) {
	var a model.Auction
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketAuctions).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
		}
		return json.Unmarshal(v, &a)
	})
	return a, err
}

// UpdateAuction overwrites the stored auction state.
func (s *BoltStore) UpdateAuction(a model.Auction) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuctions)
		if b.Get([]byte(a.ID)) == nil {
			return fmt.Errorf("update auction %s: %w", a.ID, auctionerrors.ErrAuctionNotFound)
		}
		return putJSON(b, a.ID, a)
	})
}

// CreateBidIfAbsent inserts the bid unless the idempotency key is taken.
// The key check and the insert run inside one transaction, so a retried
// submission can never create a second bid.
func (s *BoltStore) CreateBidIfAbsent(bid model.Bid) (model.Bid, bool, error) {
	var result model.Bid
	created := false

	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketAuctions).Get([]byte(bid.AuctionID)) == nil {
			return fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
		}

		keys := tx.Bucket(bucketBidKeys)
		key := bidKey(bid.AuctionID, bid.IdempotencyKey)
		if existingID := keys.Get([]byte(key)); existingID != nil {
			v := tx.Bucket(bucketBids).Get(existingID)
			return json.Unmarshal(v, &result)
		}

		bids := tx.Bucket(bucketBids)
		if err := putJSON(bids, bid.ID, bid); err != nil {
			return err
		}
		if err := keys.Put([]byte(key), []byte(bid.ID)); err != nil {
			return err
		}
		result = bid
		created = true
		return nil
	})
	if err != nil {
		return model.Bid{}, false, err
	}
	return result, created, nil
}

// GetBid returns the bid by ID.
func (s *BoltStore) GetBid(id string) (model.Bid, error) {
	var b model.Bid
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketBids).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
		}
		return json.Unmarshal(v, &b)
	})
	return b, err
}

// GetBidByKey resolves a bid by its idempotency key.
func (s *BoltStore) GetBidByKey(auctionID, idempotencyKey string) (model.Bid, error) {
	var b model.Bid
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketBidKeys).Get([]byte(bidKey(auctionID, idempotencyKey)))
		if id == nil {
			return fmt.Errorf("get bid by key %s: %w", idempotencyKey, auctionerrors.ErrBidNotFound)
		}
		return json.Unmarshal(tx.Bucket(bucketBids).Get(id), &b)
	})
	return b, err
}

// UpdateBid overwrites the stored bid.
func (s *BoltStore) UpdateBid(bid model.Bid) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBids)
		if b.Get([]byte(bid.ID)) == nil {
			return fmt.Errorf("update bid %s: %w", bid.ID, auctionerrors.ErrBidNotFound)
		}
		return putJSON(b, bid.ID, bid)
	})
}

// PendingBids returns all pending bids for the auction, oldest first.
func (s *BoltStore) PendingBids(auctionID string) ([]model.Bid, error) {
	var pending []model.Bid
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketBids).ForEach(func(_, v []byte) error {
			var b model.Bid
			if err := json.Unmarshal(v, &b); err != nil {
				return err
			}
			if b.AuctionID == auctionID && b.Status == model.BidPending {
				pending = append(pending, b)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(pending); i++ {
		for j := i; j > 0 && pending[j].SubmittedAt.Before(pending[j-1].SubmittedAt); j-- {
			pending[j], pending[j-1] = pending[j-1], pending[j]
		}
	}
	return pending, nil
}

// AppendAdminAction appends to the write-once moderation log. Entries are
// keyed by auctionID plus a monotonically increasing sequence so the log
// replays in append order.
func (s *BoltStore) AppendAdminAction(action model.AdminAction) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActions)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 0, len(action.AuctionID)+9)
		key = append(key, action.AuctionID...)
		key = append(key, '|')
		key = binary.BigEndian.AppendUint64(key, seq)
		data, err := json.Marshal(action)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// AdminActions returns the moderation log for an auction, oldest first.
func (s *BoltStore) AdminActions(auctionID string) ([]model.AdminAction, error) {
	prefix := []byte(auctionID + "|")
	var actions []model.AdminAction
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketActions).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var a model.AdminAction
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			actions = append(actions, a)
		}
		return nil
	})
	return actions, err
}

// SaveDeposit inserts or updates a deposit record.
func (s *BoltStore) SaveDeposit(d model.Deposit) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := putJSON(tx.Bucket(bucketDeposits), d.ID, d); err != nil {
			return err
		}
		if d.OrderID != "" {
			return tx.Bucket(bucketOrders).Put([]byte(d.OrderID), []byte(d.ID))
		}
		return nil
	})
}

// GetDeposit returns the deposit by ID.
func (s *BoltStore) GetDeposit(id string) (model.Deposit, error) {
	var d model.Deposit
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketDeposits).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("get deposit %s: %w", id, auctionerrors.ErrDepositNotFound)
		}
		return json.Unmarshal(v, &d)
	})
	return d, err
}

// GetDepositByOrder resolves a deposit by its provider order ID.
func (s *BoltStore) GetDepositByOrder(orderID string) (model.Deposit, error) {
	var d model.Deposit
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketOrders).Get([]byte(orderID))
		if id == nil {
			return fmt.Errorf("get deposit by order %s: %w", orderID, auctionerrors.ErrDepositNotFound)
		}
		return json.Unmarshal(tx.Bucket(bucketDeposits).Get(id), &d)
	})
	return d, err
}

// VerifiedDepositCents returns the largest verified deposit covering the auction.
func (s *BoltStore) VerifiedDepositCents(userID, auctionID string) (int64, error) {
	var best int64
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDeposits).ForEach(func(_, v []byte) error {
			var d model.Deposit
			if err := json.Unmarshal(v, &d); err != nil {
				return err
			}
			if d.UserID != userID || d.Status != model.DepositVerified {
				return nil
			}
			if d.AuctionID != "" && d.AuctionID != auctionID {
				return nil
			}
			if d.AmountCents > best {
				best = d.AmountCents
			}
			return nil
		})
	})
	return best, err
}
