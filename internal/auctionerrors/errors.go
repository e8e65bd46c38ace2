package auctionerrors

import "errors"

// Session and lookup errors
var (
	ErrAuthFailed      = errors.New("authentication failed")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrDepositNotFound = errors.New("deposit not found")
)

// Business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrStaleBid        = errors.New("bid is stale, price has moved past it")
	ErrBidNotPending   = errors.New("bid is not pending")
	ErrAuctionNotLive  = errors.New("auction is not live")
	ErrDepositRequired = errors.New("verified deposit required")
)

// External deposit-service errors. Both are retryable from the bidder's
// point of view.
var (
	ErrDepositInitFailed   = errors.New("deposit initiation failed")
	ErrDepositStatusFailed = errors.New("deposit status check failed")
	ErrConnectionFailed    = errors.New("connection failed")
)

// DepositRequiredError carries the amount the bidder must fund so the
// caller can present a funding flow instead of a generic error.
type DepositRequiredError struct {
	MinDepositCents int64
}

func (e *DepositRequiredError) Error() string {
	return ErrDepositRequired.Error()
}

// Is lets errors.Is(err, ErrDepositRequired) match the typed variant.
func (e *DepositRequiredError) Is(target error) bool {
	return target == ErrDepositRequired
}

// CodeOf maps an error chain to its wire-level error code.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrAuthFailed):
		return "AUTH_FAILED"
	case errors.Is(err, ErrAuctionNotFound):
		return "AUCTION_NOT_FOUND"
	case errors.Is(err, ErrDepositRequired):
		return "DEPOSIT_REQUIRED"
	case errors.Is(err, ErrBidTooLow):
		return "BID_TOO_LOW"
	case errors.Is(err, ErrStaleBid):
		return "STALE_BID"
	case errors.Is(err, ErrBidNotPending), errors.Is(err, ErrBidNotFound):
		return "BID_NOT_PENDING"
	case errors.Is(err, ErrAuctionNotLive):
		return "AUCTION_NOT_LIVE"
	case errors.Is(err, ErrDepositInitFailed):
		return "DEPOSIT_INIT_FAILED"
	case errors.Is(err, ErrDepositStatusFailed):
		return "DEPOSIT_STATUS_FAILED"
	case errors.Is(err, ErrConnectionFailed):
		return "CONNECTION_FAILED"
	default:
		return "UNKNOWN_ERROR"
	}
}
