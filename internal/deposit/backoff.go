package deposit

import (
	"context"
	"fmt"
	"time"

	"auction-room/internal/auctionerrors"
)

// Backoff is an explicit retry policy: first delay Start, multiplied by
// Factor each attempt, capped at Cap per step, bounded by Timeout overall.
type Backoff struct {
	Start   time.Duration
	Factor  float64
	Cap     time.Duration
	Timeout time.Duration
}

// StatusBackoff is the polling contract callers of the deposit-status
// endpoint observe.
var StatusBackoff = Backoff{
	Start:   1500 * time.Millisecond,
	Factor:  1.25,
	Cap:     5 * time.Second,
	Timeout: 30 * time.Second,
}

// Delay returns the wait before the given zero-based attempt.
func (b Backoff) Delay(attempt int) time.Duration {
	d := float64(b.Start)
	for i := 0; i < attempt; i++ {
		d *= b.Factor
		if time.Duration(d) >= b.Cap {
			return b.Cap
		}
	}
	if dd := time.Duration(d); dd < b.Cap {
		return dd
	}
	return b.Cap
}

// Poll invokes fn until it reports done, the policy times out, or the
// context is cancelled. A timeout surfaces as ErrDepositStatusFailed so
// callers treat it as retryable rather than a permanent failure.
func (b Backoff) Poll(ctx context.Context, fn func(ctx context.Context) (done bool, err error)) error {
	ctx, cancel := context.WithTimeout(ctx, b.Timeout)
	defer cancel()

	for attempt := 0; ; attempt++ {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("status still pending after %s: %w", b.Timeout, auctionerrors.ErrDepositStatusFailed)
		case <-time.After(b.Delay(attempt)):
		}
	}
}
