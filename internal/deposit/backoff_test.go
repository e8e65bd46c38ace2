package deposit

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-room/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestBackoff_DelaySchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attempt  int
		expected time.Duration
	}{
		{name: "first_wait", attempt: 0, expected: 1500 * time.Millisecond},
		{name: "second_wait", attempt: 1, expected: 1875 * time.Millisecond},
		{name: "third_wait", attempt: 2, expected: 2343750 * time.Microsecond},
		{name: "capped", attempt: 10, expected: 5 * time.Second},
		{name: "stays_capped", attempt: 100, expected: 5 * time.Second},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, StatusBackoff.Delay(tc.attempt))
		})
	}
}

func TestBackoff_PollStopsOnDone(t *testing.T) {
	t.Parallel()

	b := Backoff{Start: time.Millisecond, Factor: 2, Cap: 5 * time.Millisecond, Timeout: time.Second}

	calls := 0
	err := b.Poll(context.Background(), func(context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestBackoff_PollPropagatesError(t *testing.T) {
	t.Parallel()

	b := Backoff{Start: time.Millisecond, Factor: 2, Cap: 5 * time.Millisecond, Timeout: time.Second}

	boom := errors.New("provider down")
	err := b.Poll(context.Background(), func(context.Context) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestBackoff_PollTimesOutAsRetryable(t *testing.T) {
	t.Parallel()

	b := Backoff{Start: 5 * time.Millisecond, Factor: 1.5, Cap: 10 * time.Millisecond, Timeout: 30 * time.Millisecond}

	err := b.Poll(context.Background(), func(context.Context) (bool, error) {
		return false, nil
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrDepositStatusFailed))
}

func TestBackoff_PollHonorsCallerCancel(t *testing.T) {
	t.Parallel()

	b := Backoff{Start: 50 * time.Millisecond, Factor: 1, Cap: 50 * time.Millisecond, Timeout: 10 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Poll(ctx, func(context.Context) (bool, error) {
		return false, nil
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrDepositStatusFailed))
}
