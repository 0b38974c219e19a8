package sendlimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoneAdjustsRate(t *testing.T) {
	l := New(8, 1, 20)
	require.Equal(t, float64(8), l.Rate())

	l.Done(true)
	require.Equal(t, float64(4), l.Rate())
	l.Done(true)
	l.Done(true)
	l.Done(true)
	require.Equal(t, float64(1), l.Rate(), "rate never drops below min")

	// Success right after a failure does not climb.
	l.Done(false)
	require.Equal(t, float64(1), l.Rate())
}

func TestRateCapped(t *testing.T) {
	l := New(2, 1, 3)
	l.Done(false)
	l.Done(false)
	l.Done(false)
	require.Equal(t, float64(3), l.Rate())
}

func TestWaitRespectsContext(t *testing.T) {
	l := New(1, 1, 1)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Bucket is drained; a canceled context must not block.
	require.Error(t, l.Wait(ctx))
}
