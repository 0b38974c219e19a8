// Package sendlimit paces outbound messages with an adaptive token bucket.
// The rate climbs slowly while sends succeed and is cut when the remote end
// pushes back, so a burst of reminders never trips the platform limiter.
package sendlimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	min      rate.Limit
	max      rate.Limit
	lastFail time.Time
}

// New creates a limiter starting at initial sends per second, bounded by
// [min, max].
func New(initial, min, max rate.Limit) *Limiter {
	if min < 1 {
		min = 1
	}
	if initial < min {
		initial = min
	}
	if max < initial {
		max = initial
	}
	return &Limiter{
		limiter: rate.NewLimiter(initial, int(initial)),
		min:     min,
		max:     max,
	}
}

// Wait blocks until a send slot is available or the context ends.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Done reports the outcome of a send. Failures halve the rate immediately;
// a success nudges it back up once the last failure is ten seconds old.
func (l *Limiter) Done(failed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if failed {
		l.lastFail = time.Now()
		l.set(l.limiter.Limit() / 2)
		return
	}
	if time.Since(l.lastFail) > 10*time.Second {
		l.set(l.limiter.Limit() + 1)
	}
}

// Rate returns the current sends per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return float64(l.limiter.Limit())
}

func (l *Limiter) set(limit rate.Limit) {
	if limit > l.max {
		limit = l.max
	}
	if limit < l.min {
		limit = l.min
	}
	if limit != l.limiter.Limit() {
		l.limiter.SetLimit(limit)
		burst := int(limit)
		if burst < 1 {
			burst = 1
		}
		l.limiter.SetBurst(burst)
	}
}
