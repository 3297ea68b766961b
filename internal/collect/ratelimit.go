package collect

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket sized for one upstream source. The bucket is
// refilled in discrete whole-window steps, never continuously: a fractional
// window yields no tokens. Callers that find the bucket empty queue up and
// are served strictly in arrival order once a refill yields spare tokens.
//
// Limiters are constructed explicitly and injected by the orchestrator's
// configuration so tests can substitute deterministic clocks and limits.
type Limiter struct {
	mu         sync.Mutex
	maxTokens  int
	window     time.Duration
	tokens     int
	lastRefill time.Time
	waiters    []*waiter
	now        func() time.Time
}

// waiter represents one queued Acquire call.
type waiter struct {
	ready   chan struct{}
	granted bool
}

// NewLimiter creates a full bucket of maxTokens refilled every window.
func NewLimiter(maxTokens int, window time.Duration) *Limiter {
	return NewLimiterWithClock(maxTokens, window, time.Now)
}

// NewLimiterWithClock creates a Limiter with an injected clock for tests.
func NewLimiterWithClock(maxTokens int, window time.Duration, now func() time.Time) *Limiter {
	if maxTokens < 1 {
		maxTokens = 1
	}
	return &Limiter{
		maxTokens:  maxTokens,
		window:     window,
		tokens:     maxTokens,
		lastRefill: now(),
		now:        now,
	}
}

// Acquire blocks until a token is available or ctx is done. Tokens are
// handed out in FIFO order across concurrent callers.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	l.refillLocked()
	if len(l.waiters) == 0 && l.tokens > 0 {
		l.tokens--
		l.mu.Unlock()
		return nil
	}

	w := &waiter{ready: make(chan struct{})}
	l.waiters = append(l.waiters, w)
	wait := l.untilRefillLocked()
	l.mu.Unlock()

	for {
		timer := time.NewTimer(wait)
		select {
		case <-w.ready:
			timer.Stop()
			return nil

		case <-ctx.Done():
			timer.Stop()
			l.mu.Lock()
			if l.removeWaiterLocked(w) {
				l.mu.Unlock()
				return ctx.Err()
			}
			// Granted between cancellation and lock: hand the token back.
			l.tokens = min(l.tokens+1, l.maxTokens)
			l.serveWaitersLocked()
			l.mu.Unlock()
			return ctx.Err()

		case <-timer.C:
			l.mu.Lock()
			l.refillLocked()
			wait = l.untilRefillLocked()
			l.mu.Unlock()
			// If the refill granted our slot, the ready case fires next loop.
		}
	}
}

// Remaining refills first, then returns the current token count.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillLocked()
	return l.tokens
}

// UntilRefill returns the non-negative duration until the next whole-window refill.
func (l *Limiter) UntilRefill() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillLocked()
	return l.untilRefillLocked()
}

// refillLocked tops the bucket up when at least one whole window has elapsed
// and serves queued waiters in FIFO order. Callers hold l.mu.
func (l *Limiter) refillLocked() {
	if l.now().Sub(l.lastRefill) < l.window {
		return
	}
	l.tokens = l.maxTokens
	l.lastRefill = l.now()
	l.serveWaitersLocked()
}

// serveWaitersLocked grants tokens to queued waiters in arrival order.
func (l *Limiter) serveWaitersLocked() {
	for l.tokens > 0 && len(l.waiters) > 0 {
		head := l.waiters[0]
		l.waiters = l.waiters[1:]
		l.tokens--
		head.granted = true
		close(head.ready)
	}
}

// removeWaiterLocked removes w from the queue, returning false when w was
// already granted a token.
func (l *Limiter) removeWaiterLocked(w *waiter) bool {
	if w.granted {
		return false
	}
	for i, queued := range l.waiters {
		if queued == w {
			l.waiters = append(l.waiters[:i], l.waiters[i+1:]...)
			return true
		}
	}
	return false
}

// untilRefillLocked computes the remaining time in the current window.
func (l *Limiter) untilRefillLocked() time.Duration {
	remaining := l.window - l.now().Sub(l.lastRefill)
	if remaining < 0 {
		return 0
	}
	return remaining
}
