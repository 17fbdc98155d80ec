package worker

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests against the directory host: a token-bucket rate
// limit plus a random jitter pause between requests, so a run looks like a
// patient reader rather than a burst of hits.
type Limiter struct {
	limiter   *rate.Limiter
	jitterMin time.Duration
	jitterMax time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLimiter creates a Limiter. Equal jitter bounds give a fixed pause;
// zero bounds disable the pause entirely.
func NewLimiter(requestsPerSecond float64, burst int, jitterMin, jitterMax time.Duration) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		jitterMin: jitterMin,
		jitterMax: jitterMax,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait blocks until the next request is allowed to go out.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}

	jitter := l.nextJitter()
	if jitter <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(jitter):
		return nil
	}
}

func (l *Limiter) nextJitter() time.Duration {
	if l.jitterMax <= l.jitterMin {
		return l.jitterMin
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.jitterMin + time.Duration(l.rng.Int63n(int64(l.jitterMax-l.jitterMin)))
}
