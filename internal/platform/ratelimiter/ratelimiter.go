// Package ratelimiter applies a token bucket per client key.
package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleTTL = 10 * time.Minute

// PerKey holds one token bucket per key and evicts buckets idle longer
// than idleTTL so the map cannot grow without bound.
type PerKey struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a per-key limiter; returns nil (always-allow) if args are
// invalid.
func New(rps float64, burst int) *PerKey {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &PerKey{
		limit:   rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether one token can be consumed for key at now.
func (l *PerKey) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if now.Sub(l.lastSweep) > idleTTL {
		cutoff := now.Add(-idleTTL)
		for k, v := range l.buckets {
			if v.lastSeen.Before(cutoff) {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	return b.limiter.AllowN(now, 1)
}
