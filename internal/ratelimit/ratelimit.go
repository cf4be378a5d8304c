package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Limiter decides whether a client may perform another write
type Limiter interface {
	Allow(key string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per client key in memory.
// A bucket untouched for a full refill period is dropped on the next sweep.
type InMemoryLimiter struct {
	clock     clockwork.Clock
	mu        sync.Mutex
	clients   map[string]*bucket
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(clock, 20, time.Minute, 10) -> 20 writes a minute per client, burst of 10
func NewInMemoryLimiter(clock clockwork.Clock, requests int, per time.Duration, burst int) *InMemoryLimiter {
	return &InMemoryLimiter{
		clock:     clock,
		clients:   make(map[string]*bucket),
		r:         rate.Every(per / time.Duration(requests)),
		b:         burst,
		idle:      per,
		lastSweep: clock.Now(),
	}
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow reports whether the client identified by key may act now
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked client keys
func (l *InMemoryLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *InMemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idle {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}
