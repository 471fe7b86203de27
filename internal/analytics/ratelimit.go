package analytics

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client key (the caller's IP).
type ClientLimiter struct {
	mu      sync.RWMutex
	clients map[string]*clientEntry

	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time
}

// NewClientLimiter allows perMinute events per client with the given burst.
// Entries unused for idle are dropped by Sweep.
func NewClientLimiter(perMinute, burst int, idle time.Duration) *ClientLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 10
	}
	return &ClientLimiter{
		clients: make(map[string]*clientEntry),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idle:    idle,
		now:     time.Now,
	}
}

// Allow reports whether key may send another event now.
func (l *ClientLimiter) Allow(key string) bool {
	return l.entry(key).limiter.AllowN(l.now(), 1)
}

func (l *ClientLimiter) entry(key string) *clientEntry {
	now := l.now()

	l.mu.RLock()
	e, ok := l.clients[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		e.lastSeen = now
		l.mu.Unlock()
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if e, ok = l.clients[key]; ok {
		e.lastSeen = now
		return e
	}
	e = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.clients[key] = e
	return e
}

// Len returns the number of tracked clients
func (l *ClientLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// Sweep drops clients idle for longer than the idle window.
func (l *ClientLimiter) Sweep() int {
	cutoff := l.now().Add(-l.idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.clients {
		if e.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (l *ClientLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
