package contact

import (
	"sync"
	"time"
)

// Limiter caps accepted submissions per client IP within a sliding window.
type Limiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewLimiter creates a Limiter that allows max submissions per window.
// Call Close to stop its background cleanup.
func NewLimiter(max int, window time.Duration) *Limiter {
	l := &Limiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
		}
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.attempts {
			kept := prune(hits, cutoff)
			if len(kept) == 0 {
				delete(l.attempts, ip)
			} else {
				l.attempts[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Reserve claims one slot for ip when it is under the limit. The check and
// the claim happen under one lock, so concurrent callers cannot overshoot
// max. Calling release gives the slot back; it is safe to call more than
// once.
func (l *Limiter) Reserve(ip string) (release func(), ok bool) {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.attempts[ip], cutoff)
	if len(kept) >= l.max {
		l.attempts[ip] = kept
		return func() {}, false
	}
	l.attempts[ip] = append(kept, now)

	var once sync.Once
	return func() { once.Do(func() { l.unreserve(ip, now) }) }, true
}

func (l *Limiter) unreserve(ip string, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[ip]
	for i, t := range hits {
		if t.Equal(at) {
			hits = append(hits[:i], hits[i+1:]...)
			break
		}
	}
	if len(hits) == 0 {
		delete(l.attempts, ip)
		return
	}
	l.attempts[ip] = hits
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
