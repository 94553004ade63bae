package contact

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func allow(l *Limiter, ip string) bool {
	_, ok := l.Reserve(ip)
	return ok
}

func TestLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewLimiter(2, 200*time.Millisecond)
	defer limiter.Close()
	ip := "203.0.113.10"

	if !allow(limiter, ip) {
		t.Fatalf("expected first submission to be allowed")
	}
	if !allow(limiter, ip) {
		t.Fatalf("expected second submission to be allowed")
	}
	if allow(limiter, ip) {
		t.Fatalf("expected third submission to be blocked")
	}
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewLimiter(1, 150*time.Millisecond)
	defer limiter.Close()
	ip := "203.0.113.20"

	if !allow(limiter, ip) {
		t.Fatalf("expected first submission to be allowed")
	}
	if allow(limiter, ip) {
		t.Fatalf("expected second submission to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !allow(limiter, ip) {
		t.Fatalf("expected submission after window to be allowed")
	}
}

func TestLimiterIsPerIP(t *testing.T) {
	limiter := NewLimiter(1, 200*time.Millisecond)
	defer limiter.Close()

	if !allow(limiter, "203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !allow(limiter, "203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if allow(limiter, "203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestLimiterReleaseReturnsSlot(t *testing.T) {
	limiter := NewLimiter(1, time.Minute)
	defer limiter.Close()
	ip := "203.0.113.40"

	release, ok := limiter.Reserve(ip)
	if !ok {
		t.Fatalf("expected first reservation to succeed")
	}
	if allow(limiter, ip) {
		t.Fatalf("expected ip to be blocked while the slot is held")
	}
	release()
	release()

	if _, ok := limiter.Reserve(ip); !ok {
		t.Fatalf("expected released slot to be reusable")
	}
	if allow(limiter, ip) {
		t.Fatalf("expected double release to free only one slot")
	}
}

func TestLimiterReserveConcurrent(t *testing.T) {
	limiter := NewLimiter(5, time.Minute)
	defer limiter.Close()

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allow(limiter, "203.0.113.41") {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := granted.Load(); got != 5 {
		t.Fatalf("granted %d reservations, want 5", got)
	}
}

func TestLimiterCloseIsIdempotent(t *testing.T) {
	limiter := NewLimiter(1, time.Minute)
	limiter.Close()
	limiter.Close()
}
