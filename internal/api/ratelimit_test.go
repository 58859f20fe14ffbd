package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenBucket(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(5, 1, clock.Now())

	for i := 0; i < 5; i++ {
		if !bucket.allow(clock.Now()) {
			t.Fatalf("request %d should be allowed (burst)", i+1)
		}
	}
	if bucket.allow(clock.Now()) {
		t.Error("6th request should be denied")
	}
	if got := bucket.reset(clock.Now()); !got.Equal(clock.Now().Add(5 * time.Second)) {
		t.Errorf("reset = %v, want full in 5s", got)
	}

	clock.Advance(time.Second)
	if !bucket.allow(clock.Now()) {
		t.Error("request after refill should be allowed")
	}
	if bucket.allow(clock.Now()) {
		t.Error("refill should add exactly one token")
	}

	clock.Advance(time.Hour)
	if got := bucket.remaining(clock.Now()); got != 5 {
		t.Errorf("remaining = %d, want capacity 5", got)
	}
	if got := bucket.reset(clock.Now()); !got.Equal(clock.Now()) {
		t.Errorf("full bucket reset = %v, want now", got)
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	clock := newFakeClock()
	rl := newRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 2}, clock.Now)

	for i := 0; i < 2; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request should be denied")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("another IP has its own bucket")
	}
	if got := rl.Remaining("10.0.0.2"); got != 1 {
		t.Errorf("Remaining = %d, want 1", got)
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	clock := newFakeClock()
	rl := newRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 1}, clock.Now)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	w := send()
	if w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "60" || w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("headers = %v", w.Header())
	}

	w = send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "2" {
		t.Errorf("Retry-After = %q, want 2", got)
	}
	if want := fmt.Sprintf("%d", clock.Now().Add(time.Second).Unix()); w.Header().Get("X-RateLimit-Reset") != want {
		t.Errorf("X-RateLimit-Reset = %q, want %s", w.Header().Get("X-RateLimit-Reset"), want)
	}

	clock.Advance(time.Second)
	if w := send(); w.Code != http.StatusOK {
		t.Errorf("status after refill = %d", w.Code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	clock := newFakeClock()
	rl := newRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 5}, clock.Now)

	rl.Allow("10.0.0.1")
	clock.Advance(3 * time.Minute)
	rl.Allow("10.0.0.2")
	clock.Advance(3 * time.Minute)

	if removed := rl.cleanup(); removed != 1 {
		t.Errorf("cleanup removed %d, want 1", removed)
	}
	rl.mu.RLock()
	_, stale := rl.buckets["10.0.0.1"]
	_, fresh := rl.buckets["10.0.0.2"]
	rl.mu.RUnlock()
	if stale || !fresh {
		t.Errorf("stale kept = %v, fresh kept = %v", stale, fresh)
	}
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 5})
	rl.Stop()
	rl.Stop()
}

func TestRateLimiterConcurrent(t *testing.T) {
	rl := newRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 50}, newFakeClock().Now)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want burst of 50", allowed)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{"remote addr", "192.0.2.1:1234", "", "", "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", "", "", "192.0.2.1"},
		{"forwarded", "10.0.0.1:1", "203.0.113.5, 10.0.0.1", "", "203.0.113.5"},
		{"invalid forwarded", "10.0.0.1:1", "not-an-ip", "", "10.0.0.1"},
		{"real ip", "10.0.0.1:1", "", "198.51.100.7", "198.51.100.7"},
		{"ipv6", "[2001:db8::1]:443", "", "", "2001:db8::1"},
		{"garbage", "garbage", "", "", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
