package middleware

import (
	"strconv"
	"sync"
	"time"

	"cwist/wire"
)

// MaxIPTrack bounds the rate limiter's tracked-IP table. Once full,
// new IPs evict the oldest-seen entry.
const MaxIPTrack = 1024

const rateWindow = 60 * time.Second

type ipWindow struct {
	windowStart time.Time
	count       int
	seenAt      time.Time
}

// RateLimiter is a fixed-window, per-client-IP request limiter. A
// single mutex guards the whole table rather than per-IP locks.
type RateLimiter struct {
	mu    sync.Mutex
	limit int
	table map[string]*ipWindow
}

// NewRateLimiter builds a limiter allowing at most limit requests per
// fixed 60-second window per client IP (default 60/min).
func NewRateLimiter(limit int) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	return &RateLimiter{limit: limit, table: make(map[string]*ipWindow)}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.table[ip]
	if !ok {
		if len(rl.table) >= MaxIPTrack {
			rl.evictOldestLocked()
		}
		w = &ipWindow{windowStart: now, count: 0}
		rl.table[ip] = w
	}
	w.seenAt = now

	if now.Sub(w.windowStart) >= rateWindow {
		w.windowStart = now
		w.count = 0
	}
	w.count++
	return w.count <= rl.limit
}

func (rl *RateLimiter) evictOldestLocked() {
	var oldestIP string
	var oldestAt time.Time
	for ip, w := range rl.table {
		if oldestIP == "" || w.seenAt.Before(oldestAt) {
			oldestIP = ip
			oldestAt = w.seenAt
		}
	}
	delete(rl.table, oldestIP)
}

// Middleware returns the cwist middleware enforcing this limiter.
func (rl *RateLimiter) Middleware() Middleware {
	return func(req *wire.Request, next Next) *wire.Response {
		ip := clientIP(req.RemoteAddr)
		if !rl.allow(ip, time.Now()) {
			resp := wire.NewResponse(req.Version, 429)
			resp.SetHeader("Retry-After", strconv.Itoa(int(rateWindow.Seconds())))
			resp.SetHeader("Content-Type", "application/json")
			resp.SetBody([]byte(`{"error":"rate limit exceeded"}`))
			return resp
		}
		return next(req)
	}
}

// clientIP strips the port from a "host:port" RemoteAddr, falling back to
// the raw value if it carries no port (e.g. already bare, or a non-TCP
// transport).
func clientIP(remoteAddr string) string {
	for i := len(remoteAddr) - 1; i >= 0; i-- {
		if remoteAddr[i] == ':' {
			return remoteAddr[:i]
		}
	}
	return remoteAddr
}
