package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/config"
	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

// RateLimiter throttles page actions with a token bucket per caller.
// Signed-in callers are keyed by user ID, anonymous ones by client IP.
type RateLimiter struct {
	capacity   float64
	refillRate float64 // tokens per second
	idleAfter  time.Duration
	buckets    sync.Map // map[string]*bucket
	now        func() time.Time
	stop       chan struct{}
	once       sync.Once
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing cfg.Actions per cfg.Window and
// starts its idle-bucket sweeper. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := newRateLimiter(cfg, time.Now)
	go rl.sweepLoop(cfg.CleanupInterval)
	return rl
}

func newRateLimiter(cfg config.RateLimitConfig, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity:   float64(cfg.Actions),
		refillRate: float64(cfg.Actions) / cfg.Window.Seconds(),
		idleAfter:  max(cfg.Window*2, 10*time.Minute),
		now:        now,
		stop:       make(chan struct{}),
	}
}

// Stop terminates the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit rejects callers that exhausted their bucket with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.take(callerKey(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			writeError(w, http.StatusTooManyRequests, errorBody{Error: "too many requests, please slow down"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// take consumes one token for key. When none is left it reports how long
// until the next one.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	now := rl.now()
	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: rl.capacity, lastSeen: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(rl.capacity, b.tokens+now.Sub(b.lastSeen).Seconds()*rl.refillRate)
	b.lastSeen = now

	if b.tokens < 1 {
		missing := 1 - b.tokens
		return false, time.Duration(missing / rl.refillRate * float64(time.Second))
	}
	b.tokens--
	return true, 0
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops buckets idle for longer than idleAfter and returns how many
// were removed.
func (rl *RateLimiter) sweep() int {
	now := rl.now()
	removed := 0
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > rl.idleAfter {
			rl.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
