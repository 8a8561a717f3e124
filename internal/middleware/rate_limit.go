// internal/middleware/rate_limit.go
package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key. Clients idle for longer than idleTTL are
// evicted by a sweep that runs inline, at most once per sweepEvery, so no goroutine outlives it.
type RateLimiter struct {
	mtx        sync.Mutex
	clients    map[string]*client
	rate       rate.Limit
	burst      int
	idleTTL    time.Duration
	sweepEvery time.Duration
	lastSweep  time.Time
	now        func() time.Time
	key        func(*gin.Context) string
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*client),
		rate:       r,
		burst:      b,
		idleTTL:    3 * time.Minute,
		sweepEvery: time.Minute,
		lastSweep:  time.Now(),
		now:        time.Now,
		key:        func(c *gin.Context) string { return c.ClientIP() },
	}
}

// evictIdle drops idle clients. The caller holds rl.mtx.
func (rl *RateLimiter) evictIdle(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.sweepEvery {
		return
	}
	rl.lastSweep = now
	for key, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > rl.idleTTL {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	now := rl.now()
	rl.evictIdle(now)

	cl, ok := rl.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (rl *RateLimiter) clientCount() int {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()
	return len(rl.clients)
}

// Middleware answers 429 with a Retry-After hint once a client's bucket is empty.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reservation := rl.limiterFor(rl.key(c)).Reserve()
		if delay := reservation.Delay(); !reservation.OK() || delay > 0 {
			reservation.Cancel()
			if reservation.OK() {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			}
			utils.TooManyRequestsResponse(c)
			return
		}

		c.Next()
	}
}

func GeneralRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(rate.Limit(cfg.GeneralPerSecond), cfg.GeneralBurst).Middleware()
}

func AuthRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(rate.Limit(cfg.AuthPerMinute/60), cfg.AuthBurst).Middleware()
}
