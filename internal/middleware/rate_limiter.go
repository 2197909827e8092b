package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/veaveberg/qreate/pkg/log"
)

// limiterIdleTTL is how long a client may stay quiet before its limiter is
// dropped. A returning client starts again with a full burst.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	bucket    map[string]*visitor
	rate      rate.Limit
	burstSize int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	mutex     sync.Mutex
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		bucket:    make(map[string]*visitor),
		rate:      reqRate,
		burstSize: burstSize,
		idleTTL:   limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (r *rateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idleTTL {
		r.sweep(now)
	}

	v, ok := r.bucket[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.rate, r.burstSize)}
		r.bucket[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops every visitor idle for at least idleTTL. Callers hold mutex.
func (r *rateLimiter) sweep(now time.Time) {
	for ip, v := range r.bucket {
		if now.Sub(v.lastSeen) >= r.idleTTL {
			delete(r.bucket, ip)
		}
	}
	r.lastSweep = now
}

// RateLimit allows perSecond requests per client IP with the given burst and
// answers 429 beyond that.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	limiter := newRateLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.limiterFor(clientIP).Allow() {
			log.Warn(log.Fields{
				log.RequestIDKey: GetRequestID(c),
				"ip":             clientIP,
			}, "[middleware.RateLimit] too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
