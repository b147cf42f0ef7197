package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const minVisitorTTL = 3 * time.Minute

// LoginLimiter throttles login attempts per client IP
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	interval := time.Minute / time.Duration(perMinute)
	// an entry idle this long has a full bucket again, so dropping it changes nothing
	ttl := max(interval*time.Duration(burst), minVisitorTTL)
	return &LoginLimiter{
		visitors: map[string]*visitor{},
		limit:    rate.Every(interval),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (l *LoginLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

// evictIdle drops visitors not seen for longer than the ttl and returns how many went
func (l *LoginLimiter) evictIdle() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-l.ttl)
	n := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			n++
		}
	}
	return n
}

// Run evicts idle visitors every interval until ctx is done
func (l *LoginLimiter) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *LoginLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Middleware rejects requests over the limit with 429
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			tr := Translator(c)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": tr.T("login.tooManyAttempts")})
			return
		}
		c.Next()
	}
}
