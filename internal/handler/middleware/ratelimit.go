package middleware

import (
	"errors"
	"net/http"
	"sync"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

type rateLimiter struct {
	limiters sync.Map
	cfg      config.RateLimitConfig
}

// NewRateLimitMiddleware limits requests per client IP. It returns nil when
// limiting is switched off.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return nil
	}
	l := &rateLimiter{cfg: cfg}

	return func(c *gin.Context) {
		if !l.getLimiter(c.ClientIP()).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)
	actual, _ := l.limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter)
}
