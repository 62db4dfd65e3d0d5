package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// RateLimiter caps how often one caller may hit a route within a fixed window.
// Callers are identified by token subject, or by client IP on unauthenticated routes.
type RateLimiter struct {
	counter     WindowCounter
	maxRequests int
	window      time.Duration
}

// NewRateLimiter allows maxRequests per caller within each window.
func NewRateLimiter(counter WindowCounter, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter:     counter,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
// When the counter is unavailable the request is let through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + callerKey(c)

		hits, resetIn, err := rl.counter.Hit(c.Request.Context(), key, rl.window)
		if err != nil {
			slog.Warn("Rate limiter unavailable", "path", c.FullPath(), "error", err)
			c.Next()
			return
		}

		remaining := rl.maxRequests - hits
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if hits > rl.maxRequests {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if subject, ok := GetSubjectFromContext(c); ok && subject != "" {
		return "sub:" + subject
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + c.Request.RemoteAddr
}
