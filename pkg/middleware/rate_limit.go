package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	mem "planventure/pkg/memcache"
	"planventure/pkg/utils"
)

// RateLimitMiddleware caps a route at limit requests per window, keyed by the
// authenticated user. Unauthenticated requests fall back to the client IP.
func RateLimitMiddleware(store mem.RateLimiterStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !store.Allow(key, limit, window) {
			utils.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
