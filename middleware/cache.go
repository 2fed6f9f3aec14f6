package middleware

import "github.com/gin-gonic/gin"

// NoStoreMiddleware disables intermediary caching. Aggregates and the
// health score are recomputed from the live log on every read, so serving
// a cached response would show stale state after an append.
func NoStoreMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
