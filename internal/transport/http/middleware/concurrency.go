package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "go-recipe-api/internal/transport/http/response"
)

// ConcurrencyLimit caps requests in flight, protecting the store behind.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, resp.Msg("server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
