package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-recipe-api/internal/transport/http/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Msg("internal error"))
			}
		}()
		c.Next()
	}
}
