package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-recipe-api/internal/core/auth"
	resp "go-recipe-api/internal/transport/http/response"
)

// CtxClaims is the context key holding the caller's verified claims.
const CtxClaims = "claims"

// sentinelToken is a reserved literal that never verifies; clients use it
// to exercise the missing-credential path without crafting a broken JWT.
const sentinelToken = "invalidToken"

// AuthJWT reads the raw token from the Authorization header. Absent or
// sentinel → 400, failed verification → 401; otherwise the decoded claims
// are attached to the request and the chain continues.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" || token == sentinelToken {
			c.AbortWithStatusJSON(http.StatusBadRequest, resp.Msg(resp.AuthFailed))
			return
		}
		claims, err := j.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Msg(resp.TokenNotValid))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Msg("Forbidden"))
			return
		}
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims set by AuthJWT, if any.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
