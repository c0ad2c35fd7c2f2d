package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/utils"
)

const claimsKey = "claims"

// TokenVerifier decodes a bearer token into claims.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// AuthMiddleware rejects requests without an Authorization header (401) or
// whose bearer token does not verify (403). Verified claims are stored on the
// context for ClaimsFromContext.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "UnAuthorized access")
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
			utils.Forbidden(c, "Forbidden access")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			utils.Forbidden(c, "Forbidden access")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*utils.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}
