package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"forum-backend/internal/auth"
	apperrors "forum-backend/internal/common/errors"
)

const claimsContextKey = "claims"

// RequireAuth extracts and verifies the bearer token from the Authorization
// header. A missing token is Unauthenticated (401); a present but invalid or
// expired one is Forbidden (403). On success the claim is stored in the gin
// context and trusted as-is for the rest of the request; the user is not
// re-read from storage.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			AbortWithError(c, apperrors.New(apperrors.ErrCodeForbidden, "invalid or expired token"))
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the session claim stored by RequireAuth.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
