package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/auth"
	"homerepair/internal/revocation"
)

// AuthGuard admits requests carrying a valid token cookie. A missing cookie
// is 401; a token that fails verification or was logged out is 400.
func AuthGuard(tokens *auth.TokenService, denylist revocation.Denylist) gin.HandlerFunc {
	if denylist == nil {
		denylist = revocation.Noop{}
	}

	return func(c *gin.Context) {
		logger := LoggerFrom(c)

		raw, err := c.Cookie(auth.CookieName)
		raw = strings.TrimSpace(raw)
		if err != nil || raw == "" {
			logger.Debug("token cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			logger.Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid token"})
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), raw)
		if err != nil {
			logger.Warn("denylist lookup failed, admitting token", zap.Error(err))
		}
		if revoked {
			logger.Debug("token revoked")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(emailKey, auth.Email(claims))
		c.Next()
	}
}
