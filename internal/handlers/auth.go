package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/auth"
	"homerepair/internal/middleware"
	"homerepair/internal/revocation"
)

// IssueToken signs the request body as token claims and sets it as the
// token cookie. The body is not checked beyond being a JSON object.
func IssueToken(tokens *auth.TokenService, cookies auth.CookiePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /jwt"

		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		token, err := tokens.Issue(payload)
		if err != nil {
			middleware.LoggerFrom(c).Error("token signing failed", zap.Error(err))
			respondWithError(c, http.StatusInternalServerError, route, "could not create token")
			return
		}

		cookies.Set(c, token)
		middleware.LoggerFrom(c).Debug("token issued", zap.String("email", auth.Email(payload)))
		c.JSON(http.StatusOK, gin.H{"message": "Token created"})
	}
}

// Logout clears the token cookie. When a denylist is configured a still
// valid token is also revoked until it expires.
func Logout(tokens *auth.TokenService, cookies auth.CookiePolicy, denylist revocation.Denylist) gin.HandlerFunc {
	if denylist == nil {
		denylist = revocation.Noop{}
	}

	return func(c *gin.Context) {
		const route = "POST /logout"
		logger := middleware.LoggerFrom(c)

		if raw, err := c.Cookie(auth.CookieName); err == nil && raw != "" {
			if claims, err := tokens.Verify(raw); err == nil {
				if exp, ok := auth.ExpiresAt(claims); ok {
					ctx, cancel := requestContext(c, 0)
					if err := denylist.Revoke(ctx, raw, time.Until(exp)); err != nil {
						logger.Warn("token revocation failed", zap.String("route", route), zap.Error(err))
					}
					cancel()
				}
			}
		}

		cookies.Clear(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
