package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	claimsKey    = "claims"
	emailKey     = "email"
	loggerKey    = "logger"
	requestIDKey = "requestId"
)

// ClaimsFromContext returns the claims AuthGuard stored for this request.
func ClaimsFromContext(c *gin.Context) (jwt.MapClaims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(jwt.MapClaims)
	return claims, ok
}

// EmailFromContext returns the email claim of the authenticated caller, or ""
// when the token carried none.
func EmailFromContext(c *gin.Context) string {
	return c.GetString(emailKey)
}

func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LoggerFrom returns the request scoped logger, falling back to the global
// one outside RequestLogger.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if value, ok := c.Get(loggerKey); ok {
		if logger, ok := value.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
