package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"homerepair/internal/middleware"
)

const defaultRequestTimeout = 5 * time.Second

var errInvalidID = errors.New("invalid id")

func respondWithError(c *gin.Context, status int, route string, message string) {
	middleware.LoggerFrom(c).Info("returning error",
		zap.String("route", route),
		zap.Int("status", status),
		zap.String("message", message),
	)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// respondStoreError logs the underlying failure and hides it from the client.
func respondStoreError(c *gin.Context, route string, err error) {
	middleware.LoggerFrom(c).Error("store operation failed", zap.String("route", route), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "database error"})
}

func respondValidationError(c *gin.Context, route string, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		middleware.LoggerFrom(c).Info("validation failed", zap.String("route", route), zap.Strings("details", details))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"details": details,
		})
		return
	}

	respondWithError(c, http.StatusBadRequest, route, "invalid request body")
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, errInvalidID
	}
	return id, nil
}

// ensureOwnership aborts with 403 unless the caller's token email equals
// requested. A token without an email owns nothing.
func ensureOwnership(c *gin.Context, route, requested string) bool {
	email := middleware.EmailFromContext(c)
	if email == "" || email != requested {
		middleware.LoggerFrom(c).Debug("ownership mismatch",
			zap.String("route", route),
			zap.String("caller", email),
			zap.String("requested", requested),
		)
		respondWithError(c, http.StatusForbidden, route, "forbidden access")
		return false
	}
	return true
}

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
