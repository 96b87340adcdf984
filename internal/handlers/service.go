package handlers

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/database"
	"homerepair/internal/middleware"
	"homerepair/internal/models"
)

/*
GET /all-services
- page and limit are optional; page defaults to 1, limit to defaultLimit
*/
func GetAllServices(services database.ServiceRepository, defaultLimit int64, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /all-services"

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), defaultLimit)
		if err != nil || page-1 > math.MaxInt64/limit {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := services.List(ctx, (page-1)*limit, limit)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Debug("services listed",
			zap.String("route", route),
			zap.Int64("page", page),
			zap.Int64("limit", limit),
			zap.Int("count", len(list)),
		)
		c.JSON(http.StatusOK, list)
	}
}

func GetServiceCount(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /service-count"

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		count, err := services.Count(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// GetPopularServices returns the first n services in store order.
func GetPopularServices(services database.ServiceRepository, n int64, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /popular-services"

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := services.Popular(ctx, n)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetMyServices lists the caller's own services. Requires AuthGuard.
func GetMyServices(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /my-services"

		email := c.Query("email")
		if !ensureOwnership(c, route, email) {
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := services.FindByProvider(ctx, email)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetService(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /services/:id"

		id, err := parseObjectID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid service id")
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		service, err := services.FindByID(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "service not found")
			return
		}
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

func AddService(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /add-service"

		var req models.CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		result, err := services.Insert(ctx, req.Service())
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Info("service created", zap.Any("id", result.InsertedID))
		c.JSON(http.StatusOK, result)
	}
}

// UpdateService replaces the descriptive fields of a service, creating the
// document when the id is unknown.
func UpdateService(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /update-service/:id"

		id, err := parseObjectID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid service id")
			return
		}

		var req models.ServiceFieldsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		result, err := services.Update(ctx, id, req.Fields())
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Info("service updated",
			zap.String("id", id.Hex()),
			zap.Int64("matched", result.MatchedCount),
			zap.Int64("upserted", result.UpsertedCount),
		)
		c.JSON(http.StatusOK, result)
	}
}

func DeleteService(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /delete-service/:id"

		id, err := parseObjectID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid service id")
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		result, err := services.Delete(ctx, id)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Info("service deleted", zap.String("id", id.Hex()), zap.Int64("deleted", result.DeletedCount))
		c.JSON(http.StatusOK, result)
	}
}

// SearchServices matches serviceName case-insensitively. The query is a
// literal substring; an empty query matches everything.
func SearchServices(services database.ServiceRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /search-services/:query"

		query := c.Param("query")
		if strings.TrimSpace(query) == "" {
			query = ""
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := services.Search(ctx, query)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
