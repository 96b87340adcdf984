package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/database"
	"homerepair/internal/middleware"
	"homerepair/internal/models"
)

// BookService stores the booking snapshot as submitted. The referenced
// service is not looked up and duplicates are allowed.
func BookService(bookings database.BookingRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /book-service"

		var req models.BookServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		result, err := bookings.Insert(ctx, req.Booking())
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Info("service booked", zap.Any("id", result.InsertedID), zap.String("serviceId", req.ServiceID))
		c.JSON(http.StatusOK, result)
	}
}

// GetBookedServices lists the caller's bookings as a customer.
func GetBookedServices(bookings database.BookingRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /booked-services"

		email := c.Query("email")
		if !ensureOwnership(c, route, email) {
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := bookings.FindByCustomer(ctx, email)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetServiceToDo lists bookings made against the caller's services.
func GetServiceToDo(bookings database.BookingRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /service-to-do"

		email := c.Query("email")
		if !ensureOwnership(c, route, email) {
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		list, err := bookings.FindByProvider(ctx, email)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateBookingStatus overwrites serviceStatus. Any non-empty value is
// accepted and there is no transition check.
func UpdateBookingStatus(bookings database.BookingRepository, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /update-status/:id"

		id, err := parseObjectID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid booking id")
			return
		}

		var req models.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		result, err := bookings.UpdateStatus(ctx, id, req.UpdatedStatus)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		middleware.LoggerFrom(c).Info("booking status updated",
			zap.String("id", id.Hex()),
			zap.String("status", req.UpdatedStatus),
			zap.Int64("matched", result.MatchedCount),
		)
		c.JSON(http.StatusOK, result)
	}
}
