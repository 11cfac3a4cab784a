package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homevista/homevista_backend/internal/apperrors"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/middleware"
)

// bookingHandler handles HTTP requests for property viewing bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers routes related to viewing bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("/:id", h.getBooking)
		bookings.GET("", h.listBookings)
		bookings.POST("/:id/cancel", h.cancelBooking)
		bookings.POST("/:id/complete", h.completeBooking)
	}
}

// createBooking godoc
// @Summary Book a property viewing
// @Description Schedules a viewing for a property and generates a unique meeting link
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse "Invalid input, past time, or unknown property"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create booking"})
		return
	}

	logger.Info("Booking created", slog.String("booking_id", booking.BookingID), slog.String("property_id", booking.PropertyID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get a booking by ID
// @Description Retrieves details for a specific booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
			return
		}
		logger.Error("Failed to get booking from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve booking"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Retrieves a paginated list of bookings, most recently scheduled first
// @Tags bookings
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list bookings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ListBookingsResponse{Bookings: dto.ToListBookingResponse(bookings)})
}

// cancelBooking godoc
// @Summary Cancel a booking
// @Description Marks a scheduled booking as cancelled
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Booking is not in the scheduled state"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	h.transition(c, h.bookingService.CancelBooking, "cancel")
}

// completeBooking godoc
// @Summary Complete a booking
// @Description Marks a scheduled booking as completed after the viewing took place
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Booking is not in the scheduled state"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id}/complete [post]
func (h *bookingHandler) completeBooking(c *gin.Context) {
	h.transition(c, h.bookingService.CompleteBooking, "complete")
}

func (h *bookingHandler) transition(c *gin.Context, fn func(ctx context.Context, bookingID string, userID string) error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := fn(c.Request.Context(), bookingID, userID); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
			return
		}
		logger.Error("Failed to "+action+" booking", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action + " booking"})
		return
	}

	c.Status(http.StatusNoContent)
}
