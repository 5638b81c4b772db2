package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripglide/tripglide-api/internal/service"
	"github.com/tripglide/tripglide-api/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

type createBookingRequest struct {
	Travelers       int    `json:"travelers"`
	TravelDate      string `json:"travel_date"`
	SpecialRequests string `json:"special_requests"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	// TotalPrice is advisory; the stored booking carries the server-computed
	// total regardless of what the client sends.
	TotalPrice *float64 `json:"total_price"`
}

func RegisterBookings(e *echo.Echo, auth *service.AuthService, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	protected := e.Group("/api/v1/trips", RequireAuth(auth))
	protected.POST("/:id/book", handler.createBooking)
	protected.GET("/bookings", handler.listBookings)
	protected.GET("/bookings/:bookingId", handler.getBooking)
	protected.POST("/bookings/:bookingId/cancel", handler.cancelBooking)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid request body"))
	}

	booking, err := h.bookings.Create(c.Request().Context(), tripID, user.ID, service.BookingDraft{
		Travelers:       req.Travelers,
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		return writeBookingError(c, err)
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"message":           "Booking confirmed",
		"booking_reference": booking.Reference,
		"booking":           booking,
	})
}

func (h *BookingHandler) listBookings(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	bookings, err := h.bookings.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

func (h *BookingHandler) getBooking(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid booking id"))
	}

	booking, err := h.bookings.GetForUser(c.Request().Context(), bookingID, user.ID)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}

func (h *BookingHandler) cancelBooking(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid booking id"))
	}

	booking, err := h.bookings.Cancel(c.Request().Context(), bookingID, user.ID)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"message": "Booking cancelled",
		"booking": booking,
	})
}

func writeBookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		return c.JSON(http.StatusNotFound, util.ErrorCode("TRIP_NOT_FOUND", "trip not found"))
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, util.ErrorCode("BOOKING_NOT_FOUND", "booking not found"))
	case errors.Is(err, service.ErrBookingValidation):
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", err.Error()))
	case errors.Is(err, service.ErrBookingForbidden):
		return c.JSON(http.StatusForbidden, util.ErrorCode("FORBIDDEN", "booking belongs to another user"))
	case errors.Is(err, service.ErrBookingAlreadyCancelled):
		return c.JSON(http.StatusConflict, util.ErrorCode("ALREADY_CANCELLED", "booking is already cancelled"))
	case errors.Is(err, service.ErrReferenceExhausted):
		return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("REFERENCE_EXHAUSTED", "could not allocate a booking reference, please retry"))
	default:
		return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("UNAVAILABLE", "bookings temporarily unavailable"))
	}
}
