package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripglide/tripglide-api/internal/service"
	"github.com/tripglide/tripglide-api/internal/util"
)

type SavedTripHandler struct {
	saved *service.SavedTripService
}

func RegisterSavedTrips(e *echo.Echo, auth *service.AuthService, saved *service.SavedTripService) {
	handler := &SavedTripHandler{saved: saved}

	protected := e.Group("/api/v1/trips", RequireAuth(auth))
	protected.POST("/:id/toggle-save", handler.toggleSave)
	protected.GET("/saved", handler.listSaved)
}

func (h *SavedTripHandler) toggleSave(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}

	saved, err := h.saved.Toggle(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("UNAVAILABLE", "saved trips temporarily unavailable"))
	}

	message := "Trip removed from saved trips"
	if saved {
		message = "Trip saved"
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trip_id": tripID,
		"saved":   saved,
		"message": message,
	})
}

func (h *SavedTripHandler) listSaved(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	items, err := h.saved.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("UNAVAILABLE", "saved trips temporarily unavailable"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"saved_trips": items,
		"count":       len(items),
	})
}
