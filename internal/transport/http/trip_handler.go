package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/media"
	"github.com/tripglide/tripglide-api/internal/ranking"
	"github.com/tripglide/tripglide-api/internal/service"
	"github.com/tripglide/tripglide-api/internal/util"
)

type TripHandler struct {
	trips *service.TripService
}

type tripRequest struct {
	Title       string           `json:"title"`
	Country     string           `json:"country"`
	Category    string           `json:"category"`
	Subtitle    string           `json:"subtitle"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Gallery     []string         `json:"gallery"`
	Days        int              `json:"days"`
	Rating      float64          `json:"rating"`
	Reviews     int              `json:"reviews"`
	PriceValue  float64          `json:"priceValue"`
	Itinerary   domain.Itinerary `json:"itinerary"`
}

func RegisterTrips(e *echo.Echo, auth *service.AuthService, trips *service.TripService) {
	handler := &TripHandler{trips: trips}

	public := e.Group("/api/v1/trips")
	public.GET("", handler.listTrips)
	public.GET("/search", handler.searchTrips)
	public.GET("/category/:category", handler.listByCategory)
	public.GET("/country/:country", handler.listByCountry)
	public.GET("/:id", handler.getTrip)

	protected := e.Group("/api/v1/trips", RequireAuth(auth))
	protected.POST("", handler.createTrip)
	protected.PUT("/:id", handler.updateTrip)
	protected.DELETE("/:id", handler.deleteTrip)
	protected.POST("/:id/hero-image", handler.uploadHeroImage)
}

func (h *TripHandler) listTrips(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		category = domain.CategoryAll
	}
	query := strings.TrimSpace(c.QueryParam("q"))
	// Unknown sort keys silently fall back to recommended.
	key := ranking.ParseSortKey(c.QueryParam("sort"))

	trips, err := h.trips.Browse(c.Request().Context(), category, query, key)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *TripHandler) searchTrips(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "search query is required"))
	}
	trips, err := h.trips.Search(c.Request().Context(), query)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *TripHandler) listByCategory(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	trips, err := h.trips.ByCategory(c.Request().Context(), category)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *TripHandler) listByCountry(c echo.Context) error {
	country := strings.TrimSpace(c.Param("country"))
	trips, err := h.trips.ByCountry(c.Request().Context(), country)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *TripHandler) getTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}
	trip, err := h.trips.Get(c.Request().Context(), tripID)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"trip": trip})
}

func (h *TripHandler) createTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req tripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid request body"))
	}

	trip, err := h.trips.Create(c.Request().Context(), user.ID, req.toInput(), nil)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Envelope{"trip": trip})
}

func (h *TripHandler) updateTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}

	var req tripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid request body"))
	}

	trip, err := h.trips.Update(c.Request().Context(), tripID, user.ID, req.toInput(), nil)
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"trip": trip})
}

func (h *TripHandler) deleteTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}

	if err := h.trips.Delete(c.Request().Context(), tripID, user.ID); err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"trip_id": tripID,
		"message": "Trip deleted",
	})
}

func (h *TripHandler) uploadHeroImage(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid trip id"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "file upload required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "unable to read upload"))
	}
	defer src.Close()

	trip, err := h.trips.SetHeroImage(c.Request().Context(), tripID, user.ID, media.Upload{
		Reader:      src,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return writeTripError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"trip": trip})
}

func (r tripRequest) toInput() service.TripInput {
	return service.TripInput{
		Title:       r.Title,
		Country:     r.Country,
		Category:    r.Category,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		ImageURL:    r.Image,
		Gallery:     r.Gallery,
		Days:        r.Days,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		PriceValue:  r.PriceValue,
		Itinerary:   r.Itinerary,
	}
}

func writeTripError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		return c.JSON(http.StatusNotFound, util.ErrorCode("TRIP_NOT_FOUND", "trip not found"))
	case errors.Is(err, service.ErrTripForbidden):
		return c.JSON(http.StatusForbidden, util.ErrorCode("FORBIDDEN", "only the author may modify this trip"))
	case errors.Is(err, service.ErrTripValidation):
		return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", err.Error()))
	default:
		return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("UNAVAILABLE", "catalog temporarily unavailable"))
	}
}
