package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripglide/tripglide-api/internal/service"
	"github.com/tripglide/tripglide-api/internal/util"
)

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	e.POST("/api/v1/auth/google", func(c echo.Context) error {
		var req struct {
			IDToken string `json:"id_token"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.ErrorCode("VALIDATION_ERROR", "invalid request body"))
		}

		token, user, err := auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
		if err != nil {
			if errors.Is(err, service.ErrInvalidGoogleToken) {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid google token"))
			}
			return c.JSON(http.StatusServiceUnavailable, util.ErrorCode("UNAVAILABLE", "sign-in temporarily unavailable"))
		}

		return c.JSON(http.StatusOK, util.Envelope{
			"token": token,
			"user": util.Envelope{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.Name,
			},
		})
	})
}
