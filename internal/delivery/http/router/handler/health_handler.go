package handler

import (
	"net/http"

	"petstar/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, "ok", nil)
}
