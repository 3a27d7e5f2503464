package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
