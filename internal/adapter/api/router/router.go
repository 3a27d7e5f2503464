package router

import (
	"github.com/labstack/echo/v4"

	"inventra/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupProductRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupDashboardRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
