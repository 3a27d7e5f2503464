package router

import (
	"github.com/labstack/echo/v4"

	"inventra/internal/adapter/api/handler"
	"inventra/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/v1/admin/dashboard")
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.Use(adminMiddleware.AdminOnly)
	dashboard.GET("/stats", dashboardHandler.GetStats)
}
