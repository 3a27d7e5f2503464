package router

import (
	"github.com/labstack/echo/v4"

	"inventra/internal/adapter/api/handler"
	"inventra/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {

	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.Use(authMiddleware.OptionalAuthenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/categories", productHandler.ListCategories)
	products.GET("/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", productHandler.CreateProduct, rateLimitMiddleware.Limit("mutation"))
	admin.PUT("/:id", productHandler.UpdateProduct, rateLimitMiddleware.Limit("mutation"))
	admin.PUT("/:id/status", productHandler.ToggleStatus, rateLimitMiddleware.Limit("mutation"))
	admin.DELETE("/:id", productHandler.DeleteProduct, rateLimitMiddleware.Limit("mutation"))
	admin.POST("/bulk", productHandler.BulkUpload, rateLimitMiddleware.Limit("bulk_ingest"))
}
