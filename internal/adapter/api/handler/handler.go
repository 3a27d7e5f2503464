package handler

import (
	"inventra/internal/usecase"
)

var (
	productHandler   *ProductHandler
	dashboardHandler *DashboardHandler
)

func Setup(productUseCase *usecase.ProductUseCase, uploader usecase.ImageUploader) {
	productHandler = NewProductHandler(productUseCase, uploader)
	dashboardHandler = NewDashboardHandler(productUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}
