package handler

import (
	"github.com/labstack/echo/v4"

	"inventra/internal/usecase"
	"inventra/pkg/response"
)

type DashboardHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewDashboardHandler(productUseCase *usecase.ProductUseCase) *DashboardHandler {
	return &DashboardHandler{
		productUseCase: productUseCase,
	}
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.productUseCase.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
