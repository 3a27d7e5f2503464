package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"inventra/internal/domain/entity"
	"inventra/internal/infrastructure/bulkfile"
	"inventra/internal/usecase"
	"inventra/pkg/errors"
	"inventra/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	uploader       usecase.ImageUploader
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, uploader usecase.ImageUploader) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		uploader:       uploader,
	}
}

type productRequest struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Price       float64 `form:"price" validate:"required,gte=0"`
	Category    string  `form:"category" validate:"required"`
	Stock       int     `form:"stock" validate:"gte=0"`
	Status      string  `form:"status" validate:"omitempty,oneof=active inactive"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	params := c.QueryParams()

	q := usecase.ProductQuery{
		PriceMin:   c.QueryParam("priceMin"),
		PriceMax:   c.QueryParam("priceMax"),
		StockMin:   c.QueryParam("stockMin"),
		StockMax:   c.QueryParam("stockMax"),
		LowStock:   c.QueryParam("lowStock"),
		MedStock:   c.QueryParam("medStock"),
		HighStock:  c.QueryParam("highStock"),
		OutOfStock: c.QueryParam("outOfStock"),
		Categories: params["category"],
		Search:     c.QueryParam("search"),
		Status:     c.QueryParam("status"),
		SortBy:     c.QueryParam("sortBy"),
		Order:      c.QueryParam("order"),
		Page:       c.QueryParam("page"),
		Limit:      c.QueryParam("limit"),
	}

	page, err := h.productUseCase.ListProducts(c.Request().Context(), q, effectiveRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.GetCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"categories": categories,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	imageURL, err := h.uploadImageIfPresent(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(
		c.Request().Context(),
		usecase.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Stock:       req.Stock,
			Status:      req.Status,
		},
		imageURL,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	imageURL, err := h.uploadImageIfPresent(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(
		c.Request().Context(),
		c.Param("id"),
		usecase.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Stock:       req.Stock,
			Status:      req.Status,
		},
		imageURL,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ToggleStatus(c echo.Context) error {
	product, err := h.productUseCase.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) BulkUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer src.Close()

	parsed, err := bulkfile.Parse(fileHeader.Filename, src)
	if err != nil {
		return response.Error(c, errors.BadRequest(err.Error(), err))
	}

	records := make([]usecase.BulkRecord, len(parsed))
	for i, rec := range parsed {
		records[i] = usecase.BulkRecord{
			Name:        rec.Name,
			Price:       rec.Price,
			Category:    rec.Category,
			Stock:       rec.Stock,
			ImageURL:    rec.ImageURL,
			Description: rec.Description,
			Status:      rec.Status,
		}
	}

	result, err := h.productUseCase.BulkIngest(c.Request().Context(), records)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) uploadImageIfPresent(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached.
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.BadRequest("Failed to read uploaded image", err)
	}
	defer src.Close()

	return h.uploadImage(c, src, fileHeader)
}

func (h *ProductHandler) uploadImage(c echo.Context, src multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.uploader.UploadProductImage(c.Request().Context(), src, contentType)
	if err != nil {
		return "", errors.BadRequest("Image upload failed", err)
	}
	return url, nil
}

func effectiveRole(c echo.Context) string {
	role, ok := c.Get("role").(string)
	if !ok || role == "" {
		return entity.RoleUser
	}
	return role
}
