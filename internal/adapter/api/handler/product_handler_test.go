package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventra/internal/domain/entity"
	"inventra/internal/infrastructure/cache"
	"inventra/internal/usecase"
	"inventra/pkg/errors"
)

// stubProductRepo serves a fixed product set; enough surface for handler
// round-trips.
type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(ctx context.Context, p *entity.Product) error {
	p.ID = fmt.Sprintf("p%d", len(r.products)+1)
	r.products = append(r.products, p)
	return nil
}

func (r *stubProductRepo) CreateMany(ctx context.Context, products []*entity.Product) error {
	for _, p := range products {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *stubProductRepo) Update(ctx context.Context, p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			clone := *p
			r.products[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *stubProductRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *stubProductRepo) List(ctx context.Context, criteria entity.ProductCriteria, sort entity.ProductSort, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if criteria.Matches(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	entity.SortProducts(out, sort)
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) Count(ctx context.Context, criteria entity.ProductCriteria) (int64, error) {
	var n int64
	for _, p := range r.products {
		if criteria.Matches(p) {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByNameCategory(ctx context.Context, name, category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) && strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Stats(ctx context.Context) (*entity.ProductStats, error) {
	return &entity.ProductStats{Products: int64(len(r.products))}, nil
}

type stubUserRepo struct{}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func newTestHandler() *ProductHandler {
	repo := &stubProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Gaming Mouse", Category: "Electronics", Price: 29.99, Stock: 15, Status: entity.StatusActive},
		{ID: "p2", Name: "Old Keyboard", Category: "Electronics", Price: 9.99, Stock: 0, Status: entity.StatusInactive},
	}}
	uc := usecase.NewProductUseCase(repo, &stubUserRepo{}, cache.NewMemoryStore(time.Minute), time.Minute, time.Minute)
	return NewProductHandler(uc, nil)
}

func TestListProductsDefaultsToUserVisibility(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?status=inactive", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Data    usecase.ProductPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Products, 1, "anonymous callers never see inactive products")
	assert.Equal(t, "Gaming Mouse", body.Data.Products[0].Name)
	assert.Equal(t, entity.StockMedium, body.Data.Products[0].StockStatus)
}

func TestListProductsAdminSeesInactive(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?status=inactive", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", entity.RoleAdmin)

	require.NoError(t, h.ListProducts(c))

	var body struct {
		Data usecase.ProductPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Products, 1)
	assert.Equal(t, "Old Keyboard", body.Data.Products[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestListCategories(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Electronics")
}

func TestBulkUploadRequiresFile(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/products/bulk", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.BulkUpload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}
