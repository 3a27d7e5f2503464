package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"inventra/internal/domain/entity"
	"inventra/internal/domain/repository"
	"inventra/pkg/errors"
	"inventra/pkg/logger"
	"inventra/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cache       CacheStore
	listingTTL  time.Duration
	statsTTL    time.Duration
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	cache CacheStore,
	listingTTL, statsTTL time.Duration,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		cache:       cache,
		listingTTL:  listingTTL,
		statsTTL:    statsTTL,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Status      string
}

// BulkRecord is one flat row from an uploaded file, fields still in string
// form. Numeric fields are coerced best-effort; missing status defaults to
// active, matching the single-add path.
type BulkRecord struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	ImageURL    string
	Description string
	Status      string
}

type BulkIngestResult struct {
	InsertedCount int               `json:"insertedCount"`
	Products      []*entity.Product `json:"products"`
}

// ProductPage is the listing result envelope, cached as an opaque JSON blob.
type ProductPage struct {
	Total       int64             `json:"total"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Products    []*entity.Product `json:"products"`
}

// ListProducts builds criteria from the parameter bag, serves from cache when
// possible, and otherwise plans two repository queries (page + count) over
// identical criteria.
func (uc *ProductUseCase) ListProducts(ctx context.Context, q ProductQuery, role string) (*ProductPage, error) {
	criteria := BuildProductCriteria(q, role)
	sort := resolveSort(q.SortBy, q.Order)
	page := utils.ParsePositiveInt(q.Page, 1)
	pageSize := utils.ParsePositiveInt(q.Limit, 10)

	key := listingCacheKey(criteria, sort, page, pageSize, role)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached ProductPage
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		// Undecodable entry counts as a miss.
	}

	products, err := uc.productRepo.List(ctx, criteria, sort, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count(ctx, criteria)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		p.AnnotateStock()
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	result := &ProductPage{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Products:    products,
	}

	if raw, err := json.Marshal(result); err == nil {
		uc.cache.Set(ctx, key, raw, uc.listingTTL)
	}

	return result, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.AnnotateStock()
	return product, nil
}

func (uc *ProductUseCase) GetCategories(ctx context.Context) ([]string, error) {
	if raw, ok := uc.cache.Get(ctx, categoriesKey); ok {
		var cached []string
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := uc.productRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(categories); err == nil {
		uc.cache.Set(ctx, categoriesKey, raw, uc.listingTTL)
	}

	return categories, nil
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput, imageURL string) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.StatusActive
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		ImageURL:    imageURL,
		Status:      status,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidateProductCaches(ctx)

	product.AnnotateStock()
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput, imageURL string) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Stock = input.Stock
	if input.Status != "" {
		product.Status = input.Status
	}
	if imageURL != "" {
		product.ImageURL = imageURL
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidateProductCaches(ctx)

	product.AnnotateStock()
	return product, nil
}

// ToggleStatus flips a product between active and inactive. A product without
// an image cannot be activated.
func (uc *ProductUseCase) ToggleStatus(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Status == entity.StatusInactive && product.ImageURL == "" {
		return nil, errors.BadRequest("Cannot activate product without image", nil)
	}

	if product.Status == entity.StatusActive {
		product.Status = entity.StatusInactive
	} else {
		product.Status = entity.StatusActive
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidateProductCaches(ctx)

	product.AnnotateStock()
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateProductCaches(ctx)
	return nil
}

// BulkIngest creates products from an externally parsed file. A re-listed
// (name, category) pair supersedes the old listing: matching existing
// products are demoted to inactive before the new rows are inserted, so two
// active rows with the same identity never coexist.
func (uc *ProductUseCase) BulkIngest(ctx context.Context, records []BulkRecord) (*BulkIngestResult, error) {
	if len(records) == 0 {
		return nil, errors.BadRequest("File is empty or invalid format", nil)
	}

	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || rec.Category == "" {
			logger.Warn("bulk ingest: skipping row without name or category")
			continue
		}

		price := 0.0
		if v := utils.ParseOptionalFloat(rec.Price); v != nil && *v >= 0 {
			price = *v
		}
		stock := 0
		if v := utils.ParseOptionalInt(rec.Stock); v != nil && *v >= 0 {
			stock = *v
		}
		status := rec.Status
		if status != entity.StatusActive && status != entity.StatusInactive {
			status = entity.StatusActive
		}

		products = append(products, &entity.Product{
			Name:        rec.Name,
			Description: rec.Description,
			Price:       price,
			Category:    rec.Category,
			Stock:       stock,
			ImageURL:    rec.ImageURL,
			Status:      status,
		})
	}

	if len(products) == 0 {
		return nil, errors.BadRequest("File contains no usable rows", nil)
	}

	// The supersede rule also applies within one file: when several rows
	// share a folded (name, category), only the last one keeps its status,
	// earlier ones are demoted like any other superseded listing.
	lastRow := make(map[string]int, len(products))
	for i, p := range products {
		lastRow[productIdentity(p)] = i
	}
	for i, p := range products {
		if lastRow[productIdentity(p)] != i {
			p.Status = entity.StatusInactive
		}
	}

	// Demote superseded listings before inserting the replacements.
	for _, p := range products {
		existing, err := uc.productRepo.FindByNameCategory(ctx, p.Name, p.Category)
		if err != nil {
			return nil, err
		}
		for _, old := range existing {
			if old.Status != entity.StatusActive {
				continue
			}
			old.Status = entity.StatusInactive
			if err := uc.productRepo.Update(ctx, old); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.productRepo.CreateMany(ctx, products); err != nil {
		return nil, err
	}

	uc.invalidateProductCaches(ctx)

	for _, p := range products {
		p.AnnotateStock()
	}

	return &BulkIngestResult{
		InsertedCount: len(products),
		Products:      products,
	}, nil
}

func (uc *ProductUseCase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	if raw, ok := uc.cache.Get(ctx, statsKey); ok {
		var cached entity.DashboardStats
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	productStats, err := uc.productRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{
		Products:   productStats.Products,
		Categories: productStats.Categories,
		Users:      users,
		OutOfStock: productStats.OutOfStock,
		Active:     productStats.Active,
		Inactive:   productStats.Inactive,
	}

	if raw, err := json.Marshal(stats); err == nil {
		uc.cache.Set(ctx, statsKey, raw, uc.statsTTL)
	}

	return stats, nil
}

func productIdentity(p *entity.Product) string {
	return strings.ToLower(p.Name) + "\x00" + strings.ToLower(p.Category)
}

func validateProductInput(input ProductInput) error {
	if input.Name == "" || input.Description == "" || input.Category == "" {
		return errors.BadRequest("All fields are required", nil)
	}
	if input.Price < 0 {
		return errors.BadRequest("Price must not be negative", nil)
	}
	if input.Stock < 0 {
		return errors.BadRequest("Stock must not be negative", nil)
	}
	if input.Status != "" && input.Status != entity.StatusActive && input.Status != entity.StatusInactive {
		return errors.BadRequest("Status must be active or inactive", nil)
	}
	return nil
}
