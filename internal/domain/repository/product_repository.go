package repository

import (
	"context"

	"inventra/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateMany(ctx context.Context, products []*entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// List and Count evaluate the same criteria independently; the planner
	// issues both per request.
	List(ctx context.Context, criteria entity.ProductCriteria, sort entity.ProductSort, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, criteria entity.ProductCriteria) (int64, error)

	// Categories returns the distinct category values, sorted.
	Categories(ctx context.Context) ([]string, error)

	// FindByNameCategory matches (name, category) case-insensitively; used by
	// bulk ingest to demote superseded listings.
	FindByNameCategory(ctx context.Context, name, category string) ([]*entity.Product, error)

	Stats(ctx context.Context) (*entity.ProductStats, error)
}
