package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inventra/internal/domain/entity"
	"inventra/internal/domain/repository"
	"inventra/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	bw := r.client.BulkWriter(ctx)
	now := time.Now()

	jobs := make([]*firestore.BulkWriterJob, 0, len(products))
	for _, product := range products {
		if product.ID == "" {
			product.ID = r.client.Collection("products").NewDoc().ID
		}
		if product.CreatedAt.IsZero() {
			product.CreatedAt = now
		}
		product.UpdatedAt = now

		job, err := bw.Set(r.client.Collection("products").Doc(product.ID), product)
		if err != nil {
			return errors.Internal("Failed to enqueue product write", err)
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Internal("Failed to bulk create products", err)
		}
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

// List pushes the status equality to Firestore and evaluates the remaining
// predicates in the adapter; Firestore has no substring search and limits
// range filters to a single field, so range/search/bucket constraints cannot
// be expressed server-side.
func (r *firestoreProductRepository) List(ctx context.Context, criteria entity.ProductCriteria, sortBy entity.ProductSort, limit, offset int) ([]*entity.Product, error) {
	matched, err := r.fetchMatching(ctx, criteria)
	if err != nil {
		return nil, err
	}

	entity.SortProducts(matched, sortBy)

	if offset >= len(matched) {
		return []*entity.Product{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

func (r *firestoreProductRepository) Count(ctx context.Context, criteria entity.ProductCriteria) (int64, error) {
	matched, err := r.fetchMatching(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (r *firestoreProductRepository) fetchMatching(ctx context.Context, criteria entity.ProductCriteria) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query
	if criteria.Status != "" {
		query = query.Where("status", "==", criteria.Status)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query products", err)
	}

	matched := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		if criteria.Matches(&product) {
			matched = append(matched, &product)
		}
	}

	return matched, nil
}

func (r *firestoreProductRepository) Categories(ctx context.Context) ([]string, error) {
	docs, err := r.client.Collection("products").Select("category").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query categories", err)
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, doc := range docs {
		category, ok := doc.Data()["category"].(string)
		if !ok || category == "" {
			continue
		}
		if _, dup := seen[category]; dup {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	sort.Strings(categories)
	return categories, nil
}

func (r *firestoreProductRepository) FindByNameCategory(ctx context.Context, name, category string) ([]*entity.Product, error) {
	// Case-insensitive identity match, so the comparison happens here rather
	// than in a Firestore predicate.
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query products", err)
	}

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		if strings.EqualFold(product.Name, name) && strings.EqualFold(product.Category, category) {
			matched = append(matched, &product)
		}
	}

	return matched, nil
}

func (r *firestoreProductRepository) Stats(ctx context.Context) (*entity.ProductStats, error) {
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query product stats", err)
	}

	stats := &entity.ProductStats{}
	seen := make(map[string]struct{})
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}

		stats.Products++
		if product.Stock <= 0 {
			stats.OutOfStock++
		}
		switch product.Status {
		case entity.StatusActive:
			stats.Active++
		case entity.StatusInactive:
			stats.Inactive++
		}
		if _, dup := seen[product.Category]; !dup && product.Category != "" {
			seen[product.Category] = struct{}{}
			stats.Categories++
		}
	}

	return stats, nil
}
