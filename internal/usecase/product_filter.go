package usecase

import (
	"inventra/internal/domain/entity"
	"inventra/pkg/utils"
)

// ProductQuery is the raw request parameter bag. Every field is the string
// form taken from the query, possibly empty; parsing is best-effort and a
// malformed value means "unconstrained".
type ProductQuery struct {
	PriceMin string
	PriceMax string
	StockMin string
	StockMax string

	LowStock   string
	MedStock   string
	HighStock  string
	OutOfStock string

	Categories []string
	Search     string
	Status     string

	SortBy string
	Order  string
	Page   string
	Limit  string
}

// BuildProductCriteria normalizes a parameter bag into match criteria.
//
// Unprivileged callers only ever see active products: for role "user" the
// status constraint is forced to active and any requested status is ignored.
func BuildProductCriteria(q ProductQuery, role string) entity.ProductCriteria {
	criteria := entity.ProductCriteria{
		PriceMin:   utils.ParseOptionalFloat(q.PriceMin),
		PriceMax:   utils.ParseOptionalFloat(q.PriceMax),
		StockMin:   utils.ParseOptionalInt(q.StockMin),
		StockMax:   utils.ParseOptionalInt(q.StockMax),
		Categories: q.Categories,
		Search:     q.Search,
	}

	if role == entity.RoleUser {
		criteria.Status = entity.StatusActive
	} else if q.Status != "" {
		criteria.Status = q.Status
	}

	// Stock bucket flags narrow whatever range is already set; they compose
	// with explicit bounds and with each other instead of replacing them.
	if q.LowStock == "true" {
		criteria.NarrowStock(nil, intPtr(10))
	}
	if q.MedStock == "true" {
		criteria.NarrowStock(intPtr(11), intPtr(20))
	}
	if q.HighStock == "true" {
		criteria.NarrowStock(intPtr(21), nil)
	}
	if q.OutOfStock == "true" {
		criteria.NarrowStock(intPtr(0), intPtr(0))
	}

	criteria.Normalize()
	return criteria
}

// resolveSort applies the sort allow-list. Any other field silently falls
// back to creation time; order defaults to descending.
func resolveSort(sortBy, order string) entity.ProductSort {
	field := entity.SortByCreatedAt
	switch sortBy {
	case entity.SortByPrice, entity.SortByName, entity.SortByCreatedAt:
		field = sortBy
	}
	return entity.ProductSort{Field: field, Desc: order != "asc"}
}

func intPtr(v int) *int { return &v }
