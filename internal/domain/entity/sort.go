package entity

import "sort"

// Product sort fields accepted by the query planner.
const (
	SortByPrice     = "price"
	SortByName      = "name"
	SortByCreatedAt = "createdAt"
)

type ProductSort struct {
	Field string
	Desc  bool
}

// DefaultProductSort is newest-first, the fallback for any disallowed field.
func DefaultProductSort() ProductSort {
	return ProductSort{Field: SortByCreatedAt, Desc: true}
}

// SortProducts orders products in place. Unknown fields sort by creation time.
func SortProducts(products []*Product, s ProductSort) {
	less := func(a, b *Product) bool {
		switch s.Field {
		case SortByPrice:
			return a.Price < b.Price
		case SortByName:
			return a.Name < b.Name
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		if s.Desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
