package entity

import (
	"sort"
	"strings"
)

// ProductCriteria is the normalized predicate set describing which products
// satisfy a listing request. Nil bounds are unconstrained.
type ProductCriteria struct {
	PriceMin *float64
	PriceMax *float64
	StockMin *int
	StockMax *int

	// Categories is a set-membership constraint when non-empty.
	Categories []string

	// Search matches name or category, case-insensitive substring.
	Search string

	// Status constrains the status field when non-empty. The filter builder
	// forces this to StatusActive for unprivileged callers.
	Status string
}

// NarrowStock intersects the stock range with [min, max]. Later constraints
// narrow the existing range, they never replace it.
func (c *ProductCriteria) NarrowStock(min, max *int) {
	if min != nil && (c.StockMin == nil || *min > *c.StockMin) {
		v := *min
		c.StockMin = &v
	}
	if max != nil && (c.StockMax == nil || *max < *c.StockMax) {
		v := *max
		c.StockMax = &v
	}
}

// Normalize sorts the category set so equivalent criteria serialize to
// identical cache keys.
func (c *ProductCriteria) Normalize() {
	sort.Strings(c.Categories)
}

// Matches reports whether a product satisfies every constraint.
func (c ProductCriteria) Matches(p *Product) bool {
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.PriceMin != nil && p.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && p.Price > *c.PriceMax {
		return false
	}
	if c.StockMin != nil && p.Stock < *c.StockMin {
		return false
	}
	if c.StockMax != nil && p.Stock > *c.StockMax {
		return false
	}
	if len(c.Categories) > 0 {
		found := false
		for _, cat := range c.Categories {
			if p.Category == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	return true
}
