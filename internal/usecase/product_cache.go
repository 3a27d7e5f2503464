package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"inventra/internal/domain/entity"
	"inventra/pkg/logger"
)

// Cache namespaces. Every listing key shares listingKeyPrefix so a single
// prefix purge invalidates the whole namespace.
const (
	listingKeyPrefix = "products:list"
	categoriesKey    = "products:categories"
	statsKey         = "dashboard:stats"

	keySeparator = "::"
)

// listingCacheKey canonically encodes the complete, normalized parameter set
// plus the effective role. Two requests with identical effective semantics
// map to the same key; requests differing only in role never collide.
// Caller-supplied text is escaped before joining so a value containing a
// separator cannot collide with a differently shaped parameter set.
func listingCacheKey(c entity.ProductCriteria, sort entity.ProductSort, page, pageSize int, role string) string {
	order := "asc"
	if sort.Desc {
		order = "desc"
	}

	categories := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		categories[i] = url.QueryEscape(cat)
	}

	parts := []string{
		listingKeyPrefix,
		"role=" + role,
		"status=" + c.Status,
		"pmin=" + encodeFloat(c.PriceMin),
		"pmax=" + encodeFloat(c.PriceMax),
		"smin=" + encodeInt(c.StockMin),
		"smax=" + encodeInt(c.StockMax),
		"cat=" + strings.Join(categories, ","),
		"q=" + url.QueryEscape(strings.ToLower(c.Search)),
		"sort=" + sort.Field + ":" + order,
		fmt.Sprintf("page=%d", page),
		fmt.Sprintf("size=%d", pageSize),
	}
	return strings.Join(parts, keySeparator)
}

func encodeFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func encodeInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// invalidateProductCaches purges every listing entry plus the category and
// dashboard entries. It runs synchronously after each successful mutation and
// before the response. A failed purge never fails the mutation: the cache
// degrades to always-miss, but stale entries may survive until TTL expiry,
// so the failure is logged as an operational warning.
func (uc *ProductUseCase) invalidateProductCaches(ctx context.Context) {
	if err := uc.cache.DeleteByPrefix(ctx, listingKeyPrefix); err != nil {
		logger.Warn("cache purge failed for prefix %s: %v", listingKeyPrefix, err)
	}
	if err := uc.cache.Delete(ctx, categoriesKey, statsKey); err != nil {
		logger.Warn("cache purge failed for %s, %s: %v", categoriesKey, statsKey, err)
	}
}
