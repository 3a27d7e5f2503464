package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{0, StockOut},
		{1, StockLow},
		{10, StockLow},
		{11, StockMedium},
		{20, StockMedium},
		{21, StockHigh},
		{500, StockHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStock(tc.stock), "stock=%d", tc.stock)
	}
}

func TestAnnotateStock(t *testing.T) {
	p := &Product{Stock: 0}
	p.AnnotateStock()
	assert.Equal(t, StockOut, p.StockStatus)
	assert.True(t, p.IsOutOfStock)

	p = &Product{Stock: 15}
	p.AnnotateStock()
	assert.Equal(t, StockMedium, p.StockStatus)
	assert.False(t, p.IsOutOfStock)
}

func TestNarrowStock(t *testing.T) {
	intp := func(v int) *int { return &v }

	c := ProductCriteria{StockMin: intp(5)}
	c.NarrowStock(nil, intp(10))
	assert.Equal(t, 5, *c.StockMin)
	assert.Equal(t, 10, *c.StockMax)

	// A wider bound never loosens an existing one.
	c.NarrowStock(intp(2), intp(50))
	assert.Equal(t, 5, *c.StockMin)
	assert.Equal(t, 10, *c.StockMax)

	// A tighter bound narrows further.
	c.NarrowStock(intp(7), intp(8))
	assert.Equal(t, 7, *c.StockMin)
	assert.Equal(t, 8, *c.StockMax)
}

func TestCriteriaMatches(t *testing.T) {
	floatp := func(v float64) *float64 { return &v }
	intp := func(v int) *int { return &v }

	p := &Product{
		Name:     "Mechanical Keyboard",
		Category: "Electronics",
		Price:    79.99,
		Stock:    12,
		Status:   StatusActive,
	}

	assert.True(t, ProductCriteria{}.Matches(p))
	assert.True(t, ProductCriteria{Status: StatusActive}.Matches(p))
	assert.False(t, ProductCriteria{Status: StatusInactive}.Matches(p))

	assert.True(t, ProductCriteria{PriceMin: floatp(50), PriceMax: floatp(100)}.Matches(p))
	assert.False(t, ProductCriteria{PriceMax: floatp(50)}.Matches(p))

	assert.True(t, ProductCriteria{StockMin: intp(11), StockMax: intp(20)}.Matches(p))
	assert.False(t, ProductCriteria{StockMax: intp(10)}.Matches(p))

	assert.True(t, ProductCriteria{Categories: []string{"Books", "Electronics"}}.Matches(p))
	assert.False(t, ProductCriteria{Categories: []string{"Books"}}.Matches(p))

	// Search is case-insensitive and checks name and category.
	assert.True(t, ProductCriteria{Search: "KEYBOARD"}.Matches(p))
	assert.True(t, ProductCriteria{Search: "electron"}.Matches(p))
	assert.False(t, ProductCriteria{Search: "mouse"}.Matches(p))
}

func TestSortProducts(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []*Product{
		{Name: "b", Price: 30, CreatedAt: base.Add(time.Hour)},
		{Name: "a", Price: 10, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "c", Price: 20, CreatedAt: base},
	}

	SortProducts(products, ProductSort{Field: SortByPrice, Desc: false})
	assert.Equal(t, []float64{10, 20, 30}, []float64{products[0].Price, products[1].Price, products[2].Price})

	SortProducts(products, ProductSort{Field: SortByName, Desc: true})
	assert.Equal(t, "c", products[0].Name)
	assert.Equal(t, "a", products[2].Name)

	SortProducts(products, DefaultProductSort())
	assert.Equal(t, "a", products[0].Name) // newest first
	assert.Equal(t, "c", products[2].Name)

	// Unknown fields fall back to creation time.
	SortProducts(products, ProductSort{Field: "description", Desc: false})
	assert.Equal(t, "c", products[0].Name)
}
