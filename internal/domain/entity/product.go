package entity

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// StockStatus buckets a stock quantity. It is always derived from Stock and
// never persisted, so it cannot go stale.
type StockStatus string

const (
	StockOut    StockStatus = "OutOfStock"
	StockLow    StockStatus = "Low"
	StockMedium StockStatus = "Medium"
	StockHigh   StockStatus = "High"
)

// ClassifyStock maps a stock quantity to its bucket:
// 0 -> OutOfStock, 1..10 -> Low, 11..20 -> Medium, >20 -> High.
func ClassifyStock(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= 10:
		return StockLow
	case stock <= 20:
		return StockMedium
	default:
		return StockHigh
	}
}

type Product struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Price       float64 `json:"price" firestore:"price"`
	Category    string  `json:"category" firestore:"category"`
	Stock       int     `json:"stock" firestore:"stock"`
	ImageURL    string  `json:"imageUrl" firestore:"imageUrl"`
	Status      string  `json:"status" firestore:"status"`

	// Derived per read, never stored.
	StockStatus  StockStatus `json:"stockStatus" firestore:"-"`
	IsOutOfStock bool        `json:"isOutOfStock" firestore:"-"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// AnnotateStock fills the derived stock fields.
func (p *Product) AnnotateStock() {
	p.StockStatus = ClassifyStock(p.Stock)
	p.IsOutOfStock = p.Stock == 0
}
