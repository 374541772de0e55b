package models

import (
	"time"
)

// Product is one stock-keeping unit. A product with quantity <= 0 never
// exists in the repository; it is removed instead.
type Product struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Identifier    string    `json:"identifier,omitempty"` // serial / IMEI / SKU
	PurchasePrice float64   `json:"purchasePrice"`
	SellingPrice  float64   `json:"sellingPrice"`
	DateAdded     time.Time `json:"dateAdded"`
	Quantity      int       `json:"quantity"`
	Photo         string    `json:"photo,omitempty"`
}

// DisplayName is the "brand model" label used on receipts and khata entries.
func (p Product) DisplayName() string {
	return p.Brand + " " + p.Model
}
