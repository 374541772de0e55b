package models

import (
	"time"
)

// SaleRecord is an immutable receipt for one unit sold. Product is a
// snapshot taken at sale time with Quantity fixed at 1, so later edits to
// the live product never change the receipt. Profit is computed once from
// the snapshot prices.
type SaleRecord struct {
	ID       string    `json:"id"`
	Product  Product   `json:"product"`
	DateSold time.Time `json:"dateSold"`
	Profit   float64   `json:"profit"`
}
