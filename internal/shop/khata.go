package shop

import (
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
)

// ComputeBalances folds the full khata into one signed balance per customer:
// credit adds to what the customer owes, debit subtracts. The fold is a
// plain sum, so entry order never changes the result. Balance > 0 means the
// customer owes the store.
func ComputeBalances(entries []models.KhataEntry) map[string]float64 {
	balances := make(map[string]float64)
	for _, e := range entries {
		if e.Type == models.EntryCredit {
			balances[e.CustomerID] += e.Amount
		} else {
			balances[e.CustomerID] -= e.Amount
		}
	}
	return balances
}

// KhataSummary is the portfolio view over all customer accounts.
type KhataSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	CustomersWithDue int     `json:"customers_with_due"`
	TotalReceivable  float64 `json:"total_receivable"`
}

// ComputeKhataSummary counts customers currently in debt and totals the
// positive balances. Zero and negative balances are excluded, not netted.
func ComputeKhataSummary(customers []models.Customer, balances map[string]float64) KhataSummary {
	summary := KhataSummary{TotalCustomers: len(customers)}
	for _, c := range customers {
		if balances[c.ID] > 0 {
			summary.CustomersWithDue++
		}
	}
	for _, balance := range balances {
		if balance > 0 {
			summary.TotalReceivable += balance
		}
	}
	return summary
}

// ProfitSummary totals the sales history from the frozen receipt snapshots.
type ProfitSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
	TotalSales   int     `json:"total_sales"`
}

func ComputeProfitSummary(sales []models.SaleRecord) ProfitSummary {
	summary := ProfitSummary{TotalSales: len(sales)}
	for _, sale := range sales {
		summary.TotalRevenue += sale.Product.SellingPrice
		summary.TotalCost += sale.Product.PurchasePrice
		summary.TotalProfit += sale.Profit
	}
	return summary
}
