package shop

import (
	"testing"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
)

func entry(customerID, typ string, amount float64) models.KhataEntry {
	return models.KhataEntry{CustomerID: customerID, Type: typ, Amount: amount, Description: "test"}
}

func TestComputeBalances_OrderIndependent(t *testing.T) {
	// [credit 500, debit 200, credit 100] must fold to 400 in every order
	a := entry("ravi", models.EntryCredit, 500)
	b := entry("ravi", models.EntryDebit, 200)
	c := entry("ravi", models.EntryCredit, 100)

	permutations := [][]models.KhataEntry{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}

	for i, perm := range permutations {
		balances := ComputeBalances(perm)
		if got := balances["ravi"]; got != 400 {
			t.Errorf("permutation %d: balance = %v, want 400", i, got)
		}
	}
}

func TestComputeBalances_MultipleCustomers(t *testing.T) {
	entries := []models.KhataEntry{
		entry("a", models.EntryCredit, 300),
		entry("b", models.EntryCredit, 50),
		entry("b", models.EntryDebit, 100),
		entry("c", models.EntryCredit, 200),
		entry("c", models.EntryDebit, 200),
	}

	balances := ComputeBalances(entries)
	want := map[string]float64{"a": 300, "b": -50, "c": 0}
	for id, w := range want {
		if balances[id] != w {
			t.Errorf("balance[%s] = %v, want %v", id, balances[id], w)
		}
	}
}

func TestComputeKhataSummary(t *testing.T) {
	customers := []models.Customer{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	}
	balances := map[string]float64{"a": 300, "b": -50, "c": 0}

	summary := ComputeKhataSummary(customers, balances)
	if summary.TotalCustomers != 3 {
		t.Errorf("TotalCustomers = %d, want 3", summary.TotalCustomers)
	}
	if summary.CustomersWithDue != 1 {
		t.Errorf("CustomersWithDue = %d, want 1", summary.CustomersWithDue)
	}
	// negative and zero balances are excluded, not subtracted
	if summary.TotalReceivable != 300 {
		t.Errorf("TotalReceivable = %v, want 300", summary.TotalReceivable)
	}
}

func TestComputeKhataSummary_Empty(t *testing.T) {
	summary := ComputeKhataSummary(nil, map[string]float64{})
	if summary.TotalCustomers != 0 || summary.CustomersWithDue != 0 || summary.TotalReceivable != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
}

func TestComputeProfitSummary(t *testing.T) {
	sales := []models.SaleRecord{
		{Product: models.Product{PurchasePrice: 70000, SellingPrice: 85000}, Profit: 15000},
		{Product: models.Product{PurchasePrice: 10000, SellingPrice: 12000}, Profit: 2000},
	}

	summary := ComputeProfitSummary(sales)
	if summary.TotalRevenue != 97000 {
		t.Errorf("TotalRevenue = %v, want 97000", summary.TotalRevenue)
	}
	if summary.TotalCost != 80000 {
		t.Errorf("TotalCost = %v, want 80000", summary.TotalCost)
	}
	if summary.TotalProfit != 17000 {
		t.Errorf("TotalProfit = %v, want 17000", summary.TotalProfit)
	}
	if summary.TotalSales != 2 {
		t.Errorf("TotalSales = %d, want 2", summary.TotalSales)
	}
}
