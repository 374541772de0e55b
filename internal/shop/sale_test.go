package shop

import (
	"errors"
	"testing"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/store"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	repo := repository.New(store.NewMemory())
	if err := repo.Load(); err != nil {
		t.Fatalf("load repository: %v", err)
	}
	return NewService(repo), repo
}

func addTestProduct(t *testing.T, svc *Service, quantity int) models.Product {
	t.Helper()
	p, err := svc.AddProduct(ProductInput{
		Category:      "Mobile",
		Brand:         "Apple",
		Model:         "iPhone 14",
		PurchasePrice: 70000,
		SellingPrice:  85000,
		Quantity:      quantity,
	})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	return p
}

func addTestCustomer(t *testing.T, svc *Service, name string) models.Customer {
	t.Helper()
	c, err := svc.AddCustomer(CustomerInput{Name: name})
	if err != nil {
		t.Fatalf("add customer: %v", err)
	}
	return c
}

func TestSellCash_DecrementsQuantity(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 3)

	if _, err := svc.SellCash(p.ID); err != nil {
		t.Fatalf("SellCash() error = %v, want nil", err)
	}

	got, ok := repo.ProductByID(p.ID)
	if !ok {
		t.Fatal("product missing after selling 1 of 3 units")
	}
	if got.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", got.Quantity)
	}
	// every other field must be untouched
	got.Quantity = p.Quantity
	if got != p {
		t.Errorf("product fields changed by sale: got %+v, want %+v", got, p)
	}
}

func TestSellCash_RemovesLastUnit(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 1)

	if _, err := svc.SellCash(p.ID); err != nil {
		t.Fatalf("SellCash() error = %v, want nil", err)
	}

	if _, ok := repo.ProductByID(p.ID); ok {
		t.Error("product with quantity 1 should be removed after sale")
	}
	if got := len(repo.Stock()); got != 0 {
		t.Errorf("stock size = %d, want 0", got)
	}
}

func TestSellCash_ProductNotFound(t *testing.T) {
	svc, repo := newTestService(t)
	addTestProduct(t, svc, 2)

	_, err := svc.SellCash("no-such-id")
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Fatalf("SellCash() error = %v, want ErrProductNotFound", err)
	}
	if got := len(repo.Sales()); got != 0 {
		t.Errorf("sales recorded on failed sale: %d", got)
	}
}

func TestSellCash_ProfitFrozenAtSaleTime(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 2)

	sale, err := svc.SellCash(p.ID)
	if err != nil {
		t.Fatalf("SellCash() error = %v", err)
	}
	if sale.Profit != 15000 {
		t.Fatalf("profit = %v, want 15000", sale.Profit)
	}
	if sale.Product.Quantity != 1 {
		t.Errorf("snapshot quantity = %d, want 1", sale.Product.Quantity)
	}

	// edit the live product's prices; the receipt must not move
	if _, err := svc.UpdateProduct(p.ID, ProductInput{
		Category:      p.Category,
		Brand:         p.Brand,
		Model:         p.Model,
		PurchasePrice: 1,
		SellingPrice:  2,
		Quantity:      1,
	}); err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}

	sales := repo.Sales()
	if len(sales) != 1 {
		t.Fatalf("sales count = %d, want 1", len(sales))
	}
	if sales[0].Profit != 15000 {
		t.Errorf("profit after product edit = %v, want 15000", sales[0].Profit)
	}
	if sales[0].Product.SellingPrice != 85000 {
		t.Errorf("snapshot selling price after edit = %v, want 85000", sales[0].Product.SellingPrice)
	}
}

func TestSellOnCredit_AllOrNothing(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 2)
	customer := addTestCustomer(t, svc, "Ravi")

	cases := []struct {
		name       string
		productID  string
		customerID string
		wantErr    error
	}{
		{"missing product", "no-such-product", customer.ID, repository.ErrProductNotFound},
		{"missing customer", p.ID, "no-such-customer", repository.ErrCustomerNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.SellOnCredit(tc.productID, tc.customerID, "")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("SellOnCredit() error = %v, want %v", err, tc.wantErr)
			}
			if got := len(repo.Sales()); got != 0 {
				t.Errorf("sales recorded = %d, want 0", got)
			}
			if got := len(repo.KhataEntries()); got != 0 {
				t.Errorf("khata entries recorded = %d, want 0", got)
			}
			got, ok := repo.ProductByID(p.ID)
			if !ok || got.Quantity != 2 {
				t.Errorf("stock mutated on failed credit sale: %+v (found=%v)", got, ok)
			}
		})
	}
}

func TestSellOnCredit_EndToEnd(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 2)
	ravi := addTestCustomer(t, svc, "Ravi")

	sale, entry, err := svc.SellOnCredit(p.ID, ravi.ID, "Pay by end of month")
	if err != nil {
		t.Fatalf("SellOnCredit() error = %v", err)
	}

	// stock: one unit left
	got, ok := repo.ProductByID(p.ID)
	if !ok || got.Quantity != 1 {
		t.Errorf("quantity = %d (found=%v), want 1", got.Quantity, ok)
	}

	// receipt
	if sale.Profit != 15000 {
		t.Errorf("profit = %v, want 15000", sale.Profit)
	}
	if len(repo.Sales()) != 1 {
		t.Errorf("sales count = %d, want 1", len(repo.Sales()))
	}

	// khata entry
	if entry.Type != models.EntryCredit {
		t.Errorf("entry type = %q, want credit", entry.Type)
	}
	if entry.Amount != 85000 {
		t.Errorf("entry amount = %v, want 85000", entry.Amount)
	}
	if entry.CustomerID != ravi.ID {
		t.Errorf("entry customer = %q, want %q", entry.CustomerID, ravi.ID)
	}
	if entry.Description != "Sold: Apple iPhone 14" {
		t.Errorf("entry description = %q", entry.Description)
	}
	if entry.ProductName != "Apple iPhone 14" {
		t.Errorf("entry product name = %q", entry.ProductName)
	}
	if entry.Condition != "Pay by end of month" {
		t.Errorf("entry condition = %q", entry.Condition)
	}

	// balance
	balances := ComputeBalances(repo.KhataEntries())
	if balances[ravi.ID] != 85000 {
		t.Errorf("balance = %v, want 85000", balances[ravi.ID])
	}
}

func TestSellOnCredit_LastUnitRemovesProduct(t *testing.T) {
	svc, repo := newTestService(t)
	p := addTestProduct(t, svc, 1)
	customer := addTestCustomer(t, svc, "Sunita")

	if _, _, err := svc.SellOnCredit(p.ID, customer.ID, ""); err != nil {
		t.Fatalf("SellOnCredit() error = %v", err)
	}
	if _, ok := repo.ProductByID(p.ID); ok {
		t.Error("last unit sold on credit should remove the product")
	}
	if len(repo.KhataEntries()) != 1 {
		t.Errorf("khata entries = %d, want 1", len(repo.KhataEntries()))
	}
}

func TestAddProduct_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		in   ProductInput
	}{
		{"empty brand", ProductInput{Category: "Mobile", Model: "X", PurchasePrice: 1, SellingPrice: 2, Quantity: 1}},
		{"negative price", ProductInput{Category: "Mobile", Brand: "A", Model: "X", PurchasePrice: -1, SellingPrice: 2, Quantity: 1}},
		{"zero quantity", ProductInput{Category: "Mobile", Brand: "A", Model: "X", PurchasePrice: 1, SellingPrice: 2, Quantity: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddProduct(tc.in); !errors.Is(err, ErrValidation) {
				t.Errorf("AddProduct() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestAddKhataEntry_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	customer := addTestCustomer(t, svc, "Ravi")

	cases := []struct {
		name       string
		customerID string
		in         EntryInput
		wantErr    error
	}{
		{"bad type", customer.ID, EntryInput{Type: "loan", Amount: 100, Description: "x"}, ErrValidation},
		{"zero amount", customer.ID, EntryInput{Type: "credit", Amount: 0, Description: "x"}, ErrValidation},
		{"empty description", customer.ID, EntryInput{Type: "debit", Amount: 100}, ErrValidation},
		{"missing customer", "nope", EntryInput{Type: "credit", Amount: 100, Description: "x"}, repository.ErrCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddKhataEntry(tc.customerID, tc.in); !errors.Is(err, tc.wantErr) {
				t.Errorf("AddKhataEntry() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
