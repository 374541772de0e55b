// Package shop implements the sale transaction engine and the khata
// aggregation over the repository collections.
package shop

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
)

// ErrValidation marks user-input failures. Handlers map it to 400; nothing
// is ever written before validation passes.
var ErrValidation = errors.New("validation failed")

type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// ---------- inventory intake ----------

// ProductInput is the stock intake form. ID and DateAdded are assigned here.
type ProductInput struct {
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Identifier    string  `json:"identifier"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Quantity      int     `json:"quantity"`
	Photo         string  `json:"photo"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Brand) == "" || strings.TrimSpace(in.Model) == "" {
		return fmt.Errorf("%w: category, brand and model are required", ErrValidation)
	}
	if in.PurchasePrice < 0 || in.SellingPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	if in.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	return nil
}

func (s *Service) AddProduct(in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	p := models.Product{
		ID:            uuid.NewString(),
		Category:      strings.TrimSpace(in.Category),
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		Identifier:    strings.TrimSpace(in.Identifier),
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		DateAdded:     time.Now(),
		Quantity:      in.Quantity,
		Photo:         in.Photo,
	}
	if err := s.repo.AddProduct(p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces the stored product. ID and DateAdded are kept from
// the stored record.
func (s *Service) UpdateProduct(id string, in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	existing, ok := s.repo.ProductByID(id)
	if !ok {
		return models.Product{}, repository.ErrProductNotFound
	}
	p := models.Product{
		ID:            existing.ID,
		Category:      strings.TrimSpace(in.Category),
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		Identifier:    strings.TrimSpace(in.Identifier),
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		DateAdded:     existing.DateAdded,
		Quantity:      in.Quantity,
		Photo:         in.Photo,
	}
	if err := s.repo.UpdateProduct(p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ---------- sale transactions ----------

// newSaleRecord snapshots the product at quantity 1 and freezes the profit
// from the prices in force right now.
func newSaleRecord(p models.Product) models.SaleRecord {
	snapshot := p
	snapshot.Quantity = 1
	return models.SaleRecord{
		ID:       uuid.NewString(),
		Product:  snapshot,
		DateSold: time.Now(),
		Profit:   snapshot.SellingPrice - snapshot.PurchasePrice,
	}
}

// SellCash sells one unit for cash: one new receipt, stock decremented or
// the product removed when the last unit goes.
func (s *Service) SellCash(productID string) (models.SaleRecord, error) {
	product, ok := s.repo.ProductByID(productID)
	if !ok {
		return models.SaleRecord{}, repository.ErrProductNotFound
	}
	sale := newSaleRecord(product)
	if err := s.repo.ApplySale(productID, sale, nil); err != nil {
		return models.SaleRecord{}, err
	}
	return sale, nil
}

// SellOnCredit sells one unit on khata: the receipt plus a credit entry for
// the full selling price against the customer's account. Both ids must
// resolve or nothing at all is recorded.
func (s *Service) SellOnCredit(productID, customerID, condition string) (models.SaleRecord, models.KhataEntry, error) {
	product, ok := s.repo.ProductByID(productID)
	if !ok {
		return models.SaleRecord{}, models.KhataEntry{}, repository.ErrProductNotFound
	}
	if _, ok := s.repo.CustomerByID(customerID); !ok {
		return models.SaleRecord{}, models.KhataEntry{}, repository.ErrCustomerNotFound
	}

	// Receipt and entry are both built from the same pre-mutation product
	// value, before the stock write can remove it.
	sale := newSaleRecord(product)
	entry := models.KhataEntry{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Type:        models.EntryCredit,
		Amount:      product.SellingPrice,
		Description: "Sold: " + product.DisplayName(),
		Date:        time.Now(),
		ProductName: product.DisplayName(),
		Condition:   strings.TrimSpace(condition),
	}

	if err := s.repo.ApplySale(productID, sale, &entry); err != nil {
		return models.SaleRecord{}, models.KhataEntry{}, err
	}
	return sale, entry, nil
}

// ---------- customers & manual khata entries ----------

type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Photo string `json:"photo"`
}

func (in CustomerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	return nil
}

func (s *Service) AddCustomer(in CustomerInput) (models.Customer, error) {
	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}
	c := models.Customer{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Photo: in.Photo,
	}
	if err := s.repo.AddCustomer(c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Service) UpdateCustomer(id string, in CustomerInput) (models.Customer, error) {
	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}
	existing, ok := s.repo.CustomerByID(id)
	if !ok {
		return models.Customer{}, repository.ErrCustomerNotFound
	}
	c := models.Customer{
		ID:    existing.ID,
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Photo: in.Photo,
	}
	if err := s.repo.UpdateCustomer(c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// EntryInput is a manual khata movement (repayment received, or goods/money
// given outside a stock sale).
type EntryInput struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
}

func (s *Service) AddKhataEntry(customerID string, in EntryInput) (models.KhataEntry, error) {
	if in.Type != models.EntryCredit && in.Type != models.EntryDebit {
		return models.KhataEntry{}, fmt.Errorf("%w: type must be credit or debit", ErrValidation)
	}
	if in.Amount <= 0 {
		return models.KhataEntry{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.KhataEntry{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	entry := models.KhataEntry{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        time.Now(),
		Condition:   strings.TrimSpace(in.Condition),
	}
	if err := s.repo.AddKhataEntry(entry); err != nil {
		return models.KhataEntry{}, err
	}
	return entry, nil
}
