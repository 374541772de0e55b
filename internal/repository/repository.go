// Package repository holds the live shop state: the stock, sales, customer
// and khata collections plus the settings singleton, each backed 1:1 by a
// key in the persistent store. Collections are loaded once at startup and
// written through on every mutation; mutations that touch more than one
// collection go to the store as a single combined write.
package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/models"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/store"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

type Repository struct {
	mu    sync.Mutex
	store store.Store

	stock     []models.Product
	sales     []models.SaleRecord
	customers []models.Customer
	entries   []models.KhataEntry
	settings  models.AppSettings
	pinHash   string
}

func New(st store.Store) *Repository {
	return &Repository{
		store:    st,
		settings: models.DefaultSettings(),
	}
}

// Load reads every collection from the store. Missing keys leave the
// corresponding collection empty (first run).
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.store.Load(store.KeyStock, &r.stock); err != nil {
		return fmt.Errorf("load stock: %w", err)
	}
	if _, err := r.store.Load(store.KeySales, &r.sales); err != nil {
		return fmt.Errorf("load sales: %w", err)
	}
	if _, err := r.store.Load(store.KeyCustomers, &r.customers); err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	if _, err := r.store.Load(store.KeyKhataEntries, &r.entries); err != nil {
		return fmt.Errorf("load khata entries: %w", err)
	}
	if ok, err := r.store.Load(store.KeySettings, &r.settings); err != nil {
		return fmt.Errorf("load settings: %w", err)
	} else if !ok {
		r.settings = models.DefaultSettings()
	}
	if _, err := r.store.Load(store.KeyPin, &r.pinHash); err != nil {
		return fmt.Errorf("load pin: %w", err)
	}
	return nil
}

// ---------- read side ----------

// Accessors return non-nil copies so an empty collection serializes as a
// JSON array, never null.

func (r *Repository) Stock() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]models.Product, 0, len(r.stock)), r.stock...)
}

func (r *Repository) Sales() []models.SaleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]models.SaleRecord, 0, len(r.sales)), r.sales...)
}

func (r *Repository) Customers() []models.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]models.Customer, 0, len(r.customers)), r.customers...)
}

func (r *Repository) KhataEntries() []models.KhataEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]models.KhataEntry, 0, len(r.entries)), r.entries...)
}

func (r *Repository) Settings() models.AppSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

func (r *Repository) ProductByID(id string) (models.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findProduct(id)
}

func (r *Repository) CustomerByID(id string) (models.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findCustomer(id)
}

// EntriesForCustomer returns the customer's khata movements, newest first.
func (r *Repository) EntriesForCustomer(customerID string) []models.KhataEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.KhataEntry, 0)
	for _, e := range r.entries {
		if e.CustomerID == customerID {
			out = append(out, e)
		}
	}
	return out
}

// ---------- inventory ----------

// AddProduct prepends the product so the newest intake lists first.
func (r *Repository) AddProduct(p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stock := append([]models.Product{p}, r.stock...)
	if err := r.store.Save(store.KeyStock, stock); err != nil {
		return err
	}
	r.stock = stock
	return nil
}

// UpdateProduct replaces the stored product with the same id verbatim.
func (r *Repository) UpdateProduct(p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stock := append([]models.Product(nil), r.stock...)
	found := false
	for i := range stock {
		if stock[i].ID == p.ID {
			stock[i] = p
			found = true
			break
		}
	}
	if !found {
		return ErrProductNotFound
	}
	if err := r.store.Save(store.KeyStock, stock); err != nil {
		return err
	}
	r.stock = stock
	return nil
}

func (r *Repository) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stock := make([]models.Product, 0, len(r.stock))
	found := false
	for _, p := range r.stock {
		if p.ID == id {
			found = true
			continue
		}
		stock = append(stock, p)
	}
	if !found {
		return ErrProductNotFound
	}
	if err := r.store.Save(store.KeyStock, stock); err != nil {
		return err
	}
	r.stock = stock
	return nil
}

// ---------- sales ----------

// ApplySale commits one sale as a unit: appends the receipt, prepends the
// khata entry for a credit sale (entry may be nil for cash), and decrements
// or removes the sold product. Preconditions are re-checked under the lock
// so nothing is written when either id has vanished, and all touched
// collections go to the store in one combined write.
func (r *Repository) ApplySale(productID string, sale models.SaleRecord, entry *models.KhataEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.findProduct(productID)
	if !ok {
		return ErrProductNotFound
	}
	if entry != nil {
		if _, ok := r.findCustomer(entry.CustomerID); !ok {
			return ErrCustomerNotFound
		}
	}

	sales := append(append([]models.SaleRecord(nil), r.sales...), sale)

	stock := make([]models.Product, 0, len(r.stock))
	for _, p := range r.stock {
		if p.ID != productID {
			stock = append(stock, p)
			continue
		}
		if product.Quantity > 1 {
			p.Quantity--
			stock = append(stock, p)
		}
		// quantity 1: sold out, drop the product entirely
	}

	writes := map[string]any{
		store.KeyStock: stock,
		store.KeySales: sales,
	}

	entries := r.entries
	if entry != nil {
		entries = append([]models.KhataEntry{*entry}, r.entries...)
		writes[store.KeyKhataEntries] = entries
	}

	if err := r.store.SaveAll(writes); err != nil {
		return err
	}

	r.stock = stock
	r.sales = sales
	r.entries = entries
	return nil
}

// ---------- customers & khata ----------

func (r *Repository) AddCustomer(c models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := append([]models.Customer{c}, r.customers...)
	if err := r.store.Save(store.KeyCustomers, customers); err != nil {
		return err
	}
	r.customers = customers
	return nil
}

func (r *Repository) UpdateCustomer(c models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := append([]models.Customer(nil), r.customers...)
	found := false
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			found = true
			break
		}
	}
	if !found {
		return ErrCustomerNotFound
	}
	if err := r.store.Save(store.KeyCustomers, customers); err != nil {
		return err
	}
	r.customers = customers
	return nil
}

// DeleteCustomer removes the customer and every khata entry that references
// it, in one combined write. The cascade lives here, not in the caller, so
// no code path can leave orphaned entries behind.
func (r *Repository) DeleteCustomer(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := make([]models.Customer, 0, len(r.customers))
	found := false
	for _, c := range r.customers {
		if c.ID == id {
			found = true
			continue
		}
		customers = append(customers, c)
	}
	if !found {
		return ErrCustomerNotFound
	}

	entries := make([]models.KhataEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.CustomerID != id {
			entries = append(entries, e)
		}
	}

	err := r.store.SaveAll(map[string]any{
		store.KeyCustomers:    customers,
		store.KeyKhataEntries: entries,
	})
	if err != nil {
		return err
	}
	r.customers = customers
	r.entries = entries
	return nil
}

// AddKhataEntry prepends a manual ledger movement. The customer must exist.
func (r *Repository) AddKhataEntry(entry models.KhataEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findCustomer(entry.CustomerID); !ok {
		return ErrCustomerNotFound
	}
	entries := append([]models.KhataEntry{entry}, r.entries...)
	if err := r.store.Save(store.KeyKhataEntries, entries); err != nil {
		return err
	}
	r.entries = entries
	return nil
}

// ---------- settings, pin, reset ----------

func (r *Repository) UpdateSettings(s models.AppSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.OwnerName) == "" {
		s.OwnerName = models.DefaultSettings().OwnerName
	}
	if err := r.store.Save(store.KeySettings, s); err != nil {
		return err
	}
	r.settings = s
	return nil
}

// PinSet reports whether a PIN has been configured.
func (r *Repository) PinSet() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pinHash != ""
}

func (r *Repository) PinHash() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pinHash
}

func (r *Repository) SetPinHash(hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(store.KeyPin, hash); err != nil {
		return err
	}
	r.pinHash = hash
	return nil
}

// Reset wipes every persisted key and returns the repository to its
// first-run state. Irreversible; the handler gates it behind an explicit
// confirmation phrase.
func (r *Repository) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(store.AllKeys...); err != nil {
		return err
	}
	r.stock = nil
	r.sales = nil
	r.customers = nil
	r.entries = nil
	r.settings = models.DefaultSettings()
	r.pinHash = ""
	return nil
}

// ---------- unexported lookups (callers hold the lock) ----------

func (r *Repository) findProduct(id string) (models.Product, bool) {
	for _, p := range r.stock {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (r *Repository) findCustomer(id string) (models.Customer, bool) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}
