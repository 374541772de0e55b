// Package store defines the persistence capability the repository is built
// on: a small synchronous key/value store mapping a logical key to one
// JSON-serializable value (a whole collection, or a singleton record).
package store

// Logical keys. Each key owns exactly one persisted value.
const (
	KeyStock        = "stock"
	KeySales        = "sales"
	KeyCustomers    = "customers"
	KeyKhataEntries = "khataEntries"
	KeySettings     = "app-settings"
	KeyPin          = "app-pin"
)

// AllKeys lists every key the application persists, in backup order.
var AllKeys = []string{KeyStock, KeySales, KeyCustomers, KeyKhataEntries, KeySettings, KeyPin}

// Store is the persistence capability. Load reports whether the key existed.
// SaveAll must apply every write or none, so a multi-collection mutation
// (a credit sale, a cascade delete) cannot be half-persisted by a crash.
type Store interface {
	Load(key string, dest any) (bool, error)
	Save(key string, value any) error
	SaveAll(values map[string]any) error
	Delete(keys ...string) error
}
