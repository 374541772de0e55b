package models

import (
	"time"
)

// Customer is a khata account holder. Entries reference it by id only;
// deleting a customer must also delete its entries.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// Khata entry types. This is the shop's sign convention, not accounting
// debit/credit: a credit entry increases what the customer owes (goods or
// money given on trust), a debit entry decreases it (repayment received).
const (
	EntryCredit = "credit"
	EntryDebit  = "debit"
)

// KhataEntry is one append-only ledger movement against a customer account.
type KhataEntry struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	Type        string    `json:"type"` // credit / debit
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"productName,omitempty"` // set for credit sales
	Condition   string    `json:"condition,omitempty"`   // free-text repayment note
}
