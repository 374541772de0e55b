package models

// AppSettings is the singleton store configuration: owner identity plus the
// user-facing labels for the two khata entry types.
type AppSettings struct {
	OwnerName   string `json:"ownerName"`
	OwnerPhoto  string `json:"ownerPhoto,omitempty"`
	OwnerEmail  string `json:"ownerEmail"`
	OwnerPhone  string `json:"ownerPhone"`
	CreditLabel string `json:"creditLabel"`
	DebitLabel  string `json:"debitLabel"`
}

// DefaultSettings returns the first-run settings record.
func DefaultSettings() AppSettings {
	return AppSettings{
		OwnerName:   "Store Owner",
		CreditLabel: "Udhaar Diya (Credit)",
		DebitLabel:  "Paisa Liya (Debit)",
	}
}
