package property

import "time"

// CreateTenantRequest carries the inputs for a new tenant profile.
type CreateTenantRequest struct {
	Name      string
	Phone     string
	Email     string
	Guarantor string
	Notes     string
}

// CreateUnitRequest carries the inputs for a new unit. Units always
// start vacant.
type CreateUnitRequest struct {
	Code          string
	Floor         string
	Size          string
	RentAmount    float64
	DepositAmount float64
}

// CreateInvoiceRequest bills the current occupant of a unit.
type CreateInvoiceRequest struct {
	UnitID      uint
	Amount      float64
	Description string
	IssueDate   time.Time
	DueDate     time.Time
}

// RecordPaymentRequest settles an unpaid invoice.
type RecordPaymentRequest struct {
	InvoiceID uint
	Amount    float64
	Date      time.Time
	Method    string
}
