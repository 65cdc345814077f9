package property

import "fmt"

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// StateError reports an operation that is invalid for the entity's
// current state, e.g. assigning an occupied unit or paying a paid invoice.
type StateError struct {
	Resource string
	ID       uint
	Current  string
	Reason   string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %d is %s: %s", e.Resource, e.ID, e.Current, e.Reason)
}

// ConflictError reports a uniqueness or referential-integrity violation.
// When a tenant delete is refused because financial history exists,
// InvoiceCount and PaymentCount carry enough detail for the caller to
// offer a force-delete retry.
type ConflictError struct {
	Resource     string
	Reason       string
	InvoiceCount int64
	PaymentCount int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

// HasFinancialHistory reports whether the conflict is the
// delete-with-history case that a cascade delete would resolve.
func (e *ConflictError) HasFinancialHistory() bool {
	return e.InvoiceCount > 0 || e.PaymentCount > 0
}
