package property

import (
	"context"
	"sort"

	"github.com/beesaferoot/rentdesk/property/models"
)

// LedgerLine is one dated entry in a tenant's statement. Exactly one of
// Debit and Credit is non-zero; Balance is the running sum of
// debit minus credit up to and including this line.
type LedgerLine struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

// Statement is a tenant's full ledger. Outstanding is total debits minus
// total credits; positive means money owed.
type Statement struct {
	TenantID    uint         `json:"tenant_id"`
	TenantName  string       `json:"tenant_name"`
	Lines       []LedgerLine `json:"lines"`
	Outstanding float64      `json:"outstanding"`
}

// BuildLedger derives a tenant's chronological statement from invoice
// and payment rows. It is a pure projection: rebuilding from the same
// rows always yields the same statement. Invoices become debit lines
// dated by due date, payments become credit lines dated by payment date.
// Equal dates keep debits ahead of credits.
func (s *Service) BuildLedger(ctx context.Context, tenantID uint) (*Statement, error) {
	tenant, err := s.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("id").Find(&invoices).Error; err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}

	type entry struct {
		key  int64
		line LedgerLine
	}
	entries := make([]entry, 0, len(invoices)+len(payments))
	for _, inv := range invoices {
		entries = append(entries, entry{
			key: dateOnly(inv.DueDate).Unix(),
			line: LedgerLine{
				Date:        inv.DueDate.Format("2006-01-02"),
				Description: inv.Description,
				Debit:       inv.Amount,
			},
		})
	}
	for _, pay := range payments {
		entries = append(entries, entry{
			key: dateOnly(pay.Date).Unix(),
			line: LedgerLine{
				Date:        pay.Date.Format("2006-01-02"),
				Description: "Payment Received",
				Credit:      pay.Amount,
			},
		})
	}

	// Stable sort keeps concatenation order on date ties, so a debit and
	// its same-day settlement stay in debit-then-credit order.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	lines := make([]LedgerLine, 0, len(entries))
	balance := 0.0
	for _, e := range entries {
		balance += e.line.Debit - e.line.Credit
		e.line.Balance = balance
		lines = append(lines, e.line)
	}

	return &Statement{
		TenantID:    tenantID,
		TenantName:  tenant.Name,
		Lines:       lines,
		Outstanding: balance,
	}, nil
}
