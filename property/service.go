package property

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/beesaferoot/rentdesk/property/models"
)

// Service is the UI-independent core of the property dashboard. All
// mutations go through it; projections (ledger, overview) are derived
// from the same rows and never persisted.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// dateOnly truncates a timestamp to its calendar date. Ledger ordering
// and invoice due dates compare by date, never by time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) CreateTenant(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}

	tenant := models.Tenant{
		Name:       strings.TrimSpace(req.Name),
		Phone:      req.Phone,
		Email:      req.Email,
		Guarantor:  req.Guarantor,
		Notes:      req.Notes,
		JoinedDate: dateOnly(time.Now()),
	}
	if err := s.db.WithContext(ctx).Create(&tenant).Error; err != nil {
		return nil, err
	}

	s.logger.Info("tenant created", zap.Uint("tenant_id", tenant.ID), zap.String("name", tenant.Name))
	return &tenant, nil
}

func (s *Service) CreateUnit(ctx context.Context, req CreateUnitRequest) (*models.Unit, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, &ValidationError{Field: "code", Reason: "required"}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Unit{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Resource: "unit", Reason: "code " + code + " already exists"}
	}

	unit := models.Unit{
		Code:          code,
		Floor:         req.Floor,
		Size:          req.Size,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
		Status:        models.UnitStatusVacant,
	}
	if err := s.db.WithContext(ctx).Create(&unit).Error; err != nil {
		return nil, err
	}

	s.logger.Info("unit created", zap.Uint("unit_id", unit.ID), zap.String("code", unit.Code))
	return &unit, nil
}

// AssignTenant moves a tenant into a vacant unit. There is no transfer
// operation: an occupied unit must be vacated before it can be reassigned.
func (s *Service) AssignTenant(ctx context.Context, unitID, tenantID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.First(&unit, unitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "unit", ID: unitID}
			}
			return err
		}
		if unit.Status != models.UnitStatusVacant {
			return &StateError{Resource: "unit", ID: unitID, Current: unit.Status, Reason: "vacate before reassigning"}
		}

		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "tenant", ID: tenantID}
			}
			return err
		}

		return tx.Model(&unit).Updates(map[string]interface{}{
			"status":            models.UnitStatusOccupied,
			"current_tenant_id": tenant.ID,
		}).Error
	})
	if err != nil {
		return err
	}

	s.logger.Info("tenant assigned", zap.Uint("unit_id", unitID), zap.Uint("tenant_id", tenantID))
	return nil
}

// VacateUnit clears a unit's occupancy. Idempotent: vacating a vacant
// unit succeeds without effect.
func (s *Service) VacateUnit(ctx context.Context, unitID uint) error {
	var unit models.Unit
	if err := s.db.WithContext(ctx).First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "unit", ID: unitID}
		}
		return err
	}

	return s.db.WithContext(ctx).Model(&unit).Updates(map[string]interface{}{
		"status":            models.UnitStatusVacant,
		"current_tenant_id": nil,
	}).Error
}

// DeleteTenant vacates any unit held by the tenant and removes the
// profile. Unless cascadeFinancials is set, a tenant with invoices or
// payments on record is refused with a ConflictError carrying the row
// counts, so callers can offer a force-delete retry.
func (s *Service) DeleteTenant(ctx context.Context, tenantID uint, cascadeFinancials bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "tenant", ID: tenantID}
			}
			return err
		}

		var invoices, payments int64
		if err := tx.Model(&models.Invoice{}).Where("tenant_id = ?", tenantID).Count(&invoices).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Payment{}).Where("tenant_id = ?", tenantID).Count(&payments).Error; err != nil {
			return err
		}
		if !cascadeFinancials && (invoices > 0 || payments > 0) {
			return &ConflictError{
				Resource:     "tenant",
				Reason:       "tenant has financial history; force-delete required",
				InvoiceCount: invoices,
				PaymentCount: payments,
			}
		}

		if err := tx.Model(&models.Unit{}).Where("current_tenant_id = ?", tenantID).Updates(map[string]interface{}{
			"status":            models.UnitStatusVacant,
			"current_tenant_id": nil,
		}).Error; err != nil {
			return err
		}

		if cascadeFinancials {
			if err := tx.Where("tenant_id = ?", tenantID).Delete(&models.Invoice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tenant_id = ?", tenantID).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&tenant).Error
	})
	if err != nil {
		return err
	}

	s.logger.Info("tenant deleted", zap.Uint("tenant_id", tenantID), zap.Bool("cascade", cascadeFinancials))
	return nil
}

// CreateInvoice bills the current occupant of a unit. The tenant is
// captured from the occupancy at call time and never re-derived.
func (s *Service) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var unit models.Unit
	if err := s.db.WithContext(ctx).First(&unit, req.UnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "unit", ID: req.UnitID}
		}
		return nil, err
	}
	if unit.Status != models.UnitStatusOccupied || unit.CurrentTenantID == nil {
		return nil, &StateError{Resource: "unit", ID: unit.ID, Current: unit.Status, Reason: "invoices require an occupied unit"}
	}

	issue := req.IssueDate
	if issue.IsZero() {
		issue = time.Now()
	}
	due := req.DueDate
	if due.IsZero() {
		due = issue
	}

	invoice := models.Invoice{
		UnitID:      unit.ID,
		TenantID:    *unit.CurrentTenantID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      models.InvoiceStatusUnpaid,
		IssueDate:   dateOnly(issue),
		DueDate:     dateOnly(due),
	}
	if err := s.db.WithContext(ctx).Create(&invoice).Error; err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.Uint("invoice_id", invoice.ID),
		zap.Uint("unit_id", invoice.UnitID),
		zap.Uint("tenant_id", invoice.TenantID),
		zap.Float64("amount", invoice.Amount),
	)
	return &invoice, nil
}

// RecordPayment settles an unpaid invoice. The payment insert and the
// invoice status flip run in one transaction; a crash between the two
// can never leave a payment against a still-unpaid invoice.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var payment models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.First(&invoice, req.InvoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "invoice", ID: req.InvoiceID}
			}
			return err
		}
		if invoice.Status != models.InvoiceStatusUnpaid {
			return &StateError{Resource: "invoice", ID: invoice.ID, Current: invoice.Status, Reason: "already settled"}
		}

		date := req.Date
		if date.IsZero() {
			date = time.Now()
		}
		method := req.Method
		if method == "" {
			method = "Cash"
		}

		payment = models.Payment{
			TenantID:  invoice.TenantID,
			UnitID:    invoice.UnitID,
			Amount:    req.Amount,
			Date:      dateOnly(date),
			Method:    method,
			Reference: uuid.NewString(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return tx.Model(&invoice).Update("status", models.InvoiceStatusPaid).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("invoice_id", req.InvoiceID),
		zap.Float64("amount", payment.Amount),
	)
	return &payment, nil
}

func (s *Service) GetTenant(ctx context.Context, tenantID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "tenant", ID: tenantID}
		}
		return nil, err
	}
	return &tenant, nil
}

func (s *Service) GetUnit(ctx context.Context, unitID uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.WithContext(ctx).First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "unit", ID: unitID}
		}
		return nil, err
	}
	return &unit, nil
}

func (s *Service) GetInvoice(ctx context.Context, invoiceID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "invoice", ID: invoiceID}
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *Service) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	tenants := make([]models.Tenant, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s *Service) ListUnits(ctx context.Context) ([]models.Unit, error) {
	units := make([]models.Unit, 0)
	if err := s.db.WithContext(ctx).Order("floor, code").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
