package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
)

// Invoice represents a billed debit against a tenant for a unit
type Invoice struct {
	gorm.Model
	UnitID      uint
	Unit        *Unit     `gorm:"foreignKey:UnitID"`
	TenantID    uint
	Tenant      *Tenant   `gorm:"foreignKey:TenantID"`
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Description string
	Status      string    `gorm:"not null;default:'unpaid'"`
	IssueDate   time.Time `gorm:"type:date"`
	DueDate     time.Time `gorm:"type:date"`
}
