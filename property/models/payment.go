package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment represents a received credit settling an invoice
type Payment struct {
	gorm.Model
	TenantID  uint
	Tenant    *Tenant   `gorm:"foreignKey:TenantID"`
	UnitID    uint
	Unit      *Unit     `gorm:"foreignKey:UnitID"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Date      time.Time `gorm:"type:date"`
	Method    string
	Reference string    `gorm:"uniqueIndex"`
}
