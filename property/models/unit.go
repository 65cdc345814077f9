package models

import "gorm.io/gorm"

const (
	UnitStatusVacant   = "vacant"
	UnitStatusOccupied = "occupied"
)

// Unit represents a rentable unit within the building
type Unit struct {
	gorm.Model
	Code            string `gorm:"uniqueIndex;not null"`
	Floor           string
	Size            string
	RentAmount      float64 `gorm:"type:decimal(10,2)"`
	DepositAmount   float64 `gorm:"type:decimal(10,2);default:0"`
	Status          string  `gorm:"not null;default:'vacant'"`
	CurrentTenantID *uint
	CurrentTenant   *Tenant `gorm:"foreignKey:CurrentTenantID"`
}
