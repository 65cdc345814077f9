package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents a person renting a unit in the building
type Tenant struct {
	gorm.Model
	Name       string    `gorm:"not null"`
	Phone      string
	Email      string
	Guarantor  string
	Notes      string
	JoinedDate time.Time `gorm:"type:date"`
}
