package models

import (
	"time"
)

// Local status constants
const (
	LocalStatusAvailable   = "available"
	LocalStatusOccupied    = "occupied"
	LocalStatusMaintenance = "maintenance"
)

// Local represents a rentable unit within a property
type Local struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index" json:"property_id"`
	ReferenceCode string    `gorm:"not null" json:"reference_code"`
	Status        string    `gorm:"default:available;index" json:"status"`
	SizeM2        float64   `gorm:"type:decimal(10,2)" json:"size_m2"`
	RentPrice     float64   `gorm:"type:decimal(12,2)" json:"rent_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`

	// Associations
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Leases   []Lease  `gorm:"foreignKey:LocalID" json:"leases,omitempty"`
}

// TableName specifies the table name for Local
func (Local) TableName() string {
	return "locals"
}

// IsOccupied returns true when the unit currently houses an active lease
func (l *Local) IsOccupied() bool {
	return l.Status == LocalStatusOccupied
}
