package models

import (
	"time"
)

// Lease status constants
const (
	LeaseStatusDraft      = "draft"
	LeaseStatusActive     = "active"
	LeaseStatusEnded      = "ended"
	LeaseStatusTerminated = "terminated"
)

// Lease represents a rental agreement between a tenant and a unit.
// A unit may accumulate several leases over time; "current" views only
// consider active ones.
type Lease struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LocalID     uint      `gorm:"not null;index" json:"local_id"`
	TenantID    uint      `gorm:"not null;index" json:"tenant_id"`
	Status      string    `gorm:"default:draft;not null;index" json:"status"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null;index" json:"end_date"`
	LeaseAmount float64   `gorm:"type:decimal(12,2);not null" json:"lease_amount"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Local    Local     `gorm:"foreignKey:LocalID" json:"local,omitempty"`
	Tenant   Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Payments []Payment `gorm:"foreignKey:LeaseID" json:"payments,omitempty"`
}

// TableName specifies the table name for Lease
func (Lease) TableName() string {
	return "leases"
}

// IsActive returns true for leases currently in force
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}

// MayActivate returns true if the lease can transition to active
func (l *Lease) MayActivate() bool {
	return l.Status == LeaseStatusDraft
}

// MayEnd returns true if the lease can be closed normally
func (l *Lease) MayEnd() bool {
	return l.Status == LeaseStatusActive
}

// MayTerminate returns true if the lease can be cut short
func (l *Lease) MayTerminate() bool {
	return l.Status == LeaseStatusActive
}
