package models

import (
	"time"
)

// Payment represents a rent payment settling a coverage period of a lease.
// PropertyID is denormalized for direct filtering; the authoritative owner
// chain is Lease → Local → Property.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LeaseID     uint      `gorm:"not null;index" json:"lease_id"`
	PropertyID  *uint     `gorm:"index" json:"property_id"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	Reference   string    `json:"reference"`
	ReceiptPath *string   `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Lease Lease `gorm:"foreignKey:LeaseID" json:"lease,omitempty"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Covers returns true when the payment's coverage interval overlaps [from, to]
func (p *Payment) Covers(from, to time.Time) bool {
	return !p.StartDate.After(to) && !p.EndDate.Before(from)
}

// PaymentResponse is the JSON response format for payments
type PaymentResponse struct {
	ID         uint      `json:"id"`
	LeaseID    uint      `json:"lease_id"`
	PropertyID *uint     `json:"property_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reference  string    `json:"reference"`
	HasReceipt bool      `json:"has_receipt"`

	// Lease details
	TenantName string `json:"tenant_name,omitempty"`
	UnitCode   string `json:"unit_code,omitempty"`
	Property   string `json:"property,omitempty"`
}

// ToResponse converts Payment to PaymentResponse
func (p *Payment) ToResponse() PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID,
		LeaseID:    p.LeaseID,
		PropertyID: p.PropertyID,
		Amount:     p.Amount,
		Date:       p.Date,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Reference:  p.Reference,
		HasReceipt: p.ReceiptPath != nil && *p.ReceiptPath != "",
	}

	if p.Lease.ID != 0 {
		if p.Lease.Tenant.ID != 0 {
			resp.TenantName = p.Lease.Tenant.Name
		}
		if p.Lease.Local.ID != 0 {
			resp.UnitCode = p.Lease.Local.ReferenceCode
			if p.Lease.Local.Property.ID != 0 {
				resp.Property = p.Lease.Local.Property.Name
			}
		}
	}

	return resp
}
