package models

import (
	"time"
)

// Expense payment status constants
const (
	ExpenseStatusPaid    = "paid"
	ExpenseStatusPending = "pending"
)

// ExpenseCategoryFallback buckets expenses without a category in reports
const ExpenseCategoryFallback = "Uncategorized"

// Expense represents a cost attached to a property or to one of its units.
// Exactly one of PropertyID/LocalID is expected to be set in practice,
// though the schema does not enforce it.
type Expense struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    *uint     `gorm:"index" json:"property_id"`
	LocalID       *uint     `gorm:"index" json:"local_id"`
	Description   string    `gorm:"not null" json:"description"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	VATAmount     float64   `gorm:"type:decimal(12,2);default:0" json:"vat_amount"`
	Category      *string   `json:"category"`
	PaymentStatus string    `gorm:"default:pending;index" json:"payment_status"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Local    Local    `gorm:"foreignKey:LocalID" json:"local,omitempty"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// TotalAmount returns the VAT-inclusive cost of the expense
func (e *Expense) TotalAmount() float64 {
	return e.Amount + e.VATAmount
}

// CategoryLabel returns the category or the fallback bucket
func (e *Expense) CategoryLabel() string {
	if e.Category == nil || *e.Category == "" {
		return ExpenseCategoryFallback
	}
	return *e.Category
}
