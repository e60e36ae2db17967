package models

import (
	"time"
)

// Property represents a managed building or complex of rentable units
type Property struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	ManagerID *uint     `gorm:"index" json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Manager User    `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Locals  []Local `gorm:"foreignKey:PropertyID" json:"locals,omitempty"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}

// OwnedBy returns true when the property is assigned to the given manager.
// A property without a manager belongs to nobody.
func (p *Property) OwnedBy(managerID uint) bool {
	return p.ManagerID != nil && *p.ManagerID == managerID
}
