package models

import (
	"time"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents an application account (admin or property manager)
type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	FullName           string     `gorm:"not null" json:"full_name"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	EncryptedPassword  string     `gorm:"not null" json:"-"`
	Phone              string     `json:"phone"`
	Role               string     `gorm:"default:manager;not null;index" json:"role"`
	Status             string     `gorm:"default:active" json:"status"`
	RecoveryCode       *string    `json:"-"`
	RecoveryCodeSentAt *time.Time `json:"-"`
	DiscardedAt        *time.Time `gorm:"index" json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Associations
	Properties []Property `gorm:"foreignKey:ManagerID" json:"properties,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive returns true if the account may log in
func (u *User) IsActive() bool {
	return u.Status == "active" && u.DiscardedAt == nil
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
