package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Property     PropertyRepository
	Local        LocalRepository
	Tenant       TenantRepository
	Lease        LeaseRepository
	Payment      PaymentRepository
	Expense      ExpenseRepository
	Report       ReportRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		Property:     NewPropertyRepository(db),
		Local:        NewLocalRepository(db),
		Tenant:       NewTenantRepository(db),
		Lease:        NewLeaseRepository(db),
		Payment:      NewPaymentRepository(db),
		Expense:      NewExpenseRepository(db),
		Report:       NewReportRepository(db),
	}
}
