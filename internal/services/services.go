package services

import (
	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/config"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Property     *PropertyService
	Local        *LocalService
	Tenant       *TenantService
	Lease        *LeaseService
	Payment      *PaymentService
	Expense      *ExpenseService
	Report       *ReportService
	Export       *ExportService
	Email        *EmailService
	Notification *NotificationService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, storage *storage.LocalStorage, cfg *config.Config, db *gorm.DB) *Services {
	emailSvc := NewEmailService(cfg)
	reportSvc := NewReportService(repos.Report, repos.Property)
	exportSvc := NewExportService(reportSvc)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, emailSvc, cfg),
		User:         NewUserService(repos.User),
		Property:     NewPropertyService(repos.Property, repos.User),
		Local:        NewLocalService(repos.Local, repos.Property, repos.Lease),
		Tenant:       NewTenantService(repos.Tenant, repos.Lease),
		Lease:        NewLeaseService(repos.Lease, repos.Local, repos.Tenant, db),
		Payment:      NewPaymentService(repos.Payment, repos.Lease, repos.Local, storage),
		Expense:      NewExpenseService(repos.Expense, repos.Property, repos.Local),
		Report:       reportSvc,
		Export:       exportSvc,
		Email:        emailSvc,
		Notification: NewNotificationService(repos.User, repos.RefreshToken, reportSvc, emailSvc),
	}
}
