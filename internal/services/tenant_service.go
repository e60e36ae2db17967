package services

import (
	"context"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// TenantService handles tenant directory operations
type TenantService struct {
	tenantRepo repository.TenantRepository
	leaseRepo  repository.LeaseRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository, leaseRepo repository.LeaseRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, leaseRepo: leaseRepo}
}

// TenantInput holds the fields for creating or updating a tenant
type TenantInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Create registers a new tenant
func (s *TenantService) Create(ctx context.Context, input *TenantInput) (*models.Tenant, error) {
	tenant := &models.Tenant{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetByID fetches a single tenant
func (s *TenantService) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return tenant, nil
}

// Update modifies a tenant's contact details
func (s *TenantService) Update(ctx context.Context, id uint, input *TenantInput) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	tenant.Name = input.Name
	tenant.Email = input.Email
	tenant.Phone = input.Phone

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Delete removes a tenant with no recorded leases
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	leases, err := s.leaseRepo.FindByTenant(ctx, id)
	if err != nil {
		return err
	}
	if len(leases) > 0 {
		return ErrInvalidState
	}
	return s.tenantRepo.Delete(ctx, id)
}

// List returns a paginated set of tenants
func (s *TenantService) List(ctx context.Context, query *repository.ListQuery) ([]models.Tenant, int64, error) {
	return s.tenantRepo.List(ctx, query)
}
