package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/models"
)

// LeaseRepository defines the interface for lease data access
type LeaseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Lease, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Lease, error)
	FindActiveByLocal(ctx context.Context, localID uint) (*models.Lease, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]models.Lease, error)
	Create(ctx context.Context, lease *models.Lease) error
	Update(ctx context.Context, lease *models.Lease) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *LeaseQuery) ([]models.Lease, int64, error)
}

// LeaseQuery extends ListQuery with lease-specific filters
type LeaseQuery struct {
	*ListQuery
	Status     string
	PropertyID uint
	LocalID    uint
}

type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *gorm.DB) LeaseRepository {
	return &leaseRepository{db: db}
}

func (r *leaseRepository) FindByID(ctx context.Context, id uint) (*models.Lease, error) {
	var lease models.Lease
	err := r.db.WithContext(ctx).First(&lease, id).Error
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *leaseRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Lease, error) {
	var lease models.Lease
	// Local, its Property and the Tenant via Joins; Payments stay a Preload
	// since they are one-to-many.
	err := r.db.WithContext(ctx).
		Joins("Local").
		Joins("Local.Property").
		Joins("Tenant").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		First(&lease, id).Error
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *leaseRepository) FindActiveByLocal(ctx context.Context, localID uint) (*models.Lease, error) {
	var lease models.Lease
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND status = ?", localID, models.LeaseStatusActive).
		First(&lease).Error
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *leaseRepository) FindByTenant(ctx context.Context, tenantID uint) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Preload("Local.Property").
		Find(&leases).Error
	return leases, err
}

func (r *leaseRepository) Create(ctx context.Context, lease *models.Lease) error {
	return r.db.WithContext(ctx).Create(lease).Error
}

func (r *leaseRepository) Update(ctx context.Context, lease *models.Lease) error {
	return r.db.WithContext(ctx).Save(lease).Error
}

func (r *leaseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Lease{}, id).Error
}

func (r *leaseRepository) List(ctx context.Context, query *LeaseQuery) ([]models.Lease, int64, error) {
	var leases []models.Lease
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Lease{})

	if query.Status != "" {
		db = db.Where("leases.status = ?", query.Status)
	}
	if query.LocalID > 0 {
		db = db.Where("leases.local_id = ?", query.LocalID)
	}
	if query.PropertyID > 0 {
		db = db.Joins("JOIN locals ON locals.id = leases.local_id").
			Where("locals.property_id = ?", query.PropertyID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Local.Property").
		Preload("Tenant").
		Order("leases.created_at DESC").
		Offset(query.Offset()).
		Limit(query.PerPage).
		Find(&leases).Error
	return leases, total, err
}
