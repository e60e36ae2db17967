package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/statemachine"
)

// LeaseService handles lease lifecycle operations
type LeaseService struct {
	leaseRepo  repository.LeaseRepository
	localRepo  repository.LocalRepository
	tenantRepo repository.TenantRepository
	db         *gorm.DB
}

// NewLeaseService creates a new lease service
func NewLeaseService(leaseRepo repository.LeaseRepository, localRepo repository.LocalRepository, tenantRepo repository.TenantRepository, db *gorm.DB) *LeaseService {
	return &LeaseService{
		leaseRepo:  leaseRepo,
		localRepo:  localRepo,
		tenantRepo: tenantRepo,
		db:         db,
	}
}

// CreateLeaseInput holds the fields for drafting a lease
type CreateLeaseInput struct {
	LocalID     uint    `json:"local_id" binding:"required"`
	TenantID    uint    `json:"tenant_id" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	LeaseAmount float64 `json:"lease_amount" binding:"required"`
}

// UpdateLeaseInput holds the updatable fields of a draft lease
type UpdateLeaseInput struct {
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	LeaseAmount *float64 `json:"lease_amount"`
}

// Create drafts a new lease for a unit and tenant
func (s *LeaseService) Create(ctx context.Context, input *CreateLeaseInput) (*models.Lease, error) {
	local, err := s.localRepo.FindByID(ctx, input.LocalID)
	if err != nil {
		return nil, errors.New("unit not found")
	}
	if _, err := s.tenantRepo.FindByID(ctx, input.TenantID); err != nil {
		return nil, errors.New("tenant not found")
	}
	if _, err := s.leaseRepo.FindActiveByLocal(ctx, local.ID); err == nil {
		return nil, errors.New("unit already has an active lease")
	}

	start, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	if !end.After(start) {
		return nil, errors.New("end_date must be after start_date")
	}

	lease := &models.Lease{
		LocalID:     input.LocalID,
		TenantID:    input.TenantID,
		Status:      models.LeaseStatusDraft,
		StartDate:   start,
		EndDate:     end,
		LeaseAmount: input.LeaseAmount,
	}
	if err := s.leaseRepo.Create(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// GetByID fetches a lease with its unit, property, tenant and payments
func (s *LeaseService) GetByID(ctx context.Context, id uint) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return lease, nil
}

// Update modifies a lease while still in draft
func (s *LeaseService) Update(ctx context.Context, id uint, input *UpdateLeaseInput) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if lease.Status != models.LeaseStatusDraft {
		return nil, ErrInvalidState
	}

	if input.StartDate != nil {
		start, err := time.ParseInLocation("2006-01-02", *input.StartDate, time.Local)
		if err != nil {
			return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		lease.StartDate = start
	}
	if input.EndDate != nil {
		end, err := time.ParseInLocation("2006-01-02", *input.EndDate, time.Local)
		if err != nil {
			return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		lease.EndDate = end
	}
	if input.LeaseAmount != nil {
		lease.LeaseAmount = *input.LeaseAmount
	}
	if !lease.EndDate.After(lease.StartDate) {
		return nil, errors.New("end_date must be after start_date")
	}

	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// Activate transitions a draft lease to active and marks the unit occupied
func (s *LeaseService) Activate(ctx context.Context, id uint) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	lfsm := statemachine.NewLeaseFSM(lease)
	if err := lfsm.Activate(ctx); err != nil {
		return nil, ErrInvalidState
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		return tx.Model(&models.Local{}).
			Where("id = ?", lease.LocalID).
			Update("status", models.LocalStatusOccupied).Error
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// End transitions an active lease to ended and frees the unit
func (s *LeaseService) End(ctx context.Context, id uint) (*models.Lease, error) {
	return s.close(ctx, id, func(lfsm *statemachine.LeaseFSM) error {
		return lfsm.End(ctx)
	})
}

// Terminate breaks an active lease early and frees the unit
func (s *LeaseService) Terminate(ctx context.Context, id uint) (*models.Lease, error) {
	return s.close(ctx, id, func(lfsm *statemachine.LeaseFSM) error {
		return lfsm.Terminate(ctx)
	})
}

func (s *LeaseService) close(ctx context.Context, id uint, transition func(*statemachine.LeaseFSM) error) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	lfsm := statemachine.NewLeaseFSM(lease)
	if err := transition(lfsm); err != nil {
		return nil, ErrInvalidState
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		return tx.Model(&models.Local{}).
			Where("id = ?", lease.LocalID).
			Update("status", models.LocalStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// Delete removes a draft lease
func (s *LeaseService) Delete(ctx context.Context, id uint) error {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if lease.Status != models.LeaseStatusDraft {
		return ErrInvalidState
	}
	return s.leaseRepo.Delete(ctx, id)
}

// List returns a paginated set of leases
func (s *LeaseService) List(ctx context.Context, query *repository.LeaseQuery) ([]models.Lease, int64, error) {
	return s.leaseRepo.List(ctx, query)
}
