package services

import (
	"context"
	"errors"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// LocalService handles rental unit operations
type LocalService struct {
	localRepo    repository.LocalRepository
	propertyRepo repository.PropertyRepository
	leaseRepo    repository.LeaseRepository
}

// NewLocalService creates a new local service
func NewLocalService(localRepo repository.LocalRepository, propertyRepo repository.PropertyRepository, leaseRepo repository.LeaseRepository) *LocalService {
	return &LocalService{localRepo: localRepo, propertyRepo: propertyRepo, leaseRepo: leaseRepo}
}

// CreateLocalInput holds the fields for creating a unit
type CreateLocalInput struct {
	PropertyID    uint    `json:"property_id" binding:"required"`
	ReferenceCode string  `json:"reference_code" binding:"required"`
	SizeM2        float64 `json:"size_m2"`
	RentPrice     float64 `json:"rent_price"`
	Status        string  `json:"status"`
}

// UpdateLocalInput holds the updatable fields of a unit
type UpdateLocalInput struct {
	ReferenceCode *string  `json:"reference_code"`
	SizeM2        *float64 `json:"size_m2"`
	RentPrice     *float64 `json:"rent_price"`
	Status        *string  `json:"status"`
}

func validLocalStatus(status string) bool {
	switch status {
	case models.LocalStatusAvailable, models.LocalStatusOccupied, models.LocalStatusMaintenance:
		return true
	}
	return false
}

// Create registers a new rental unit under a property
func (s *LocalService) Create(ctx context.Context, input *CreateLocalInput) (*models.Local, error) {
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		return nil, errors.New("property not found")
	}

	status := input.Status
	if status == "" {
		status = models.LocalStatusAvailable
	}
	if !validLocalStatus(status) {
		return nil, errors.New("invalid unit status")
	}

	local := &models.Local{
		PropertyID:    input.PropertyID,
		ReferenceCode: input.ReferenceCode,
		SizeM2:        input.SizeM2,
		RentPrice:     input.RentPrice,
		Status:        status,
	}
	if err := s.localRepo.Create(ctx, local); err != nil {
		return nil, err
	}
	return local, nil
}

// GetByID fetches a unit with its property
func (s *LocalService) GetByID(ctx context.Context, id uint) (*models.Local, error) {
	local, err := s.localRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return local, nil
}

// Update modifies a unit's fields
func (s *LocalService) Update(ctx context.Context, id uint, input *UpdateLocalInput) (*models.Local, error) {
	local, err := s.localRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.ReferenceCode != nil {
		local.ReferenceCode = *input.ReferenceCode
	}
	if input.SizeM2 != nil {
		local.SizeM2 = *input.SizeM2
	}
	if input.RentPrice != nil {
		local.RentPrice = *input.RentPrice
	}
	if input.Status != nil {
		if !validLocalStatus(*input.Status) {
			return nil, errors.New("invalid unit status")
		}
		if *input.Status != models.LocalStatusOccupied {
			// a unit with a running lease stays occupied
			if _, err := s.leaseRepo.FindActiveByLocal(ctx, id); err == nil {
				return nil, ErrInvalidState
			}
		}
		local.Status = *input.Status
	}

	if err := s.localRepo.Update(ctx, local); err != nil {
		return nil, err
	}
	return local, nil
}

// Delete removes a unit without an active lease
func (s *LocalService) Delete(ctx context.Context, id uint) error {
	if _, err := s.localRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if _, err := s.leaseRepo.FindActiveByLocal(ctx, id); err == nil {
		return ErrInvalidState
	}
	return s.localRepo.Delete(ctx, id)
}

// ListByProperty returns the units of a property
func (s *LocalService) ListByProperty(ctx context.Context, propertyID uint) ([]models.Local, error) {
	return s.localRepo.FindByProperty(ctx, propertyID)
}
