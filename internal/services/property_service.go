package services

import (
	"context"
	"errors"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// PropertyService handles property management operations
type PropertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo, userRepo: userRepo}
}

// CreatePropertyInput holds the fields for creating a property
type CreatePropertyInput struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	ManagerID *uint  `json:"manager_id"`
}

// UpdatePropertyInput holds the updatable fields of a property
type UpdatePropertyInput struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	ManagerID *uint   `json:"manager_id"`
}

// Create registers a new property, validating the manager assignment
func (s *PropertyService) Create(ctx context.Context, input *CreatePropertyInput) (*models.Property, error) {
	if input.ManagerID != nil {
		if err := s.validateManager(ctx, *input.ManagerID); err != nil {
			return nil, err
		}
	}

	property := &models.Property{
		Name:      input.Name,
		Location:  input.Location,
		ManagerID: input.ManagerID,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// GetByID fetches a property with its manager and units
func (s *PropertyService) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindByIDWithLocals(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return property, nil
}

// Update modifies a property's fields
func (s *PropertyService) Update(ctx context.Context, id uint, input *UpdatePropertyInput) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.ManagerID != nil {
		if err := s.validateManager(ctx, *input.ManagerID); err != nil {
			return nil, err
		}
		property.ManagerID = input.ManagerID
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Unassign removes the manager from a property
func (s *PropertyService) Unassign(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	property.ManagerID = nil
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a property
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.propertyRepo.Delete(ctx, id)
}

// List returns a paginated set of properties
func (s *PropertyService) List(ctx context.Context, query *repository.ListQuery) ([]models.Property, int64, error) {
	return s.propertyRepo.List(ctx, query)
}

// ListByManager returns the properties managed by a user
func (s *PropertyService) ListByManager(ctx context.Context, managerID uint) ([]models.Property, error) {
	return s.propertyRepo.FindByManager(ctx, managerID)
}

func (s *PropertyService) validateManager(ctx context.Context, managerID uint) error {
	manager, err := s.userRepo.FindByID(ctx, managerID)
	if err != nil {
		return errors.New("manager not found")
	}
	if manager.Role != models.RoleManager && manager.Role != models.RoleAdmin {
		return errors.New("assigned user is not a manager")
	}
	return nil
}
