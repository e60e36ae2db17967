package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/models"
)

// LocalRepository defines the interface for rentable unit data access
type LocalRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Local, error)
	FindByProperty(ctx context.Context, propertyID uint) ([]models.Local, error)
	Create(ctx context.Context, local *models.Local) error
	Update(ctx context.Context, local *models.Local) error
	Delete(ctx context.Context, id uint) error
}

type localRepository struct {
	db *gorm.DB
}

// NewLocalRepository creates a new local repository
func NewLocalRepository(db *gorm.DB) LocalRepository {
	return &localRepository{db: db}
}

func (r *localRepository) FindByID(ctx context.Context, id uint) (*models.Local, error) {
	var local models.Local
	err := r.db.WithContext(ctx).
		Joins("Property").
		First(&local, id).Error
	if err != nil {
		return nil, err
	}
	return &local, nil
}

func (r *localRepository) FindByProperty(ctx context.Context, propertyID uint) ([]models.Local, error) {
	var locals []models.Local
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("reference_code ASC").
		Find(&locals).Error
	return locals, err
}

func (r *localRepository) Create(ctx context.Context, local *models.Local) error {
	return r.db.WithContext(ctx).Create(local).Error
}

func (r *localRepository) Update(ctx context.Context, local *models.Local) error {
	return r.db.WithContext(ctx).Save(local).Error
}

func (r *localRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Local{}, id).Error
}
