package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/models"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Local").
		First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, id).Error
}

func (r *expenseRepository) List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Expense{})

	if propertyID := query.Filters["property_id"]; propertyID != "" {
		db = db.Joins("LEFT JOIN locals ON locals.id = expenses.local_id").
			Where("expenses.property_id = ? OR locals.property_id = ?", propertyID, propertyID)
	}
	if status := query.Filters["payment_status"]; status != "" {
		db = db.Where("expenses.payment_status = ?", status)
	}
	if category := query.Filters["category"]; category != "" {
		db = db.Where("expenses.category = ?", category)
	}
	if start := query.Filters["start_date"]; start != "" {
		db = db.Where("expenses.date >= ?", start)
	}
	if end := query.Filters["end_date"]; end != "" {
		db = db.Where("expenses.date <= ?", end)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Property").
		Preload("Local").
		Order("expenses.date DESC").
		Offset(query.Offset()).
		Limit(query.PerPage).
		Find(&expenses).Error
	return expenses, total, err
}
