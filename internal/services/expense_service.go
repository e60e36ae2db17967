package services

import (
	"context"
	"errors"
	"time"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// ExpenseService handles expense tracking operations
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	propertyRepo repository.PropertyRepository
	localRepo    repository.LocalRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, propertyRepo repository.PropertyRepository, localRepo repository.LocalRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		propertyRepo: propertyRepo,
		localRepo:    localRepo,
	}
}

// CreateExpenseInput holds the fields for recording an expense.
// Exactly one of PropertyID or LocalID must be set.
type CreateExpenseInput struct {
	PropertyID    *uint   `json:"property_id"`
	LocalID       *uint   `json:"local_id"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	VATAmount     float64 `json:"vat_amount"`
	Category      *string `json:"category"`
	PaymentStatus string  `json:"payment_status"`
	Date          string  `json:"date" binding:"required"`
}

// UpdateExpenseInput holds the updatable fields of an expense
type UpdateExpenseInput struct {
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount"`
	VATAmount     *float64 `json:"vat_amount"`
	Category      *string  `json:"category"`
	PaymentStatus *string  `json:"payment_status"`
	Date          *string  `json:"date"`
}

func validExpenseStatus(status string) bool {
	return status == models.ExpenseStatusPaid || status == models.ExpenseStatusPending
}

// Create records an expense attached to either a property or a unit
func (s *ExpenseService) Create(ctx context.Context, input *CreateExpenseInput) (*models.Expense, error) {
	if (input.PropertyID == nil) == (input.LocalID == nil) {
		return nil, errors.New("expense must reference exactly one of property_id or local_id")
	}
	if input.PropertyID != nil {
		if _, err := s.propertyRepo.FindByID(ctx, *input.PropertyID); err != nil {
			return nil, errors.New("property not found")
		}
	}
	if input.LocalID != nil {
		if _, err := s.localRepo.FindByID(ctx, *input.LocalID); err != nil {
			return nil, errors.New("unit not found")
		}
	}

	status := input.PaymentStatus
	if status == "" {
		status = models.ExpenseStatusPending
	}
	if !validExpenseStatus(status) {
		return nil, errors.New("invalid payment_status")
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}

	expense := &models.Expense{
		PropertyID:    input.PropertyID,
		LocalID:       input.LocalID,
		Description:   input.Description,
		Amount:        input.Amount,
		VATAmount:     input.VATAmount,
		Category:      input.Category,
		PaymentStatus: status,
		Date:          date,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID fetches a single expense
func (s *ExpenseService) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return expense, nil
}

// Update modifies an expense's fields
func (s *ExpenseService) Update(ctx context.Context, id uint, input *UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.VATAmount != nil {
		expense.VATAmount = *input.VATAmount
	}
	if input.Category != nil {
		expense.Category = input.Category
	}
	if input.PaymentStatus != nil {
		if !validExpenseStatus(*input.PaymentStatus) {
			return nil, errors.New("invalid payment_status")
		}
		expense.PaymentStatus = *input.PaymentStatus
	}
	if input.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *input.Date, time.Local)
		if err != nil {
			return nil, errors.New("invalid date, expected YYYY-MM-DD")
		}
		expense.Date = date
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// MarkPaid flips an expense to paid status
func (s *ExpenseService) MarkPaid(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if expense.PaymentStatus == models.ExpenseStatusPaid {
		return nil, ErrInvalidState
	}
	expense.PaymentStatus = models.ExpenseStatusPaid
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.expenseRepo.Delete(ctx, id)
}

// List returns a paginated set of expenses
func (s *ExpenseService) List(ctx context.Context, query *repository.ListQuery) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(ctx, query)
}
