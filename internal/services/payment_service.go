package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/storage"
)

// PaymentService handles rent payment operations
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	leaseRepo   repository.LeaseRepository
	localRepo   repository.LocalRepository
	storage     *storage.LocalStorage
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, leaseRepo repository.LeaseRepository, localRepo repository.LocalRepository, store *storage.LocalStorage) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
		localRepo:   localRepo,
		storage:     store,
	}
}

// CreatePaymentInput holds the fields for recording a payment
type CreatePaymentInput struct {
	LeaseID   uint    `json:"lease_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
}

// Create records a payment against a lease. The owning property id is
// resolved through the lease's unit and stored on the payment row so
// report queries can filter without joins.
func (s *PaymentService) Create(ctx context.Context, input *CreatePaymentInput) (*models.Payment, error) {
	lease, err := s.leaseRepo.FindByID(ctx, input.LeaseID)
	if err != nil {
		return nil, errors.New("lease not found")
	}
	if lease.Status != models.LeaseStatusActive {
		return nil, errors.New("payments can only be recorded on active leases")
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	start, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.New("end_date must not be before start_date")
	}

	payment := &models.Payment{
		LeaseID:   lease.ID,
		Amount:    input.Amount,
		Date:      date,
		StartDate: start,
		EndDate:   end,
		Reference: fmt.Sprintf("PAY-%s", uuid.NewString()[:8]),
	}

	if local, err := s.localRepo.FindByID(ctx, lease.LocalID); err == nil {
		payment.PropertyID = &local.PropertyID
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetByID fetches a payment with its lease context
func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return payment, nil
}

// AttachReceipt stores a receipt file and links it to the payment
func (s *PaymentService) AttachReceipt(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	contentType := header.Header.Get("Content-Type")
	if !storage.IsValidContentType(contentType) {
		return nil, errors.New("unsupported file type, expected pdf or image")
	}
	if header.Size > storage.MaxFileSize() {
		return nil, errors.New("file exceeds maximum allowed size")
	}

	path, err := s.storage.Upload(file, header, "receipts")
	if err != nil {
		return nil, err
	}

	if payment.ReceiptPath != nil && *payment.ReceiptPath != "" {
		_ = s.storage.Delete(*payment.ReceiptPath)
	}
	payment.ReceiptPath = &path

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// OpenReceipt returns the stored receipt file for a payment
func (s *PaymentService) OpenReceipt(ctx context.Context, id uint) (*os.File, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if payment.ReceiptPath == nil || *payment.ReceiptPath == "" || !s.storage.Exists(*payment.ReceiptPath) {
		return nil, ErrNotFound
	}
	return s.storage.Download(*payment.ReceiptPath)
}

// Delete removes a payment and its receipt file
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if payment.ReceiptPath != nil && *payment.ReceiptPath != "" {
		_ = s.storage.Delete(*payment.ReceiptPath)
	}
	return s.paymentRepo.Delete(ctx, id)
}

// List returns a paginated set of payments
func (s *PaymentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Payment, int64, error) {
	return s.paymentRepo.List(ctx, query)
}
