package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/storage"
)

type mockPaymentRepo struct {
	repository.PaymentRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Payment, error)
	mockUpdate   func(ctx context.Context, payment *models.Payment) error
	mockDelete   func(ctx context.Context, id uint) error
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockPaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	return m.mockUpdate(ctx, payment)
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id uint) error {
	return m.mockDelete(ctx, id)
}

func newTestStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func receiptUpload(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="receipt"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	header := form.File["receipt"][0]
	file, err := header.Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestAttachReceipt_ReplacesExisting(t *testing.T) {
	store := newTestStorage(t)

	oldPath, err := store.UploadFromBytes([]byte("old receipt"), "old.pdf", "receipts")
	require.NoError(t, err)

	payment := &models.Payment{ID: 1, LeaseID: 1, ReceiptPath: &oldPath}
	updated := false
	paymentRepo := &mockPaymentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Payment, error) {
			return payment, nil
		},
		mockUpdate: func(ctx context.Context, p *models.Payment) error {
			updated = true
			return nil
		},
	}
	svc := NewPaymentService(paymentRepo, nil, nil, store)

	file, header := receiptUpload(t, "receipt.pdf", "application/pdf", []byte("%PDF-1.4 new receipt"))
	got, err := svc.AttachReceipt(context.Background(), 1, file, header)
	require.NoError(t, err)
	require.True(t, updated)

	require.NotNil(t, got.ReceiptPath)
	assert.NotEqual(t, oldPath, *got.ReceiptPath)
	assert.True(t, store.Exists(*got.ReceiptPath))

	// The previous receipt file is cleaned up
	assert.False(t, store.Exists(oldPath))
}

func TestAttachReceipt_RejectsUnsupportedType(t *testing.T) {
	store := newTestStorage(t)
	paymentRepo := &mockPaymentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Payment, error) {
			return &models.Payment{ID: 1, LeaseID: 1}, nil
		},
	}
	svc := NewPaymentService(paymentRepo, nil, nil, store)

	file, header := receiptUpload(t, "receipt.txt", "text/plain", []byte("not a receipt"))
	_, err := svc.AttachReceipt(context.Background(), 1, file, header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestOpenReceipt_NoneAttached(t *testing.T) {
	store := newTestStorage(t)
	paymentRepo := &mockPaymentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Payment, error) {
			return &models.Payment{ID: 1, LeaseID: 1}, nil
		},
	}
	svc := NewPaymentService(paymentRepo, nil, nil, store)

	_, err := svc.OpenReceipt(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePayment_RemovesReceipt(t *testing.T) {
	store := newTestStorage(t)

	path, err := store.UploadFromBytes([]byte("receipt"), "receipt.pdf", "receipts")
	require.NoError(t, err)

	deleted := false
	paymentRepo := &mockPaymentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Payment, error) {
			return &models.Payment{ID: 1, LeaseID: 1, ReceiptPath: &path}, nil
		},
		mockDelete: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewPaymentService(paymentRepo, nil, nil, store)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, deleted)
	assert.False(t, store.Exists(path))
}
