package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/services"
)

type mockReportRepo struct {
	repository.ReportRepository
	mockFindLocals  func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error)
	mockSumPayments func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error)
}

func (m *mockReportRepo) FindLocals(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
	return m.mockFindLocals(ctx, scope)
}

func (m *mockReportRepo) SumPayments(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error) {
	return m.mockSumPayments(ctx, scope, startDate, endDate)
}

type mockPropertyRepo struct {
	repository.PropertyRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Property, error)
}

func (m *mockPropertyRepo) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	return m.mockFindByID(ctx, id)
}

func newReportTestContext(t *testing.T, url string, userID uint, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", url, nil)
	c.Set("userID", userID)
	c.Set("userRole", role)
	return c, w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestReportHandler_Occupancy_SuccessEnvelope(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindLocals: func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
			return []models.Local{
				{ID: 1, Status: models.LocalStatusOccupied},
				{ID: 2, Status: models.LocalStatusAvailable},
			}, nil
		},
	}
	reportSvc := services.NewReportService(reportRepo, nil)
	handler := NewReportHandler(reportSvc, services.NewExportService(reportSvc))

	c, w := newReportTestContext(t, "/reports/occupancy", 1, models.RoleAdmin)
	handler.Occupancy(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)

	var stats models.OccupancyStats
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, 2, stats.TotalUnits)
	assert.Equal(t, 50.0, stats.OccupancyRate)
}

func TestReportHandler_Occupancy_AccessDeniedIs403(t *testing.T) {
	managerID := uint(99)
	propertyRepo := &mockPropertyRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Property, error) {
			return &models.Property{ID: id, ManagerID: &managerID}, nil
		},
	}
	reportSvc := services.NewReportService(&mockReportRepo{}, propertyRepo)
	handler := NewReportHandler(reportSvc, services.NewExportService(reportSvc))

	c, w := newReportTestContext(t, "/manager/reports/occupancy?property_id=3", 7, models.RoleManager)
	handler.Occupancy(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Access denied")
}

func TestReportHandler_Occupancy_RepoErrorIs500(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindLocals: func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
			return nil, errors.New("connection refused")
		},
	}
	reportSvc := services.NewReportService(reportRepo, nil)
	handler := NewReportHandler(reportSvc, services.NewExportService(reportSvc))

	c, w := newReportTestContext(t, "/reports/occupancy", 1, models.RoleAdmin)
	handler.Occupancy(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestParsePropertyID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query  string
		wantID *uint
		wantOK bool
	}{
		{"", nil, true},
		{"property_id=", nil, true},
		{"property_id=null", nil, true},
		{"property_id=undefined", nil, true},
		{"property_id=12", func() *uint { v := uint(12); return &v }(), true},
		{"property_id=abc", nil, false},
		{"property_id=-4", nil, false},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/reports/occupancy?"+tc.query, nil)

		id, ok := parsePropertyID(c)
		assert.Equal(t, tc.wantOK, ok, "query %q", tc.query)
		if tc.wantID == nil {
			assert.Nil(t, id, "query %q", tc.query)
		} else {
			require.NotNil(t, id, "query %q", tc.query)
			assert.Equal(t, *tc.wantID, *id)
		}
	}
}
