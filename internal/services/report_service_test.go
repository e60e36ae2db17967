package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

type mockReportRepo struct {
	repository.ReportRepository
	mockSumPayments               func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error)
	mockSumPaidExpensesByCategory func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) ([]repository.CategoryTotal, error)
	mockFindLocals                func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error)
	mockFindAvailableLocals       func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error)
	mockFindActiveLeases          func(ctx context.Context, scope repository.ReportScope) ([]models.Lease, error)
	mockFindLeasesWithCoverage    func(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error)
	mockFindLeasesExpiring        func(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error)
}

func (m *mockReportRepo) SumPayments(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error) {
	return m.mockSumPayments(ctx, scope, startDate, endDate)
}

func (m *mockReportRepo) SumPaidExpensesByCategory(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) ([]repository.CategoryTotal, error) {
	return m.mockSumPaidExpensesByCategory(ctx, scope, startDate, endDate)
}

func (m *mockReportRepo) FindLocals(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
	return m.mockFindLocals(ctx, scope)
}

func (m *mockReportRepo) FindAvailableLocals(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
	return m.mockFindAvailableLocals(ctx, scope)
}

func (m *mockReportRepo) FindActiveLeases(ctx context.Context, scope repository.ReportScope) ([]models.Lease, error) {
	return m.mockFindActiveLeases(ctx, scope)
}

func (m *mockReportRepo) FindActiveLeasesWithCoverage(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error) {
	return m.mockFindLeasesWithCoverage(ctx, scope, from, to)
}

func (m *mockReportRepo) FindLeasesExpiring(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error) {
	return m.mockFindLeasesExpiring(ctx, scope, from, to)
}

type mockPropertyRepo struct {
	repository.PropertyRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Property, error)
}

func (m *mockPropertyRepo) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	return m.mockFindByID(ctx, id)
}

func uintPtr(v uint) *uint { return &v }

func TestGetFinancialSummary_Identity(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockSumPayments: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error) {
			return 150000, nil
		},
		mockSumPaidExpensesByCategory: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) ([]repository.CategoryTotal, error) {
			return []repository.CategoryTotal{
				{Category: "Maintenance", Total: 20000},
				{Category: "Security", Total: 10000},
				{Category: models.ExpenseCategoryFallback, Total: 5000},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	summary, err := svc.GetFinancialSummary(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, FinancialSummaryParams{})
	require.NoError(t, err)

	assert.Equal(t, 150000.0, summary.TotalIncome)
	assert.Equal(t, 35000.0, summary.TotalExpense)
	assert.Equal(t, summary.TotalIncome-summary.TotalExpense, summary.NetIncome)

	var bucketSum float64
	for _, v := range summary.ExpensesByCategory {
		bucketSum += v
	}
	assert.Equal(t, summary.TotalExpense, bucketSum)
	assert.Equal(t, 5000.0, summary.ExpensesByCategory["Uncategorized"])
}

func TestGetFinancialSummary_DateWindow(t *testing.T) {
	var gotStart, gotEnd *time.Time
	reportRepo := &mockReportRepo{
		mockSumPayments: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error) {
			gotStart, gotEnd = startDate, endDate
			return 0, nil
		},
		mockSumPaidExpensesByCategory: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) ([]repository.CategoryTotal, error) {
			return nil, nil
		},
	}
	svc := NewReportService(reportRepo, nil)
	admin := Caller{ID: 1, Role: models.RoleAdmin}

	_, err := svc.GetFinancialSummary(context.Background(), admin, FinancialSummaryParams{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	require.NotNil(t, gotStart)
	require.NotNil(t, gotEnd)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), *gotStart)
	assert.Equal(t, 23, gotEnd.Hour())
	assert.Equal(t, 59, gotEnd.Minute())
	assert.Equal(t, time.March, gotEnd.Month())
	assert.Equal(t, 31, gotEnd.Day())

	// One bound alone applies no window
	_, err = svc.GetFinancialSummary(context.Background(), admin, FinancialSummaryParams{StartDate: "2026-03-01"})
	require.NoError(t, err)
	assert.Nil(t, gotStart)
	assert.Nil(t, gotEnd)

	// Malformed bounds fall back to all-time instead of failing
	_, err = svc.GetFinancialSummary(context.Background(), admin, FinancialSummaryParams{
		StartDate: "not-a-date",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Nil(t, gotStart)
}

func TestGetFinancialSummary_ManagerScope(t *testing.T) {
	var gotScope repository.ReportScope
	reportRepo := &mockReportRepo{
		mockSumPayments: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) (float64, error) {
			gotScope = scope
			return 0, nil
		},
		mockSumPaidExpensesByCategory: func(ctx context.Context, scope repository.ReportScope, startDate, endDate *time.Time) ([]repository.CategoryTotal, error) {
			return nil, nil
		},
	}
	propertyRepo := &mockPropertyRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Property, error) {
			return &models.Property{ID: id, ManagerID: uintPtr(7)}, nil
		},
	}
	svc := NewReportService(reportRepo, propertyRepo)

	// Manager without an explicit property gets a manager-wide scope
	_, err := svc.GetFinancialSummary(context.Background(), Caller{ID: 7, Role: models.RoleManager}, FinancialSummaryParams{})
	require.NoError(t, err)
	assert.Nil(t, gotScope.PropertyID)
	require.NotNil(t, gotScope.ManagerID)
	assert.Equal(t, uint(7), *gotScope.ManagerID)

	// Manager requesting an owned property gets a plain property filter
	_, err = svc.GetFinancialSummary(context.Background(), Caller{ID: 7, Role: models.RoleManager}, FinancialSummaryParams{PropertyID: uintPtr(3)})
	require.NoError(t, err)
	require.NotNil(t, gotScope.PropertyID)
	assert.Equal(t, uint(3), *gotScope.PropertyID)
	assert.Nil(t, gotScope.ManagerID)
}

func TestResolveScope_DeniesForeignProperty(t *testing.T) {
	reportRepo := &mockReportRepo{}
	propertyRepo := &mockPropertyRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Property, error) {
			return &models.Property{ID: id, ManagerID: uintPtr(99)}, nil
		},
	}
	svc := NewReportService(reportRepo, propertyRepo)

	_, err := svc.GetOccupancyStats(context.Background(), Caller{ID: 7, Role: models.RoleManager}, uintPtr(3))
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), "Access denied")
}

func TestResolveScope_DeniesMissingProperty(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Property, error) {
			return nil, ErrNotFound
		},
	}
	svc := NewReportService(&mockReportRepo{}, propertyRepo)

	_, err := svc.GetOccupancyStats(context.Background(), Caller{ID: 7, Role: models.RoleManager}, uintPtr(404))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestResolveScope_DeniesUnassignedProperty(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Property, error) {
			return &models.Property{ID: id, ManagerID: nil}, nil
		},
	}
	svc := NewReportService(&mockReportRepo{}, propertyRepo)

	_, err := svc.GetOccupancyStats(context.Background(), Caller{ID: 7, Role: models.RoleManager}, uintPtr(3))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetOccupancyStats(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindLocals: func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
			return []models.Local{
				{ID: 1, Status: models.LocalStatusOccupied},
				{ID: 2, Status: models.LocalStatusAvailable},
				{ID: 3, Status: models.LocalStatusMaintenance},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	stats, err := svc.GetOccupancyStats(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalUnits)
	assert.Equal(t, 1, stats.OccupiedUnits)
	// Maintenance counts as not occupied here
	assert.Equal(t, 2, stats.VacantUnits)
	assert.Equal(t, stats.TotalUnits, stats.OccupiedUnits+stats.VacantUnits)
	// 1/3 rounded to one decimal place
	assert.Equal(t, 33.3, stats.OccupancyRate)
}

func TestGetOccupancyStats_NoUnits(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindLocals: func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
			return nil, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	stats, err := svc.GetOccupancyStats(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalUnits)
	assert.Equal(t, 0.0, stats.OccupancyRate)
}

func TestGetRentRoll_DegradedJoins(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	reportRepo := &mockReportRepo{
		mockFindActiveLeases: func(ctx context.Context, scope repository.ReportScope) ([]models.Lease, error) {
			return []models.Lease{
				{
					ID:          1,
					Status:      models.LeaseStatusActive,
					StartDate:   start,
					EndDate:     end,
					LeaseAmount: 500000,
					Local: models.Local{
						ID:            10,
						ReferenceCode: "A-101",
						Property:      models.Property{ID: 5, Name: "Plaza Central"},
					},
					Tenant: models.Tenant{ID: 20, Name: "Maria Lopez"},
				},
				{
					// Orphaned lease: unit and tenant rows are gone
					ID:          2,
					Status:      models.LeaseStatusActive,
					StartDate:   start,
					EndDate:     end,
					LeaseAmount: 300000,
				},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	entries, err := svc.GetRentRoll(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Plaza Central", entries[0].Property)
	assert.Equal(t, "A-101", entries[0].Unit)
	assert.Equal(t, "Maria Lopez", entries[0].TenantName)
	assert.Equal(t, 500000.0, entries[0].MonthlyRent)

	// The orphan still appears, with empty display fields
	assert.Equal(t, uint(2), entries[1].LeaseID)
	assert.Empty(t, entries[1].Property)
	assert.Empty(t, entries[1].Unit)
	assert.Empty(t, entries[1].TenantName)
}

func TestGetArrearsReport(t *testing.T) {
	var gotFrom, gotTo time.Time
	reportRepo := &mockReportRepo{
		mockFindLeasesWithCoverage: func(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error) {
			gotFrom, gotTo = from, to
			return []models.Lease{
				{
					ID:          1,
					LeaseAmount: 500000,
					Payments:    []models.Payment{{ID: 1, Amount: 500000}},
					Tenant:      models.Tenant{ID: 1, Name: "Paid Tenant"},
				},
				{
					ID:          2,
					LeaseAmount: 450000,
					Tenant:      models.Tenant{ID: 2, Name: "Late Tenant", Phone: "555-0102"},
					Local: models.Local{
						ID:            3,
						ReferenceCode: "B-202",
						Property:      models.Property{ID: 4, Name: "Plaza Norte"},
					},
				},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	entries, err := svc.GetArrearsReport(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil)
	require.NoError(t, err)

	// The coverage window is the current calendar month
	now := time.Now()
	assert.Equal(t, now.Year(), gotFrom.Year())
	assert.Equal(t, now.Month(), gotFrom.Month())
	assert.Equal(t, 1, gotFrom.Day())
	assert.Equal(t, now.Month(), gotTo.Month())

	// Only the lease with no covering payment is reported
	require.Len(t, entries, 1)
	assert.Equal(t, uint(2), entries[0].LeaseID)
	assert.Equal(t, "Late Tenant", entries[0].TenantName)
	assert.Equal(t, "555-0102", entries[0].TenantPhone)
	assert.Equal(t, "Plaza Norte", entries[0].Property)
	assert.Equal(t, 450000.0, entries[0].MonthlyRent)
	assert.GreaterOrEqual(t, entries[0].DaysLate, 0)
	assert.Equal(t, int(now.Sub(gotFrom).Hours()/24), entries[0].DaysLate)
}

func TestGetLeaseExpirations(t *testing.T) {
	var gotFrom, gotTo time.Time
	reportRepo := &mockReportRepo{
		mockFindLeasesExpiring: func(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error) {
			gotFrom, gotTo = from, to
			return []models.Lease{
				{
					ID:      1,
					EndDate: time.Now().AddDate(0, 0, 30),
					Tenant:  models.Tenant{ID: 1, Name: "Soon Tenant"},
				},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)
	admin := Caller{ID: 1, Role: models.RoleAdmin}

	entries, err := svc.GetLeaseExpirations(context.Background(), admin, nil, 0)
	require.NoError(t, err)

	// Zero days falls back to the default horizon
	assert.Equal(t, DefaultExpirationDays, int(gotTo.Sub(gotFrom).Hours()/24))

	require.Len(t, entries, 1)
	assert.Equal(t, 30, entries[0].DaysRemaining)

	// Custom horizon passes through
	_, err = svc.GetLeaseExpirations(context.Background(), admin, nil, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, int(gotTo.Sub(gotFrom).Hours()/24))
}

func TestGetLeaseExpirations_ClampsRemaining(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindLeasesExpiring: func(ctx context.Context, scope repository.ReportScope, from, to time.Time) ([]models.Lease, error) {
			return []models.Lease{
				// Expired earlier today: below the day boundary, never negative
				{ID: 1, EndDate: time.Now().Add(-2 * time.Hour)},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	entries, err := svc.GetLeaseExpirations(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil, 90)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].DaysRemaining)
}

func TestGetVacancyReport(t *testing.T) {
	reportRepo := &mockReportRepo{
		mockFindAvailableLocals: func(ctx context.Context, scope repository.ReportScope) ([]models.Local, error) {
			return []models.Local{
				{
					ID:            1,
					ReferenceCode: "C-303",
					Status:        models.LocalStatusAvailable,
					SizeM2:        82.5,
					RentPrice:     400000,
					UpdatedAt:     time.Now().Add(-49 * time.Hour),
					Property:      models.Property{ID: 2, Name: "Plaza Sur", Location: "Tegucigalpa"},
				},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, nil)

	entries, err := svc.GetVacancyReport(context.Background(), Caller{ID: 1, Role: models.RoleAdmin}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "C-303", entries[0].Unit)
	assert.Equal(t, "Plaza Sur", entries[0].Property)
	assert.Equal(t, "Tegucigalpa", entries[0].Location)
	assert.Equal(t, 2, entries[0].DaysVacant)
	assert.Equal(t, models.LocalStatusAvailable, entries[0].Status)
}
