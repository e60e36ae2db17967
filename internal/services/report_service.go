package services

import (
	"context"
	"math"
	"time"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// DefaultExpirationDays is the lease-expiration lookahead when none is given
const DefaultExpirationDays = 90

// ReportService computes the read-model reports. Every method re-resolves
// the caller's scope and issues its own reads; there is no shared state
// between invocations.
type ReportService struct {
	reportRepo   repository.ReportRepository
	propertyRepo repository.PropertyRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, propertyRepo repository.PropertyRepository) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		propertyRepo: propertyRepo,
	}
}

// FinancialSummaryParams carries the optional date window and property filter
type FinancialSummaryParams struct {
	StartDate  string
	EndDate    string
	PropertyID *uint
}

// parseWindow turns the string bounds into an inclusive [start 00:00:00,
// end 23:59:59.999] window. Both bounds must be present and parseable for a
// filter to apply; otherwise the report is all-time.
func parseWindow(startDate, endDate string) (*time.Time, *time.Time) {
	if startDate == "" || endDate == "" {
		return nil, nil
	}
	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return nil, nil
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return nil, nil
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
	return &start, &end
}

// GetFinancialSummary computes total income, VAT-inclusive paid expenses,
// net income and the per-category expense breakdown over the date window.
func (s *ReportService) GetFinancialSummary(ctx context.Context, caller Caller, params FinancialSummaryParams) (*models.FinancialSummary, error) {
	scope, err := s.resolveScope(ctx, caller, params.PropertyID)
	if err != nil {
		return nil, err
	}

	start, end := parseWindow(params.StartDate, params.EndDate)

	totalIncome, err := s.reportRepo.SumPayments(ctx, scope, start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportRepo.SumPaidExpensesByCategory(ctx, scope, start, end)
	if err != nil {
		return nil, err
	}

	// Deriving the total from the buckets keeps the identity
	// sum(expensesByCategory) == totalExpense exact.
	expensesByCategory := make(map[string]float64, len(categories))
	var totalExpense float64
	for _, ct := range categories {
		expensesByCategory[ct.Category] += ct.Total
		totalExpense += ct.Total
	}

	return &models.FinancialSummary{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		NetIncome:          totalIncome - totalExpense,
		ExpensesByCategory: expensesByCategory,
		Period: models.ReportPeriod{
			StartDate: params.StartDate,
			EndDate:   params.EndDate,
		},
	}, nil
}

// GetOccupancyStats counts units in scope. Vacant here means "not occupied",
// which includes maintenance; the vacancy report below uses the stricter
// "available" status.
func (s *ReportService) GetOccupancyStats(ctx context.Context, caller Caller, propertyID *uint) (*models.OccupancyStats, error) {
	scope, err := s.resolveScope(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	locals, err := s.reportRepo.FindLocals(ctx, scope)
	if err != nil {
		return nil, err
	}

	total := len(locals)
	occupied := 0
	for _, l := range locals {
		if l.Status == models.LocalStatusOccupied {
			occupied++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(occupied)/float64(total)*1000) / 10
	}

	return &models.OccupancyStats{
		TotalUnits:    total,
		OccupiedUnits: occupied,
		VacantUnits:   total - occupied,
		OccupancyRate: rate,
	}, nil
}

// GetRentRoll lists active leases, most recently created first. Missing
// relations degrade to empty fields instead of failing the report.
func (s *ReportService) GetRentRoll(ctx context.Context, caller Caller, propertyID *uint) ([]models.RentRollEntry, error) {
	scope, err := s.resolveScope(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	leases, err := s.reportRepo.FindActiveLeases(ctx, scope)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RentRollEntry, 0, len(leases))
	for i := range leases {
		lease := &leases[i]
		entry := models.RentRollEntry{
			LeaseID:     lease.ID,
			LeaseStart:  &lease.StartDate,
			LeaseEnd:    &lease.EndDate,
			MonthlyRent: lease.LeaseAmount,
			Status:      lease.Status,
		}
		if lease.Tenant.ID != 0 {
			entry.TenantName = lease.Tenant.Name
		}
		if lease.Local.ID != 0 {
			entry.Unit = lease.Local.ReferenceCode
			if lease.Local.Property.ID != 0 {
				entry.Property = lease.Local.Property.Name
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetArrearsReport lists active leases with no payment whose coverage
// interval overlaps the current calendar month. Payments in other months
// do not count.
func (s *ReportService) GetArrearsReport(ctx context.Context, caller Caller, propertyID *uint) ([]models.ArrearsEntry, error) {
	scope, err := s.resolveScope(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	leases, err := s.reportRepo.FindActiveLeasesWithCoverage(ctx, scope, startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}

	daysLate := int(now.Sub(startOfMonth).Hours() / 24)
	if daysLate < 0 {
		daysLate = 0
	}

	var entries []models.ArrearsEntry
	for i := range leases {
		lease := &leases[i]
		if len(lease.Payments) > 0 {
			continue
		}

		entry := models.ArrearsEntry{
			LeaseID:     lease.ID,
			MonthlyRent: lease.LeaseAmount,
			DaysLate:    daysLate,
		}
		if lease.Tenant.ID != 0 {
			entry.TenantName = lease.Tenant.Name
			entry.TenantPhone = lease.Tenant.Phone
		}
		if lease.Local.ID != 0 {
			entry.Unit = lease.Local.ReferenceCode
			if lease.Local.Property.ID != 0 {
				entry.Property = lease.Local.Property.Name
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetLeaseExpirations lists active leases ending inside [today, today+days],
// soonest first.
func (s *ReportService) GetLeaseExpirations(ctx context.Context, caller Caller, propertyID *uint, days int) ([]models.LeaseExpirationEntry, error) {
	scope, err := s.resolveScope(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultExpirationDays
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, days)

	leases, err := s.reportRepo.FindLeasesExpiring(ctx, scope, today, horizon)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaseExpirationEntry, 0, len(leases))
	for i := range leases {
		lease := &leases[i]

		// Whole days between the expiry date and today; a lease expiring
		// today reports 0, never negative.
		endDay := time.Date(lease.EndDate.Year(), lease.EndDate.Month(), lease.EndDate.Day(), 0, 0, 0, 0, today.Location())
		remaining := int(math.Ceil(endDay.Sub(today).Hours() / 24))
		if remaining < 0 {
			remaining = 0
		}

		entry := models.LeaseExpirationEntry{
			LeaseID:       lease.ID,
			ExpiryDate:    lease.EndDate,
			DaysRemaining: remaining,
		}
		if lease.Tenant.ID != 0 {
			entry.TenantName = lease.Tenant.Name
		}
		if lease.Local.ID != 0 {
			entry.Unit = lease.Local.ReferenceCode
			if lease.Local.Property.ID != 0 {
				entry.Property = lease.Local.Property.Name
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetVacancyReport lists units whose status is literally "available",
// most recently touched first.
func (s *ReportService) GetVacancyReport(ctx context.Context, caller Caller, propertyID *uint) ([]models.VacancyEntry, error) {
	scope, err := s.resolveScope(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	locals, err := s.reportRepo.FindAvailableLocals(ctx, scope)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]models.VacancyEntry, 0, len(locals))
	for i := range locals {
		local := &locals[i]

		daysVacant := int(now.Sub(local.UpdatedAt).Hours() / 24)
		if daysVacant < 0 {
			daysVacant = 0
		}

		entry := models.VacancyEntry{
			LocalID:    local.ID,
			Unit:       local.ReferenceCode,
			Size:       local.SizeM2,
			Price:      local.RentPrice,
			Status:     local.Status,
			DaysVacant: daysVacant,
		}
		if local.Property.ID != 0 {
			entry.Property = local.Property.Name
			entry.Location = local.Property.Location
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
