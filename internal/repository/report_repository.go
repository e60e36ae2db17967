package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/avasquez/rentium-api/internal/models"
)

// ReportScope narrows report reads to what a caller may see.
// Both fields nil means unrestricted (admin, no property requested).
// PropertyID set means exactly that property (ownership already verified
// for managers). ManagerID set means every property owned by that manager.
type ReportScope struct {
	PropertyID *uint
	ManagerID  *uint
}

// CategoryTotal is one row of the expense category rollup
type CategoryTotal struct {
	Category string
	Total    float64
}

// ReportRepository issues the scoped joined reads behind the report computers.
// It never writes.
type ReportRepository interface {
	SumPayments(ctx context.Context, scope ReportScope, startDate, endDate *time.Time) (float64, error)
	SumPaidExpensesByCategory(ctx context.Context, scope ReportScope, startDate, endDate *time.Time) ([]CategoryTotal, error)
	FindLocals(ctx context.Context, scope ReportScope) ([]models.Local, error)
	FindAvailableLocals(ctx context.Context, scope ReportScope) ([]models.Local, error)
	FindActiveLeases(ctx context.Context, scope ReportScope) ([]models.Lease, error)
	FindActiveLeasesWithCoverage(ctx context.Context, scope ReportScope, from, to time.Time) ([]models.Lease, error)
	FindLeasesExpiring(ctx context.Context, scope ReportScope, from, to time.Time) ([]models.Lease, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// SumPayments totals payment amounts by transaction date. An explicit
// property scope filters on the denormalized payments.property_id (already
// verified by the scope resolver); a manager-wide scope goes through the
// lease → local → property chain, which is authoritative even when the
// denormalized field is stale or unset.
func (r *reportRepository) SumPayments(ctx context.Context, scope ReportScope, startDate, endDate *time.Time) (float64, error) {
	var total float64
	query := r.db.WithContext(ctx).Table("payments").
		Select("COALESCE(SUM(payments.amount), 0)")

	if scope.PropertyID != nil {
		query = query.Where("payments.property_id = ?", *scope.PropertyID)
	} else if scope.ManagerID != nil {
		query = query.Joins("JOIN leases ON leases.id = payments.lease_id").
			Joins("JOIN locals ON locals.id = leases.local_id").
			Joins("JOIN properties ON properties.id = locals.property_id").
			Where("properties.manager_id = ?", *scope.ManagerID)
	}

	if startDate != nil {
		query = query.Where("payments.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("payments.date <= ?", *endDate)
	}

	err := query.Scan(&total).Error
	return total, err
}

// SumPaidExpensesByCategory rolls paid expenses (VAT included) up by
// category. An expense is in scope if either of its attachment paths —
// direct property_id, or local_id → local → property — lands on a property
// the scope allows, hence the OR across two left joins.
func (r *reportRepository) SumPaidExpensesByCategory(ctx context.Context, scope ReportScope, startDate, endDate *time.Time) ([]CategoryTotal, error) {
	var rows []CategoryTotal

	query := r.db.WithContext(ctx).Table("expenses").
		Select("COALESCE(NULLIF(expenses.category, ''), ?) AS category, SUM(expenses.amount + COALESCE(expenses.vat_amount, 0)) AS total",
			models.ExpenseCategoryFallback).
		Joins("LEFT JOIN locals ON locals.id = expenses.local_id").
		Where("expenses.payment_status = ?", models.ExpenseStatusPaid).
		Group("COALESCE(NULLIF(expenses.category, ''), '" + models.ExpenseCategoryFallback + "')")

	if scope.PropertyID != nil {
		query = query.Where("expenses.property_id = ? OR locals.property_id = ?",
			*scope.PropertyID, *scope.PropertyID)
	} else if scope.ManagerID != nil {
		query = query.
			Joins("LEFT JOIN properties direct_props ON direct_props.id = expenses.property_id").
			Joins("LEFT JOIN properties local_props ON local_props.id = locals.property_id").
			Where("direct_props.manager_id = ? OR local_props.manager_id = ?",
				*scope.ManagerID, *scope.ManagerID)
	}

	if startDate != nil {
		query = query.Where("expenses.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("expenses.date <= ?", *endDate)
	}

	err := query.Scan(&rows).Error
	return rows, err
}

// scopedLocals applies the report scope to a locals query
func scopedLocals(db *gorm.DB, scope ReportScope) *gorm.DB {
	if scope.PropertyID != nil {
		db = db.Where("locals.property_id = ?", *scope.PropertyID)
	} else if scope.ManagerID != nil {
		db = db.Joins("JOIN properties ON properties.id = locals.property_id").
			Where("properties.manager_id = ?", *scope.ManagerID)
	}
	return db
}

func (r *reportRepository) FindLocals(ctx context.Context, scope ReportScope) ([]models.Local, error) {
	var locals []models.Local
	db := scopedLocals(r.db.WithContext(ctx).Model(&models.Local{}), scope)
	err := db.Find(&locals).Error
	return locals, err
}

func (r *reportRepository) FindAvailableLocals(ctx context.Context, scope ReportScope) ([]models.Local, error) {
	var locals []models.Local
	db := scopedLocals(r.db.WithContext(ctx).Model(&models.Local{}), scope)
	err := db.Where("locals.status = ?", models.LocalStatusAvailable).
		Preload("Property").
		Order("locals.updated_at DESC").
		Find(&locals).Error
	return locals, err
}

// scopedActiveLeases applies the report scope to an active-lease query by
// joining through locals (and properties when a manager-wide scope needs
// the ownership check).
func scopedActiveLeases(db *gorm.DB, scope ReportScope) *gorm.DB {
	db = db.Joins("JOIN locals ON locals.id = leases.local_id").
		Where("leases.status = ?", models.LeaseStatusActive)

	if scope.PropertyID != nil {
		db = db.Where("locals.property_id = ?", *scope.PropertyID)
	} else if scope.ManagerID != nil {
		db = db.Joins("JOIN properties ON properties.id = locals.property_id").
			Where("properties.manager_id = ?", *scope.ManagerID)
	}
	return db
}

func (r *reportRepository) FindActiveLeases(ctx context.Context, scope ReportScope) ([]models.Lease, error) {
	var leases []models.Lease
	db := scopedActiveLeases(r.db.WithContext(ctx).Model(&models.Lease{}), scope)
	err := db.Preload("Local.Property").
		Preload("Tenant").
		Order("leases.created_at DESC").
		Find(&leases).Error
	return leases, err
}

// FindActiveLeasesWithCoverage loads active leases in scope, each carrying
// only the payments whose coverage interval overlaps [from, to]. A lease
// with an empty payment list has nothing covering that window.
func (r *reportRepository) FindActiveLeasesWithCoverage(ctx context.Context, scope ReportScope, from, to time.Time) ([]models.Lease, error) {
	var leases []models.Lease
	db := scopedActiveLeases(r.db.WithContext(ctx).Model(&models.Lease{}), scope)
	err := db.Preload("Local.Property").
		Preload("Tenant").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date <= ? AND end_date >= ?", to, from)
		}).
		Find(&leases).Error
	return leases, err
}

func (r *reportRepository) FindLeasesExpiring(ctx context.Context, scope ReportScope, from, to time.Time) ([]models.Lease, error) {
	var leases []models.Lease
	db := scopedActiveLeases(r.db.WithContext(ctx).Model(&models.Lease{}), scope)
	err := db.Where("leases.end_date >= ? AND leases.end_date <= ?", from, to).
		Preload("Local.Property").
		Preload("Tenant").
		Order("leases.end_date ASC").
		Find(&leases).Error
	return leases, err
}
