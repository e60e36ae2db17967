package models

import (
	"time"
)

// ReportPeriod echoes the requested date window back to the caller
type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FinancialSummary aggregates cash flow over a date window
type FinancialSummary struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpense       float64            `json:"totalExpense"`
	NetIncome          float64            `json:"netIncome"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	Period             ReportPeriod       `json:"period"`
}

// OccupancyStats summarizes unit occupancy for the caller's scope.
// VacantUnits counts everything not occupied, maintenance included.
type OccupancyStats struct {
	TotalUnits    int     `json:"totalUnits"`
	OccupiedUnits int     `json:"occupiedUnits"`
	VacantUnits   int     `json:"vacantUnits"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// RentRollEntry is one active lease in the rent roll
type RentRollEntry struct {
	LeaseID     uint       `json:"leaseId"`
	Property    string     `json:"property,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	TenantName  string     `json:"tenantName,omitempty"`
	LeaseStart  *time.Time `json:"leaseStart"`
	LeaseEnd    *time.Time `json:"leaseEnd"`
	MonthlyRent float64    `json:"monthlyRent"`
	Status      string     `json:"status"`
}

// ArrearsEntry is one active lease with no payment covering the current month
type ArrearsEntry struct {
	LeaseID     uint    `json:"leaseId"`
	Property    string  `json:"property,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	TenantName  string  `json:"tenantName,omitempty"`
	TenantPhone string  `json:"tenantPhone,omitempty"`
	MonthlyRent float64 `json:"monthlyRent"`
	DaysLate    int     `json:"daysLate"`
}

// LeaseExpirationEntry is one active lease expiring inside the lookahead window
type LeaseExpirationEntry struct {
	LeaseID       uint      `json:"leaseId"`
	Property      string    `json:"property,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	TenantName    string    `json:"tenantName,omitempty"`
	ExpiryDate    time.Time `json:"expiryDate"`
	DaysRemaining int       `json:"daysRemaining"`
}

// VacancyEntry is one available unit. DaysVacant is derived from the row's
// updated_at, a proxy for when the unit became vacant; it is only meaningful
// while status flips are the dominant mutation on vacant units.
type VacancyEntry struct {
	LocalID    uint    `json:"localId"`
	Property   string  `json:"property,omitempty"`
	Location   string  `json:"location,omitempty"`
	Unit       string  `json:"unit"`
	Size       float64 `json:"size"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	DaysVacant int     `json:"daysVacant"`
}
