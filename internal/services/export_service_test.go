package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avasquez/rentium-api/internal/models"
)

func exportFixtures() (*models.FinancialSummary, []models.RentRollEntry) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	summary := &models.FinancialSummary{
		TotalIncome:  150000,
		TotalExpense: 35000,
		NetIncome:    115000,
		ExpensesByCategory: map[string]float64{
			"Maintenance":   20000,
			"Security":      10000,
			"Uncategorized": 5000,
		},
	}
	rentRoll := []models.RentRollEntry{
		{
			LeaseID:     1,
			Property:    "Plaza Central",
			Unit:        "A-101",
			TenantName:  "Maria Lopez",
			LeaseStart:  &start,
			LeaseEnd:    &end,
			MonthlyRent: 500000,
			Status:      models.LeaseStatusActive,
		},
	}
	return summary, rentRoll
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(nil)
	summary, rentRoll := exportFixtures()

	data, filename, err := svc.ExportCSV(context.Background(), summary, rentRoll)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	content := string(data)
	assert.Contains(t, content, "Total Income,150000.00")
	assert.Contains(t, content, "Net Income,115000.00")
	assert.Contains(t, content, "Maintenance,20000.00")
	assert.Contains(t, content, "Uncategorized,5000.00")
	assert.Contains(t, content, "1,Plaza Central,A-101,Maria Lopez,2026-01-01,2027-01-01,500000.00,active")

	// Categories appear in stable sorted order
	assert.Less(t, strings.Index(content, "Maintenance"), strings.Index(content, "Security"))
}

func TestExportXLSX(t *testing.T) {
	svc := NewExportService(nil)
	summary, rentRoll := exportFixtures()

	data, filename, err := svc.ExportXLSX(context.Background(), summary, rentRoll)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	income, err := f.GetCellValue("Financials", "B4")
	require.NoError(t, err)
	assert.Equal(t, "150000", income)

	tenant, err := f.GetCellValue("Rent Roll", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", tenant)
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(nil)
	summary, rentRoll := exportFixtures()

	data, filename, err := svc.ExportPDF(context.Background(), summary, rentRoll)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
