package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/avasquez/rentium-api/internal/models"
)

// ExportService renders the financial summary and rent roll as downloadable
// files. Layout fidelity is intentionally basic; the dashboard owns pretty
// rendering.
type ExportService struct {
	reportSvc *ReportService
}

func NewExportService(reportSvc *ReportService) *ExportService {
	return &ExportService{reportSvc: reportSvc}
}

// sortedCategories returns the breakdown keys in stable order for files
func sortedCategories(byCategory map[string]float64) []string {
	keys := make([]string, 0, len(byCategory))
	for k := range byCategory {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *ExportService) ExportCSV(ctx context.Context, summary *models.FinancialSummary, rentRoll []models.RentRollEntry) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Financial Report", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Summary"})
	_ = writer.Write([]string{"Metric", "Value"})
	_ = writer.Write([]string{"Total Income", fmt.Sprintf("%.2f", summary.TotalIncome)})
	_ = writer.Write([]string{"Total Expense", fmt.Sprintf("%.2f", summary.TotalExpense)})
	_ = writer.Write([]string{"Net Income", fmt.Sprintf("%.2f", summary.NetIncome)})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Expenses by Category"})
	_ = writer.Write([]string{"Category", "Amount"})
	for _, category := range sortedCategories(summary.ExpensesByCategory) {
		_ = writer.Write([]string{category, fmt.Sprintf("%.2f", summary.ExpensesByCategory[category])})
	}
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Rent Roll"})
	_ = writer.Write([]string{"Lease ID", "Property", "Unit", "Tenant", "Start", "End", "Monthly Rent", "Status"})
	for _, entry := range rentRoll {
		start, end := "", ""
		if entry.LeaseStart != nil {
			start = entry.LeaseStart.Format("2006-01-02")
		}
		if entry.LeaseEnd != nil {
			end = entry.LeaseEnd.Format("2006-01-02")
		}
		_ = writer.Write([]string{
			fmt.Sprintf("%d", entry.LeaseID),
			entry.Property,
			entry.Unit,
			entry.TenantName,
			start,
			end,
			fmt.Sprintf("%.2f", entry.MonthlyRent),
			entry.Status,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("financial_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, summary *models.FinancialSummary, rentRoll []models.RentRollEntry) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Financials"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Financial Report")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Summary")
	_ = f.SetCellValue(sheet, "A4", "Total Income")
	_ = f.SetCellValue(sheet, "B4", summary.TotalIncome)
	_ = f.SetCellValue(sheet, "A5", "Total Expense")
	_ = f.SetCellValue(sheet, "B5", summary.TotalExpense)
	_ = f.SetCellValue(sheet, "A6", "Net Income")
	_ = f.SetCellValue(sheet, "B6", summary.NetIncome)

	row := 8
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Expenses by Category")
	row++
	for _, category := range sortedCategories(summary.ExpensesByCategory) {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), category)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.ExpensesByCategory[category])
		row++
	}

	rollSheet := "Rent Roll"
	_, err := f.NewSheet(rollSheet)
	if err != nil {
		return nil, "", err
	}
	headers := []string{"Lease ID", "Property", "Unit", "Tenant", "Start", "End", "Monthly Rent", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(rollSheet, cell, h)
	}
	for i, entry := range rentRoll {
		rowIdx := i + 2
		values := []interface{}{
			entry.LeaseID, entry.Property, entry.Unit, entry.TenantName,
			nil, nil, entry.MonthlyRent, entry.Status,
		}
		if entry.LeaseStart != nil {
			values[4] = entry.LeaseStart.Format("2006-01-02")
		}
		if entry.LeaseEnd != nil {
			values[5] = entry.LeaseEnd.Format("2006-01-02")
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			_ = f.SetCellValue(rollSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("financial_report_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, summary *models.FinancialSummary, rentRoll []models.RentRollEntry) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Financial Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(60, 8, "Total Income")
	pdf.Cell(0, 8, fmt.Sprintf("%.2f", summary.TotalIncome))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Total Expense")
	pdf.Cell(0, 8, fmt.Sprintf("%.2f", summary.TotalExpense))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Net Income")
	pdf.Cell(0, 8, fmt.Sprintf("%.2f", summary.NetIncome))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Expenses by Category")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	for _, category := range sortedCategories(summary.ExpensesByCategory) {
		pdf.Cell(60, 7, category)
		pdf.Cell(0, 7, fmt.Sprintf("%.2f", summary.ExpensesByCategory[category]))
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Rent Roll")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 9)
	for _, entry := range rentRoll {
		line := fmt.Sprintf("#%d  %s / %s  %s  %.2f", entry.LeaseID, entry.Property, entry.Unit, entry.TenantName, entry.MonthlyRent)
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("financial_report_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
