package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// generatePDF renders an HTML template and converts it with wkhtmltopdf
func (s *ExportService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	// Path relative to project root (prod), falling back to the package
	// directory (tests).
	tmplPath := fmt.Sprintf("internal/services/templates/reports/%s", templateName)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		tmplPath = fmt.Sprintf("templates/reports/%s", templateName)
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (path: %s): %w", templateName, tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}

// GenerateRentRollPDF renders the rent roll as a printable statement
func (s *ExportService) GenerateRentRollPDF(ctx context.Context, caller Caller, propertyID *uint) (*bytes.Buffer, error) {
	entries, err := s.reportSvc.GetRentRoll(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	type rowData struct {
		LeaseID     uint
		Property    string
		Unit        string
		TenantName  string
		LeaseStart  string
		LeaseEnd    string
		MonthlyRent string
	}

	rows := make([]rowData, 0, len(entries))
	var total float64
	for _, e := range entries {
		row := rowData{
			LeaseID:     e.LeaseID,
			Property:    e.Property,
			Unit:        e.Unit,
			TenantName:  e.TenantName,
			MonthlyRent: fmt.Sprintf("%.2f", e.MonthlyRent),
		}
		if e.LeaseStart != nil {
			row.LeaseStart = e.LeaseStart.Format("02/01/2006")
		}
		if e.LeaseEnd != nil {
			row.LeaseEnd = e.LeaseEnd.Format("02/01/2006")
		}
		rows = append(rows, row)
		total += e.MonthlyRent
	}

	data := map[string]interface{}{
		"Date":         time.Now().Format("02/01/2006"),
		"Rows":         rows,
		"MonthlyTotal": fmt.Sprintf("%.2f", total),
	}

	return s.generatePDF("rent_roll.html", data)
}

// GenerateArrearsPDF renders the arrears report as a printable notice list
func (s *ExportService) GenerateArrearsPDF(ctx context.Context, caller Caller, propertyID *uint) (*bytes.Buffer, error) {
	entries, err := s.reportSvc.GetArrearsReport(ctx, caller, propertyID)
	if err != nil {
		return nil, err
	}

	type rowData struct {
		Property    string
		Unit        string
		TenantName  string
		TenantPhone string
		MonthlyRent string
		DaysLate    int
	}

	rows := make([]rowData, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, rowData{
			Property:    e.Property,
			Unit:        e.Unit,
			TenantName:  e.TenantName,
			TenantPhone: e.TenantPhone,
			MonthlyRent: fmt.Sprintf("%.2f", e.MonthlyRent),
			DaysLate:    e.DaysLate,
		})
	}

	data := map[string]interface{}{
		"Date":  time.Now().Format("02/01/2006"),
		"Month": time.Now().Format("January 2006"),
		"Rows":  rows,
	}

	return s.generatePDF("arrears.html", data)
}
