package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avasquez/rentium-api/internal/middleware"
	"github.com/avasquez/rentium-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	exportService *services.ExportService
}

func NewReportHandler(reportService *services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// caller builds the access identity from the authenticated request
func caller(c *gin.Context) services.Caller {
	return services.Caller{
		ID:   middleware.GetUserID(c),
		Role: middleware.GetUserRole(c),
	}
}

// parsePropertyID reads the optional property_id query param. Blank and the
// literal "null"/"undefined" sent by frontends are treated as absent.
func parsePropertyID(c *gin.Context) (*uint, bool) {
	raw := c.Query("property_id")
	switch raw {
	case "", "null", "undefined":
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// @Summary Financial Summary
// @Description Income, expenses by category and net income for a period
// @Tags Reports
// @Produce json
// @Param start_date query string false "Period start (YYYY-MM-DD)"
// @Param end_date query string false "Period end (YYYY-MM-DD)"
// @Param property_id query int false "Restrict to one property"
// @Success 200 {object} models.FinancialSummary
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /reports/financials [get]
func (h *ReportHandler) FinancialSummary(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	params := services.FinancialSummaryParams{
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		PropertyID: propertyID,
	}

	summary, err := h.reportService.GetFinancialSummary(c.Request.Context(), caller(c), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, summary)
}

// @Summary Occupancy Stats
// @Description Unit counts and occupancy rate
// @Tags Reports
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {object} models.OccupancyStats
// @Security BearerAuth
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	stats, err := h.reportService.GetOccupancyStats(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, stats)
}

// @Summary Rent Roll
// @Description Active leases with unit, tenant and rent details
// @Tags Reports
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {array} models.RentRollEntry
// @Security BearerAuth
// @Router /reports/rent-roll [get]
func (h *ReportHandler) RentRoll(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	entries, err := h.reportService.GetRentRoll(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entries)
}

// @Summary Arrears
// @Description Active leases with no payment recorded for the current month
// @Tags Reports
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {array} models.ArrearsEntry
// @Security BearerAuth
// @Router /reports/arrears [get]
func (h *ReportHandler) Arrears(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	entries, err := h.reportService.GetArrearsReport(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entries)
}

// @Summary Lease Expirations
// @Description Active leases ending within the coming days
// @Tags Reports
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Param days query int false "Horizon in days" default(90)
// @Success 200 {array} models.LeaseExpirationEntry
// @Security BearerAuth
// @Router /reports/lease-expirations [get]
func (h *ReportHandler) LeaseExpirations(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	days := services.DefaultExpirationDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	entries, err := h.reportService.GetLeaseExpirations(c.Request.Context(), caller(c), propertyID, days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entries)
}

// @Summary Vacancies
// @Description Units currently listed as available
// @Tags Reports
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {array} models.VacancyEntry
// @Security BearerAuth
// @Router /reports/vacancy [get]
func (h *ReportHandler) Vacancies(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	entries, err := h.reportService.GetVacancyReport(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entries)
}

// @Summary Export Reports
// @Description Downloads the financial summary and rent roll as csv, xlsx or pdf
// @Tags Reports
// @Produce application/octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param start_date query string false "Period start (YYYY-MM-DD)"
// @Param end_date query string false "Period end (YYYY-MM-DD)"
// @Param property_id query int false "Restrict to one property"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	ctx := c.Request.Context()
	who := caller(c)

	summary, err := h.reportService.GetFinancialSummary(ctx, who, services.FinancialSummaryParams{
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		PropertyID: propertyID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	rentRoll, err := h.reportService.GetRentRoll(ctx, who, propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
	)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err = h.exportService.ExportCSV(ctx, summary, rentRoll)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.exportService.ExportXLSX(ctx, summary, rentRoll)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, filename, err = h.exportService.ExportPDF(ctx, summary, rentRoll)
		contentType = "application/pdf"
	default:
		respondError(c, http.StatusBadRequest, "unsupported format, expected csv, xlsx or pdf")
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Rent Roll PDF
// @Description Downloads the rent roll as a rendered PDF document
// @Tags Reports
// @Produce application/pdf
// @Param property_id query int false "Restrict to one property"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/rent-roll/pdf [get]
func (h *ReportHandler) RentRollPDF(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	buf, err := h.exportService.GenerateRentRollPDF(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=rent_roll.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Arrears PDF
// @Description Downloads the arrears report as a rendered PDF document
// @Tags Reports
// @Produce application/pdf
// @Param property_id query int false "Restrict to one property"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/arrears/pdf [get]
func (h *ReportHandler) ArrearsPDF(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid property_id")
		return
	}

	buf, err := h.exportService.GenerateArrearsPDF(c.Request.Context(), caller(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=arrears.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
