package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avasquez/rentium-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Local    *LocalHandler
	Tenant   *TenantHandler
	Lease    *LeaseHandler
	Payment  *PaymentHandler
	Expense  *ExpenseHandler
	Report   *ReportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(),
		Auth:     NewAuthHandler(svcs.Auth),
		User:     NewUserHandler(svcs.User),
		Property: NewPropertyHandler(svcs.Property, svcs.Local),
		Local:    NewLocalHandler(svcs.Local),
		Tenant:   NewTenantHandler(svcs.Tenant),
		Lease:    NewLeaseHandler(svcs.Lease),
		Payment:  NewPaymentHandler(svcs.Payment),
		Expense:  NewExpenseHandler(svcs.Expense),
		Report:   NewReportHandler(svcs.Report, svcs.Export),
	}
}

// respondOK writes the success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError writes the failure envelope
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps a service error onto the failure envelope.
// Access denials become 403; unknown resources 404; everything else 500.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Access denied"):
		respondError(c, http.StatusForbidden, msg)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, msg)
	case errors.Is(err, services.ErrInvalidState):
		respondError(c, http.StatusConflict, msg)
	default:
		respondError(c, http.StatusInternalServerError, msg)
	}
}
