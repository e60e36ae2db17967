package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avasquez/rentium-api/internal/services"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// @Summary List Expenses
// @Tags Expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param property_id query int false "Filter by property (direct or via its units)"
// @Param payment_status query string false "Filter by payment status"
// @Param category query string false "Filter by category"
// @Param start_date query string false "Incurred on or after (YYYY-MM-DD)"
// @Param end_date query string false "Incurred on or before (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) Index(c *gin.Context) {
	query := listQueryFromRequest(c, "property_id", "payment_status", "category", "start_date", "end_date")

	expenses, total, err := h.expenseService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"expenses": expenses, "total": total})
}

// @Summary Get Expense
// @Tags Expenses
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Success 200 {object} models.Expense
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /expenses/{expense_id} [get]
func (h *ExpenseHandler) Show(c *gin.Context) {
	expense, err := h.expenseService.GetByID(c.Request.Context(), paramID(c, "expense_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, expense)
}

// @Summary Record Expense
// @Description Records an expense against a property or one of its units
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body services.CreateExpenseInput true "Expense Data"
// @Success 201 {object} models.Expense
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var input services.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, expense)
}

// @Summary Update Expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Param request body services.UpdateExpenseInput true "Expense Data"
// @Success 200 {object} models.Expense
// @Security BearerAuth
// @Router /expenses/{expense_id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var input services.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), paramID(c, "expense_id"), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, expense)
}

// @Summary Mark Expense Paid
// @Tags Expenses
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Success 200 {object} models.Expense
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /expenses/{expense_id}/pay [post]
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	expense, err := h.expenseService.MarkPaid(c.Request.Context(), paramID(c, "expense_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, expense)
}

// @Summary Delete Expense
// @Tags Expenses
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /expenses/{expense_id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenseService.Delete(c.Request.Context(), paramID(c, "expense_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "expense deleted"})
}
