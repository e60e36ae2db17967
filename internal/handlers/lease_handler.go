package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/services"
)

type LeaseHandler struct {
	leaseService *services.LeaseService
}

func NewLeaseHandler(leaseService *services.LeaseService) *LeaseHandler {
	return &LeaseHandler{leaseService: leaseService}
}

// @Summary List Leases
// @Tags Leases
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "Filter by status"
// @Param property_id query int false "Filter by property"
// @Param local_id query int false "Filter by unit"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /leases [get]
func (h *LeaseHandler) Index(c *gin.Context) {
	query := &repository.LeaseQuery{
		ListQuery: listQueryFromRequest(c),
		Status:    c.Query("status"),
	}
	if id, err := strconv.ParseUint(c.Query("property_id"), 10, 32); err == nil {
		query.PropertyID = uint(id)
	}
	if id, err := strconv.ParseUint(c.Query("local_id"), 10, 32); err == nil {
		query.LocalID = uint(id)
	}

	leases, total, err := h.leaseService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"leases": leases, "total": total})
}

// @Summary Get Lease
// @Description Get a lease with its unit, property, tenant and payments
// @Tags Leases
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Success 200 {object} models.Lease
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /leases/{lease_id} [get]
func (h *LeaseHandler) Show(c *gin.Context) {
	lease, err := h.leaseService.GetByID(c.Request.Context(), paramID(c, "lease_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lease)
}

// @Summary Create Lease
// @Description Drafts a new lease for a unit and tenant
// @Tags Leases
// @Accept json
// @Produce json
// @Param request body services.CreateLeaseInput true "Lease Data"
// @Success 201 {object} models.Lease
// @Security BearerAuth
// @Router /leases [post]
func (h *LeaseHandler) Create(c *gin.Context) {
	var input services.CreateLeaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	lease, err := h.leaseService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, lease)
}

// @Summary Update Lease
// @Description Updates a lease while still in draft
// @Tags Leases
// @Accept json
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Param request body services.UpdateLeaseInput true "Lease Data"
// @Success 200 {object} models.Lease
// @Security BearerAuth
// @Router /leases/{lease_id} [put]
func (h *LeaseHandler) Update(c *gin.Context) {
	var input services.UpdateLeaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	lease, err := h.leaseService.Update(c.Request.Context(), paramID(c, "lease_id"), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lease)
}

// @Summary Activate Lease
// @Description Activates a draft lease and marks the unit occupied
// @Tags Leases
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Success 200 {object} models.Lease
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /leases/{lease_id}/activate [post]
func (h *LeaseHandler) Activate(c *gin.Context) {
	lease, err := h.leaseService.Activate(c.Request.Context(), paramID(c, "lease_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lease)
}

// @Summary End Lease
// @Description Ends an active lease and frees the unit
// @Tags Leases
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Success 200 {object} models.Lease
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /leases/{lease_id}/end [post]
func (h *LeaseHandler) End(c *gin.Context) {
	lease, err := h.leaseService.End(c.Request.Context(), paramID(c, "lease_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lease)
}

// @Summary Terminate Lease
// @Description Terminates an active lease early and frees the unit
// @Tags Leases
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Success 200 {object} models.Lease
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /leases/{lease_id}/terminate [post]
func (h *LeaseHandler) Terminate(c *gin.Context) {
	lease, err := h.leaseService.Terminate(c.Request.Context(), paramID(c, "lease_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lease)
}

// @Summary Delete Lease
// @Description Deletes a draft lease
// @Tags Leases
// @Produce json
// @Param lease_id path int true "Lease ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /leases/{lease_id} [delete]
func (h *LeaseHandler) Delete(c *gin.Context) {
	if err := h.leaseService.Delete(c.Request.Context(), paramID(c, "lease_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "lease deleted"})
}
