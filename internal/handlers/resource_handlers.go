package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/services"
)

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id)
}

func listQueryFromRequest(c *gin.Context, filterKeys ...string) *repository.ListQuery {
	query := repository.NewListQuery()
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		query.Page = page
	}
	if perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20")); err == nil && perPage > 0 {
		query.PerPage = perPage
	}
	for _, key := range filterKeys {
		if v := c.Query(key); v != "" {
			query.Filters[key] = v
		}
	}
	return query
}

type PropertyHandler struct {
	propertyService *services.PropertyService
	localService    *services.LocalService
}

func NewPropertyHandler(propertyService *services.PropertyService, localService *services.LocalService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, localService: localService}
}

// @Summary List Properties
// @Description Get a paginated list of properties
// @Tags Properties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param manager_id query int false "Filter by manager"
// @Param search_term query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) Index(c *gin.Context) {
	query := listQueryFromRequest(c, "manager_id", "search_term")

	properties, total, err := h.propertyService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"properties": properties, "total": total})
}

// @Summary Get Property
// @Description Get a property with its manager and units
// @Tags Properties
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [get]
func (h *PropertyHandler) Show(c *gin.Context) {
	property, err := h.propertyService.GetByID(c.Request.Context(), paramID(c, "property_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, property)
}

// @Summary Create Property
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body services.CreatePropertyInput true "Property Data"
// @Success 201 {object} models.Property
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var input services.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, property)
}

// @Summary Update Property
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path int true "Property ID"
// @Param request body services.UpdatePropertyInput true "Property Data"
// @Success 200 {object} models.Property
// @Security BearerAuth
// @Router /properties/{property_id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	var input services.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), paramID(c, "property_id"), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, property)
}

// @Summary Unassign Manager
// @Description Removes the manager from a property
// @Tags Properties
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} models.Property
// @Security BearerAuth
// @Router /properties/{property_id}/unassign [post]
func (h *PropertyHandler) Unassign(c *gin.Context) {
	property, err := h.propertyService.Unassign(c.Request.Context(), paramID(c, "property_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, property)
}

// @Summary Delete Property
// @Tags Properties
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), paramID(c, "property_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "property deleted"})
}

// @Summary List Property Units
// @Tags Properties
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {array} models.Local
// @Security BearerAuth
// @Router /properties/{property_id}/locals [get]
func (h *PropertyHandler) Locals(c *gin.Context) {
	locals, err := h.localService.ListByProperty(c.Request.Context(), paramID(c, "property_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, locals)
}

type LocalHandler struct {
	localService *services.LocalService
}

func NewLocalHandler(localService *services.LocalService) *LocalHandler {
	return &LocalHandler{localService: localService}
}

// @Summary Get Unit
// @Tags Locals
// @Produce json
// @Param local_id path int true "Unit ID"
// @Success 200 {object} models.Local
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /locals/{local_id} [get]
func (h *LocalHandler) Show(c *gin.Context) {
	local, err := h.localService.GetByID(c.Request.Context(), paramID(c, "local_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, local)
}

// @Summary Create Unit
// @Tags Locals
// @Accept json
// @Produce json
// @Param request body services.CreateLocalInput true "Unit Data"
// @Success 201 {object} models.Local
// @Security BearerAuth
// @Router /locals [post]
func (h *LocalHandler) Create(c *gin.Context) {
	var input services.CreateLocalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	local, err := h.localService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, local)
}

// @Summary Update Unit
// @Tags Locals
// @Accept json
// @Produce json
// @Param local_id path int true "Unit ID"
// @Param request body services.UpdateLocalInput true "Unit Data"
// @Success 200 {object} models.Local
// @Security BearerAuth
// @Router /locals/{local_id} [put]
func (h *LocalHandler) Update(c *gin.Context) {
	var input services.UpdateLocalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	local, err := h.localService.Update(c.Request.Context(), paramID(c, "local_id"), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, local)
}

// @Summary Delete Unit
// @Tags Locals
// @Produce json
// @Param local_id path int true "Unit ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /locals/{local_id} [delete]
func (h *LocalHandler) Delete(c *gin.Context) {
	if err := h.localService.Delete(c.Request.Context(), paramID(c, "local_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "unit deleted"})
}

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// @Summary List Tenants
// @Tags Tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) Index(c *gin.Context) {
	query := listQueryFromRequest(c, "search_term")

	tenants, total, err := h.tenantService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"tenants": tenants, "total": total})
}

// @Summary Get Tenant
// @Tags Tenants
// @Produce json
// @Param tenant_id path int true "Tenant ID"
// @Success 200 {object} models.Tenant
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *TenantHandler) Show(c *gin.Context) {
	tenant, err := h.tenantService.GetByID(c.Request.Context(), paramID(c, "tenant_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, tenant)
}

// @Summary Create Tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body services.TenantInput true "Tenant Data"
// @Success 201 {object} models.Tenant
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var input services.TenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, tenant)
}

// @Summary Update Tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param tenant_id path int true "Tenant ID"
// @Param request body services.TenantInput true "Tenant Data"
// @Success 200 {object} models.Tenant
// @Security BearerAuth
// @Router /tenants/{tenant_id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	var input services.TenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), paramID(c, "tenant_id"), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, tenant)
}

// @Summary Delete Tenant
// @Tags Tenants
// @Produce json
// @Param tenant_id path int true "Tenant ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /tenants/{tenant_id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	if err := h.tenantService.Delete(c.Request.Context(), paramID(c, "tenant_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "tenant deleted"})
}
