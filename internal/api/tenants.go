package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

type TenantHandler struct {
	service *property.Service
	logger  *zap.Logger
}

func NewTenantHandler(service *property.Service, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{service: service, logger: logger}
}

type createTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Guarantor string `json:"guarantor"`
	Notes     string `json:"notes"`
}

// Create handles POST /v1/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.service.CreateTenant(c.Request.Context(), property.CreateTenantRequest{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Guarantor: req.Guarantor,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// List handles GET /v1/tenants
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.service.ListTenants(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// Delete handles DELETE /v1/tenants/:id. The force query flag cascades
// the tenant's invoices and payments.
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant id"})
		return
	}

	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err := h.service.DeleteTenant(c.Request.Context(), id, force); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
