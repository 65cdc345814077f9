package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

type UnitHandler struct {
	service *property.Service
	logger  *zap.Logger
}

func NewUnitHandler(service *property.Service, logger *zap.Logger) *UnitHandler {
	return &UnitHandler{service: service, logger: logger}
}

type createUnitRequest struct {
	Code          string  `json:"code" binding:"required"`
	Floor         string  `json:"floor"`
	Size          string  `json:"size"`
	RentAmount    float64 `json:"rent_amount"`
	DepositAmount float64 `json:"deposit_amount"`
}

// Create handles POST /v1/units
func (h *UnitHandler) Create(c *gin.Context) {
	var req createUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.service.CreateUnit(c.Request.Context(), property.CreateUnitRequest{
		Code:          req.Code,
		Floor:         req.Floor,
		Size:          req.Size,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// List handles GET /v1/units
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.service.ListUnits(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

type assignTenantRequest struct {
	TenantID uint `json:"tenant_id" binding:"required"`
}

// Assign handles POST /v1/units/:id/assign
func (h *UnitHandler) Assign(c *gin.Context) {
	unitID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit id"})
		return
	}

	var req assignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AssignTenant(c.Request.Context(), unitID, req.TenantID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Vacate handles POST /v1/units/:id/vacate
func (h *UnitHandler) Vacate(c *gin.Context) {
	unitID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit id"})
		return
	}

	if err := h.service.VacateUnit(c.Request.Context(), unitID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
