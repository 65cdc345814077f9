package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

// ViewHandler serves the read-only projections: the per-tenant ledger
// and the building overview.
type ViewHandler struct {
	service *property.Service
	logger  *zap.Logger
}

func NewViewHandler(service *property.Service, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{service: service, logger: logger}
}

// Ledger handles GET /v1/ledger/:tenantID
func (h *ViewHandler) Ledger(c *gin.Context) {
	tenantID, err := parseID(c.Param("tenantID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant id"})
		return
	}

	statement, err := h.service.BuildLedger(c.Request.Context(), tenantID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}

// Overview handles GET /v1/overview
func (h *ViewHandler) Overview(c *gin.Context) {
	floors, err := h.service.BuildingOverview(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, floors)
}
