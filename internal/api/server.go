package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

// NewRouter wires every handler onto a gin engine. The routes are the
// HTTP face of the core operations; all parsing happens here so the
// service only ever sees typed values.
func NewRouter(service *property.Service, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tenants := NewTenantHandler(service, logger)
	units := NewUnitHandler(service, logger)
	invoices := NewInvoiceHandler(service, logger)
	payments := NewPaymentHandler(service, logger)
	views := NewViewHandler(service, logger)

	v1 := router.Group("/v1")
	{
		v1.POST("/tenants", tenants.Create)
		v1.GET("/tenants", tenants.List)
		v1.DELETE("/tenants/:id", tenants.Delete)

		v1.POST("/units", units.Create)
		v1.GET("/units", units.List)
		v1.POST("/units/:id/assign", units.Assign)
		v1.POST("/units/:id/vacate", units.Vacate)

		v1.POST("/invoices", invoices.Create)
		v1.GET("/invoices", invoices.List)

		v1.POST("/payments", payments.Create)
		v1.GET("/payments", payments.List)

		v1.GET("/ledger/:tenantID", views.Ledger)
		v1.GET("/overview", views.Overview)
	}

	return router
}
