package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

type InvoiceHandler struct {
	service *property.Service
	logger  *zap.Logger
}

func NewInvoiceHandler(service *property.Service, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, logger: logger}
}

type createInvoiceRequest struct {
	UnitID      uint    `json:"unit_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	IssueDate   string  `json:"issue_date"`
	DueDate     string  `json:"due_date"`
}

// Create handles POST /v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := parseDate(req.IssueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid issue_date, want YYYY-MM-DD"})
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date, want YYYY-MM-DD"})
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), property.CreateInvoiceRequest{
		UnitID:      req.UnitID,
		Amount:      req.Amount,
		Description: req.Description,
		IssueDate:   issue,
		DueDate:     due,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// List handles GET /v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// parseDate accepts an empty string as the zero time; the service fills
// in today for zero dates.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}
