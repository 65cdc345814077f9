package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

type PaymentHandler struct {
	service *property.Service
	logger  *zap.Logger
}

func NewPaymentHandler(service *property.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, logger: logger}
}

type recordPaymentRequest struct {
	InvoiceID uint    `json:"invoice_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Date      string  `json:"date"`
	Method    string  `json:"method"`
}

// Create handles POST /v1/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	payment, err := h.service.RecordPayment(c.Request.Context(), property.RecordPaymentRequest{
		InvoiceID: req.InvoiceID,
		Amount:    req.Amount,
		Date:      date,
		Method:    req.Method,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// List handles GET /v1/payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
