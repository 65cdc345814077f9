package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/property"
)

// writeError maps a domain error onto an HTTP status. The presentation
// contract: validation 400, missing ids 404, conflicts and invalid
// state transitions 409, everything else a logged 500. The
// tenant-has-history conflict additionally carries its row counts so a
// client can offer the force-delete retry.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var validation *property.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}

	var notFound *property.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var conflict *property.ConflictError
	if errors.As(err, &conflict) {
		body := gin.H{"error": conflict.Error()}
		if conflict.HasFinancialHistory() {
			body["invoice_count"] = conflict.InvoiceCount
			body["payment_count"] = conflict.PaymentCount
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	var state *property.StateError
	if errors.As(err, &state) {
		c.JSON(http.StatusConflict, gin.H{"error": state.Error()})
		return
	}

	logger.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
