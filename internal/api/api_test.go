package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/beesaferoot/rentdesk/internal/api"
	"github.com/beesaferoot/rentdesk/property"
	"github.com/beesaferoot/rentdesk/property/models"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Unit{}, &models.Invoice{}, &models.Payment{}))

	service := property.NewService(db, zap.NewNop())
	return api.NewRouter(service, zap.NewNop())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTenantEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", gin.H{"name": "Asha", "phone": "555-0101"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var tenant models.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))
	assert.Equal(t, "Asha", tenant.Name)
	assert.NotZero(t, tenant.ID)
}

func TestCreateTenantEndpointRequiresName(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", gin.H{"phone": "555-0101"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDuplicateUnitCodeEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/units", gin.H{"code": "101", "floor": "1st"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/units", gin.H{"code": "101", "floor": "1st"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssignVacateFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", gin.H{"name": "Asha"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var tenant models.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))

	rec = doJSON(t, router, http.MethodPost, "/v1/units", gin.H{"code": "101", "floor": "1st", "rent_amount": 5000})
	require.Equal(t, http.StatusCreated, rec.Code)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unit))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/v1/units/%d/assign", unit.ID), gin.H{"tenant_id": tenant.ID})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Assigning the occupied unit again is a state conflict.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/v1/units/%d/assign", unit.ID), gin.H{"tenant_id": tenant.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/v1/units/%d/vacate", unit.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvoicePaymentLedgerFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", gin.H{"name": "Asha"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var tenant models.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))

	rec = doJSON(t, router, http.MethodPost, "/v1/units", gin.H{"code": "101", "floor": "1st", "rent_amount": 5000})
	require.Equal(t, http.StatusCreated, rec.Code)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unit))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/v1/units/%d/assign", unit.ID), gin.H{"tenant_id": tenant.ID})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/invoices", gin.H{
		"unit_id":     unit.ID,
		"amount":      5000,
		"description": "Monthly Rent",
		"due_date":    "2024-01-05",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var invoice models.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoice))

	rec = doJSON(t, router, http.MethodPost, "/v1/payments", gin.H{
		"invoice_id": invoice.ID,
		"amount":     5000,
		"date":       "2024-01-06",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/ledger/%d", tenant.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var statement property.Statement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statement))
	require.Len(t, statement.Lines, 2)
	assert.Equal(t, 0.0, statement.Outstanding)

	rec = doJSON(t, router, http.MethodGet, "/v1/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var floors []property.FloorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &floors))
	require.Len(t, floors, 1)
	assert.Equal(t, "paid", floors[0].Units[0].RentStatus)
}

func TestDeleteTenantWithHistoryEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", gin.H{"name": "Asha"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var tenant models.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))

	rec = doJSON(t, router, http.MethodPost, "/v1/units", gin.H{"code": "101", "floor": "1st"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unit))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/v1/units/%d/assign", unit.ID), gin.H{"tenant_id": tenant.ID})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/invoices", gin.H{"unit_id": unit.ID, "amount": 5000})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Refused without force, and the payload carries the history counts.
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/tenants/%d", tenant.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["invoice_count"])
	assert.Equal(t, float64(0), body["payment_count"])

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/tenants/%d?force=true", tenant.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLedgerUnknownTenantEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/ledger/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
