package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renix/renix/internal/modules/rates"
)

func TestSystemHandlers_HandleSystemStatus(t *testing.T) {
	registry := rates.NewRegistry(rates.Snapshot{CDI: 13.15, SELIC: 13.25, IPCA: 4.5}, zerolog.Nop())
	h := NewSystemHandlers(zerolog.Nop(), registry, time.Now().Add(-90*time.Second))

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()

	h.HandleSystemStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "ok", response["status"])
	assert.GreaterOrEqual(t, response["uptime_seconds"].(float64), 90.0)

	ratesBlock, ok := response["rates"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 13.15, ratesBlock["cdi"])
	assert.Equal(t, 13.25, ratesBlock["selic"])
	assert.Equal(t, 4.5, ratesBlock["ipca"])
}

func TestHandleHealth(t *testing.T) {
	s := &Server{log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "renix", response["service"])
}
