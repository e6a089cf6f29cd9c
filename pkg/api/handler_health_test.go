package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Run("healthy when gateway loaded", func(t *testing.T) {
		rec := doGet(availableRouter(t), "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.True(t, resp.AgentGatewayAvailable)
		assert.Equal(t, "1.0.0", resp.Version)
	})

	t.Run("limited when gateway missing", func(t *testing.T) {
		rec := doGet(limitedRouter(), "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "limited", resp.Status)
		assert.False(t, resp.AgentGatewayAvailable)
		assert.Equal(t, "1.0.0", resp.Version)
	})
}
