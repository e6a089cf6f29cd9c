package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAgentsHandler(t *testing.T) {
	t.Run("catalog when available", func(t *testing.T) {
		rec := doGet(availableRouter(t), "/api/agents")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AgentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Available)
		require.Len(t, resp.Agents, 4)
		assert.Equal(t, "openai", resp.Agents[0].ID)
		assert.Equal(t, "OpenAI GPT", resp.Agents[0].Name)
		assert.Equal(t, "bedrock", resp.Agents[3].ID)
	})

	t.Run("empty list when unavailable", func(t *testing.T) {
		rec := doGet(limitedRouter(), "/api/agents")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.JSONEq(t, `{"agents": [], "available": false}`, rec.Body.String())
	})
}
