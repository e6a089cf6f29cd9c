package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentgateway/webui/pkg/gateway"
)

// listAgentsHandler handles GET /api/agents. Returns the fixed provider
// catalog, or an empty list when the AgentGateway library is unavailable.
func (s *Server) listAgentsHandler(c *gin.Context) {
	if !s.available() {
		c.JSON(http.StatusOK, &AgentListResponse{Agents: []gateway.AgentInfo{}, Available: false})
		return
	}
	c.JSON(http.StatusOK, &AgentListResponse{Agents: gateway.Catalog(), Available: true})
}
