package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentgateway/webui/pkg/version"
)

const (
	healthStatusHealthy = "healthy"
	healthStatusLimited = "limited"
)

// healthHandler handles GET /health. The status derives solely from the
// availability flag established at startup: "limited" means the service
// is up but the AgentGateway library did not load.
func (s *Server) healthHandler(c *gin.Context) {
	status := healthStatusLimited
	if s.available() {
		status = healthStatusHealthy
	}
	c.JSON(http.StatusOK, &HealthResponse{
		Status:                status,
		AgentGatewayAvailable: s.available(),
		Version:               version.Version,
	})
}
