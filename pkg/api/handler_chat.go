package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentgateway/webui/pkg/gateway"
)

// chatHandler handles POST /api/chat. The availability check comes before
// body parsing: without the library, every chat request is a 503 no
// matter what it contains.
func (s *Server) chatHandler(c *gin.Context) {
	if !s.available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": gateway.ErrUnavailable.Error()})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.applyDefaults()

	text, err := s.gateway.Respond(*req.Message, req.AgentType, req.Model)
	if err != nil {
		slog.Error("Chat response construction failed", "error", err,
			"request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, &ChatResponse{
		Response:  text,
		AgentType: req.AgentType,
		Model:     req.Model,
		Status:    "success",
	})
}
