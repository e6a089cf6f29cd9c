package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentgateway/webui/pkg/web"
)

// renderPage writes a rendered HTML document, or a 500 if rendering the
// embedded template failed.
func renderPage(c *gin.Context, page []byte, err error) {
	if err != nil {
		slog.Error("Failed to render page", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// dashboardHandler handles GET /.
func (s *Server) dashboardHandler(c *gin.Context) {
	page, err := web.Dashboard()
	renderPage(c, page, err)
}

// playgroundHandler handles GET /playground.
func (s *Server) playgroundHandler(c *gin.Context) {
	page, err := web.Playground()
	renderPage(c, page, err)
}

// agentsPageHandler handles GET /agents. Shows the provider cards, or an
// error panel when the AgentGateway library failed to load.
func (s *Server) agentsPageHandler(c *gin.Context) {
	page, err := web.Agents(s.available())
	renderPage(c, page, err)
}

// toolsPageHandler handles GET /tools.
func (s *Server) toolsPageHandler(c *gin.Context) {
	page, err := web.Tools()
	renderPage(c, page, err)
}
