// Package context7 is a placeholder implementation of the Context7 MCP
// (Model Context Protocol) service. It exposes three literal JSON
// endpoints and carries no other logic.
package context7

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies this service in its JSON responses.
const ServiceName = "context7-mcp"

// ServiceVersion is the placeholder's version string.
const ServiceVersion = "0.1.0"

// Server is the HTTP server for the Context7 placeholder service.
type Server struct {
	httpSrv *http.Server
}

// NewServer creates the Context7 placeholder server. The http.Server is
// built here, before any goroutine runs Start, so Shutdown can be called
// from another goroutine at any point.
func NewServer() *Server {
	s := &Server{}
	s.httpSrv = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes builds the gin engine with the three placeholder routes.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.rootHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/mcp/capabilities", s.capabilitiesHandler)

	return r
}

// rootHandler handles GET /.
func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Context7 MCP Service",
		"version": ServiceVersion,
	})
}

// healthHandler handles GET /health. Always healthy: there is nothing
// here that can degrade.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// capabilitiesHandler handles GET /mcp/capabilities.
func (s *Server) capabilitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"capabilities": []string{"search", "upload", "index"},
		"service":      ServiceName,
	})
}

// Start runs the HTTP server on addr. Blocks until the server stops.
// A Shutdown that lands before listening begins still wins: Serve returns
// http.ErrServerClosed without accepting connections.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
