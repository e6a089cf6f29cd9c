package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Responder is the slice of the AgentGateway handle the chat endpoint
// needs. A nil Responder means the library failed to load at startup and
// the server runs in limited mode.
type Responder interface {
	Respond(message, agentType, model string) (string, error)
}

// Server is the HTTP server for the AgentGateway web interface.
type Server struct {
	gateway Responder
	httpSrv *http.Server
}

// NewServer creates the web interface server. Pass nil when the
// AgentGateway library could not be loaded. The http.Server is built here,
// before any goroutine runs Start, so Shutdown can be called from another
// goroutine at any point.
func NewServer(gw Responder) *Server {
	s := &Server{gateway: gw}
	s.httpSrv = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// available reports whether the AgentGateway library loaded at startup.
// The flag is fixed for the lifetime of the process.
func (s *Server) available() bool {
	return s.gateway != nil
}

// Routes builds the gin engine with all middleware and routes registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(), securityHeaders())

	// HTML pages
	r.GET("/", s.dashboardHandler)
	r.GET("/playground", s.playgroundHandler)
	r.GET("/agents", s.agentsPageHandler)
	r.GET("/tools", s.toolsPageHandler)

	// JSON API
	r.GET("/health", s.healthHandler)
	r.GET("/api/agents", s.listAgentsHandler)
	r.POST("/api/chat", s.chatHandler)

	return r
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
