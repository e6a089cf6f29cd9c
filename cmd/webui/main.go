// AgentGateway web interface — dashboard, playground, and JSON API in
// front of the optional AgentGateway library.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentgateway/webui/pkg/api"
	"github.com/agentgateway/webui/pkg/config"
	"github.com/agentgateway/webui/pkg/gateway"
	"github.com/agentgateway/webui/pkg/version"
)

func main() {
	// Load .env best-effort; missing file is fine.
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.LoadWebUI()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting AgentGateway web interface",
		"version", version.Full(),
		"port", cfg.Port)

	// The AgentGateway library is attempted exactly once. On failure the
	// service still starts, in limited mode.
	server := api.NewServer(nil)
	gw, err := gateway.New(cfg.GatewayDisabled)
	if err != nil {
		slog.Warn("AgentGateway library unavailable, running in limited mode", "error", err)
	} else {
		server = api.NewServer(gw)
		slog.Info("AgentGateway library loaded")
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
