// Package config holds the environment-driven configuration for both
// services in this repository. Values come from the process environment
// (optionally seeded from a .env file by the entrypoints).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// WebUI configures the AgentGateway web interface service.
type WebUI struct {
	Port            string `env:"PORT" envDefault:"8080"`
	GatewayDisabled bool   `env:"AGENTGATEWAY_DISABLED"`
}

// Context7 configures the Context7 MCP placeholder service.
type Context7 struct {
	Port string `env:"PORT" envDefault:"8001"`
}

// LoadWebUI parses the web interface configuration from the environment.
func LoadWebUI() (*WebUI, error) {
	cfg := &WebUI{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing web interface config: %w", err)
	}
	return cfg, nil
}

// LoadContext7 parses the Context7 service configuration from the environment.
func LoadContext7() (*Context7, error) {
	cfg := &Context7{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing context7 config: %w", err)
	}
	return cfg, nil
}
