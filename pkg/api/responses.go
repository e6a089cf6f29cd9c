package api

import "github.com/agentgateway/webui/pkg/gateway"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status                string `json:"status"`
	AgentGatewayAvailable bool   `json:"agentgateway_available"`
	Version               string `json:"version"`
}

// AgentListResponse is returned by GET /api/agents.
type AgentListResponse struct {
	Agents    []gateway.AgentInfo `json:"agents"`
	Available bool                `json:"available"`
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Response  string `json:"response"`
	AgentType string `json:"agent_type"`
	Model     string `json:"model"`
	Status    string `json:"status"`
}
