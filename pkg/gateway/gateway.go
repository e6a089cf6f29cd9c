// Package gateway wraps the optional AgentGateway library behind an
// explicit initialization result: New is attempted once at process start
// and yields either a ready handle or an error. Callers store the outcome
// and branch on it instead of re-checking availability per request.
package gateway

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by New when the AgentGateway library cannot
// be loaded. Handlers surface it as a 503.
var ErrUnavailable = errors.New("AgentGateway library not available")

// AgentType identifies a provider backend inside the AgentGateway library.
type AgentType string

const (
	AgentTypeOpenAIGPT       AgentType = "openai-gpt"
	AgentTypeAnthropicClaude AgentType = "anthropic-claude"
	AgentTypeGroq            AgentType = "groq"
	AgentTypeBedrockConverse AgentType = "bedrock-converse"
)

// agentTypesByTag maps the short request tags accepted by the chat API to
// provider backends.
var agentTypesByTag = map[string]AgentType{
	"openai":    AgentTypeOpenAIGPT,
	"anthropic": AgentTypeAnthropicClaude,
	"groq":      AgentTypeGroq,
	"bedrock":   AgentTypeBedrockConverse,
}

// ParseAgentType resolves a request tag to a provider backend. Unknown
// tags resolve to OpenAI GPT, matching the library's historical behavior.
func ParseAgentType(tag string) AgentType {
	if t, ok := agentTypesByTag[tag]; ok {
		return t
	}
	return AgentTypeOpenAIGPT
}

// AgentInfo describes one provider exposed through the agent list API.
type AgentInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the fixed set of providers the gateway exposes.
func Catalog() []AgentInfo {
	return []AgentInfo{
		{ID: "openai", Name: "OpenAI GPT", Description: "OpenAI GPT models"},
		{ID: "anthropic", Name: "Anthropic Claude", Description: "Claude models"},
		{ID: "groq", Name: "Groq", Description: "Groq LPU models"},
		{ID: "bedrock", Name: "AWS Bedrock", Description: "Bedrock models"},
	}
}

// Gateway is a ready handle to the AgentGateway library.
type Gateway struct{}

// New attempts to load the AgentGateway library. The disabled switch is
// the Go stand-in for the library failing to import: when set, New fails
// and the caller runs in limited mode.
func New(disabled bool) (*Gateway, error) {
	if disabled {
		return nil, ErrUnavailable
	}
	return &Gateway{}, nil
}

// Respond builds the placeholder chat response. No model is invoked; the
// response echoes the request so the UI round trip can be exercised. The
// agent tag is still resolved so the default mapping stays reachable from
// the chat endpoint.
func (g *Gateway) Respond(message, agentTag, model string) (string, error) {
	_ = ParseAgentType(agentTag)
	return fmt.Sprintf("Mock response for '%s' using %s model %s", message, agentTag, model), nil
}
