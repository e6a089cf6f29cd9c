package api

// ChatRequest is the HTTP request body for POST /api/chat. Message is a
// pointer so that "required" only rejects an absent or null field; an
// empty string is a valid message.
type ChatRequest struct {
	Message   *string `json:"message" binding:"required"`
	AgentType string  `json:"agent_type"`
	Model     string  `json:"model"`
}

// applyDefaults fills the provider tag and model with the same defaults
// the playground form uses.
func (r *ChatRequest) applyDefaults() {
	if r.AgentType == "" {
		r.AgentType = "openai"
	}
	if r.Model == "" {
		r.Model = "gpt-3.5-turbo"
	}
}
