package models

// ChatRole identifies who wrote a chat message.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ProxyRequest is the payload accepted by the inference proxy.
type ProxyRequest struct {
	Prompt string `json:"prompt"`
}

// GenerationParameters are sent upstream unchanged on every call.
type GenerationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// UpstreamRequest is the body posted to the text-generation endpoint.
type UpstreamRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters GenerationParameters `json:"parameters"`
}

// GeneratedText is one element of the upstream response array.
type GeneratedText struct {
	GeneratedText string `json:"generated_text"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
