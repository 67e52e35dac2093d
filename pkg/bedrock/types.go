package bedrock

import "errors"

// Config holds the Bedrock client configuration.
type Config struct {
	Model  string // Bedrock model ID, e.g. "anthropic.claude-3-5-sonnet-20240620-v1:0"
	Region string // optional; falls back to the SDK's default resolution
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.Model == "" {
		return errors.New("bedrock: model is required")
	}
	return nil
}

// Request is a normalized generation request.
type Request struct {
	System      string
	Messages    []Message
	Tools       []Tool
	Temperature float64
	MaxTokens   int
}

// Message is a conversation message.
type Message struct {
	Role  string // "user" or "assistant"
	Parts []Part
}

// Part holds a text segment, a tool call, or a tool result.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// FunctionCall represents a model's request to call a tool.
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents the result of an executed tool call.
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response is a normalized generation response.
type Response struct {
	Content Message
	Usage   *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Tool represents a tool declaration offered to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// --- Anthropic-on-Bedrock wire format ---

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
	Tools            []anthropicTool    `json:"tools,omitempty"`
	Temperature      float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string          `json:"role"`
	Content []anthropicPart `json:"content"`
}

type anthropicPart struct {
	Type      string                 `json:"type"`
	Text      string                 `json:"text,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Input     map[string]interface{} `json:"input,omitempty"`
	ToolUseID string                 `json:"tool_use_id,omitempty"`
	Content   string                 `json:"content,omitempty"`
}

type anthropicTool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

type anthropicResponse struct {
	Content []anthropicPart `json:"content"`
	Usage   *anthropicUsage `json:"usage,omitempty"`
	Error   interface{}     `json:"error,omitempty"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
