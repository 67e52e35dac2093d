package orchestrator

// System prompt
const (
	SystemPromptAgent = `You are a helpful Google Ads campaign management assistant.
Your job is to help the user research keywords, generate campaign ideas, and build and manage Google Ads campaigns through the available tools.

Guidelines:
- Use the keyword research tool before suggesting keywords; never invent search volumes.
- When generating campaign ideas, base them on the user's keyword research and uploaded reference material.
- Ad headlines must be at most 30 characters and descriptions at most 90 characters.
- When the user asks you to create or change campaigns, confirm the exact campaign, ad group, or keyword names you will act on.
- Report tool results back to the user plainly, including any download URLs.`
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgEmptyLLMResponse = "empty LLM response"
	ErrMsgToolNotFound     = "tool not found"
	ErrMsgMaxStepsExceeded = "I could not finish that request within the allowed number of steps. Please try breaking it into smaller parts."
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent exceeded max steps (%d)"
	LogMsgAuthGuardTriggered = "Tool %s requires auth; returning authentication link"
)

// Stream markers
const (
	ToolMarkerFormat = "Using tool: %s"
)

// Configuration
const (
	MaxAgentSteps = 8
)
