package bedrock

import "context"

// IBedrock defines the interface for the Bedrock Anthropic client.
// Implementations are safe for concurrent use.
type IBedrock interface {
	// GenerateContent sends a generation request to the model.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Bedrock client with the given configuration. AWS
// credentials are resolved from the environment by the SDK.
func New(ctx context.Context, cfg Config) (IBedrock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newBedrockImpl(ctx, cfg)
}
