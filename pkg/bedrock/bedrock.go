package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 4096
)

// invoker abstracts the Bedrock runtime call for mocking.
type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type bedrockImpl struct {
	client invoker
	cfg    Config
}

func newBedrockImpl(ctx context.Context, cfg Config) (*bedrockImpl, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to load AWS config: %w", err)
	}

	return &bedrockImpl{
		client: bedrockruntime.NewFromConfig(awsCfg),
		cfg:    cfg,
	}, nil
}

func (b *bedrockImpl) Model() string {
	return b.cfg.Model
}

// GenerateContent invokes the Anthropic model on Bedrock.
func (b *bedrockImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(buildAnthropicRequest(req))
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to marshal request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.cfg.Model),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to invoke model: %w", err)
	}

	return parseAnthropicResponse(out.Body)
}

func buildAnthropicRequest(req *Request) anthropicRequest {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	wire := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           req.System,
		Temperature:      req.Temperature,
	}

	for _, msg := range req.Messages {
		var parts []anthropicPart
		for _, p := range msg.Parts {
			switch {
			case p.FunctionCall != nil:
				parts = append(parts, anthropicPart{
					Type:  "tool_use",
					ID:    toolUseID(p.FunctionCall.Name),
					Name:  p.FunctionCall.Name,
					Input: p.FunctionCall.Args,
				})
			case p.FunctionResponse != nil:
				resultJSON, _ := json.Marshal(p.FunctionResponse.Response)
				parts = append(parts, anthropicPart{
					Type:      "tool_result",
					ToolUseID: toolUseID(p.FunctionResponse.Name),
					Content:   string(resultJSON),
				})
			case p.Text != "":
				parts = append(parts, anthropicPart{Type: "text", Text: p.Text})
			}
		}
		if len(parts) == 0 {
			continue
		}

		role := msg.Role
		// Anthropic carries tool results on user-role messages.
		if role != "user" && role != "assistant" {
			role = "user"
		}
		wire.Messages = append(wire.Messages, anthropicMessage{Role: role, Content: parts})
	}

	for _, t := range req.Tools {
		schema := t.Parameters
		if schema == nil {
			schema = map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
		}
		wire.Tools = append(wire.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		})
	}

	return wire
}

func parseAnthropicResponse(body []byte) (*Response, error) {
	var wire anthropicResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("bedrock: failed to unmarshal response: %w", err)
	}

	if wire.Error != nil {
		return nil, fmt.Errorf("bedrock: API error: %v", wire.Error)
	}

	msg := Message{Role: "assistant"}
	for _, part := range wire.Content {
		switch part.Type {
		case "text":
			msg.Parts = append(msg.Parts, Part{Text: part.Text})
		case "tool_use":
			msg.Parts = append(msg.Parts, Part{
				FunctionCall: &FunctionCall{Name: part.Name, Args: part.Input},
			})
		}
	}

	resp := &Response{Content: msg, Usage: &Usage{}}
	if wire.Usage != nil {
		resp.Usage = &Usage{
			InputTokens:  wire.Usage.InputTokens,
			OutputTokens: wire.Usage.OutputTokens,
			TotalTokens:  wire.Usage.InputTokens + wire.Usage.OutputTokens,
		}
	}

	return resp, nil
}

// toolUseID derives a stable tool_use id from the tool name so a call and
// its result can be paired across turns without storing provider ids.
func toolUseID(name string) string {
	return "toolu_" + name
}
