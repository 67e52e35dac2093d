package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type mockInvoker struct {
	gotBody []byte
	output  []byte
	err     error
}

func (m *mockInvoker) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	m.gotBody = params.Body
	if m.err != nil {
		return nil, m.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: m.output}, nil
}

func newTestClient(mock *mockInvoker) *bedrockImpl {
	return &bedrockImpl{client: mock, cfg: Config{Model: "anthropic.claude-3-5-sonnet", Region: "us-east-1"}}
}

func TestGenerateContent_RequestWireFormat(t *testing.T) {
	mock := &mockInvoker{
		output: []byte(`{"content": [{"type": "text", "text": "ok"}], "usage": {"input_tokens": 10, "output_tokens": 2}}`),
	}
	client := newTestClient(mock)

	req := &Request{
		System: "You manage ad campaigns.",
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: "list my campaigns"}}},
			{Role: "assistant", Parts: []Part{{FunctionCall: &FunctionCall{
				Name: "list_campaigns",
				Args: map[string]interface{}{},
			}}}},
			{Role: "user", Parts: []Part{{FunctionResponse: &FunctionResponse{
				Name:     "list_campaigns",
				Response: map[string]interface{}{"campaign_count": 2},
			}}}},
		},
		Tools: []Tool{{Name: "list_campaigns", Description: "List campaigns"}},
	}

	if _, err := client.GenerateContent(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wire anthropicRequest
	if err := json.Unmarshal(mock.gotBody, &wire); err != nil {
		t.Fatalf("invalid request body: %v", err)
	}

	if wire.AnthropicVersion != anthropicVersion {
		t.Errorf("unexpected anthropic_version: %s", wire.AnthropicVersion)
	}
	if wire.System != "You manage ad campaigns." {
		t.Errorf("system prompt not carried: %q", wire.System)
	}
	if wire.MaxTokens != defaultMaxTokens {
		t.Errorf("expected default max tokens, got %d", wire.MaxTokens)
	}
	if len(wire.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(wire.Messages))
	}

	toolUse := wire.Messages[1].Content[0]
	if toolUse.Type != "tool_use" || toolUse.Name != "list_campaigns" {
		t.Errorf("unexpected tool_use part: %+v", toolUse)
	}
	toolResult := wire.Messages[2].Content[0]
	if toolResult.Type != "tool_result" {
		t.Errorf("unexpected tool_result part: %+v", toolResult)
	}
	// Call and result pair through the derived id.
	if toolUse.ID != toolResult.ToolUseID {
		t.Errorf("tool_use id %q does not match tool_result id %q", toolUse.ID, toolResult.ToolUseID)
	}

	if len(wire.Tools) != 1 || wire.Tools[0].Name != "list_campaigns" {
		t.Fatalf("tools not declared: %+v", wire.Tools)
	}
	if wire.Tools[0].InputSchema == nil {
		t.Error("nil tool schema must be replaced with an empty object schema")
	}
}

func TestGenerateContent_ParsesToolCall(t *testing.T) {
	mock := &mockInvoker{
		output: []byte(`{
			"content": [
				{"type": "text", "text": "Let me look."},
				{"type": "tool_use", "id": "toolu_x", "name": "google_ads_keyword_search", "input": {"keywords": ["shoes"]}}
			],
			"usage": {"input_tokens": 25, "output_tokens": 40}
		}`),
	}
	client := newTestClient(mock)

	resp, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "research shoes"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(resp.Content.Parts))
	}
	if resp.Content.Parts[0].Text != "Let me look." {
		t.Errorf("unexpected text part: %q", resp.Content.Parts[0].Text)
	}
	call := resp.Content.Parts[1].FunctionCall
	if call == nil || call.Name != "google_ads_keyword_search" {
		t.Fatalf("tool call not parsed: %+v", resp.Content.Parts[1])
	}
	if resp.Usage.TotalTokens != 65 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	mock := &mockInvoker{err: errors.New("throttled")}
	client := newTestClient(mock)

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateContent_ErrorBody(t *testing.T) {
	mock := &mockInvoker{output: []byte(`{"error": {"type": "overloaded_error", "message": "busy"}}`)}
	client := newTestClient(mock)

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error for error body")
	}
}
