package orchestrator

import (
	"context"
	"fmt"
	"testing"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
	"github.com/denissa4/ads-manager/pkg/log"
)

// scriptedProvider returns a fixed sequence of responses.
type scriptedProvider struct {
	responses []*llmprovider.Response
	calls     int
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if p.calls >= len(p.responses) {
		return nil, fmt.Errorf("no scripted response for call %d", p.calls)
	}
	resp := p.responses[p.calls]
	p.calls++
	return resp, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

type mockTool struct {
	requiresAuth bool
	executed     bool
}

func (m *mockTool) Name() string        { return "mock_tool" }
func (m *mockTool) Description() string { return "A mock tool" }
func (m *mockTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"foo": map[string]interface{}{"type": "string"},
		},
	}
}
func (m *mockTool) RequiresAuth() bool { return m.requiresAuth }
func (m *mockTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	m.executed = true
	return map[string]interface{}{"result": "executed"}, nil
}

func textResp(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{},
	}
}

func toolResp(name string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role: "assistant",
			Parts: []llmprovider.Part{{
				FunctionCall: &llmprovider.FunctionCall{Name: name, Args: map[string]interface{}{"foo": "bar"}},
			}},
		},
		Usage: &llmprovider.Usage{},
	}
}

func newTestOrchestrator(provider llmprovider.Provider, tools ...agent.Tool) *Orchestrator {
	registry := agent.NewToolRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{RetryAttempts: 1}, log.NewNop())
	return New(manager, registry, log.NewNop(), "http://localhost:8080")
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	mgr := session.NewManager(session.Config{}, nil, log.NewNop())
	return mgr.GetOrCreate(context.Background(), "user123")
}

func TestOrchestrator_ProcessPrompt(t *testing.T) {
	t.Run("simple text response", func(t *testing.T) {
		o := newTestOrchestrator(&scriptedProvider{responses: []*llmprovider.Response{
			textResp("Hello there!"),
		}})
		sess := newTestSession(t)

		var emitted []string
		result, err := o.ProcessPrompt(context.Background(), sess, "hi", func(s string) {
			emitted = append(emitted, s)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Hello there!" {
			t.Errorf("expected 'Hello there!', got %q", result)
		}
		if len(emitted) != 1 || emitted[0] != "Hello there!" {
			t.Errorf("unexpected emitted frames: %v", emitted)
		}
		if history := sess.History(); len(history) != 2 {
			t.Errorf("expected user + assistant in memory, got %d messages", len(history))
		}
	})

	t.Run("tool call then answer", func(t *testing.T) {
		tool := &mockTool{}
		o := newTestOrchestrator(&scriptedProvider{responses: []*llmprovider.Response{
			toolResp("mock_tool"),
			textResp("Done."),
		}}, tool)
		sess := newTestSession(t)

		var emitted []string
		result, err := o.ProcessPrompt(context.Background(), sess, "use the tool", func(s string) {
			emitted = append(emitted, s)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tool.executed {
			t.Error("expected tool to be executed")
		}
		if result != "Done." {
			t.Errorf("expected 'Done.', got %q", result)
		}

		foundMarker := false
		for _, frame := range emitted {
			if frame == "Using tool: mock_tool" {
				foundMarker = true
			}
		}
		if !foundMarker {
			t.Errorf("expected tool marker in stream, got %v", emitted)
		}
	})

	t.Run("auth-guarded tool returns link without executing", func(t *testing.T) {
		tool := &mockTool{requiresAuth: true}
		o := newTestOrchestrator(&scriptedProvider{responses: []*llmprovider.Response{
			toolResp("mock_tool"),
			textResp("Please authenticate first."),
		}}, tool)
		sess := newTestSession(t)

		_, err := o.ProcessPrompt(context.Background(), sess, "use the tool", func(string) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tool.executed {
			t.Error("expected guarded tool not to execute without auth")
		}
	})

	t.Run("unknown tool does not crash the run", func(t *testing.T) {
		o := newTestOrchestrator(&scriptedProvider{responses: []*llmprovider.Response{
			toolResp("no_such_tool"),
			textResp("Sorry, that did not work."),
		}})
		sess := newTestSession(t)

		result, err := o.ProcessPrompt(context.Background(), sess, "try it", func(string) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Sorry, that did not work." {
			t.Errorf("unexpected result %q", result)
		}
	})

	t.Run("max steps exceeded returns fallback message", func(t *testing.T) {
		tool := &mockTool{}
		responses := make([]*llmprovider.Response, MaxAgentSteps)
		for i := range responses {
			responses[i] = toolResp("mock_tool")
		}
		o := newTestOrchestrator(&scriptedProvider{responses: responses}, tool)
		sess := newTestSession(t)

		result, err := o.ProcessPrompt(context.Background(), sess, "loop forever", func(string) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != ErrMsgMaxStepsExceeded {
			t.Errorf("expected max-steps message, got %q", result)
		}
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		o := newTestOrchestrator(&scriptedProvider{responses: []*llmprovider.Response{
			textResp("never delivered"),
		}})
		sess := newTestSession(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := o.ProcessPrompt(ctx, sess, "hi", func(string) {})
		if err == nil {
			t.Fatal("expected error from cancelled context")
		}
	})
}
