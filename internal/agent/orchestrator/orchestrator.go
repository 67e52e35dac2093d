package orchestrator

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
)

// Emitter receives incremental output: model text and tool-usage
// markers, in order. An alias so callers can pass plain closures.
type Emitter = func(text string)

// ProcessPrompt runs the ReAct loop (Reason → Act → Observe) for one
// user turn, streaming output through emit. The final answer text is
// also returned. Conversation memory on the session is updated with the
// user turn and the final answer only; intermediate tool traffic stays
// within the turn.
func (o *Orchestrator) ProcessPrompt(ctx context.Context, sess *session.Session, prompt string, emit Emitter) (string, error) {
	userMsg := llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: prompt}},
	}

	messages := append(sess.History(), userMsg)
	sess.AppendMemory(userMsg)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemPromptAgent}},
		},
		Messages: messages,
		Tools:    o.registry.ToFunctionDefinitions(),
	}

	ctx = session.NewContext(ctx, sess)

	for step := 0; step < MaxAgentSteps; step++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		o.l.Infof(ctx, LogMsgAgentStep, step+1, MaxAgentSteps)

		// 1. Reason: ask the LLM what to do
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step, err)
		}

		if len(resp.Content.Parts) == 0 {
			return "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		var text string
		var call *llmprovider.FunctionCall
		for _, part := range resp.Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
			if part.FunctionCall != nil && call == nil {
				call = part.FunctionCall
			}
		}

		// 2. No tool call means the model has its final answer
		if call == nil {
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			emit(text)
			sess.AppendMemory(llmprovider.Message{
				Role:  "assistant",
				Parts: []llmprovider.Part{{Text: text}},
			})
			return text, nil
		}

		// Interim reasoning text is streamed before the tool marker.
		if text != "" {
			emit(text)
		}
		emit(fmt.Sprintf(ToolMarkerFormat, call.Name))

		// 3. Act: execute the tool, guarded by auth state
		o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)
		toolResult := o.executeTool(ctx, sess, call)

		// 4. Observe: feed the result back into the conversation
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: call}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "user",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					Name:     call.Name,
					Response: toolResult,
				},
			}},
		})
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, MaxAgentSteps)
	emit(ErrMsgMaxStepsExceeded)
	sess.AppendMemory(llmprovider.Message{
		Role:  "assistant",
		Parts: []llmprovider.Part{{Text: ErrMsgMaxStepsExceeded}},
	})
	return ErrMsgMaxStepsExceeded, nil
}

// executeTool resolves and runs one tool call. Failures become result
// strings for the model, never errors; the run itself must not die on a
// bad tool call.
func (o *Orchestrator) executeTool(ctx context.Context, sess *session.Session, call *llmprovider.FunctionCall) interface{} {
	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, "Tool %s not found", call.Name)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	if tool.RequiresAuth() && !sess.Authenticated() {
		o.l.Infof(ctx, LogMsgAuthGuardTriggered, call.Name)
		return agent.AuthInstruction(o.baseURL, sess.UserID)
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
