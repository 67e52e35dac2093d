package llmprovider

import (
	"context"

	"github.com/denissa4/ads-manager/pkg/bedrock"
	"github.com/denissa4/ads-manager/pkg/gemini"
)

// BedrockAdapter adapts the Bedrock client to the Provider interface
type BedrockAdapter struct {
	client bedrock.IBedrock
	name   string
}

// NewBedrockAdapter creates a new Bedrock provider adapter
func NewBedrockAdapter(client bedrock.IBedrock, name string) *BedrockAdapter {
	return &BedrockAdapter{client: client, name: name}
}

func (a *BedrockAdapter) Name() string  { return a.name }
func (a *BedrockAdapter) Model() string { return a.client.Model() }

// GenerateContent converts the normalized request to Bedrock's format and back
func (a *BedrockAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	bReq := &bedrock.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			if p.Text != "" {
				if bReq.System != "" {
					bReq.System += "\n"
				}
				bReq.System += p.Text
			}
		}
	}

	for _, msg := range req.Messages {
		bMsg := bedrock.Message{Role: msg.Role}
		for _, p := range msg.Parts {
			bMsg.Parts = append(bMsg.Parts, toBedrockPart(p))
		}
		bReq.Messages = append(bReq.Messages, bMsg)
	}

	for _, t := range req.Tools {
		bReq.Tools = append(bReq.Tools, bedrock.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	bResp, err := a.client.GenerateContent(ctx, bReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	resp := &Response{
		Content:      Message{Role: bResp.Content.Role},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	for _, p := range bResp.Content.Parts {
		resp.Content.Parts = append(resp.Content.Parts, fromBedrockPart(p))
	}
	if bResp.Usage != nil {
		resp.Usage = &Usage{
			InputTokens:  bResp.Usage.InputTokens,
			OutputTokens: bResp.Usage.OutputTokens,
			TotalTokens:  bResp.Usage.TotalTokens,
		}
	}

	return resp, nil
}

func toBedrockPart(p Part) bedrock.Part {
	bp := bedrock.Part{Text: p.Text}
	if p.FunctionCall != nil {
		bp.FunctionCall = &bedrock.FunctionCall{
			Name: p.FunctionCall.Name,
			Args: p.FunctionCall.Args,
		}
	}
	if p.FunctionResponse != nil {
		bp.FunctionResponse = &bedrock.FunctionResponse{
			Name:     p.FunctionResponse.Name,
			Response: p.FunctionResponse.Response,
		}
	}
	return bp
}

func fromBedrockPart(p bedrock.Part) Part {
	np := Part{Text: p.Text}
	if p.FunctionCall != nil {
		np.FunctionCall = &FunctionCall{
			Name: p.FunctionCall.Name,
			Args: p.FunctionCall.Args,
		}
	}
	return np
}

// GeminiAdapter adapts the Gemini client to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
	name   string
}

// NewGeminiAdapter creates a new Gemini provider adapter
func NewGeminiAdapter(client gemini.IGemini, name string) *GeminiAdapter {
	return &GeminiAdapter{client: client, name: name}
}

func (a *GeminiAdapter) Name() string  { return a.name }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// GenerateContent converts the normalized request to Gemini's format and back
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		sys := toGeminiContent(*req.SystemInstruction)
		gReq.SystemInstruction = &sys
	}

	for _, msg := range req.Messages {
		gReq.Messages = append(gReq.Messages, toGeminiContent(msg))
	}

	for _, t := range req.Tools {
		gReq.Tools = append(gReq.Tools, gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	gResp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	resp := &Response{
		Content:      Message{Role: gResp.Content.Role},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	for _, p := range gResp.Content.Parts {
		np := Part{Text: p.Text}
		if p.FunctionCall != nil {
			np.FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		resp.Content.Parts = append(resp.Content.Parts, np)
	}
	if gResp.Usage != nil {
		resp.Usage = &Usage{
			InputTokens:  gResp.Usage.InputTokens,
			OutputTokens: gResp.Usage.OutputTokens,
			TotalTokens:  gResp.Usage.TotalTokens,
		}
	}

	return resp, nil
}

func toGeminiContent(msg Message) gemini.Content {
	// Gemini uses "model" for assistant turns.
	role := msg.Role
	if role == "assistant" {
		role = "model"
	}

	c := gemini.Content{Role: role}
	for _, p := range msg.Parts {
		gp := gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			gp.FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			gp.FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
		c.Parts = append(c.Parts, gp)
	}
	return c
}
