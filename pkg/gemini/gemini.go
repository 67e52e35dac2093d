package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type geminiImpl struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

func newGeminiImpl(cfg Config) *geminiImpl {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &geminiImpl{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (g *geminiImpl) Model() string {
	return g.cfg.Model
}

// GenerateContent sends a content generation request to the Gemini API.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.cfg.Model, g.cfg.APIKey)

	wireReq := generateRequest{
		SystemInstruction: req.SystemInstruction,
		Contents:          req.Messages,
	}
	if len(req.Tools) > 0 {
		decls := make([]functionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, functionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			})
		}
		wireReq.Tools = []wireTool{{FunctionDeclarations: decls}}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		wireReq.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	out := &Response{
		Content: result.Candidates[0].Content,
		Usage:   &Usage{},
	}
	if result.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  result.UsageMetadata.PromptTokenCount,
			OutputTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  result.UsageMetadata.TotalTokenCount,
		}
	}

	return out, nil
}
