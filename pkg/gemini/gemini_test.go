package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IGemini {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{APIKey: "test-key", Model: "gemini-2.0-flash", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(Config{Model: "gemini-2.0-flash"}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := New(Config{APIKey: "key"}); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestGenerateContent_RequestWireFormat(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"role": "model", "parts": []map[string]interface{}{{"text": "hi"}}}},
			},
			"usageMetadata": map[string]interface{}{"promptTokenCount": 5, "candidatesTokenCount": 1, "totalTokenCount": 6},
		})
	})

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "Be concise."}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "hello"}}}},
		Tools:             []Tool{{Name: "list_campaigns", Description: "List campaigns"}},
		Temperature:       0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if !strings.Contains(gotQuery, "key=test-key") {
		t.Errorf("API key missing from query: %s", gotQuery)
	}
	if _, ok := gotBody["system_instruction"]; !ok {
		t.Error("system_instruction not sent")
	}
	tools := gotBody["tools"].([]interface{})
	decls := tools[0].(map[string]interface{})["functionDeclarations"].([]interface{})
	if len(decls) != 1 {
		t.Errorf("expected one function declaration, got %v", decls)
	}
	if _, ok := gotBody["generationConfig"]; !ok {
		t.Error("generationConfig not sent for non-zero temperature")
	}

	if resp.Content.Parts[0].Text != "hi" {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 6 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestGenerateContent_ParsesFunctionCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{{
						"functionCall": map[string]interface{}{
							"name": "google_ads_keyword_search",
							"args": map[string]interface{}{"keywords": []string{"shoes"}},
						},
					}},
				},
			}},
		})
	})

	resp, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "research shoes"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := resp.Content.Parts[0].FunctionCall
	if call == nil || call.Name != "google_ads_keyword_search" {
		t.Fatalf("function call not parsed: %+v", resp.Content.Parts)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code: %v", err)
	}
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
