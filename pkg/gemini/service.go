package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/llm"
)

const defaultModel = "gemini-2.5-flash"

type Service struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Client:  &http.Client{},
	}
}

// Complete issues one generateContent call. The OpenAI-style message list is
// mapped onto Gemini's contents: system messages become the system
// instruction, "assistant" becomes the "model" role.
func (s *Service) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResult, error) {
	if len(req.Messages) == 0 {
		return nil, apperr.InvalidArgument("messages is required and must be a non-empty array")
	}
	if s.APIKey == "" {
		return nil, apperr.Internal("GEMINI_API_KEY is not configured", nil)
	}

	model := req.Model
	if model == "" {
		model = defaultModel
	}

	var contents []map[string]interface{}
	var systemParts []map[string]string
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			systemParts = append(systemParts, map[string]string{"text": m.Content})
		case "assistant":
			contents = append(contents, map[string]interface{}{
				"role":  "model",
				"parts": []map[string]string{{"text": m.Content}},
			})
		default:
			contents = append(contents, map[string]interface{}{
				"role":  "user",
				"parts": []map[string]string{{"text": m.Content}},
			})
		}
	}

	payload := map[string]interface{}{
		"contents": contents,
	}
	if len(systemParts) > 0 {
		payload["systemInstruction"] = map[string]interface{}{"parts": systemParts}
	}
	if req.Temperature != nil {
		payload["generationConfig"] = map[string]interface{}{"temperature": *req.Temperature}
	}

	body, _ := json.Marshal(payload)
	log.Printf("[Gemini] request model=%s: %s", model, string(body))

	url := s.BaseURL + "/models/" + model + ":generateContent?key=" + s.APIKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, apperr.Internal("failed to build Gemini request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, apperr.Internal("Gemini request failed", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("[Gemini] response %d: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(resp.StatusCode, string(respBody))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, apperr.Upstream(resp.StatusCode, "invalid JSON from Gemini: "+err.Error())
	}

	result := &llm.ChatResult{Model: model}
	if id, ok := data["responseId"].(string); ok {
		result.ID = id
	}
	if usage, ok := data["usageMetadata"].(map[string]interface{}); ok {
		result.Usage = &llm.Usage{
			PromptTokens:     intField(usage, "promptTokenCount"),
			CompletionTokens: intField(usage, "candidatesTokenCount"),
			TotalTokens:      intField(usage, "totalTokenCount"),
		}
	}

	if c, ok := data["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if fr, ok := cand["finishReason"].(string); ok {
				result.FinishReason = fr
			}
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							result.Text = text
						}
					}
				}
			}
		}
	}

	if result.Text == "" {
		return nil, apperr.Upstream(http.StatusOK, "Gemini response contained no candidate text")
	}
	return result, nil
}

func intField(m map[string]interface{}, key string) int {
	f, _ := m[key].(float64)
	return int(f)
}
