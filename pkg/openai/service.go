package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/llm"
)

const (
	defaultChatModel   = "gpt-4o-mini"
	defaultTemperature = 0.7

	defaultImageModel   = "gpt-image-1"
	defaultImageSize    = "1024x1024"
	defaultImageQuality = "standard"
)

type Service struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Client:  &http.Client{},
	}
}

// Complete issues one chat-completion call and returns the first choice.
func (s *Service) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResult, error) {
	if len(req.Messages) == 0 {
		return nil, apperr.InvalidArgument("messages is required and must be a non-empty array")
	}
	if s.APIKey == "" {
		return nil, apperr.Internal("OPENAI_API_KEY is not configured", nil)
	}

	model := req.Model
	if model == "" {
		model = defaultChatModel
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	payload := map[string]interface{}{
		"model":       model,
		"messages":    req.Messages,
		"temperature": temperature,
	}

	data, err := s.post(ctx, "/chat/completions", payload)
	if err != nil {
		return nil, err
	}

	choices, ok := data["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return nil, apperr.Upstream(http.StatusOK, "OpenAI response contained no choices")
	}
	choice, _ := choices[0].(map[string]interface{})

	result := &llm.ChatResult{
		Model: stringField(data, "model"),
		ID:    stringField(data, "id"),
	}
	if msg, ok := choice["message"].(map[string]interface{}); ok {
		result.Text = stringField(msg, "content")
	}
	result.FinishReason = stringField(choice, "finish_reason")
	if usage, ok := data["usage"].(map[string]interface{}); ok {
		result.Usage = &llm.Usage{
			PromptTokens:     intField(usage, "prompt_tokens"),
			CompletionTokens: intField(usage, "completion_tokens"),
			TotalTokens:      intField(usage, "total_tokens"),
		}
	}

	if result.Text == "" {
		return nil, apperr.Upstream(http.StatusOK, "OpenAI response contained no message content")
	}
	return result, nil
}

// GenerateImage issues one image-generation call. The result is either the
// hosted URL the API returned or, for models that answer inline, the base64
// payload wrapped as a data URI.
func (s *Service) GenerateImage(ctx context.Context, req llm.ImageRequest) (*llm.ImageResult, error) {
	if req.Prompt == "" {
		return nil, apperr.InvalidArgument("prompt is required")
	}
	if s.APIKey == "" {
		return nil, apperr.Internal("OPENAI_API_KEY is not configured", nil)
	}

	model := req.Model
	if model == "" {
		model = defaultImageModel
	}
	size := req.Size
	if size == "" {
		size = defaultImageSize
	}

	payload := map[string]interface{}{
		"model":  model,
		"prompt": req.Prompt,
		"n":      1,
		"size":   size,
	}
	// quality is only understood by the newer models
	if model == "gpt-image-1" || model == "dall-e-3" {
		quality := req.Quality
		if quality == "" {
			quality = defaultImageQuality
		}
		payload["quality"] = quality
	}

	data, err := s.post(ctx, "/images/generations", payload)
	if err != nil {
		return nil, err
	}

	parts, ok := data["data"].([]interface{})
	if !ok || len(parts) == 0 {
		return nil, apperr.Upstream(http.StatusOK, "OpenAI image response contained no data")
	}

	result := &llm.ImageResult{Model: model}
	for _, p := range parts {
		part, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		if result.RevisedPrompt == "" {
			result.RevisedPrompt = stringField(part, "revised_prompt")
		}
		if b64 := stringField(part, "b64_json"); b64 != "" {
			result.ImageURL = "data:image/png;base64," + b64
			return result, nil
		}
		if url := stringField(part, "url"); url != "" && result.ImageURL == "" {
			result.ImageURL = url
		}
	}

	if result.ImageURL == "" {
		return nil, apperr.Upstream(http.StatusOK, "OpenAI image response contained neither b64_json nor url")
	}
	return result, nil
}

func (s *Service) post(ctx context.Context, path string, payload map[string]interface{}) (map[string]interface{}, error) {
	body, _ := json.Marshal(payload)
	log.Printf("[OpenAI] request %s: %s", path, string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(s.BaseURL, "/")+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, apperr.Internal("failed to build OpenAI request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, apperr.Internal("OpenAI request failed", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("[OpenAI] response %d: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.Upstream(resp.StatusCode, string(respBody))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, apperr.Upstream(resp.StatusCode, "invalid JSON from OpenAI: "+err.Error())
	}
	return data, nil
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]interface{}, key string) int {
	f, _ := m[key].(float64)
	return int(f)
}
