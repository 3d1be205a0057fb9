package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/llm"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)
	svc := NewService("test-key")
	svc.BaseURL = upstream.URL
	return svc, upstream
}

func TestCompleteDefaults(t *testing.T) {
	var gotPayload map[string]interface{}
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		io.WriteString(w, `{
			"id":"chatcmpl-1","model":"gpt-4o-mini",
			"choices":[{"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}
		}`)
	})

	res, err := svc.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", gotPayload["model"])
	assert.Equal(t, 0.7, gotPayload["temperature"])

	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, "stop", res.FinishReason)
	assert.Equal(t, "chatcmpl-1", res.ID)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 12, res.Usage.TotalTokens)
}

func TestCompleteOverrides(t *testing.T) {
	var gotPayload map[string]interface{}
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		io.WriteString(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	})

	temp := 0.2
	_, err := svc.Complete(context.Background(), llm.ChatRequest{
		Messages:    []llm.Message{{Role: "user", Content: "hi"}},
		Model:       "gpt-4o",
		Temperature: &temp,
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", gotPayload["model"])
	assert.Equal(t, 0.2, gotPayload["temperature"])
}

func TestCompleteEmptyMessages(t *testing.T) {
	calls := 0
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := svc.Complete(context.Background(), llm.ChatRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.From(err).Code)
	assert.Equal(t, 0, calls)
}

func TestCompleteUpstreamError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"bad key"}}`)
	})

	_, err := svc.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)

	ae := apperr.From(err)
	assert.Equal(t, apperr.CodeUpstream, ae.Code)
	assert.Contains(t, ae.Message, "401")
}

func TestGenerateImageBase64(t *testing.T) {
	var gotPayload map[string]interface{}
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		io.WriteString(w, `{"data":[{"b64_json":"aGVsbG8=","revised_prompt":"a cat"}]}`)
	})

	res, err := svc.GenerateImage(context.Background(), llm.ImageRequest{Prompt: "a cat"})
	require.NoError(t, err)

	assert.Equal(t, "gpt-image-1", gotPayload["model"])
	assert.Equal(t, "1024x1024", gotPayload["size"])
	assert.Equal(t, "standard", gotPayload["quality"])

	assert.Equal(t, "data:image/png;base64,aGVsbG8=", res.ImageURL)
	assert.Equal(t, "a cat", res.RevisedPrompt)
}

func TestGenerateImageURLFallback(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"url":"https://img.example/cat.png"}]}`)
	})

	res, err := svc.GenerateImage(context.Background(), llm.ImageRequest{Prompt: "a cat", Model: "dall-e-2"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/cat.png", res.ImageURL)
}

func TestGenerateImageNoQualityForDallE2(t *testing.T) {
	var gotPayload map[string]interface{}
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		io.WriteString(w, `{"data":[{"url":"https://img.example/x.png"}]}`)
	})

	_, err := svc.GenerateImage(context.Background(), llm.ImageRequest{Prompt: "x", Model: "dall-e-2"})
	require.NoError(t, err)

	_, hasQuality := gotPayload["quality"]
	assert.False(t, hasQuality)
}

func TestGenerateImageMissingPrompt(t *testing.T) {
	calls := 0
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := svc.GenerateImage(context.Background(), llm.ImageRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.From(err).Code)
	assert.Equal(t, 0, calls)
}
