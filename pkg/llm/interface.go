package llm

import "context"

// Message is one turn of a chat conversation, OpenAI Chat Completions style.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// Usage reports token accounting from the provider, when available.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatRequest carries a message list plus optional model overrides.
// Zero values mean "use the provider default".
type ChatRequest struct {
	Messages    []Message
	Model       string
	Temperature *float64
}

// ChatResult is the normalized single-answer result of a chat completion.
type ChatResult struct {
	Text         string
	FinishReason string
	Usage        *Usage
	Model        string
	ID           string
}

// ChatService is the interface for chat-completion providers.
// Implement this interface to add new providers (OpenAI, Gemini, ...).
type ChatService interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResult, error)
}

// ImageRequest carries an image-generation prompt plus optional overrides.
type ImageRequest struct {
	Prompt  string
	Model   string
	Size    string
	Quality string
}

// ImageResult holds the generated image as a URL or data URI.
type ImageResult struct {
	ImageURL      string
	RevisedPrompt string
	Model         string
}

// ImageService is the interface for image-generation providers.
type ImageService interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}

// ProviderType selects a chat provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)
