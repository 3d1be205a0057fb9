package dto

import "voicelog-backend/pkg/llm"

type ChatRequest struct {
	Messages    []llm.Message `json:"messages"`
	Model       string        `json:"model,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type ChatResponse struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	Text         string     `json:"text"`
	FinishReason string     `json:"finishReason,omitempty"`
	Usage        *llm.Usage `json:"usage,omitempty"`
	Model        string     `json:"model"`
	ID           string     `json:"id,omitempty"`
}

type ImageRequest struct {
	Prompt  string `json:"prompt"`
	Model   string `json:"model,omitempty"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

type ImageResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ImageURL      string `json:"imageUrl"`
	RevisedPrompt string `json:"revisedPrompt,omitempty"`
	Model         string `json:"model"`
}
