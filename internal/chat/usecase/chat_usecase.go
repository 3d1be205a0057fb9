package usecase

import (
	"context"

	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/llm"
)

// ChatUsecase routes chat completions to the selected provider and fronts
// image generation. Switch providers by registering a different ChatService.
type ChatUsecase interface {
	Chat(ctx context.Context, provider llm.ProviderType, req llm.ChatRequest) (*llm.ChatResult, error)
	GenerateImage(ctx context.Context, req llm.ImageRequest) (*llm.ImageResult, error)
}

type chatUsecase struct {
	providers map[llm.ProviderType]llm.ChatService
	images    llm.ImageService
}

func NewChatUsecase(openaiChat, geminiChat llm.ChatService, images llm.ImageService) ChatUsecase {
	providers := make(map[llm.ProviderType]llm.ChatService)
	if openaiChat != nil {
		providers[llm.ProviderOpenAI] = openaiChat
	}
	if geminiChat != nil {
		providers[llm.ProviderGemini] = geminiChat
	}
	return &chatUsecase{providers: providers, images: images}
}

func (u *chatUsecase) Chat(ctx context.Context, provider llm.ProviderType, req llm.ChatRequest) (*llm.ChatResult, error) {
	svc, ok := u.providers[provider]
	if !ok {
		return nil, apperr.Internal(string(provider)+" provider is not configured", nil)
	}
	return svc.Complete(ctx, req)
}

func (u *chatUsecase) GenerateImage(ctx context.Context, req llm.ImageRequest) (*llm.ImageResult, error) {
	if u.images == nil {
		return nil, apperr.Internal("image provider is not configured", nil)
	}
	return u.images.GenerateImage(ctx, req)
}
