package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatdto "voicelog-backend/internal/chat/dto"
	"voicelog-backend/internal/chat/usecase"
	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/llm"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Gpt handles POST /api/gpt.
func (h *ChatHandler) Gpt(c *gin.Context) {
	h.chat(c, llm.ProviderOpenAI)
}

// Gemini handles POST /api/gemini.
func (h *ChatHandler) Gemini(c *gin.Context) {
	h.chat(c, llm.ProviderGemini)
}

func (h *ChatHandler) chat(c *gin.Context, provider llm.ProviderType) {
	var req chatdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	result, err := h.chatUsecase.Chat(c.Request.Context(), provider, llm.ChatRequest{
		Messages:    req.Messages,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, chatdto.ChatResponse{
		Success:      true,
		Message:      result.Text,
		Text:         result.Text,
		FinishReason: result.FinishReason,
		Usage:        result.Usage,
		Model:        result.Model,
		ID:           result.ID,
	})
}

// GptImage handles POST /api/gpt/image.
func (h *ChatHandler) GptImage(c *gin.Context) {
	var req chatdto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	result, err := h.chatUsecase.GenerateImage(c.Request.Context(), llm.ImageRequest{
		Prompt:  req.Prompt,
		Model:   req.Model,
		Size:    req.Size,
		Quality: req.Quality,
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, chatdto.ImageResponse{
		Success:       true,
		Message:       "画像が生成されました",
		ImageURL:      result.ImageURL,
		RevisedPrompt: result.RevisedPrompt,
		Model:         result.Model,
	})
}
