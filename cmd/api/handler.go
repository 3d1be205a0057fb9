package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "voicelog-backend/internal/auth/usecase"
	chatdelivery "voicelog-backend/internal/chat/delivery"
	chatusecase "voicelog-backend/internal/chat/usecase"
	tenantdelivery "voicelog-backend/internal/tenant/delivery"
	tenantusecase "voicelog-backend/internal/tenant/usecase"
	voicelogdelivery "voicelog-backend/internal/voicelog/delivery"
	voicelogusecase "voicelog-backend/internal/voicelog/usecase"
	"voicelog-backend/pkg/config"
	"voicelog-backend/pkg/cors"
)

type Handler struct {
	verifier        authusecase.TokenVerifier
	voiceLogHandler *voicelogdelivery.VoiceLogHandler
	chatHandler     *chatdelivery.ChatHandler
	tenantHandler   *tenantdelivery.TenantHandler
	gate            *cors.Gate
	config          *config.Config
}

func NewHandler(verifier authusecase.TokenVerifier, voiceLogUc voicelogusecase.VoiceLogUsecase, chatUc chatusecase.ChatUsecase, tenantUc tenantusecase.TenantUsecase, cfg *config.Config) *Handler {
	return &Handler{
		verifier:        verifier,
		voiceLogHandler: voicelogdelivery.NewVoiceLogHandler(voiceLogUc),
		chatHandler:     chatdelivery.NewChatHandler(chatUc),
		tenantHandler:   tenantdelivery.NewTenantHandler(tenantUc),
		gate:            cors.NewGate(cfg.FrontendURL, cfg.AllowedOrigins),
		config:          cfg,
	}
}

func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(h.gate.Middleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	})

	SetupRoutes(r, h.verifier, h.voiceLogHandler, h.chatHandler, h.tenantHandler, h.config)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
