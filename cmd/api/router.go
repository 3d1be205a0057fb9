package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "voicelog-backend/internal/auth/delivery"
	authusecase "voicelog-backend/internal/auth/usecase"
	chatdelivery "voicelog-backend/internal/chat/delivery"
	tenantdelivery "voicelog-backend/internal/tenant/delivery"
	voicelogdelivery "voicelog-backend/internal/voicelog/delivery"
	"voicelog-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, verifier authusecase.TokenVerifier, voiceLogHandler *voicelogdelivery.VoiceLogHandler, chatHandler *chatdelivery.ChatHandler, tenantHandler *tenantdelivery.TenantHandler, cfg *config.Config) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"config": gin.H{
					"hasDifyKey":   cfg.DifyAPIKey != "",
					"hasOpenAIKey": cfg.OpenAIAPIKey != "",
					"hasGeminiKey": cfg.GeminiAPIKey != "",
					"endpoint":     cfg.DifyAPIEndpoint,
				},
			})
		})

		auth := authdelivery.AuthMiddleware(verifier)

		// Dify workflow proxy
		api.POST("/dify/send", auth, voiceLogHandler.SendToDify)

		// Auxiliary LLM proxies
		api.POST("/gpt", auth, chatHandler.Gpt)
		api.POST("/gpt/image", auth, chatHandler.GptImage)
		api.POST("/gemini", auth, chatHandler.Gemini)

		// Journal entries (protected)
		voicelogs := api.Group("/voicelogs")
		voicelogs.Use(auth)
		{
			voicelogs.POST("", voiceLogHandler.Append)
			voicelogs.GET("", voiceLogHandler.History)
			voicelogs.GET("/calendar", voiceLogHandler.Calendar)
			voicelogs.GET("/date/:date", voiceLogHandler.ByDate)
		}

		// Manga generation gate (protected)
		manga := api.Group("/manga")
		manga.Use(auth)
		{
			manga.GET("/allowance", voiceLogHandler.MangaAllowance)
			manga.POST("/generate", voiceLogHandler.GenerateManga)
		}

		// Tenant allow-list and departments (protected)
		domains := api.Group("/domains/:domainId")
		domains.Use(auth)
		{
			domains.GET("/users", tenantHandler.ListUsers)
			domains.POST("/users", tenantHandler.AddUsers)
			domains.DELETE("/users", tenantHandler.RemoveUsers)
			domains.POST("/check", tenantHandler.CheckAccess)
			domains.GET("/departments", tenantHandler.ListDepartments)
			domains.PUT("/departments", tenantHandler.ReplaceDepartments)
		}
	}
}
