package main

import (
	"context"
	"log"

	api "voicelog-backend/cmd/api"
	authusecase "voicelog-backend/internal/auth/usecase"
	chatusecase "voicelog-backend/internal/chat/usecase"
	tenantrepo "voicelog-backend/internal/tenant/repository"
	tenantusecase "voicelog-backend/internal/tenant/usecase"
	voicelogrepo "voicelog-backend/internal/voicelog/repository"
	voicelogusecase "voicelog-backend/internal/voicelog/usecase"
	"voicelog-backend/pkg/config"
	"voicelog-backend/pkg/dify"
	"voicelog-backend/pkg/firebase"
	"voicelog-backend/pkg/gemini"
	"voicelog-backend/pkg/llm"
	"voicelog-backend/pkg/openai"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.DifyAPIKey == "" {
		log.Printf("[WARN] DIFY_API_KEY not set, /api/dify/send will fail")
	}

	// Initialize Firebase (Auth + Firestore)
	ctx := context.Background()
	app, err := firebase.NewApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}
	defer app.Close()

	// Initialize repositories (dependency injection)
	tenantRepository := tenantrepo.NewFirestoreTenantRepository(app.Firestore)
	voiceLogRepository := voicelogrepo.NewFirestoreVoiceLogRepository(app.Firestore)

	// Initialize upstream services
	difyService := dify.NewService(cfg.DifyAPIKey, cfg.DifyAPIEndpoint)
	openaiService := openai.NewService(cfg.OpenAIAPIKey)
	geminiService := gemini.NewService(cfg.GeminiAPIKey)

	var openaiChat llm.ChatService
	var imageService llm.ImageService
	if cfg.OpenAIAPIKey != "" {
		openaiChat = openaiService
		imageService = openaiService
	} else {
		log.Printf("[WARN] OPENAI_API_KEY not set, /api/gpt and image generation disabled")
	}
	var geminiChat llm.ChatService
	if cfg.GeminiAPIKey != "" {
		geminiChat = geminiService
	} else {
		log.Printf("[WARN] GEMINI_API_KEY not set, /api/gemini disabled")
	}

	// Initialize use cases
	verifier := authusecase.NewFirebaseVerifier(app.Auth)
	tenantUsecase := tenantusecase.NewTenantUsecase(tenantRepository)
	voiceLogUsecase := voicelogusecase.NewVoiceLogUsecase(voiceLogRepository, difyService, imageService, cfg.Location)
	chatUsecase := chatusecase.NewChatUsecase(openaiChat, geminiChat, imageService)

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(verifier, voiceLogUsecase, chatUsecase, tenantUsecase, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
