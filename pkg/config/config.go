package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Dify workflow app
	DifyAPIKey      string
	DifyAPIEndpoint string

	// Auxiliary LLM providers
	OpenAIAPIKey string
	GeminiAPIKey string

	// CORS
	FrontendURL    string
	AllowedOrigins []string

	// Firebase / Firestore
	FirebaseProjectID   string
	FirebaseCredentials string

	// Timezone used for calendar day bucketing
	Location *time.Location
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tz := getEnv("TIMEZONE", "Asia/Tokyo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[WARN] invalid TIMEZONE %q, falling back to UTC: %v", tz, err)
		loc = time.UTC
	}

	var allowedOrigins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DifyAPIKey:          getEnv("DIFY_API_KEY", ""),
		DifyAPIEndpoint:     getEnv("DIFY_API_ENDPOINT", "https://api.dify.ai/v1/workflows/run"),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		FrontendURL:         getEnv("FRONTEND_URL", "https://voicelog.jp"),
		AllowedOrigins:      allowedOrigins,
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		Location:            loc,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
