package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	SnapshotPath     string
	SheetsWebhookURL string
	GeminiAPIKey     string
	GeminiModel      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró .env, usando ENV del sistema")
		} else {
			log.Println("✅ .env cargado")
		}
	} else {
		log.Println("🚀 Running in Railway, usando ENV del sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SnapshotPath = GetEnv("SNAPSHOT_PATH", "pm_pro_data.json")
	SheetsWebhookURL = GetEnv("SHEETS_WEBHOOK_URL")
	GeminiAPIKey = GetEnv("GEMINI_API_KEY")
	GeminiModel = GetEnv("GEMINI_MODEL", "gemini-3-pro-preview")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está definido!")
	}
	if SheetsWebhookURL == "" {
		log.Println("⚠️ SHEETS_WEBHOOK_URL vacío: sync remoto deshabilitado (modo local)")
	}
	if GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY vacío: asistente deshabilitado")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
