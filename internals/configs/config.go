package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AdminPassword     string
	AdminPasswordHash string
	AdminJWTSecret    string

	LLMGatewayURL string
	LLMGatewayKey string
	LLMModel      string

	EmailJSServiceID  string
	EmailJSUserID     string
	EmailJSPrivateKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using ENV from the system")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using ENV from the system")
	}

	AdminPassword = GetEnv("ADMIN_PASSWORD")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")
	AdminJWTSecret = GetEnv("ADMIN_JWT_SECRET")

	LLMGatewayURL = GetEnv("LLM_GATEWAY_URL", "https://api.openai.com/v1/chat/completions")
	LLMGatewayKey = GetEnv("LLM_GATEWAY_KEY")
	LLMModel = GetEnv("LLM_MODEL", "gpt-4o-mini")

	EmailJSServiceID = GetEnv("EMAILJS_SERVICE_ID")
	EmailJSUserID = GetEnv("EMAILJS_USER_ID")
	EmailJSPrivateKey = GetEnv("EMAILJS_PRIVATE_KEY")

	if AdminPassword == "" && AdminPasswordHash == "" {
		log.Println("❌ ADMIN_PASSWORD not set! Admin dashboard will reject every request.")
	} else {
		log.Println("✅ Admin credential loaded.")
	}

	if LLMGatewayKey == "" {
		log.Println("⚠️ LLM_GATEWAY_KEY not set, chat relay disabled.")
	}

	if EmailJSServiceID == "" || EmailJSUserID == "" {
		log.Println("⚠️ EmailJS IDs not set, confirmation emails disabled.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}
