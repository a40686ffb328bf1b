package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// Config is read once at startup and passed into every component.
type Config struct {
	GeminiAPIKey       string
	GeminiAPIURL       string
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseAnonKey    string
	JWTSecret          string
	HTTPPort           string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiAPIURL:       getEnv("GEMINI_API_URL", defaultGeminiURL),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		JWTSecret:          getEnv("JWT_SECRET_KEY", ""),
		HTTPPort:           getEnv("PORT", "8080"),
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}
	if cfg.JWTSecret == "" {
		// No default key on purpose: tokens signed with a known fallback are worthless.
		log.Fatal("JWT_SECRET_KEY must be set")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set, chatbot endpoints will return errors")
	}

	return cfg
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
