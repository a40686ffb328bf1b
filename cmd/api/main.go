package main

import (
	"log"

	"StuntingCare_Backend/internal/auth"
	"StuntingCare_Backend/internal/config"
	"StuntingCare_Backend/internal/handler"
	"StuntingCare_Backend/internal/llm"
	"StuntingCare_Backend/internal/middleware"
	"StuntingCare_Backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	store := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL)
	authSvc := auth.NewService(store, []byte(cfg.JWTSecret))
	h := handler.New(cfg, store, llmClient, authSvc)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	h.RegisterRoutes(router)

	log.Fatal(router.Run(":" + cfg.HTTPPort))
}
