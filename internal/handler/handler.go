/**
* Name:			handler.go
* Description:	Gin HTTP handlers for the StuntingCare gateway
* Workflow:		chatbot/analysis proxying, children & notification CRUD, login
 */
package handler

import (
	"StuntingCare_Backend/internal/auth"
	"StuntingCare_Backend/internal/config"
	"StuntingCare_Backend/internal/llm"
	"StuntingCare_Backend/internal/middleware"
	"StuntingCare_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg   *config.Config
	store *storage.Client
	llm   *llm.Client
	auth  *auth.Service
}

func New(cfg *config.Config, store *storage.Client, llmClient *llm.Client, authSvc *auth.Service) *Handler {
	return &Handler{cfg: cfg, store: store, llm: llmClient, auth: authSvc}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/chatbot", h.Chatbot)
	api.POST("/llm-analyze", h.Analyze)

	api.GET("/children", h.GetChildren)
	api.POST("/children", h.CreateChild)
	api.PATCH("/children/:id", h.UpdateChild)
	api.DELETE("/children/:id", h.DeleteChild)
	api.GET("/doctors", h.GetDoctors)

	api.GET("/notifications", h.GetNotifications)
	api.POST("/notifications", h.CreateNotification)
	api.PATCH("/notifications/read-all", h.MarkAllNotificationsRead)
	api.PATCH("/notifications/:id/read", h.MarkNotificationRead)
	api.DELETE("/notifications", h.DeleteAllNotifications)
	api.DELETE("/notifications/:id", h.DeleteNotification)

	api.GET("/supabase-status", h.SupabaseStatus)
	api.GET("/supabase-keys", h.SupabaseKeys)

	api.POST("/login", h.Login)
	api.GET("/me", middleware.AuthMiddleware(h.auth), h.Me)
}
