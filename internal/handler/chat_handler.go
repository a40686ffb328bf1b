package handler

import (
	"errors"
	"log"
	"net/http"

	"StuntingCare_Backend/internal/llm"

	"github.com/gin-gonic/gin"
)

// The restriction is advisory text sent to the model, not access control.
const chatbotSystemPrompt = "Kamu adalah asisten gizi anak untuk aplikasi pencegahan stunting. " +
	"Jawab hanya pertanyaan seputar gizi anak, tumbuh kembang, dan pencegahan stunting. " +
	"Jika pertanyaan di luar topik tersebut, jawab persis: " +
	"\"Maaf, saya hanya bisa menjawab pertanyaan seputar gizi anak dan pencegahan stunting.\""

type ChatRequest struct {
	Message string `json:"message"`
}

type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

// Chatbot proxies a user question to Gemini under the nutrition-only system prompt.
func (h *Handler) Chatbot(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reply, err := h.llm.Ask(req.Message, chatbotSystemPrompt)
	if err != nil {
		h.writeLLMError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Analyze forwards the caller's prompt verbatim, no system prompt.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reply, err := h.llm.Ask(req.Prompt, "")
	if err != nil {
		h.writeLLMError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (h *Handler) writeLLMError(c *gin.Context, err error) {
	if errors.Is(err, llm.ErrAPIKeyNotSet) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not set."})
		return
	}
	log.Printf("[ERROR] Gemini request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
