package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SupabaseStatus probes the data store with a one-row read.
func (h *Handler) SupabaseStatus(c *gin.Context) {
	sample, err := h.store.SampleChildren(1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Supabase connection successful",
		"sample":  sample,
	})
}

// SupabaseKeys hands the frontend its public connection settings. Only the
// anon key is exposed here, never the service key.
func (h *Handler) SupabaseKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"url":      h.cfg.SupabaseURL,
		"anon_key": h.cfg.SupabaseAnonKey,
	})
}
