package handler

import (
	"log"
	"net/http"

	"StuntingCare_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetChildren(c *gin.Context) {
	rows, err := h.store.GetChildren()
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) CreateChild(c *gin.Context) {
	var data storage.Row
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rows, err := h.store.InsertChild(data)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) UpdateChild(c *gin.Context) {
	var data storage.Row
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rows, err := h.store.UpdateChild(c.Param("id"), data)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) DeleteChild(c *gin.Context) {
	rows, err := h.store.DeleteChild(c.Param("id"))
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) GetDoctors(c *gin.Context) {
	rows, err := h.store.GetDoctors()
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) writeStoreError(c *gin.Context, err error) {
	log.Printf("[ERROR] Supabase request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
