package handler

import (
	"net/http"

	"StuntingCare_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// GetNotifications forwards every query parameter as an equality filter,
// e.g. ?user_id=42 becomes user_id=eq.42.
func (h *Handler) GetNotifications(c *gin.Context) {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	rows, err := h.store.GetNotifications(filters)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) CreateNotification(c *gin.Context) {
	var data storage.Row
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rows, err := h.store.InsertNotification(data)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	rows, err := h.store.MarkNotificationRead(c.Param("id"))
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	rows, err := h.store.MarkAllNotificationsRead()
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	rows, err := h.store.DeleteNotification(c.Param("id"))
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *Handler) DeleteAllNotifications(c *gin.Context) {
	rows, err := h.store.DeleteAllNotifications()
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
