package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-pos/access"
	"restaurant-pos/middleware"
)

// Health reports liveness and database reachability
func (h *Handler) Health(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": "Restaurant POS API",
		"version": "1.0.0",
	})
}

// Welcome describes the API
func (h *Handler) Welcome(c *gin.Context) {
	tr := middleware.Translator(c)
	c.JSON(http.StatusOK, gin.H{
		"message": tr.T("app.title") + " - " + tr.T("app.subtitle"),
		"docs":    "/api/orders/state-machine",
		"health":  "/health",
		"roles":   access.Roles(),
	})
}
