package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-pos/middleware"
	"restaurant-pos/settings"
)

// GetSettings returns the stored settings resolved against the defaults
func (h *Handler) GetSettings(c *gin.Context) {
	values, err := settings.Load(c.Request.Context(), h.DB)
	if err != nil {
		h.Log.Error("load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": values.Form(), "currencies": settings.Currencies})
}

// GetDefaultSettings returns the built-in defaults
func (h *Handler) GetDefaultSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": settings.DefaultForm()})
}

// UpdateSettings binds, validates and stores the whole form
func (h *Handler) UpdateSettings(c *gin.Context) {
	var form settings.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := settings.Save(ctx, h.DB, form.Pairs()); err != nil {
		h.Log.Error("save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	values, err := settings.Load(ctx, h.DB)
	if err != nil {
		h.Log.Error("reload settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  middleware.Translator(c).T("settings.messages.saveSuccess"),
		"settings": values.Form(),
	})
}

// ResetSettings drops every override
func (h *Handler) ResetSettings(c *gin.Context) {
	if err := settings.Reset(c.Request.Context(), h.DB); err != nil {
		h.Log.Error("reset settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  middleware.Translator(c).T("settings.messages.resetSuccess"),
		"settings": settings.DefaultForm(),
	})
}
