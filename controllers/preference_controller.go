package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DELMUS1M/SPARKLY-STORE/database"
	"github.com/DELMUS1M/SPARKLY-STORE/logger"
)

type PreferenceController struct {
	Prefs *database.PreferenceRepository
}

func NewPreferenceController(prefs *database.PreferenceRepository) *PreferenceController {
	return &PreferenceController{Prefs: prefs}
}

// GetTheme returns the stored theme preference, defaulting to light. A store
// failure is logged and the default is served.
func (pc *PreferenceController) GetTheme(c *gin.Context) {
	theme, err := pc.Prefs.GetTheme(c.Request.Context())
	if err != nil {
		logger.Log.Warn("Failed to read theme preference", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme stores the theme preference best-effort; a store failure is
// logged and the request still succeeds.
func (pc *PreferenceController) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required,oneof=light dark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := pc.Prefs.SetTheme(c.Request.Context(), req.Theme); err != nil {
		logger.Log.Warn("Failed to persist theme preference", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
