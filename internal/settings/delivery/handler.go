package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-planner-backend/internal/settings/usecase"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
	}
}

// GetSettings returns the couple's settings
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")

	settings, err := h.settingsUsecase.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveSettings inserts or replaces the couple's settings
// POST /api/settings
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsUsecase.SaveSettings(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
