package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-planner-backend/internal/checklist/domain"
	"wedding-planner-backend/internal/checklist/usecase"
)

// ChecklistHandler handles checklist-related HTTP requests
type ChecklistHandler struct {
	checklistUsecase usecase.ChecklistUsecase
}

// NewChecklistHandler creates a new ChecklistHandler
func NewChecklistHandler(checklistUsecase usecase.ChecklistUsecase) *ChecklistHandler {
	return &ChecklistHandler{
		checklistUsecase: checklistUsecase,
	}
}

// SetProgressRequest records completion state for one checklist item
type SetProgressRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// GetChecklist returns the checklist with the user's progress
// GET /api/checklist
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	userID := c.GetString("userID")

	categories, progress, err := h.checklistUsecase.GetChecklist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"progress":   progress,
	})
}

// SetProgress records completion state for one checklist item
// POST /api/checklist
func (h *ChecklistHandler) SetProgress(c *gin.Context) {
	userID := c.GetString("userID")

	var req SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := h.checklistUsecase.SetProgress(userID, req.ItemID, req.Completed, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetStats summarizes checklist, task, and vendor progress
// GET /api/checklist/stats
func (h *ChecklistHandler) GetStats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.checklistUsecase.GetStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
