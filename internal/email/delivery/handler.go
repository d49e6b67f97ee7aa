package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdomain "wedding-planner-backend/internal/auth/domain"
	emaildto "wedding-planner-backend/internal/email/dto"
	"wedding-planner-backend/internal/email/usecase"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
	}
}

// GetEmails handles GET /api/emails?limit=&refresh=
func (h *EmailHandler) GetEmails(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	refresh := c.Query("refresh") == "true"

	entries, cached, err := h.emailUsecase.GetEmails(c.Request.Context(), user.AccessToken, limit, refresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fragments := make([]*emaildto.EmailFragment, len(entries))
	for i, entry := range entries {
		fragments[i] = emaildto.FragmentFromCache(entry)
	}

	c.JSON(http.StatusOK, emaildto.EmailsResponse{
		Emails: fragments,
		Count:  len(fragments),
		Cached: cached,
	})
}

// ExtractTasks handles POST /api/emails/extract-tasks?limit=
func (h *EmailHandler) ExtractTasks(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	created, err := h.emailUsecase.ExtractTasks(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, emaildto.ExtractTasksResponse{Created: created})
}
