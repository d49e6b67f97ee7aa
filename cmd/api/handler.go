package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "wedding-planner-backend/internal/auth/usecase"
	checklistDelivery "wedding-planner-backend/internal/checklist/delivery"
	checklistUsecase "wedding-planner-backend/internal/checklist/usecase"
	emailDelivery "wedding-planner-backend/internal/email/delivery"
	emailUsecase "wedding-planner-backend/internal/email/usecase"
	settingsDelivery "wedding-planner-backend/internal/settings/delivery"
	settingsUsecase "wedding-planner-backend/internal/settings/usecase"
	taskDelivery "wedding-planner-backend/internal/task/delivery"
	taskUsecase "wedding-planner-backend/internal/task/usecase"
	vendorDelivery "wedding-planner-backend/internal/vendors/delivery"
	vendorUsecase "wedding-planner-backend/internal/vendors/usecase"
	"wedding-planner-backend/pkg/config"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	config           *config.Config
	emailHandler     *emailDelivery.EmailHandler
	taskHandler      *taskDelivery.TaskHandler
	vendorHandler    *vendorDelivery.VendorHandler
	checklistHandler *checklistDelivery.ChecklistHandler
	settingsHandler  *settingsDelivery.SettingsHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	emailUc emailUsecase.EmailUsecase,
	taskUc taskUsecase.TaskUsecase,
	vendorUc vendorUsecase.VendorUsecase,
	checklistUc checklistUsecase.ChecklistUsecase,
	settingsUc settingsUsecase.SettingsUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		config:           cfg,
		emailHandler:     emailDelivery.NewEmailHandler(emailUc),
		taskHandler:      taskDelivery.NewTaskHandler(taskUc),
		vendorHandler:    vendorDelivery.NewVendorHandler(vendorUc),
		checklistHandler: checklistDelivery.NewChecklistHandler(checklistUc),
		settingsHandler:  settingsDelivery.NewSettingsHandler(settingsUc),
	}
}

// Engine builds the configured router. Split from Start so tests can drive
// it without binding a port.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
