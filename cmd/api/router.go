package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-planner-backend/internal/auth/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	authRequired := delivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// Email routes
		emails := api.Group("/emails")
		emails.Use(authRequired)
		{
			emails.GET("", h.emailHandler.GetEmails)
			emails.POST("/extract-tasks", h.emailHandler.ExtractTasks)
		}

		// Task routes
		tasks := api.Group("/tasks")
		tasks.Use(authRequired)
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.GET("/upcoming", h.taskHandler.GetUpcomingTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.PATCH("/:id/complete", h.taskHandler.CompleteTask)
			tasks.PATCH("/:id/snooze", h.taskHandler.SnoozeTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
		}

		// Vendor routes
		vendors := api.Group("/vendors")
		vendors.Use(authRequired)
		{
			vendors.GET("", h.vendorHandler.GetVendors)
			vendors.POST("", h.vendorHandler.CreateVendor)
			vendors.GET("/:id", h.vendorHandler.GetVendorByID)
			vendors.PATCH("/:id", h.vendorHandler.UpdateVendor)
			vendors.DELETE("/:id", h.vendorHandler.DeleteVendor)
			vendors.POST("/:id/questions", h.vendorHandler.AnswerQuestion)
		}

		// Vendor type catalog
		vendorTypes := api.Group("/vendor-types")
		vendorTypes.Use(authRequired)
		{
			vendorTypes.GET("", h.vendorHandler.GetVendorTypes)
			vendorTypes.GET("/:type/questions", h.vendorHandler.GetQuestions)
		}

		// Checklist routes
		checklist := api.Group("/checklist")
		checklist.Use(authRequired)
		{
			checklist.GET("", h.checklistHandler.GetChecklist)
			checklist.POST("", h.checklistHandler.SetProgress)
			checklist.GET("/stats", h.checklistHandler.GetStats)
		}

		// Settings routes
		settings := api.Group("/settings")
		settings.Use(authRequired)
		{
			settings.GET("", h.settingsHandler.GetSettings)
			settings.POST("", h.settingsHandler.SaveSettings)
		}
	}
}
