package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wedding-planner-backend/internal/task/domain"
	"wedding-planner-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
}

// CompleteTaskRequest toggles the completion state
type CompleteTaskRequest struct {
	Completed bool `json:"completed"`
}

// SnoozeTaskRequest hides a task from the upcoming view
type SnoozeTaskRequest struct {
	Until string `json:"until" binding:"required"`
}

// GetTasks returns tasks for the authenticated user
// GET /api/tasks?include_completed=true&limit=50&offset=0
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	includeCompleted := c.Query("include_completed") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, total, err := h.taskUsecase.GetUserTasks(userID, includeCompleted, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": total,
	})
}

// GetUpcomingTasks returns open tasks due soon or without a due date
// GET /api/tasks/upcoming
func (h *TaskHandler) GetUpcomingTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetUpcomingTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task manually
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Title, req.Description, req.DueDate, req.Priority)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task completed or reopens it
// PATCH /api/tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	req := CompleteTaskRequest{Completed: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	task, err := h.taskUsecase.SetCompleted(userID, taskID, req.Completed)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// SnoozeTask hides a task from the upcoming view until a given time
// PATCH /api/tasks/:id/snooze
func (h *TaskHandler) SnoozeTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req SnoozeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	until, err := time.Parse(time.RFC3339, req.Until)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "until must be an RFC3339 timestamp"})
		return
	}

	task, err := h.taskUsecase.SnoozeTask(userID, taskID, until)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (h *TaskHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
