package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/transport/http/middleware"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// taskUsecaser is the subset of TaskUsecase the handler needs.
type taskUsecaser interface {
	Create(ctx context.Context, input usecase.CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Get(ctx context.Context, taskID, userID string) (*domain.Task, error)
	Update(ctx context.Context, taskID, userID string, input usecase.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID, userID string) error
}

type TaskHandler struct {
	taskUsecase taskUsecaser
	logger      *slog.Logger
}

func NewTaskHandler(taskUsecase taskUsecaser, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type taskResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// POST /task
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBody})
		return
	}

	task, err := h.taskUsecase.Create(c.Request.Context(), usecase.CreateTaskInput{
		UserID:  c.GetString(middleware.ContextUserIDKey),
		Title:   req.Title,
		DueDate: req.DueDate,
	})
	if err != nil {
		respondError(c, h.logger, "create task", err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GET /task
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskUsecase.List(c.Request.Context(), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		respondError(c, h.logger, "list tasks", err)
		return
	}

	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	c.JSON(http.StatusOK, items)
}

// GET /task/:taskId
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskUsecase.Get(c.Request.Context(), c.Param("taskId"), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		respondError(c, h.logger, "get task", err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// PUT /task/:taskId
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBody})
		return
	}

	task, err := h.taskUsecase.Update(
		c.Request.Context(),
		c.Param("taskId"),
		c.GetString(middleware.ContextUserIDKey),
		usecase.UpdateTaskInput{Title: req.Title, Completed: req.Completed},
	)
	if err != nil {
		respondError(c, h.logger, "update task", err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// DELETE /task/:taskId
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.taskUsecase.Delete(c.Request.Context(), c.Param("taskId"), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		respondError(c, h.logger, "delete task", err)
		return
	}

	c.Status(http.StatusOK)
}
