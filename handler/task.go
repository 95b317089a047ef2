package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
	"github.com/sangam0207/SpeakDo-Task-Tracker/net/resp"
	"github.com/sangam0207/SpeakDo-Task-Tracker/service"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc    *service.TaskService
	logger *logger.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc *service.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{
		svc:    svc,
		logger: log,
	}
}

// Create handles task creation.
func (h *TaskHandler) Create(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid create payload", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, task)
}

// Get handles single task retrieval.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.svc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.Success(c.Writer, task)
}

// List handles task listing with optional filters.
func (h *TaskHandler) List(c *gin.Context) {
	var query service.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid list query", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	tasks, err := h.svc.ListTasks(c.Request.Context(), &query)
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.Success(c.Writer, tasks)
}

// ListGrouped handles status-grouped task retrieval.
func (h *TaskHandler) ListGrouped(c *gin.Context) {
	grouped, err := h.svc.ListGroupedTasks(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.Success(c.Writer, grouped)
}

// Update handles partial task updates.
func (h *TaskHandler) Update(c *gin.Context) {
	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid update payload", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	task, err := h.svc.UpdateTask(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.Success(c.Writer, task)
}

// Delete handles permanent task deletion.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusNoContent)
}
