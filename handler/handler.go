// Package handler provides the HTTP handlers for the task API.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
	"github.com/sangam0207/SpeakDo-Task-Tracker/net/resp"
	"github.com/sangam0207/SpeakDo-Task-Tracker/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Task   *TaskHandler
	AI     *AIHandler
	logger *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers
// initialized.
func NewHandler(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		Task:   NewTaskHandler(svc.Task, log),
		AI:     NewAIHandler(svc.Extraction, log),
		logger: log,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")
	{
		task := v1.Group("/task")
		{
			task.POST("/create", h.Task.Create)
			task.GET("/get", h.Task.List)
			task.GET("/grouped", h.Task.ListGrouped)
			task.GET("/get/:id", h.Task.Get)
			task.PATCH("/update/:id", h.Task.Update)
			task.DELETE("/delete/:id", h.Task.Delete)
		}

		ai := v1.Group("/ai")
		{
			ai.POST("/parse-transcript", h.AI.ParseTranscript)
		}
	}
}

// failFromError maps a classified service error onto the response
// envelope. Unclassified errors never leak details to the caller.
func failFromError(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindInvalidInput:
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
	case service.KindNotFound:
		resp.Fail(c.Writer, resp.NotFound(err.Error()))
	case service.KindMalformedExtraction:
		resp.Fail(c.Writer, resp.UnprocessableEntity(err.Error()))
	case service.KindUpstreamUnavailable:
		resp.Fail(c.Writer, resp.ServiceUnavailable(err.Error()))
	default:
		resp.Fail(c.Writer, resp.InternalServer("internal server error"))
	}
}
