package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
	"github.com/sangam0207/SpeakDo-Task-Tracker/net/resp"
	"github.com/sangam0207/SpeakDo-Task-Tracker/service"
)

// AIHandler handles transcript extraction requests.
type AIHandler struct {
	svc    *service.ExtractionService
	logger *logger.Logger
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(svc *service.ExtractionService, log *logger.Logger) *AIHandler {
	return &AIHandler{
		svc:    svc,
		logger: log,
	}
}

// parseTranscriptRequest carries the transcript to extract from.
type parseTranscriptRequest struct {
	Text string `json:"text"`
}

// ParseTranscript extracts structured task fields from a transcript. The
// result is returned to the caller unpersisted; the voice flow lets the
// user edit before submitting.
func (h *AIHandler) ParseTranscript(c *gin.Context) {
	var req parseTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid transcript payload", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	fields, err := h.svc.ParseTranscript(c.Request.Context(), req.Text)
	if err != nil {
		failFromError(c, err)
		return
	}

	resp.Success(c.Writer, fields)
}
