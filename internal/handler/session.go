package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shukatsu-shoji/mentore/internal/interview"
	"github.com/shukatsu-shoji/mentore/pkg/model"
	"github.com/shukatsu-shoji/mentore/pkg/response"
)

// StartSession creates a new interview session and returns it with the
// opening question.
func (h *Handler) StartSession(c *gin.Context) {
	var req model.StartSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	settings, err := interview.NewSettings(req.Industry, req.Duration, interview.InterviewType(req.InterviewType))
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	session, err := h.Store.StartSession(c.Request.Context(), req.UserID, settings)
	if err != nil {
		h.failGeneration(c, "start_session", err)
		return
	}

	response.Created(c, session)
}

// SubmitAnswer records the answer to the open question and returns the
// updated session, with the next question or the completed history.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "session id is required")
		return
	}

	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.Store.SubmitAnswer(c.Request.Context(), id, req.Answer)
	switch {
	case err == nil:
		response.OK(c, result)
	case errors.Is(err, interview.ErrEmptyAnswer):
		response.ValidationError(c, "answer must not be empty")
	case errors.Is(err, interview.ErrSessionNotFound):
		response.NotFound(c, "session not found")
	case errors.Is(err, interview.ErrSessionCompleted):
		response.Conflict(c, "session already completed")
	default:
		h.failGeneration(c, "submit_answer", err)
	}
}

// GetSession returns a point-in-time view of a session.
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.Store.Get(c.Param("id"))
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}
	response.OK(c, session)
}

// EndSession finishes an interview early, keeping the answered turns.
func (h *Handler) EndSession(c *gin.Context) {
	session, err := h.Store.End(c.Param("id"))
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}
	response.OK(c, session)
}

// failGeneration maps a generation failure to the right status with a
// plain-language message. The session itself is untouched, so the
// client may retry by resubmitting the same answer.
func (h *Handler) failGeneration(c *gin.Context, op string, err error) {
	var rl *interview.RateLimitError
	if errors.As(err, &rl) {
		response.TooManyRequests(c, interview.UserMessage(err), rl.RetryAfter)
		return
	}

	h.Logger.Error(op+": question generation failed", zap.Error(err))
	response.BadGateway(c, interview.UserMessage(err))
}
