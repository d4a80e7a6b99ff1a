package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shukatsu-shoji/mentore/pkg/response"
)

// UsageStats returns the total and same-day usage counts for a user.
func (h *Handler) UsageStats(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	stats, err := h.UsageRepo.Stats(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("usage_stats: failed to fetch",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		response.InternalError(c, "failed to fetch usage stats")
		return
	}

	response.OK(c, stats)
}
