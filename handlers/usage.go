package handlers

import (
	"net/http"

	"servicebuddy/services/usage"
	"servicebuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UsageHandler exposes the daily AI quota over HTTP so the frontend can
// show remaining calls without sending a message.
type UsageHandler struct {
	Limiter usage.Limiter
}

func NewUsageHandler(limiter usage.Limiter) *UsageHandler {
	return &UsageHandler{Limiter: limiter}
}

type recordUsageRequest struct {
	SessionID string `json:"sessionId"`
}

// GetUsageHandler reports the session's quota position.
func (h *UsageHandler) GetUsageHandler(c *gin.Context) {
	sessionID := c.DefaultQuery("sessionId", "anonymous")

	info, err := h.Limiter.Status(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("Usage status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"remaining": info.Remaining,
		"limit":     info.Limit,
		"used":      info.Used,
	})
}

// RecordUsageHandler counts one AI call against the session's daily quota.
func (h *UsageHandler) RecordUsageHandler(c *gin.Context) {
	var req recordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "anonymous"
	}

	ctx := c.Request.Context()
	if err := h.Limiter.Record(ctx, sessionID); err != nil {
		utils.GetLogger().Error("Usage record failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	info, err := h.Limiter.Status(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("Usage status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"remaining": info.Remaining,
		"limit":     info.Limit,
		"success":   true,
	})
}
