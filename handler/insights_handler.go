package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	insights *usecase.InsightService
}

func NewInsightsHandler(insights *usecase.InsightService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// GenerateInsights runs a full generation cycle against the external model.
// The call may take as long as the model call's timeout; the response is
// always 200 with a valid insight list, fallback included.
func (h *InsightsHandler) GenerateInsights(c *gin.Context) {
	utils.Success(c, gin.H{
		"insights": h.insights.GenerateInsights(c.Request.Context()),
	})
}

// GetLatest serves the most recent insight set without triggering a new
// model call.
func (h *InsightsHandler) GetLatest(c *gin.Context) {
	utils.Success(c, gin.H{
		"insights": h.insights.Latest(c.Request.Context()),
	})
}
