package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/engagement"
	"localconnect/services/trending"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// TrendingHandler serves visit recording and the trending list.
type TrendingHandler struct {
	Service    trending.TrendingService
	Engagement engagement.EngagementService
}

// RecordVisitHandler handles POST /api/trending with body {businessId}.
func (h *TrendingHandler) RecordVisitHandler(c *gin.Context) {
	var input models.VisitInput
	if !bindJSON(c, &input) {
		return
	}
	visit, err := h.Engagement.RecordVisit(c.Request.Context(), middleware.CallerFrom(c), input.BusinessID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// GetTrendingHandler handles GET /api/trending?days=&limit=.
func (h *TrendingHandler) GetTrendingHandler(c *gin.Context) {
	days, err := queryInt(c, "days", 1)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 1)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	entries, err := h.Service.GetTrending(c.Request.Context(), days, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
