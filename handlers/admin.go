package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/services/admin"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service admin.AdminService
}

// AnalyticsHandler handles GET /api/admin/analytics.
func (h *AdminHandler) AnalyticsHandler(c *gin.Context) {
	report, err := h.Service.GetAnalytics(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
