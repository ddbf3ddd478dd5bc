package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/services/engagement"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// FollowHandler serves follow endpoints.
type FollowHandler struct {
	Service engagement.EngagementService
}

// FollowBusinessHandler handles POST /api/follow/:businessId.
func (h *FollowHandler) FollowBusinessHandler(c *gin.Context) {
	follow, err := h.Service.FollowBusiness(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Business followed successfully", "follow": follow})
}

// UnfollowBusinessHandler handles DELETE /api/follow/:businessId.
func (h *FollowHandler) UnfollowBusinessHandler(c *gin.Context) {
	if err := h.Service.UnfollowBusiness(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business unfollowed successfully"})
}

// MyFollowsHandler handles GET /api/follow/my.
func (h *FollowHandler) MyFollowsHandler(c *gin.Context) {
	businesses, err := h.Service.ListFollowedBusinesses(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// FollowersHandler handles GET /api/follow/business/:businessId.
func (h *FollowHandler) FollowersHandler(c *gin.Context) {
	followers, err := h.Service.ListFollowers(c.Request.Context(), c.Param("businessId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}
