package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/user"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	Service user.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler handles GET /api/users/profile.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	u, err := h.Service.GetProfile(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// AddFavoriteHandler handles POST /api/users/favorites/:businessId.
func (h *UserHandler) AddFavoriteHandler(c *gin.Context) {
	u, err := h.Service.AddFavorite(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": u.Favorites})
}

// RemoveFavoriteHandler handles DELETE /api/users/favorites/:businessId.
func (h *UserHandler) RemoveFavoriteHandler(c *gin.Context) {
	u, err := h.Service.RemoveFavorite(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": u.Favorites})
}
