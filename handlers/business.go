package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/business"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler serves the business directory.
type BusinessHandler struct {
	Service business.DirectoryService
}

// ListBusinessesHandler handles GET /api/business. page is zero-based and only
// applies together with limit.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	limit, err := queryInt(c, "limit", 1)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	page, err := queryInt(c, "page", 0)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	views, err := h.Service.ListBusinesses(c.Request.Context(), middleware.CallerFrom(c), models.Page{Page: page, Limit: limit})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// NearbyHandler handles GET /api/business/nearby?lng=&lat=&radius=.
func (h *BusinessHandler) NearbyHandler(c *gin.Context) {
	lng, hasLng, err := queryFloat(c, "lng")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	lat, hasLat, err := queryFloat(c, "lat")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !hasLng || !hasLat {
		utils.RespondError(c, utils.BadRequest("Please provide lng and lat"))
		return
	}
	radius, hasRadius, err := queryFloat(c, "radius")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !hasRadius {
		radius = utils.DefaultNearbyRadiusKm
	}

	views, err := h.Service.FindNearby(c.Request.Context(), lng, lat, radius, middleware.CallerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetBusinessHandler handles GET /api/business/:id.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	view, err := h.Service.GetBusiness(c.Request.Context(), c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateBusinessHandler handles POST /api/business.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	var input models.BusinessInput
	if !bindJSON(c, &input) {
		return
	}
	b, err := h.Service.CreateBusiness(c.Request.Context(), middleware.CallerFrom(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBusinessHandler handles PUT /api/business/:id.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	var patch models.BusinessPatch
	if !bindJSON(c, &patch) {
		return
	}
	b, err := h.Service.UpdateBusiness(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBusinessHandler handles DELETE /api/business/:id.
func (h *BusinessHandler) DeleteBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteBusiness(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Business removed", zap.String("businessId", id))
	c.JSON(http.StatusOK, gin.H{"message": "Business removed"})
}
