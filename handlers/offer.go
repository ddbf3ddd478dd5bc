package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/offer"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// OfferHandler serves offer endpoints.
type OfferHandler struct {
	Service offer.OfferService
}

// ListOffersHandler handles GET /api/offer?active=true.
func (h *OfferHandler) ListOffersHandler(c *gin.Context) {
	active, err := queryBool(c, "active")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	offers, err := h.Service.ListOffers(c.Request.Context(), active != nil && *active)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// CreateOfferHandler handles POST /api/offer/:businessId.
func (h *OfferHandler) CreateOfferHandler(c *gin.Context) {
	var input models.OfferInput
	if !bindJSON(c, &input) {
		return
	}
	o, err := h.Service.CreateOffer(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// BusinessOffersHandler handles GET /api/offer/:businessId?active=.
func (h *OfferHandler) BusinessOffersHandler(c *gin.Context) {
	active, err := queryBool(c, "active")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	offers, err := h.Service.ListBusinessOffers(c.Request.Context(), c.Param("businessId"), active)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// UpdateOfferHandler handles PUT /api/offer/:id.
func (h *OfferHandler) UpdateOfferHandler(c *gin.Context) {
	var patch models.OfferPatch
	if !bindJSON(c, &patch) {
		return
	}
	o, err := h.Service.UpdateOffer(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// DeleteOfferHandler handles DELETE /api/offer/:id.
func (h *OfferHandler) DeleteOfferHandler(c *gin.Context) {
	if err := h.Service.DeleteOffer(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}
