package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/engagement"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	Service engagement.EngagementService
}

// SubmitReviewHandler handles POST /api/review/:businessId.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var input models.ReviewInput
	if !bindJSON(c, &input) {
		return
	}
	review, err := h.Service.SubmitReview(c.Request.Context(), middleware.CallerFrom(c), c.Param("businessId"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviewsHandler handles GET /api/review/:businessId.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListReviews(c.Request.Context(), c.Param("businessId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// UpdateReviewHandler handles PUT /api/review/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	var patch models.ReviewPatch
	if !bindJSON(c, &patch) {
		return
	}
	review, err := h.Service.UpdateReview(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReviewHandler handles DELETE /api/review/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	if err := h.Service.DeleteReview(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review removed"})
}
