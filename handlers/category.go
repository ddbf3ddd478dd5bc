package handlers

import (
	"net/http"

	"localconnect/middleware"
	"localconnect/models"
	"localconnect/services/category"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Service category.CategoryService
}

// ListCategoriesHandler handles GET /api/category.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.ListCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategoryHandler handles POST /api/category.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	var input models.CategoryInput
	if !bindJSON(c, &input) {
		return
	}
	cat, err := h.Service.CreateCategory(c.Request.Context(), middleware.CallerFrom(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}
