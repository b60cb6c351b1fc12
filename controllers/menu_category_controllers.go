package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type MenuCategoryController struct {
	Catalog *services.CatalogService
}

func NewMenuCategoryController(catalog *services.CatalogService) *MenuCategoryController {
	return &MenuCategoryController{Catalog: catalog}
}

// Icon is decoded through models.CategoryIcon, so unknown icons fail binding.
type categoryRequest struct {
	Name *string              `json:"name"`
	Icon *models.CategoryIcon `json:"icon"`
}

func (mcc *MenuCategoryController) GetCategories(c *gin.Context) {
	categories, err := mcc.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", gin.H{
		"categories": categories,
		"icons":      models.CategoryIcons(),
	})
}

func (mcc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == nil || req.Icon == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and icon are required"))
		return
	}

	category, err := mcc.Catalog.AddCategory(c.Request.Context(), *req.Name, *req.Icon)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

func (mcc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, err := mcc.Catalog.UpdateCategory(c.Request.Context(), c.Param("category_id"), services.CategoryUpdate{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory leaves the category's menu items in place.
func (mcc *MenuCategoryController) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("category_id")
	orphaned, err := mcc.Catalog.DeleteCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{
		"id":             categoryID,
		"orphaned_items": orphaned,
	})
}
