package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/middlewares"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// menuView adds the price formatted for the request's language.
type menuView struct {
	models.MenuItem
	PriceLabel string `json:"price_label"`
}

type menuRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}

func toMenuView(l utils.Localizer, item models.MenuItem) menuView {
	return menuView{MenuItem: item, PriceLabel: l.FormatPrice(item.Price)}
}

// GetAllMenus -> ?category= narrows the list to one category
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Catalog.ListItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	l := middlewares.LocalizerFrom(c)
	views := make([]menuView, 0, len(items))
	for _, item := range items {
		views = append(views, toMenuView(l, item))
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", views)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, err := mc.Catalog.GetItem(c.Request.Context(), c.Param("menu_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", toMenuView(middlewares.LocalizerFrom(c), *item))
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == nil || req.Price == nil || req.Category == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, price and category are required"))
		return
	}

	in := services.NewMenuItem{
		Name:       *req.Name,
		Price:      *req.Price,
		CategoryID: *req.Category,
		Available:  true,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Image != nil {
		in.Image = *req.Image
	}
	if req.Available != nil {
		in.Available = *req.Available
	}

	item, err := mc.Catalog.AddItem(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("New menu created: %s (category=%s)", item.Name, item.CategoryID)
	utils.RespondJSON(c, http.StatusCreated, "Menu created successfully", toMenuView(middlewares.LocalizerFrom(c), *item))
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.UpdateItem(c.Request.Context(), c.Param("menu_id"), services.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.Category,
		Available:   req.Available,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated successfully", toMenuView(middlewares.LocalizerFrom(c), *item))
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID := c.Param("menu_id")
	if err := mc.Catalog.DeleteItem(c.Request.Context(), menuID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"id": menuID})
}
