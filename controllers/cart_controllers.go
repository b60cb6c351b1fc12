package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

func (cc *CartController) GetCart(c *gin.Context) {
	view, err := cc.Carts.Get(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart", view)
}

// AddItem -> one more unit of the menu item
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	view, err := cc.Carts.Add(c.Request.Context(), c.Param("table_id"), req.MenuItemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", view)
}

// RemoveItem -> one unit less; ?all=true drops the whole line
func (cc *CartController) RemoveItem(c *gin.Context) {
	tableID, itemID := c.Param("table_id"), c.Param("item_id")
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	var view services.CartView
	if all {
		view = cc.Carts.RemoveLine(tableID, itemID)
	} else {
		view = cc.Carts.Remove(tableID, itemID)
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", view)
}

// UpdateItem -> special instructions for a line
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req struct {
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	view, err := cc.Carts.SetInstructions(c.Param("table_id"), c.Param("item_id"), req.SpecialInstructions)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart item updated", view)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	tableID := c.Param("table_id")
	cc.Carts.Clear(tableID)
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", services.CartView{TableID: tableID, Items: nil})
}
