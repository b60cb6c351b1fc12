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

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// orderView is an order plus its display labels in the request's language.
type orderView struct {
	*models.Order
	StatusLabel string `json:"status_label"`
	StatusStep  int    `json:"status_step"`
	TotalLabel  string `json:"total_label"`
}

func toOrderView(l utils.Localizer, o *models.Order) orderView {
	return orderView{
		Order:       o,
		StatusLabel: l.T(string(o.Status)),
		StatusStep:  o.Status.Step(),
		TotalLabel:  l.FormatPrice(o.TotalAmount),
	}
}

// SubmitOrder -> turn the table's cart into a pending order
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customer_name"`
		PhoneNumber  string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Submit(c.Request.Context(), c.Param("table_id"), req.CustomerName, req.PhoneNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", toOrderView(middlewares.LocalizerFrom(c), order))
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.Get(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", toOrderView(middlewares.LocalizerFrom(c), order))
}

// GetOrders -> today's orders by default, ?scope=all for everything,
// ?status= to narrow
func (oc *OrderController) GetOrders(c *gin.Context) {
	var status models.OrderStatus
	if s := c.Query("status"); s != "" {
		st, err := models.ParseOrderStatus(s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		status = st
	}

	var (
		orders []models.Order
		err    error
	)
	switch c.DefaultQuery("scope", "today") {
	case "today":
		orders, err = oc.Orders.Today(c.Request.Context(), status)
	case "all":
		orders, err = oc.Orders.List(c.Request.Context(), status)
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("scope must be today or all"))
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	l := middlewares.LocalizerFrom(c)
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderView(l, &orders[i]))
	}
	utils.RespondJSON(c, http.StatusOK, l.T("todaysOrders"), views)
}

// UpdateOrderStatus -> any known status may be set; delivered frees the table
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.AdvanceStatus(c.Request.Context(), c.Param("order_id"), req.Status, c.GetString(middlewares.ContextUsername))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", toOrderView(middlewares.LocalizerFrom(c), order))
}

func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	history, err := oc.Orders.History(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status history", history)
}
