package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type NotificationController struct {
	Store *services.Store
}

func NewNotificationController(store *services.Store) *NotificationController {
	return &NotificationController{Store: store}
}

// GetAllNotifications -> SMS stubs sent so far, ?order_id= for one order
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	notifs, err := services.ListNotifications(c.Request.Context(), nc.Store, c.Query("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}
