package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/middlewares"
	"github.com/yeremiapane/table-order/utils"
)

type KDSController struct {
	Hub      *kds.Hub
	upgrader websocket.Upgrader
}

// NewKDSController accepts websocket upgrades from the given origins; "*"
// accepts any.
func NewKDSController(hub *kds.Hub, allowedOrigins []string) *KDSController {
	return &KDSController{
		Hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, o := range allowedOrigins {
					if o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// KDSHandler -> websocket feed of order, table and finance events
func (kc *KDSController) KDSHandler(c *gin.Context) {
	username := c.GetString(middlewares.ContextUsername)
	if username == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := kc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed for %s: %v", username, err)
		return
	}

	kc.Hub.Register(ws, username)
	utils.InfoLogger.Printf("KDS client connected: %s (%d connected)", username, kc.Hub.Clients())

	// Clients only listen; reading detects the disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.Unregister(ws)
	utils.InfoLogger.Printf("KDS client disconnected: %s", username)
}
