package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

// RequireExistingAdmin rejects tokens whose admin has since been removed.
// Must run after AuthMiddleware.
func RequireExistingAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetString(ContextAdminID)
		if adminID == "" {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if _, err := auth.GetAdmin(c.Request.Context(), adminID); err != nil {
			if services.IsNotFound(err) {
				utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin account no longer exists"))
			} else {
				utils.RespondError(c, http.StatusInternalServerError, err)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
