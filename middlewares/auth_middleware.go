package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/utils"
)

// Keys set on the gin context by the middlewares in this package.
const (
	ContextAdminID   = "admin_id"
	ContextUsername  = "username"
	ContextToken     = "token"
	ContextLocalizer = "localizer"
)

// AuthMiddleware requires a valid, non-revoked Bearer token.
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header must use the Bearer scheme"))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !authorize(c, tokens, tokenString) {
			return
		}
		c.Next()
	}
}

// authorize parses the token and stores the admin on the context. It
// aborts and reports false when the token is unusable.
func authorize(c *gin.Context, tokens *utils.TokenManager, tokenString string) bool {
	claims, err := tokens.Parse(tokenString)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		c.Abort()
		return false
	}

	c.Set(ContextAdminID, claims.AdminID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextToken, tokenString)
	return true
}
