package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/utils"
)

// Language picks the response language from ?lang= first, then
// Accept-Language, then fallback.
func Language(fallback utils.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.ParseLanguage(fallback, c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(ContextLocalizer, utils.NewLocalizer(lang))
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

// LocalizerFrom returns the request's localizer, English when unset.
func LocalizerFrom(c *gin.Context) utils.Localizer {
	if v, ok := c.Get(ContextLocalizer); ok {
		if l, ok := v.(utils.Localizer); ok {
			return l
		}
	}
	return utils.NewLocalizer(utils.English)
}
