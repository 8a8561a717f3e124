// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/utils"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.ContextKeyLang, parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage picks the first preferred language of an Accept-Language header,
// e.g. "zh-TW,zh;q=0.9,en;q=0.8". Only en and zh_TW have locale files.
func parseLanguage(header string) string {
	if header == "" {
		return "en"
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-HK", "zh":
		return "zh_TW"
	default:
		return "en"
	}
}
