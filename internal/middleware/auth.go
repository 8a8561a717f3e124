// internal/middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if errors.Is(err, utils.ErrExpiredToken) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenExpired))
			return
		}
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			return
		}

		if !models.Role(claims.Role).Valid() {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			return
		}

		// Set user info in context
		c.Set(utils.ContextKeyUserID, claims.UserID)
		c.Set(utils.ContextKeyName, claims.Name)
		c.Set(utils.ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects callers whose token carries a different role. It must run after AuthRequired.
func RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := utils.GetUserRoleFromContext(c)
		if !exists || current != string(role) {
			utils.ForbiddenResponse(c, "")
			return
		}
		c.Next()
	}
}
