// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

// respondError renders a service error with the status code of its kind.
func respondError(c *gin.Context, err error) {
	var se *services.ServiceError
	if !errors.As(err, &se) {
		se = &services.ServiceError{Kind: services.KindInternal, Err: err}
	}

	switch se.Kind {
	case services.KindInvalidArgument:
		if details, ok := se.Details.([]utils.ValidationError); ok {
			utils.ValidationErrorResponse(c, se.Message, details)
			return
		}
		utils.BadRequestResponse(c, se.Message, se.Details)
	case services.KindNotFound:
		utils.NotFoundResponse(c, se.Message)
	case services.KindForbidden:
		utils.ForbiddenResponse(c, se.Message)
	case services.KindConflict:
		utils.ConflictResponse(c, se.Message)
	case services.KindUnauthorized:
		utils.UnauthorizedResponse(c, se.Message)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

// currentActor builds the actor from the claims AuthRequired stored on the context.
func currentActor(c *gin.Context) (services.Actor, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return services.Actor{}, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthInvalidToken))
		return services.Actor{}, false
	}

	role, _ := utils.GetUserRoleFromContext(c)
	return services.Actor{ID: userID, Role: models.Role(role)}, true
}

// uuidParam parses a path parameter, answering 400 when it is not a uuid.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, name), nil)
		return uuid.Nil, false
	}
	return id, true
}
