// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}
