// internal/services/user_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
)

type UserService struct {
	users repository.UserStore
}

func NewUserService(users repository.UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "user")
	}
	return user, nil
}
