// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type AuthService struct {
	users repository.UserStore
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name              string              `json:"name" validate:"required,max=100"`
	Email             string              `json:"email" validate:"required,email"`
	Password          string              `json:"password" validate:"required,min=6"`
	Age               int                 `json:"age" validate:"required,gte=18"`
	Role              models.Role         `json:"role" validate:"required,role"`
	Skills            []string            `json:"skills,omitempty"`
	Education         string              `json:"education,omitempty" validate:"max=255"`
	Experience        int                 `json:"experience" validate:"gte=0"`
	PreferredLocation string              `json:"preferred_location,omitempty" validate:"max=100"`
	ExpectedSalary    string              `json:"expected_salary,omitempty" validate:"max=50"`
	Availability      models.Availability `json:"availability,omitempty"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(users repository.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		return nil, invalidArgument("validation failed", validationErrors)
	}

	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, conflict("user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, internal(err)
	}

	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityFlexible
	}

	user := &models.User{
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		Role:              req.Role,
		Age:               req.Age,
		Skills:            pq.StringArray(req.Skills),
		Education:         req.Education,
		Experience:        req.Experience,
		PreferredLocation: req.PreferredLocation,
		ExpectedSalary:    req.ExpectedSalary,
		Availability:      availability,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, internal(err)
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("user with this email already exists")
		}
		return nil, internal(err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User signed up")

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		return nil, invalidArgument("validation failed", validationErrors)
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindUnauthorized, "invalid email or password")
		}
		return nil, internal(err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, newError(KindUnauthorized, "invalid email or password")
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, internal(err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
