package services

import (
	"context"
	"fmt"
	"log"

	"online-store/models"
	"online-store/repositories"
	"online-store/utils"
)

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type AuthService struct {
	users userStore
}

func NewAuthService() *AuthService {
	return &AuthService{
		users: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	if existing, _ := s.users.FindByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     "customer",
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	// Welcome mail is best effort and only when SMTP is configured.
	go func(email string) {
		mailer, err := models.NewEmailService()
		if err != nil {
			return
		}
		if err := mailer.SendWelcomeEmail(email); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(user.Email)

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}
