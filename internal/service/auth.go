package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/hash"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/tokens"
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	IsAdmin      bool
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	if _, err := s.Repo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	accessToken, accessExp, err := tokens.NewAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := tokens.NewRefreshToken(user.ID, user.Role, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.CreateRefreshToken(ctx, &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExp,
	}); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		IsAdmin:      user.Role == "admin",
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.Repo.RevokeRefreshToken(ctx, refreshToken)
}
