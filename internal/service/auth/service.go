package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/repository"
	"github.com/medidesk/frontdesk-api/internal/session"
	"github.com/medidesk/frontdesk-api/pkg/auth"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

const bcryptCost = 12

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.TokenResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error)
}

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	denylist session.Denylist
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, denylist session.Denylist) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		denylist: denylist,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidation("username is required")
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidation("password must be at least 6 characters")
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidation("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials", err)
	}

	token, err := s.jwtSvc.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{Token: token}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token", err)
	}

	return s.denylist.Revoke(ctx, token, time.Until(claims.Expiry))
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token", err)
	}

	revoked, err := s.denylist.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.NewUnauthorized("token has been revoked", nil)
	}

	return claims, nil
}
