package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
	"github.com/yourusername/tryout-api/pkg/auth"
)

// AuthService guards the admin API. The portal owns end-user accounts; only
// a single configured admin credential can trigger scoring and exports here.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtService        *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(adminUsername, adminPasswordHash string, jwtService *auth.JWTService) (*AuthService, error) {
	if adminUsername == "" || adminPasswordHash == "" {
		return nil, fmt.Errorf("admin username and password hash are required")
	}
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}, nil
}

// Login validates the admin credential and issues an API token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.adminUsername {
		return "", apperrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return s.jwtService.GenerateToken(username)
}
