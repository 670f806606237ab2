package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"wedding-backend/internal/logger"
	"wedding-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// authService checks the single organizer credential from configuration.
// Guests never authenticate; their invitation link is their access.
type authService struct {
	username     string
	passwordHash string
	tokens       security.TokenManager
}

func NewAuthService(username, passwordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		logger.Warn("failed organizer login attempt", "username", username)
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateAccessToken(username)
}
