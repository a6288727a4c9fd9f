package services

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService guards the admin area. Credentials live in memory like the
// rest of the application state; a credential change lasts until restart.
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger

	mu           sync.RWMutex
	username     string
	passwordHash []byte
}

func NewAuthService(username, password, secret string, tokenTTL time.Duration, logger *zap.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		logger:       logger,
		username:     username,
		passwordHash: hash,
	}, nil
}

// Login verifies the credentials and issues a signed admin token.
func (s *AuthService) Login(username, password string) (string, *ServiceError) {
	s.mu.RLock()
	currentUser := s.username
	hash := s.passwordHash
	s.mu.RUnlock()

	if username != currentUser ||
		bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		s.logger.Warn("failed admin login attempt", zap.String("username", username))
		return "", newError(401, "invalid credentials")
	}

	claims := jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", newError(500, "failed to sign token")
	}
	return signed, nil
}

// ChangeCredentials swaps the admin username and password after verifying
// the current password.
func (s *AuthService) ChangeCredentials(currentPassword, newUsername, newPassword string) *ServiceError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(currentPassword)) != nil {
		return newError(401, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return newError(500, "failed to hash password")
	}
	s.username = newUsername
	s.passwordHash = hash

	s.logger.Info("admin credentials updated", zap.String("username", newUsername))
	return nil
}
