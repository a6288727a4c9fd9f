package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("admin", "admin123", "test-secret", time.Hour, zap.NewNop())
	assert.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a signed admin token", func(t *testing.T) {
		// Arrange
		svc := newAuthService(t)

		// Act
		tokenString, svcErr := svc.Login("admin", "admin123")

		// Assert
		assert.Nil(t, svcErr)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "admin", claims["username"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		svc := newAuthService(t)

		_, err := svc.Login("admin", "wrong")

		assert.NotNil(t, err)
		assert.Equal(t, 401, err.StatusCode)
	})

	t.Run("wrong username is 401", func(t *testing.T) {
		svc := newAuthService(t)

		_, err := svc.Login("root", "admin123")

		assert.NotNil(t, err)
		assert.Equal(t, 401, err.StatusCode)
	})
}

func TestChangeCredentials(t *testing.T) {
	t.Run("rotates both username and password", func(t *testing.T) {
		svc := newAuthService(t)

		err := svc.ChangeCredentials("admin123", "owner", "s3cret-pass")
		assert.Nil(t, err)

		// Old credentials no longer work.
		_, loginErr := svc.Login("admin", "admin123")
		assert.NotNil(t, loginErr)

		// New credentials do.
		_, loginErr = svc.Login("owner", "s3cret-pass")
		assert.Nil(t, loginErr)
	})

	t.Run("wrong current password is refused", func(t *testing.T) {
		svc := newAuthService(t)

		err := svc.ChangeCredentials("nope", "owner", "s3cret-pass")

		assert.NotNil(t, err)
		assert.Equal(t, 401, err.StatusCode)

		_, loginErr := svc.Login("admin", "admin123")
		assert.Nil(t, loginErr)
	})
}
