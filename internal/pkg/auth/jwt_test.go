package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/campushub/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campushub-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testService(time.Hour)
	user := &models.User{ID: 42, Email: "admin@campushub.dev", Role: "admin"}

	token, expiresIn, err := service.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@campushub.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "campushub-test", claims.Issuer)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		service := testService(-time.Minute)
		token, _, err := service.GenerateToken(&models.User{ID: 1})
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: 1})
		require.NoError(t, err)

		other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := testService(time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "Basic abc"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, "header=%q", header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret!"))
}
