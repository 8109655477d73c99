package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petwelfare/config"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/errors"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	user := &entity.User{
		ID:      uuid.New(),
		Role:    "pharmacy_manager",
		Module:  entity.ModulePharmacy,
		StoreID: "store-7",
	}

	token, err := tokenService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "pharmacy_manager", claims.Role)
	assert.Equal(t, entity.ModulePharmacy, claims.Module)
	assert.Equal(t, "store-7", claims.StoreID)
	assert.Equal(t, time.Hour, tokenService.TokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := tokenService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte("secret"),
		ttl:    time.Minute,
		now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}

	token, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Role: entity.RolePublicUser})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := &jwtService{secret: []byte("one"), ttl: time.Minute, now: time.Now}
	verifier := &jwtService{secret: []byte("two"), ttl: time.Minute, now: time.Now}

	token, err := issuer.GenerateToken(&entity.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}
