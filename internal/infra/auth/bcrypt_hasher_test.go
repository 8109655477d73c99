package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petwelfare/config"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/errors"
)

func strictStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictStrength())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("whatever1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictStrength())

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Complex#Secret9"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password string
		details  string
	}{
		{"Ab1!", "at least 8 characters"},
		{"PASSWORD123!", "lowercase"},
		{"secure123!x", "uppercase"},
		{"SecureABC!x", "number"},
		{"Secure123x", "special"},
	}
	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Contains(t, appErr.Details(), tc.details)
	}

	err := hasher.ValidatePasswordStrength("MyAdmin123!")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))
}

func TestBcryptHasher_LenientDefaults(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.NoError(t, hasher.ValidatePasswordStrength("simple"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}

func TestBcryptHasher_CharacterClasses(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))
	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))
	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenPasswordWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass", forbiddenPasswordWords))
}
