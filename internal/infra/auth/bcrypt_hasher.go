// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"petwelfare/config"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/errors"
)

var forbiddenPasswordWords = []string{"password", "admin", "petwelfare", "123456", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and passwordStrength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: 6, MaxLength: 72}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, strength)
}

func newBcryptHasher(cost int, strength config.PasswordStrengthConfig) *bcryptHasher {
	if strength.MaxLength <= 0 || strength.MaxLength > 72 {
		// bcrypt ignores everything past 72 bytes
		strength.MaxLength = 72
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured length and character class rules.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	rules := h.strength
	switch {
	case len(password) < rules.MinLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least " + strconv.Itoa(rules.MinLength) + " characters long")
	case len(password) > rules.MaxLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at most " + strconv.Itoa(rules.MaxLength) + " characters long")
	case rules.RequireUppercase && !h.hasUppercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	case rules.RequireLowercase && !h.hasLowercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	case rules.RequireNumbers && !h.hasNumbers(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	case rules.RequireSpecial && !h.hasSpecialChars(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	// Word blacklisting only applies when the config asks for strong passwords.
	if rules.RequireSpecial && h.containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
