package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to self-register a public user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput completes the forgot-password flow.
type ResetPasswordInput struct {
	Email           string
	OTP             string
	Password        string
	ConfirmPassword string
}

// ForcePasswordInput replaces a password the user was required to change.
type ForcePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// AuthOutput is returned by every sign-in path.
type AuthOutput struct {
	Token           string
	User            *entity.User
	NeedsStoreSetup bool
}

// AuthUsecase defines sign-up, sign-in and password recovery.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthOutput, error)

	// ForgotPassword issues a one-time code. Unknown emails are accepted silently.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	ForcePassword(ctx context.Context, userID uuid.UUID, input ForcePasswordInput) error

	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Authenticate validates a bearer token and resolves the active user behind it.
	Authenticate(ctx context.Context, token string) (*Actor, error)
}
