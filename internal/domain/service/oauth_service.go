package service

import (
	"context"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (Google's 'sub' claim)
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens sent by clients that signed in with Google.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
