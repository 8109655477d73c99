package google

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"petwelfare/config"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/errors"
)

func newTestService(payload *idtoken.Payload, err error) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: "test_client_id",
		logger:   slog.Default(),
		validate: func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
			if audience != "test_client_id" {
				return nil, errors.New("audience mismatch")
			}

			return payload, err
		},
	}
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "test_user_123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://example.com/a.png",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newTestService(validPayload(), nil)

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejected(t *testing.T) {
	unverified := validPayload()
	unverified.Claims["email_verified"] = false

	badIssuer := validPayload()
	badIssuer.Issuer = "https://evil.example.com"

	noEmail := validPayload()
	delete(noEmail.Claims, "email")

	testCases := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "signature", err: errors.New("idtoken: invalid token")},
		{name: "unverified email", payload: unverified},
		{name: "issuer", payload: badIssuer},
		{name: "missing email", payload: noEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(tc.payload, tc.err)

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}
