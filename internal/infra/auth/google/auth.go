// Package google verifies ID tokens issued by Google Sign-In.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/errors"
)

var validIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService against Google's public keys.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience, issuer and expiry, then returns the signed-in user.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.clientID == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	user, err := userFromPayload(payload)
	if err != nil {
		logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	logger.Info("Google ID token verified", slog.String("googleID", user.ID))

	return user, nil
}

func userFromPayload(payload *idtoken.Payload) (*service.OAuthUser, error) {
	if !validIssuers[payload.Issuer] {
		return nil, errors.New("invalid issuer: " + payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, errors.New("missing subject")
	}

	email := claimString(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("missing email claim")
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return nil, errors.New("email not verified")
	}

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: verified,
	}, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}
