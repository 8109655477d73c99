// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResetAttempts = 5

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	notifier          notifier
	resetTTL          time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTTL := 10 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordResetTTL > 0 {
		resetTTL = params.Config.Auth.PasswordResetTTL
	}

	return &authService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		notifier:          newNotifier(params.Publisher, params.Logger),
		resetTTL:          resetTTL,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a public user with a local password.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: hash,
		AuthProvider: entity.AuthProviderLocal,
		Role:         entity.RolePublicUser,
		IsActive:     true,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find user by email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrUserAlreadyExists
			}

			return domainerrors.FromRepository(err, nil, "create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), errAttr(err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	return srv.issue(user)
}

// Login verifies a local password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return domainerrors.FromRepository(err, nil, "find user by email")
		}

		if !found.IsActive {
			return domainerrors.ErrAccountDeactivated
		}
		if !found.HasPassword() {
			return domainerrors.ErrPasswordNotSet
		}
		if !srv.hasher.Check(input.Password, found.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		now := srv.now()
		found.LastLoginAt = &now
		found.UpdatedAt = now
		if err := userRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update last login")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", email), errAttr(err))

		return nil, errors.Wrap(err, "failed to login")
	}

	return srv.issue(user)
}

// LoginWithGoogle signs in with a Google ID token, linking or creating the account.
func (srv *authService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	googleUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify google id token")
	}

	email := normalizeEmail(googleUser.Email)

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		now := srv.now()

		found, err := userRepo.FindByGoogleID(ctx, googleUser.ID)
		if errors.Is(err, repository.ErrNotFound) {
			found, err = userRepo.FindByEmail(ctx, email)
		}

		switch {
		case errors.Is(err, repository.ErrNotFound):
			user = &entity.User{
				ID:             uuid.New(),
				Name:           googleUser.Name,
				Email:          email,
				GoogleID:       googleUser.ID,
				AuthProvider:   entity.AuthProviderGoogle,
				ProfilePicture: googleUser.AvatarURL,
				Role:           entity.RolePublicUser,
				IsActive:       true,
				LastLoginAt:    &now,
				CreatedAt:      now,
				UpdatedAt:      now,
			}

			return domainerrors.FromRepository(userRepo.Create(ctx, user), nil, "create google user")
		case err != nil:
			return domainerrors.FromRepository(err, nil, "find google user")
		}

		if !found.IsActive {
			return domainerrors.ErrAccountDeactivated
		}

		found.GoogleID = googleUser.ID
		if found.HasPassword() {
			found.AuthProvider = entity.AuthProviderBoth
		} else {
			found.AuthProvider = entity.AuthProviderGoogle
		}
		if found.ProfilePicture == "" {
			found.ProfilePicture = googleUser.AvatarURL
		}
		found.LastLoginAt = &now
		found.UpdatedAt = now
		user = found

		return domainerrors.FromRepository(userRepo.Update(ctx, found), nil, "link google account")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to login with google")
	}

	return srv.issue(user)
}

// ForgotPassword stores a new reset code and sends it to the user's devices.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return domainerrors.FromRepository(err, nil, "find user by email")
		}

		resetRepo := repoFactory.PasswordResetRepo()
		if err := resetRepo.InvalidateUnused(ctx, found.ID); err != nil {
			return domainerrors.FromRepository(err, nil, "invalidate reset codes")
		}

		now := srv.now()
		reset := &entity.PasswordReset{
			ID:        uuid.New(),
			UserID:    found.ID,
			Email:     email,
			OTP:       otp,
			ExpiresAt: now.Add(srv.resetTTL),
			CreatedAt: now,
		}
		if err := resetRepo.Create(ctx, reset); err != nil {
			return domainerrors.FromRepository(err, nil, "create reset code")
		}
		user = found

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to issue password reset")
	}

	if user == nil {
		srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))

		return nil
	}

	srv.notifier.notify(ctx, entity.NotificationPasswordReset, []uuid.UUID{user.ID},
		"Password reset code",
		"Your password reset code is "+otp+". It expires in "+srv.resetTTL.String()+".",
		map[string]string{"otp": otp},
	)

	return nil
}

// ResetPassword checks the latest code for email and sets a new password.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	email := normalizeEmail(input.Email)

	// Rejections still persist the attempt counter, so they are reported after commit.
	var rejection error
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.PasswordResetRepo()

		reset, err := resetRepo.FindLatestUnused(ctx, email)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrOTPInvalid, "find reset code")
		}

		now := srv.now()
		switch {
		case reset.IsExpired(now):
			reset.Used = true
			reset.UsedAt = &now
			rejection = domainerrors.ErrOTPExpired
		case !otpMatches(reset.OTP, input.OTP):
			reset.Attempts++
			if reset.Attempts >= maxResetAttempts {
				reset.Used = true
				reset.UsedAt = &now
			}
			rejection = domainerrors.ErrOTPInvalid
		}
		if rejection != nil {
			return domainerrors.FromRepository(resetRepo.Update(ctx, reset), nil, "update reset code")
		}

		userRepo := repoFactory.UserRepo()
		user, err := userRepo.FindByID(ctx, reset.UserID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user.PasswordHash = hash
		user.MustChangePassword = false
		if user.GoogleID != "" {
			user.AuthProvider = entity.AuthProviderBoth
		} else {
			user.AuthProvider = entity.AuthProviderLocal
		}
		user.UpdatedAt = now
		if err := userRepo.Update(ctx, user); err != nil {
			return domainerrors.FromRepository(err, nil, "update password")
		}

		reset.Used = true
		reset.UsedAt = &now

		return domainerrors.FromRepository(resetRepo.Update(ctx, reset), nil, "consume reset code")
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	return rejection
}

// ForcePassword replaces the password after verifying the current one.
func (srv *authService) ForcePassword(ctx context.Context, userID uuid.UUID, input usecase.ForcePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}
		if !user.HasPassword() {
			return domainerrors.ErrPasswordNotSet
		}
		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WithMessage("Current password is incorrect")
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user.PasswordHash = hash
		user.MustChangePassword = false
		user.UpdatedAt = srv.now()

		return domainerrors.FromRepository(userRepo.Update(ctx, user), nil, "update password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// Me returns the signed-in user.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	return user, nil
}

// Authenticate resolves the active user behind token.
func (srv *authService) Authenticate(ctx context.Context, token string) (*usecase.Actor, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.Me(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WithDetails("user no longer exists")
		}

		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	return usecase.ActorFromUser(user), nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:           token,
		User:            user,
		NeedsStoreSetup: user.NeedsStoreSetup(),
	}, nil
}
