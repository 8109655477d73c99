package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	resetRepo    *mockRepo.MockPasswordResetRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	googleAuth   *mockSvc.MockOAuthAuthService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		resetRepo:    mockRepo.NewMockPasswordResetRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		googleAuth:   mockSvc.NewMockOAuthAuthService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:         fx.txManager,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.googleAuth,
		Publisher:         fx.publisher,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	}).(*authService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().PasswordResetRepo().Return(fx.resetRepo).Maybe()

	return fx
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates public user and issues token", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
		fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrNotFound)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("*entity.User")).Return("jwt", nil)

		out, err := fx.service.Register(ctx, usecase.RegisterInput{
			Name:     "Jane",
			Email:    "  Jane@Example.com ",
			Password: "Secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, "jane@example.com", out.User.Email)
		assert.Equal(t, entity.RolePublicUser, out.User.Role)
		assert.Equal(t, entity.AuthProviderLocal, out.User.AuthProvider)
		assert.True(t, out.User.IsActive)
		assert.False(t, out.NeedsStoreSetup)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&entity.User{}, nil)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "jane@example.com", Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("weak password never reaches the database", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.hasher.EXPECT().ValidatePasswordStrength("abc").Return(domainerrors.ErrPasswordStrength)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "jane@example.com", Password: "abc"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *entity.User
		findErr error
		checkOK bool
		wantErr error
	}{
		{
			name:    "unknown email",
			findErr: repository.ErrNotFound,
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:    "deactivated",
			user:    &entity.User{ID: uuid.New(), PasswordHash: "h", IsActive: false},
			wantErr: domainerrors.ErrAccountDeactivated,
		},
		{
			name:    "google only account",
			user:    &entity.User{ID: uuid.New(), IsActive: true, AuthProvider: entity.AuthProviderGoogle},
			wantErr: domainerrors.ErrPasswordNotSet,
		},
		{
			name:    "wrong password",
			user:    &entity.User{ID: uuid.New(), PasswordHash: "h", IsActive: true},
			checkOK: false,
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			expectTx(fx.txManager, fx.factory)

			fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(tc.user, tc.findErr)
			if tc.user != nil && tc.user.IsActive && tc.user.PasswordHash != "" {
				fx.hasher.EXPECT().Check("pw", "h").Return(tc.checkOK)
			}

			_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@b.c", Password: "pw"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("success flags store setup for managers", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		user := &entity.User{ID: uuid.New(), PasswordHash: "h", IsActive: true, Role: "petshop_manager"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(user, nil)
		fx.hasher.EXPECT().Check("pw", "h").Return(true)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.tokenService.EXPECT().GenerateToken(user).Return("jwt", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "A@B.C", Password: "pw"})
		require.NoError(t, err)
		assert.True(t, out.NeedsStoreSetup)
		require.NotNil(t, user.LastLoginAt)
		assert.Equal(t, fixedNow, *user.LastLoginAt)
	})
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	googleUser := &service.OAuthUser{ID: "g-1", Email: "g@example.com", Name: "G", AvatarURL: "https://img", EmailVerified: true}

	t.Run("links existing local account as both", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		existing := &entity.User{ID: uuid.New(), Email: "g@example.com", PasswordHash: "h", IsActive: true, AuthProvider: entity.AuthProviderLocal}
		fx.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser, nil)
		fx.userRepo.EXPECT().FindByGoogleID(ctx, "g-1").Return(nil, repository.ErrNotFound)
		fx.userRepo.EXPECT().FindByEmail(ctx, "g@example.com").Return(existing, nil)
		fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)
		fx.tokenService.EXPECT().GenerateToken(existing).Return("jwt", nil)

		out, err := fx.service.LoginWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, entity.AuthProviderBoth, out.User.AuthProvider)
		assert.Equal(t, "g-1", out.User.GoogleID)
		assert.Equal(t, "https://img", out.User.ProfilePicture)
	})

	t.Run("creates a google account", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser, nil)
		fx.userRepo.EXPECT().FindByGoogleID(ctx, "g-1").Return(nil, repository.ErrNotFound)
		fx.userRepo.EXPECT().FindByEmail(ctx, "g@example.com").Return(nil, repository.ErrNotFound)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("*entity.User")).Return("jwt", nil)

		out, err := fx.service.LoginWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, entity.AuthProviderGoogle, out.User.AuthProvider)
		assert.Equal(t, entity.RolePublicUser, out.User.Role)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrOAuthTokenInvalid)

		_, err := fx.service.LoginWithGoogle(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates old codes and notifies", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		user := &entity.User{ID: uuid.New(), Email: "a@b.c"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(user, nil)
		fx.resetRepo.EXPECT().InvalidateUnused(ctx, user.ID).Return(nil)

		var created *entity.PasswordReset
		fx.resetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PasswordReset")).
			Run(func(_ context.Context, reset *entity.PasswordReset) { created = reset }).
			Return(nil)

		var published *service.NotificationEvent
		fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
			Run(func(_ context.Context, event *service.NotificationEvent) { published = event }).
			Return(nil)

		require.NoError(t, fx.service.ForgotPassword(ctx, "a@b.c"))
		require.NotNil(t, created)
		assert.Len(t, created.OTP, 6)
		assert.Equal(t, fixedNow.Add(10*time.Minute), created.ExpiresAt)
		require.NotNil(t, published)
		assert.Equal(t, entity.NotificationPasswordReset, published.Kind)
		assert.Equal(t, []string{user.ID.String()}, published.UserIDs)
		assert.Equal(t, created.OTP, published.Data["otp"])
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.userRepo.EXPECT().FindByEmail(ctx, "x@b.c").Return(nil, repository.ErrNotFound)

		assert.NoError(t, fx.service.ForgotPassword(ctx, "x@b.c"))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	input := usecase.ResetPasswordInput{Email: "a@b.c", OTP: "123456", Password: "NewPass1", ConfirmPassword: "NewPass1"}

	t.Run("mismatched confirmation", func(t *testing.T) {
		fx := createTestAuthService(t)

		bad := input
		bad.ConfirmPassword = "other"
		assert.ErrorIs(t, fx.service.ResetPassword(ctx, bad), domainerrors.ErrPasswordMismatch)
	})

	t.Run("wrong code counts an attempt", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		reset := &entity.PasswordReset{OTP: "654321", ExpiresAt: fixedNow.Add(time.Minute)}
		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass1").Return(nil)
		fx.resetRepo.EXPECT().FindLatestUnused(ctx, "a@b.c").Return(reset, nil)
		fx.resetRepo.EXPECT().Update(ctx, reset).Return(nil)

		err := fx.service.ResetPassword(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
		assert.Equal(t, 1, reset.Attempts)
		assert.False(t, reset.Used)
	})

	t.Run("expired code is consumed", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		reset := &entity.PasswordReset{OTP: "123456", ExpiresAt: fixedNow.Add(-time.Second)}
		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass1").Return(nil)
		fx.resetRepo.EXPECT().FindLatestUnused(ctx, "a@b.c").Return(reset, nil)
		fx.resetRepo.EXPECT().Update(ctx, reset).Return(nil)

		err := fx.service.ResetPassword(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
		assert.True(t, reset.Used)
	})

	t.Run("success sets password and provider", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		user := &entity.User{ID: uuid.New(), GoogleID: "g-1", AuthProvider: entity.AuthProviderGoogle, MustChangePassword: true}
		reset := &entity.PasswordReset{UserID: user.ID, OTP: "123456", ExpiresAt: fixedNow.Add(time.Minute)}
		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass1").Return(nil)
		fx.resetRepo.EXPECT().FindLatestUnused(ctx, "a@b.c").Return(reset, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Hash("NewPass1").Return("new-hash", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.resetRepo.EXPECT().Update(ctx, reset).Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, input))
		assert.Equal(t, "new-hash", user.PasswordHash)
		assert.Equal(t, entity.AuthProviderBoth, user.AuthProvider)
		assert.False(t, user.MustChangePassword)
		assert.True(t, reset.Used)
	})

	t.Run("no code issued", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass1").Return(nil)
		fx.resetRepo.EXPECT().FindLatestUnused(ctx, "a@b.c").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, fx.service.ResetPassword(ctx, input), domainerrors.ErrOTPInvalid)
	})
}

func TestAuthService_ForcePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	fx := createTestAuthService(t)
	expectTx(fx.txManager, fx.factory)

	user := &entity.User{ID: userID, PasswordHash: "old", MustChangePassword: true}
	fx.hasher.EXPECT().ValidatePasswordStrength("Next1234").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("Current1", "old").Return(true)
	fx.hasher.EXPECT().Hash("Next1234").Return("new", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := fx.service.ForcePassword(ctx, userID, usecase.ForcePasswordInput{
		CurrentPassword: "Current1",
		NewPassword:     "Next1234",
		ConfirmPassword: "Next1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", user.PasswordHash)
	assert.False(t, user.MustChangePassword)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("active user", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: "shelter_manager", StoreID: "s1", IsActive: true}, nil)

		actor, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, "s1", actor.StoreID)
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(fx.txManager, fx.factory)

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("bad token", func(t *testing.T) {
		fx := createTestAuthService(t)

		tokenErr := errors.New("token is malformed")
		fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, tokenErr)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, tokenErr)
	})
}
