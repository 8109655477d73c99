package impl

import (
	"context"
	"testing"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
	fx.service = NewProfileService(fx.txManager, newDiscardLogger())
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Jane"}, nil)

		user, err := fx.service.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.GetProfile(ctx, userID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies only provided fields", func(t *testing.T) {
		fx := createTestProfileService(t)
		user := &entity.User{ID: userID, Name: "Jane", Phone: "111"}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		name := " Janet "
		address := &entity.Address{City: "Pune"}
		updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name, Address: address})
		require.NoError(t, err)
		assert.Equal(t, "Janet", updated.Name)
		assert.Equal(t, "111", updated.Phone)
		assert.Equal(t, "Pune", updated.Address.City)
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		blank := "  "
		_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &blank})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
