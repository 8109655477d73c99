package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petwelfare/config"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/errors"
	mockRepo "petwelfare/internal/mocks/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			TokenTTL:         time.Hour,
			PasswordResetTTL: 10 * time.Minute,
			HandoverOTPTTL:   24 * time.Hour,
			OTPHistoryLimit:  10,
		},
	}
}

// expectTx makes txManager run the callback against factory whenever a transaction is opened.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

func testActor(role string) *usecase.Actor {
	return &usecase.Actor{UserID: uuid.New(), Name: "Tester", Role: role}
}

// ownedPet registers a pet to owner and lets petRepo find it by ID.
func ownedPet(petRepo *mockRepo.MockPetRepository, owner *usecase.Actor) *entity.Pet {
	pet := &entity.Pet{
		ID:      uuid.New(),
		PetCode: "PET-20250101-0001",
		OwnerID: owner.UserID,
		Name:    "Milo",
		Species: "dog",
		Status:  entity.PetOwned,
	}
	petRepo.EXPECT().FindByID(mock.Anything, pet.ID).Return(pet, nil).Maybe()

	return pet
}

func mustAppError(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError in %v", err)

	return appErr
}
