// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the user's own account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.String("userID", userID.String()))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating user profile", slog.String("userID", userID.String()))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}

		// 2. Apply changes
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
			}
			foundUser.Name = name
		}
		if input.Phone != nil {
			foundUser.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.ProfilePicture != nil {
			foundUser.ProfilePicture = *input.ProfilePicture
		}
		if input.Address != nil {
			foundUser.Address = input.Address
		}
		foundUser.UpdatedAt = time.Now()

		// 3. Save
		if err := userRepo.Update(ctx, foundUser); err != nil {
			return domainerrors.FromRepository(err, nil, "update user profile")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}
