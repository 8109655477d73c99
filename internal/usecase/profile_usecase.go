package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput carries the fields a user may change on their own account.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name           *string
	Phone          *string
	ProfilePicture *string
	Address        *entity.Address
}
