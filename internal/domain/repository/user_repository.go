// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves the user linked to a Google account.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List returns users matching filter, newest first.
	List(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) ([]*entity.User, int64, error)

	// CountByRole counts users holding role.
	CountByRole(ctx context.Context, role string) (int64, error)
}

// PasswordResetRepository stores forgot-password OTPs.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindLatestUnused returns the newest unused code issued to email.
	FindLatestUnused(ctx context.Context, email string) (*entity.PasswordReset, error)

	Update(ctx context.Context, reset *entity.PasswordReset) error

	// InvalidateUnused marks every unused code of userID as used.
	InvalidateUnused(ctx context.Context, userID uuid.UUID) error
}
