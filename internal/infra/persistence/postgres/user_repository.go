// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByGoogleID retrieves the user linked to a Google account.
func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("google_id = ?", googleID).First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user by google id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies generated values back to the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := updateAll(repo.db.WithContext(ctx), userM, "failed to update user"); err != nil {
		return err
	}
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// List returns users matching filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Module != "" {
		query = query.Where("assigned_module = ?", string(filter.Module))
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	rows, total, err := findPage[model.UserModel](query, page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	return mapAll(rows, toUserDomain), total, nil
}

// CountByRole counts users holding role.
func (repo *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

// passwordResetRepository stores forgot-password codes.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)
	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		return translateWriteError(err, "failed to create password reset")
	}
	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindLatestUnused(ctx context.Context, email string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel
	if err := repo.db.WithContext(ctx).
		Where("email = ? AND used = ?", strings.ToLower(email), false).
		Order("created_at DESC").
		First(&resetM).Error; err != nil {
		return nil, translateReadError(err, "failed to find password reset")
	}

	return toPasswordResetDomain(&resetM), nil
}

func (repo *passwordResetRepository) Update(ctx context.Context, reset *entity.PasswordReset) error {
	return updateAll(repo.db.WithContext(ctx), fromPasswordResetDomain(reset), "failed to update password reset")
}

func (repo *passwordResetRepository) InvalidateUnused(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("user_id = ? AND used = ?", userID, false).
		Update("used", true).Error; err != nil {
		return errors.Wrap(err, "failed to invalidate password resets")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		AuthProvider:       entity.AuthProvider(data.AuthProvider),
		ProfilePicture:     data.ProfilePicture,
		Address:            data.Address,
		Role:               data.Role,
		Module:             entity.Module(data.AssignedModule),
		StoreID:            data.StoreID,
		StoreName:          data.StoreName,
		SupervisorID:       data.SupervisorID,
		IsActive:           data.IsActive,
		MustChangePassword: data.MustChangePassword,
		LastLoginAt:        data.LastLoginAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if data.GoogleID != nil {
		user.GoogleID = *data.GoogleID
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              strings.ToLower(strings.TrimSpace(data.Email)),
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		AuthProvider:       string(data.AuthProvider),
		ProfilePicture:     data.ProfilePicture,
		Address:            data.Address,
		Role:               data.Role,
		AssignedModule:     string(data.Module),
		StoreID:            data.StoreID,
		StoreName:          data.StoreName,
		SupervisorID:       data.SupervisorID,
		IsActive:           data.IsActive,
		MustChangePassword: data.MustChangePassword,
		LastLoginAt:        data.LastLoginAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	// NULL keeps the unique index from colliding on accounts without Google.
	if data.GoogleID != "" {
		googleID := data.GoogleID
		userM.GoogleID = &googleID
	}

	return userM
}

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		OTP:       data.OTP,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		UsedAt:    data.UsedAt,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	return &model.PasswordResetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     strings.ToLower(data.Email),
		OTP:       data.OTP,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		UsedAt:    data.UsedAt,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
	}
}
