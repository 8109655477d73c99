package postgres

import (
	"context"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)
	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		return translateWriteError(err, "failed to create role")
	}
	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roleM).Error; err != nil {
		return nil, translateReadError(err, "failed to find role by id")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&roleM).Error; err != nil {
		return nil, translateReadError(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	return updateAll(repo.db.WithContext(ctx), fromRoleDomain(role), "failed to update role")
}

func (repo *roleRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Role, error) {
	query := repo.db.WithContext(ctx).Order("level DESC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []*model.RoleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return mapAll(rows, toRoleDomain), nil
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

func (repo *permissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	permM := fromPermissionDomain(permission)
	if err := repo.db.WithContext(ctx).Create(permM).Error; err != nil {
		return translateWriteError(err, "failed to create permission")
	}
	permission.ID = permM.ID
	permission.CreatedAt = permM.CreatedAt
	permission.UpdatedAt = permM.UpdatedAt

	return nil
}

func (repo *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	var permM model.PermissionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&permM).Error; err != nil {
		return nil, translateReadError(err, "failed to find permission by id")
	}

	return toPermissionDomain(&permM), nil
}

func (repo *permissionRepository) FindByName(ctx context.Context, name string) (*entity.Permission, error) {
	var permM model.PermissionModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&permM).Error; err != nil {
		return nil, translateReadError(err, "failed to find permission by name")
	}

	return toPermissionDomain(&permM), nil
}

func (repo *permissionRepository) FindActiveFor(ctx context.Context, module entity.Module, action, resource string) ([]*entity.Permission, error) {
	query := repo.db.WithContext(ctx).
		Where("module = ? AND action = ? AND is_active = ?", string(module), action, true)
	if resource != "" {
		query = query.Where("resource = ?", resource)
	}

	var rows []*model.PermissionModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active permissions")
	}

	return mapAll(rows, toPermissionDomain), nil
}

func (repo *permissionRepository) List(ctx context.Context, filter entity.PermissionFilter) ([]*entity.Permission, error) {
	query := repo.db.WithContext(ctx)
	if filter.Module != "" {
		query = query.Where("module = ?", string(filter.Module))
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var rows []*model.PermissionModel
	if err := query.Order("module ASC, action ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	return mapAll(rows, toPermissionDomain), nil
}

func (repo *permissionRepository) Update(ctx context.Context, permission *entity.Permission) error {
	return updateAll(repo.db.WithContext(ctx), fromPermissionDomain(permission), "failed to update permission")
}

func (repo *permissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PermissionModel{}),
		"failed to delete permission",
	)
}

// --- Mapper Functions ---

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:           data.ID,
		Name:         data.Name,
		DisplayName:  data.DisplayName,
		Description:  data.Description,
		Level:        data.Level,
		Permissions:  []entity.ModulePermission(data.Permissions),
		IsSystemRole: data.IsSystemRole,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRoleDomain(data *entity.Role) *model.RoleModel {
	perms := data.Permissions
	if perms == nil {
		perms = []entity.ModulePermission{}
	}

	return &model.RoleModel{
		ID:           data.ID,
		Name:         data.Name,
		DisplayName:  data.DisplayName,
		Description:  data.Description,
		Level:        data.Level,
		Permissions:  perms,
		IsSystemRole: data.IsSystemRole,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toPermissionDomain(data *model.PermissionModel) *entity.Permission {
	return &entity.Permission{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
		Module:      entity.Module(data.Module),
		Action:      data.Action,
		Resource:    data.Resource,
		Conditions:  []entity.Condition(data.Conditions),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPermissionDomain(data *entity.Permission) *model.PermissionModel {
	return &model.PermissionModel{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
		Module:      string(data.Module),
		Action:      data.Action,
		Resource:    data.Resource,
		Conditions:  data.Conditions,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
