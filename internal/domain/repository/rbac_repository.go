package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleRepository persists roles and their module grants.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error

	// List returns roles ordered by level then name.
	List(ctx context.Context, activeOnly bool) ([]*entity.Role, error)
}

// PermissionRepository persists conditional permission documents.
type PermissionRepository interface {
	Create(ctx context.Context, permission *entity.Permission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error)
	FindByName(ctx context.Context, name string) (*entity.Permission, error)

	// FindActiveFor returns active permissions for module and action, optionally narrowed to resource.
	FindActiveFor(ctx context.Context, module entity.Module, action, resource string) ([]*entity.Permission, error)

	// List returns permissions ordered by module, action and name.
	List(ctx context.Context, filter entity.PermissionFilter) ([]*entity.Permission, error)
	Update(ctx context.Context, permission *entity.Permission) error
	Delete(ctx context.Context, id uuid.UUID) error
}
