package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleInput creates or replaces a custom role.
type RoleInput struct {
	Name        string
	DisplayName string
	Description string
	Level       int
	Permissions []entity.ModulePermission
}

// RoleSummary is a role together with the number of users holding it.
type RoleSummary struct {
	*entity.Role
	AssignedUsers int64 `json:"assignedUsers"`
}

// RoleUsecase manages roles and their module grants.
type RoleUsecase interface {
	ListRoles(ctx context.Context, activeOnly bool) ([]*RoleSummary, error)
	GetRole(ctx context.Context, id uuid.UUID) (*RoleSummary, error)
	CreateRole(ctx context.Context, input RoleInput) (*entity.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, input RoleInput) (*entity.Role, error)
	DeactivateRole(ctx context.Context, id uuid.UUID) error
	AddModuleActions(ctx context.Context, id uuid.UUID, module entity.Module, actions []string) (*entity.Role, error)
	RemoveModule(ctx context.Context, id uuid.UUID, module entity.Module) (*entity.Role, error)

	// InitializeDefaults seeds missing system roles and returns how many were created.
	InitializeDefaults(ctx context.Context) (int, error)
}

// PermissionInput creates a permission document.
type PermissionInput struct {
	Name        string
	DisplayName string
	Description string
	Module      entity.Module
	Action      string
	Resource    string
	Conditions  []entity.Condition
	IsActive    *bool
}

// PermissionUpdate changes a permission document. Nil fields are kept.
type PermissionUpdate struct {
	DisplayName *string
	Description *string
	Resource    *string
	Conditions  *[]entity.Condition
	IsActive    *bool
}

// PermissionCheck asks whether the actor may perform action on module.
type PermissionCheck struct {
	Module     entity.Module
	Action     string
	Resource   string
	Attributes map[string]any
}

// PermissionDecision explains a permission check.
type PermissionDecision struct {
	Allowed             bool     `json:"hasPermission"`
	Module              string   `json:"module"`
	Action              string   `json:"action"`
	Resource            string   `json:"resource,omitempty"`
	Reason              string   `json:"reason,omitempty"`
	EvaluatedPermission []string `json:"evaluatedPermissions,omitempty"`
}

// ModuleOption is a module key with its display name.
type ModuleOption struct {
	Key  entity.Module `json:"key"`
	Name string        `json:"name"`
}

// PermissionUsecase manages permission documents and evaluates access.
type PermissionUsecase interface {
	ListPermissions(ctx context.Context, filter entity.PermissionFilter) ([]*entity.Permission, error)
	GetPermission(ctx context.Context, id uuid.UUID) (*entity.Permission, error)
	CreatePermission(ctx context.Context, input PermissionInput) (*entity.Permission, error)
	UpdatePermission(ctx context.Context, id uuid.UUID, input PermissionUpdate) (*entity.Permission, error)
	DeletePermission(ctx context.Context, id uuid.UUID) error
	ListModules() []ModuleOption
	ListActions() []string

	CheckPermission(ctx context.Context, actor *Actor, check PermissionCheck) (*PermissionDecision, error)
}

// StaffInput creates or promotes a module admin or staff member.
// Password is only used when the email is not registered yet.
type StaffInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Module    string
	Kind      entity.StaffKind
	StoreID   string
	StoreName string
}

// StaffOutput reports whether an existing account was promoted.
type StaffOutput struct {
	User    *entity.User `json:"user"`
	Created bool         `json:"created"`
}

// UserAdminUsecase lets administrators manage accounts.
type UserAdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	AssignRole(ctx context.Context, actor *Actor, userID uuid.UUID, roleName string) (*entity.User, error)
	SetUserActive(ctx context.Context, actor *Actor, userID uuid.UUID, active bool) (*entity.User, error)

	// CreateModuleAdmin makes the account an admin of input.Module. Super admin only.
	CreateModuleAdmin(ctx context.Context, actor *Actor, input StaffInput) (*StaffOutput, error)

	// CreateModuleStaff adds a manager or worker; the actor becomes their supervisor.
	CreateModuleStaff(ctx context.Context, actor *Actor, input StaffInput) (*StaffOutput, error)
}
