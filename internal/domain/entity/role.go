// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// RoleSuperAdmin bypasses every permission check.
	RoleSuperAdmin = "super_admin"
	// RolePublicUser is assigned on self-registration.
	RolePublicUser = "public_user"
)

// StaffKind is the suffix of a module-scoped role name.
type StaffKind string

const (
	StaffAdmin   StaffKind = "admin"
	StaffManager StaffKind = "manager"
	StaffWorker  StaffKind = "worker"
)

// ModuleRoleName builds role names like "adoption_manager" or "temporary-care_admin".
func ModuleRoleName(m Module, kind StaffKind) string {
	return string(m) + "_" + string(kind)
}

// ParseModuleRole splits a module-scoped role name into its module and kind.
func ParseModuleRole(role string) (Module, StaffKind, bool) {
	idx := strings.LastIndex(role, "_")
	if idx <= 0 || idx == len(role)-1 {
		return "", "", false
	}

	kind := StaffKind(role[idx+1:])
	switch kind {
	case StaffAdmin, StaffManager, StaffWorker:
	default:
		return "", "", false
	}

	module := Module(role[:idx])
	if !module.IsAssignable() {
		return "", "", false
	}

	return module, kind, true
}

// Permission actions.
const (
	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionManage  = "manage"
	ActionApprove = "approve"
	ActionAssign  = "assign"
)

// Actions lists every action accepted in roles and permissions.
var Actions = []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage, ActionApprove, ActionAssign}

// IsValidAction reports whether action is one of Actions.
func IsValidAction(action string) bool {
	return slices.Contains(Actions, action)
}

const (
	MinRoleLevel = 1
	MaxRoleLevel = 10
)

// ModulePermission grants a set of actions on one module.
type ModulePermission struct {
	Module  Module   `json:"module"`
	Actions []string `json:"actions"`
}

// Role is a named bundle of module permissions assigned to users by name.
type Role struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	DisplayName  string             `json:"displayName"`
	Description  string             `json:"description,omitempty"`
	Level        int                `json:"level"`
	Permissions  []ModulePermission `json:"permissions"`
	IsSystemRole bool               `json:"isSystemRole"`
	IsActive     bool               `json:"isActive"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// HasPermission reports whether the role grants action on module.
// The manage action implies every other action on the same module.
func (r *Role) HasPermission(module Module, action string) bool {
	if r == nil || !r.IsActive {
		return false
	}
	if r.Name == RoleSuperAdmin {
		return true
	}

	for _, perm := range r.Permissions {
		if perm.Module != module {
			continue
		}
		if slices.Contains(perm.Actions, ActionManage) || slices.Contains(perm.Actions, action) {
			return true
		}
	}

	return false
}

// AddModuleActions merges actions into the module's grant, creating it if needed.
func (r *Role) AddModuleActions(module Module, actions []string) {
	for idx := range r.Permissions {
		if r.Permissions[idx].Module != module {
			continue
		}
		for _, action := range actions {
			if !slices.Contains(r.Permissions[idx].Actions, action) {
				r.Permissions[idx].Actions = append(r.Permissions[idx].Actions, action)
			}
		}

		return
	}

	r.Permissions = append(r.Permissions, ModulePermission{Module: module, Actions: slices.Clone(actions)})
}

// RemoveModule drops every grant on module. It reports whether anything was removed.
func (r *Role) RemoveModule(module Module) bool {
	before := len(r.Permissions)
	r.Permissions = slices.DeleteFunc(r.Permissions, func(p ModulePermission) bool {
		return p.Module == module
	})

	return len(r.Permissions) != before
}

// SystemRoles returns the roles seeded on first start.
func SystemRoles() []*Role {
	roles := []*Role{
		{
			Name:         RoleSuperAdmin,
			DisplayName:  "Super Admin",
			Description:  "Full access to every module",
			Level:        MaxRoleLevel,
			IsSystemRole: true,
			IsActive:     true,
		},
		{
			Name:        RolePublicUser,
			DisplayName: "Public User",
			Description: "Registered pet owner",
			Level:       MinRoleLevel,
			Permissions: []ModulePermission{
				{Module: ModuleAdoption, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModuleEcommerce, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModulePharmacy, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModuleVeterinary, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModuleRescue, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModuleTemporaryCare, Actions: []string{ActionRead, ActionCreate}},
				{Module: ModulePetShop, Actions: []string{ActionRead, ActionCreate}},
			},
			IsSystemRole: true,
			IsActive:     true,
		},
	}

	for _, m := range AssignableModules {
		display := m.DisplayName()
		roles = append(roles,
			&Role{
				Name:         ModuleRoleName(m, StaffAdmin),
				DisplayName:  display + " Admin",
				Level:        8,
				Permissions:  []ModulePermission{{Module: m, Actions: []string{ActionManage}}},
				IsSystemRole: true,
				IsActive:     true,
			},
			&Role{
				Name:         ModuleRoleName(m, StaffManager),
				DisplayName:  display + " Manager",
				Level:        6,
				Permissions:  []ModulePermission{{Module: m, Actions: []string{ActionManage}}},
				IsSystemRole: true,
				IsActive:     true,
			},
			&Role{
				Name:         ModuleRoleName(m, StaffWorker),
				DisplayName:  display + " Worker",
				Level:        3,
				Permissions:  []ModulePermission{{Module: m, Actions: []string{ActionRead, ActionUpdate}}},
				IsSystemRole: true,
				IsActive:     true,
			},
		)
	}

	return roles
}
