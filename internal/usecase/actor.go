// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Role    string
	Module  entity.Module
	StoreID string
}

// ActorFromUser builds an Actor from a loaded user.
func ActorFromUser(user *entity.User) *Actor {
	return &Actor{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Module:  user.Module,
		StoreID: user.StoreID,
	}
}

// IsSuperAdmin reports whether the actor holds the super_admin role.
func (a *Actor) IsSuperAdmin() bool {
	return a != nil && a.Role == entity.RoleSuperAdmin
}

// IsModuleAdmin reports whether the actor administers module.
func (a *Actor) IsModuleAdmin(module entity.Module) bool {
	return a != nil && a.Role == entity.ModuleRoleName(module, entity.StaffAdmin)
}

// StoreScope is the store a manager's listings are limited to.
// Super admins and module admins see every store.
func (a *Actor) StoreScope(module entity.Module) string {
	if a == nil || a.IsSuperAdmin() || a.IsModuleAdmin(module) {
		return ""
	}

	return a.StoreID
}

// CanAccessStore reports whether the actor may act on records of storeID.
func (a *Actor) CanAccessStore(module entity.Module, storeID string) bool {
	scope := a.StoreScope(module)

	return scope == "" || storeID == "" || scope == storeID
}
