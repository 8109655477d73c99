// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthProvider records how a user can sign in.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderBoth   AuthProvider = "both"
)

// User is an account on the platform. Role holds the name of the assigned Role.
type User struct {
	ID                 uuid.UUID    `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone,omitempty"`
	PasswordHash       string       `json:"-"`
	GoogleID           string       `json:"-"`
	AuthProvider       AuthProvider `json:"authProvider"`
	ProfilePicture     string       `json:"profilePicture,omitempty"`
	Address            *Address     `json:"address,omitempty"`
	Role               string       `json:"role"`
	Module             Module       `json:"assignedModule,omitempty"`
	StoreID            string       `json:"storeId,omitempty"`
	StoreName          string       `json:"storeName,omitempty"`
	SupervisorID       *uuid.UUID   `json:"supervisor,omitempty"`
	IsActive           bool         `json:"isActive"`
	MustChangePassword bool         `json:"mustChangePassword"`
	LastLoginAt        *time.Time   `json:"lastLogin,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// IsSuperAdmin reports whether the user holds the super_admin role.
func (u *User) IsSuperAdmin() bool {
	return u != nil && u.Role == RoleSuperAdmin
}

// HasPassword reports whether a local password has been set.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// NeedsStoreSetup is true for module managers that have not registered a store yet.
func (u *User) NeedsStoreSetup() bool {
	return strings.HasSuffix(u.Role, "_"+string(StaffManager)) && u.StoreID == ""
}

// ModuleAdminOf reports whether the user is the admin of module.
func (u *User) ModuleAdminOf(m Module) bool {
	return u.Role == ModuleRoleName(m, StaffAdmin)
}

// PasswordReset is a one-time code issued by the forgot-password flow.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string
	OTP       string
	ExpiresAt time.Time
	Used      bool
	UsedAt    *time.Time
	Attempts  int
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (p *PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
