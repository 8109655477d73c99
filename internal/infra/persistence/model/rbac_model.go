package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoleModel mirrors the 'roles' table. Module grants are stored as a JSONB array.
type RoleModel struct {
	ID           uuid.UUID                                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string                                       `gorm:"type:varchar(64);uniqueIndex;not null"`
	DisplayName  string                                       `gorm:"type:varchar(100);not null"`
	Description  string                                       `gorm:"type:text"`
	Level        int                                          `gorm:"not null;default:1"`
	Permissions  datatypes.JSONSlice[entity.ModulePermission] `gorm:"type:jsonb;not null"`
	IsSystemRole bool                                         `gorm:"not null"`
	IsActive     bool                                         `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string                                `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName string                                `gorm:"type:varchar(150);not null"`
	Description string                                `gorm:"type:text"`
	Module      string                                `gorm:"type:varchar(32);not null;index:idx_permissions_module_action"`
	Action      string                                `gorm:"type:varchar(32);not null;index:idx_permissions_module_action"`
	Resource    string                                `gorm:"type:varchar(100)"`
	Conditions  datatypes.JSONSlice[entity.Condition] `gorm:"type:jsonb"`
	IsActive    bool                                  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}
