package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string          `gorm:"type:varchar(100);not null"`
	Email              string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone              string          `gorm:"type:varchar(20)"`
	PasswordHash       string          `gorm:"type:varchar(255)"`
	GoogleID           *string         `gorm:"type:varchar(255);uniqueIndex"`
	AuthProvider       string          `gorm:"type:varchar(20);not null;default:'local'"`
	ProfilePicture     string          `gorm:"type:text"`
	Address            *entity.Address `gorm:"type:jsonb;serializer:json"`
	Role               string          `gorm:"type:varchar(64);not null;index"`
	AssignedModule     string          `gorm:"type:varchar(32);index"`
	StoreID            string          `gorm:"type:varchar(64);index"`
	StoreName          string          `gorm:"type:varchar(150)"`
	SupervisorID       *uuid.UUID      `gorm:"type:uuid"`
	IsActive           bool            `gorm:"not null"`
	MustChangePassword bool            `gorm:"not null"`
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PasswordResetModel mirrors the 'password_resets' table.
type PasswordResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	OTP       string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null"`
	UsedAt    *time.Time
	Attempts  int `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
