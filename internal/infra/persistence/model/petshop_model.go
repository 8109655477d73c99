package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShopInventoryModel mirrors the 'petshop_inventory' table.
type ShopInventoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetCode       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Species       string    `gorm:"type:varchar(50);not null;index"`
	Breed         string    `gorm:"type:varchar(100)"`
	Gender        string    `gorm:"type:varchar(10)"`
	AgeMonths     int
	Color         string                      `gorm:"type:varchar(50)"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"type:numeric(10,2);not null"`
	DiscountPrice float64                     `gorm:"type:numeric(10,2);not null;default:0"`
	Status        string                      `gorm:"type:varchar(20);not null;index"`
	StoreID       string                      `gorm:"type:varchar(64);not null;index"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	BuyerID       *uuid.UUID                  `gorm:"type:uuid"`
	SoldAt        *time.Time
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ShopInventoryModel) TableName() string {
	return "petshop_inventory"
}

// PetReservationModel mirrors the 'petshop_reservations' table. Contact, handover and
// payment details are embedded documents.
type PetReservationModel struct {
	ID              uuid.UUID                              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReservationCode string                                 `gorm:"type:varchar(32);uniqueIndex;not null"`
	ItemID          uuid.UUID                              `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID                              `gorm:"type:uuid;not null;index"`
	StoreID         string                                 `gorm:"type:varchar(64);not null;index"`
	ContactInfo     datatypes.JSONType[entity.ContactInfo] `gorm:"type:jsonb"`
	Notes           string                                 `gorm:"type:text"`
	Status          string                                 `gorm:"type:varchar(20);not null;index"`
	RejectionReason string                                 `gorm:"type:text"`
	Handover        datatypes.JSONType[entity.Handover]    `gorm:"type:jsonb"`
	Payment         *entity.ReservationPayment             `gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetReservationModel) TableName() string {
	return "petshop_reservations"
}
