package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicineModel mirrors the 'medicines' table. Name and batch number are unique together.
type MedicineModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_medicine_batch"`
	Description          string    `gorm:"type:text"`
	Category             string    `gorm:"type:varchar(50);not null;index"`
	Price                float64   `gorm:"type:numeric(10,2);not null"`
	CostPrice            float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Dosage               string    `gorm:"type:varchar(100)"`
	Manufacturer         string    `gorm:"type:varchar(150)"`
	ExpiryDate           *time.Time
	BatchNumber          string                      `gorm:"type:varchar(64);uniqueIndex:idx_medicine_batch"`
	RequiresPrescription bool                        `gorm:"not null"`
	PetTypes             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StockCurrent         int                         `gorm:"not null;default:0"`
	StockReorderLevel    int                         `gorm:"not null;default:10"`
	StoreID              string                      `gorm:"type:varchar(64);index"`
	IsActive             bool                        `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}

// PrescriptionModel mirrors the 'prescriptions' table.
type PrescriptionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	MedicineID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	PetID       *uuid.UUID `gorm:"type:uuid"`
	DocumentURL string     `gorm:"type:text;not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	ReviewNotes string     `gorm:"type:text"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}

// PharmacyOrderModel mirrors the 'pharmacy_orders' table.
type PharmacyOrderModel struct {
	ID              uuid.UUID                                     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber     string                                        `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID          uuid.UUID                                     `gorm:"type:uuid;not null;index"`
	Items           datatypes.JSONSlice[entity.PharmacyOrderItem] `gorm:"type:jsonb;not null"`
	Total           float64                                       `gorm:"type:numeric(10,2);not null"`
	Status          string                                        `gorm:"type:varchar(20);not null;index"`
	PrescriptionID  *uuid.UUID                                    `gorm:"type:uuid"`
	ShippingAddress *entity.Address                               `gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PharmacyOrderModel) TableName() string {
	return "pharmacy_orders"
}
