package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CareServiceModel mirrors the 'care_services' table.
type CareServiceModel struct {
	ID                uuid.UUID                                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string                                       `gorm:"type:varchar(100);not null"`
	Category          string                                       `gorm:"type:varchar(20);not null;index"`
	Description       string                                       `gorm:"type:text"`
	BasePrice         float64                                      `gorm:"type:numeric(10,2);not null"`
	PriceUnit         string                                       `gorm:"type:varchar(10);not null;default:'per_day'"`
	AdvancePercentage float64                                      `gorm:"not null;default:50"`
	AdditionalCharges datatypes.JSONSlice[entity.AdditionalCharge] `gorm:"type:jsonb"`
	StoreID           string                                       `gorm:"type:varchar(64);index"`
	IsActive          bool                                         `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareServiceModel) TableName() string {
	return "care_services"
}

// CareBookingModel mirrors the 'care_bookings' table.
type CareBookingModel struct {
	ID                  uuid.UUID                                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookingNumber       string                                       `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID              uuid.UUID                                    `gorm:"type:uuid;not null;index"`
	PetID               uuid.UUID                                    `gorm:"type:uuid;not null;index:idx_care_pet_dates"`
	PetName             string                                       `gorm:"type:varchar(100)"`
	ServiceID           *uuid.UUID                                   `gorm:"type:uuid"`
	ServiceCategory     string                                       `gorm:"type:varchar(20);not null;index"`
	StoreID             string                                       `gorm:"type:varchar(64);index"`
	StartDate           time.Time                                    `gorm:"not null;index:idx_care_pet_dates"`
	EndDate             time.Time                                    `gorm:"not null;index:idx_care_pet_dates"`
	Duration            datatypes.JSONType[entity.CareDuration]      `gorm:"type:jsonb"`
	Location            datatypes.JSONType[entity.CareLocation]      `gorm:"type:jsonb"`
	SpecialRequirements string                                       `gorm:"type:text"`
	Pricing             datatypes.JSONType[entity.CarePricing]       `gorm:"type:jsonb"`
	PaymentStatus       datatypes.JSONType[entity.CarePaymentStatus] `gorm:"type:jsonb"`
	Status              string                                       `gorm:"type:varchar(20);not null;index"`
	AssignedCaregivers  datatypes.JSONSlice[uuid.UUID]               `gorm:"type:jsonb"`
	Handover            datatypes.JSONType[entity.CareHandover]      `gorm:"type:jsonb"`
	ActivityLog         datatypes.JSONSlice[entity.CareActivity]     `gorm:"type:jsonb"`
	Cancellation        *entity.CareCancellation                     `gorm:"type:jsonb;serializer:json"`
	Review              *entity.CareReview                           `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareBookingModel) TableName() string {
	return "care_bookings"
}
