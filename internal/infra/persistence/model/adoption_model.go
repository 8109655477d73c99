package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdoptionPetModel mirrors the 'adoption_pets' table.
type AdoptionPetModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Species         string    `gorm:"type:varchar(50);not null;index"`
	Breed           string    `gorm:"type:varchar(100)"`
	Age             int
	AgeUnit         string                      `gorm:"type:varchar(10);not null;default:'months'"`
	Gender          string                      `gorm:"type:varchar(10);index"`
	Color           string                      `gorm:"type:varchar(50)"`
	Size            string                      `gorm:"type:varchar(20);index"`
	Description     string                      `gorm:"type:text"`
	HealthStatus    string                      `gorm:"type:varchar(100)"`
	Vaccinations    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Images          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AdoptionFee     float64                     `gorm:"type:numeric(10,2);not null;default:0"`
	Status          string                      `gorm:"type:varchar(20);not null;index"`
	AdopterUserID   *uuid.UUID                  `gorm:"type:uuid"`
	ShelterAnimalID *uuid.UUID                  `gorm:"type:uuid"`
	CreatedBy       uuid.UUID                   `gorm:"type:uuid;not null"`
	IsActive        bool                        `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdoptionPetModel) TableName() string {
	return "adoption_pets"
}

// AdoptionApplicationModel mirrors the 'adoption_applications' table.
type AdoptionApplicationModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID                   `gorm:"type:uuid;not null;index"`
	PetID            uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ApplicationData  datatypes.JSONMap           `gorm:"type:jsonb"`
	Documents        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Status           string                      `gorm:"type:varchar(20);not null;index"`
	RejectionReason  string                      `gorm:"type:text"`
	ReviewedBy       *uuid.UUID                  `gorm:"type:uuid"`
	ReviewedAt       *time.Time
	PaymentStatus    string `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentReference string `gorm:"type:varchar(100)"`
	PaidAt           *time.Time
	Handover         datatypes.JSONType[entity.Handover] `gorm:"type:jsonb"`
	Certificate      *entity.AdoptionCertificate         `gorm:"type:jsonb;serializer:json"`
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdoptionApplicationModel) TableName() string {
	return "adoption_applications"
}
