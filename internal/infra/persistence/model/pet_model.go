package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PetModel mirrors the 'pets' table. Histories are append-only jsonb arrays.
type PetModel struct {
	ID               uuid.UUID                                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetCode          string                                       `gorm:"type:varchar(32);uniqueIndex;not null"`
	OwnerID          uuid.UUID                                    `gorm:"type:uuid;not null;index"`
	Name             string                                       `gorm:"type:varchar(100);not null"`
	Species          string                                       `gorm:"type:varchar(50);not null;index"`
	Breed            string                                       `gorm:"type:varchar(100)"`
	Gender           string                                       `gorm:"type:varchar(10);not null;default:'Unknown'"`
	DateOfBirth      *time.Time                                   `gorm:"type:date"`
	Color            string                                       `gorm:"type:varchar(50)"`
	WeightKg         float64                                      `gorm:"type:numeric(6,2)"`
	MicrochipID      string                                       `gorm:"type:varchar(50);index"`
	Images           datatypes.JSONSlice[string]                  `gorm:"type:jsonb"`
	Source           string                                       `gorm:"type:varchar(20);not null"`
	SourceRef        *uuid.UUID                                   `gorm:"type:uuid;index"`
	Status           string                                       `gorm:"type:varchar(20);not null;default:'owned'"`
	MedicalHistory   datatypes.JSONSlice[entity.MedicalRecord]     `gorm:"type:jsonb"`
	Vaccinations     datatypes.JSONSlice[entity.VaccinationRecord] `gorm:"type:jsonb"`
	OwnershipHistory datatypes.JSONSlice[entity.OwnershipTransfer] `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
