package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RescueReportModel mirrors the 'rescue_reports' table. Coordinates are plain columns
// so bounding box lookups can use the lat/lng index.
type RescueReportModel struct {
	ID           uuid.UUID                              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReportNumber string                                 `gorm:"type:varchar(32);uniqueIndex;not null"`
	ReporterID   uuid.UUID                              `gorm:"type:uuid;not null;index"`
	Species      string                                 `gorm:"type:varchar(50);not null"`
	Description  string                                 `gorm:"type:text;not null"`
	Urgency      string                                 `gorm:"type:varchar(20);not null;index"`
	Latitude     float64                                `gorm:"not null;index:idx_rescue_location"`
	Longitude    float64                                `gorm:"not null;index:idx_rescue_location"`
	Address      string                                 `gorm:"type:text"`
	Photos       datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	ContactPhone string                                 `gorm:"type:varchar(20)"`
	Status       string                                 `gorm:"type:varchar(20);not null;index"`
	AssignedTo   *uuid.UUID                             `gorm:"type:uuid;index"`
	Notes        datatypes.JSONSlice[entity.RescueNote] `gorm:"type:jsonb"`
	RescuedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RescueReportModel) TableName() string {
	return "rescue_reports"
}

// ShelterAnimalModel mirrors the 'shelter_animals' table.
type ShelterAnimalModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IntakeNumber       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(100)"`
	Species            string    `gorm:"type:varchar(50);not null;index"`
	Breed              string    `gorm:"type:varchar(100)"`
	Gender             string    `gorm:"type:varchar(10)"`
	EstimatedAgeMonths int
	IntakeDate         time.Time                   `gorm:"not null"`
	IntakeSource       string                      `gorm:"type:varchar(20);not null"`
	RescueReportID     *uuid.UUID                  `gorm:"type:uuid"`
	Kennel             string                      `gorm:"type:varchar(32);index"`
	HealthStatus       string                      `gorm:"type:varchar(100)"`
	Status             string                      `gorm:"type:varchar(24);not null;index"`
	AdoptionPetID      *uuid.UUID                  `gorm:"type:uuid"`
	Images             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Notes              string                      `gorm:"type:text"`
	CreatedBy          uuid.UUID                   `gorm:"type:uuid;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShelterAnimalModel) TableName() string {
	return "shelter_animals"
}
