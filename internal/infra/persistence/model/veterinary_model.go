package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VetAppointmentModel mirrors the 'vet_appointments' table. A partial unique index
// keeps one live booking per store, date and slot.
type VetAppointmentModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AppointmentNumber  string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	PetID              *uuid.UUID `gorm:"type:uuid"`
	PetName            string     `gorm:"type:varchar(100);not null"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID            string     `gorm:"type:varchar(64);not null;index:idx_vet_slot"`
	AppointmentDate    time.Time  `gorm:"type:date;not null;index:idx_vet_slot"`
	TimeSlot           string     `gorm:"type:varchar(5);not null;index:idx_vet_slot"`
	BookingType        string     `gorm:"type:varchar(20);not null;default:'routine'"`
	VisitType          string     `gorm:"type:varchar(50)"`
	Reason             string     `gorm:"type:text"`
	Symptoms           string     `gorm:"type:text"`
	Status             string     `gorm:"type:varchar(20);not null;index"`
	Amount             float64    `gorm:"type:numeric(10,2);not null;default:0"`
	Diagnosis          string     `gorm:"type:text"`
	Treatment          string     `gorm:"type:text"`
	Notes              string     `gorm:"type:text"`
	CancellationReason string     `gorm:"type:text"`
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VetAppointmentModel) TableName() string {
	return "vet_appointments"
}
