package entity

import (
	"time"

	"github.com/google/uuid"
)

type IntakeSource string

const (
	IntakeStray     IntakeSource = "stray"
	IntakeSurrender IntakeSource = "surrender"
	IntakeRescue    IntakeSource = "rescue"
	IntakeTransfer  IntakeSource = "transfer"
)

type ShelterStatus string

const (
	ShelterSheltered        ShelterStatus = "sheltered"
	ShelterMedicalCare      ShelterStatus = "medical_care"
	ShelterReadyForAdoption ShelterStatus = "ready_for_adoption"
	ShelterTransferred      ShelterStatus = "transferred"
	ShelterDeceased         ShelterStatus = "deceased"
)

// IsResident reports whether the animal still occupies a kennel.
func (s ShelterStatus) IsResident() bool {
	return s == ShelterSheltered || s == ShelterMedicalCare || s == ShelterReadyForAdoption
}

// ShelterAnimal is an animal taken in by the shelter.
type ShelterAnimal struct {
	ID                 uuid.UUID     `json:"id"`
	IntakeNumber       string        `json:"intakeNumber"`
	Name               string        `json:"name,omitempty"`
	Species            string        `json:"species"`
	Breed              string        `json:"breed,omitempty"`
	Gender             string        `json:"gender,omitempty"`
	EstimatedAgeMonths int           `json:"estimatedAgeMonths,omitempty"`
	IntakeDate         time.Time     `json:"intakeDate"`
	IntakeSource       IntakeSource  `json:"intakeSource"`
	RescueReportID     *uuid.UUID    `json:"rescueReportId,omitempty"`
	Kennel             string        `json:"kennel,omitempty"`
	HealthStatus       string        `json:"healthStatus,omitempty"`
	Status             ShelterStatus `json:"status"`
	AdoptionPetID      *uuid.UUID    `json:"adoptionPetId,omitempty"`
	Images             []string      `json:"images,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CreatedBy          uuid.UUID     `json:"createdBy"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// ShelterFilter narrows shelter listings.
type ShelterFilter struct {
	Status  ShelterStatus
	Species string
	Kennel  string
}
