package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// IntakeInput admits an animal. A RescueReportID links the intake to a rescued report.
type IntakeInput struct {
	Name               string
	Species            string
	Breed              string
	Gender             string
	EstimatedAgeMonths int
	IntakeDate         time.Time
	IntakeSource       entity.IntakeSource
	RescueReportID     *uuid.UUID
	Kennel             string
	HealthStatus       string
	Images             []string
	Notes              string
}

// TransferInput carries the listing details that the shelter record lacks.
type TransferInput struct {
	AdoptionFee  float64
	Size         string
	Color        string
	Description  string
	Vaccinations []string
}

// TransferResult is the shelter record together with its new adoption listing.
type TransferResult struct {
	Animal *entity.ShelterAnimal `json:"animal"`
	Pet    *entity.AdoptionPet   `json:"pet"`
}

// ShelterUsecase covers shelter intake, kennels and hand-off to adoption.
type ShelterUsecase interface {
	Intake(ctx context.Context, actor *Actor, input IntakeInput) (*entity.ShelterAnimal, error)
	ListAnimals(ctx context.Context, filter entity.ShelterFilter, page entity.PageRequest) (*entity.Page[*entity.ShelterAnimal], error)
	GetAnimal(ctx context.Context, id uuid.UUID) (*entity.ShelterAnimal, error)

	// UpdateAnimal replaces the descriptive fields. Kennel and status have their own operations.
	UpdateAnimal(ctx context.Context, actor *Actor, id uuid.UUID, input IntakeInput) (*entity.ShelterAnimal, error)
	AssignKennel(ctx context.Context, actor *Actor, id uuid.UUID, kennel string) (*entity.ShelterAnimal, error)
	UpdateStatus(ctx context.Context, actor *Actor, id uuid.UUID, status entity.ShelterStatus, notes string) (*entity.ShelterAnimal, error)

	// TransferToAdoption lists the animal for adoption and marks it transferred.
	TransferToAdoption(ctx context.Context, actor *Actor, id uuid.UUID, input TransferInput) (*TransferResult, error)
}
