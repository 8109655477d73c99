package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// PetInput registers or edits an owned pet. Nil pointers leave fields unchanged on update.
type PetInput struct {
	Name        string
	Species     string
	Breed       string
	Gender      string
	DateOfBirth *time.Time
	Color       string
	WeightKg    float64
	MicrochipID string
	Images      []string
}

// MedicalRecordInput adds one entry to a pet's medical history.
type MedicalRecordInput struct {
	Date         time.Time
	Condition    string
	Diagnosis    string
	Treatment    string
	Veterinarian string
	Notes        string
	FollowUpAt   *time.Time
}

// VaccinationInput records one administered vaccine.
type VaccinationInput struct {
	Name         string
	Date         time.Time
	NextDueDate  *time.Time
	Veterinarian string
	BatchNumber  string
}

// PetUsecase manages the caller's own pets in the central registry.
type PetUsecase interface {
	ListMyPets(ctx context.Context, actor *Actor, filter entity.PetFilter, page entity.PageRequest) (*entity.Page[*entity.Pet], error)
	GetMyPet(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Pet, error)
	CreatePet(ctx context.Context, actor *Actor, input PetInput) (*entity.Pet, error)
	UpdatePet(ctx context.Context, actor *Actor, id uuid.UUID, input PetInput) (*entity.Pet, error)
	DeletePet(ctx context.Context, actor *Actor, id uuid.UUID) error

	AddMedicalRecord(ctx context.Context, actor *Actor, id uuid.UUID, input MedicalRecordInput) (*entity.Pet, error)
	AddVaccination(ctx context.Context, actor *Actor, id uuid.UUID, input VaccinationInput) (*entity.Pet, error)
	OwnershipHistory(ctx context.Context, actor *Actor, id uuid.UUID) ([]entity.OwnershipTransfer, error)

	ListSpecies(ctx context.Context) []entity.Species
	ListBreeds(ctx context.Context, species string) ([]string, error)
}
