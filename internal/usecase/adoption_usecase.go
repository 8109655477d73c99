package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AdoptionPetInput creates or replaces a pet listing.
type AdoptionPetInput struct {
	Name         string
	Species      string
	Breed        string
	Age          int
	AgeUnit      string
	Gender       string
	Color        string
	Size         string
	Description  string
	HealthStatus string
	Vaccinations []string
	Images       []string
	AdoptionFee  float64
}

// ApplicationInput files an adoption application.
type ApplicationInput struct {
	PetID           uuid.UUID
	ApplicationData map[string]any
	Documents       []string
}

// ApplicationView is an application with its pet attached.
type ApplicationView struct {
	*entity.AdoptionApplication
	Pet *entity.AdoptionPet `json:"pet,omitempty"`
}

// AdoptionUsecase covers pet listings and the application lifecycle.
type AdoptionUsecase interface {
	// ListAvailablePets lists active, available pets for the public catalogue.
	ListAvailablePets(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionPet], error)
	GetAvailablePet(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error)

	ListPets(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionPet], error)
	GetPet(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error)
	CreatePet(ctx context.Context, actor *Actor, input AdoptionPetInput) (*entity.AdoptionPet, error)
	UpdatePet(ctx context.Context, id uuid.UUID, input AdoptionPetInput) (*entity.AdoptionPet, error)
	SetPetStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionPetStatus) (*entity.AdoptionPet, error)
	DeletePet(ctx context.Context, id uuid.UUID) error

	SubmitApplication(ctx context.Context, actor *Actor, input ApplicationInput) (*entity.AdoptionApplication, error)
	ListMyApplications(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.AdoptionApplication], error)
	GetMyApplication(ctx context.Context, actor *Actor, id uuid.UUID) (*ApplicationView, error)
	CancelApplication(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.AdoptionApplication, error)

	ListApplications(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionApplication], error)
	GetApplication(ctx context.Context, id uuid.UUID) (*ApplicationView, error)
	ApproveApplication(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.AdoptionApplication, error)
	RejectApplication(ctx context.Context, actor *Actor, id uuid.UUID, reason string) (*entity.AdoptionApplication, error)
	MarkPaymentReceived(ctx context.Context, actor *Actor, id uuid.UUID, reference string) (*entity.AdoptionApplication, error)

	// ScheduleHandover books a pickup within the next 30 days and sends the applicant a code.
	ScheduleHandover(ctx context.Context, actor *Actor, id uuid.UUID, input HandoverInput) (*entity.AdoptionApplication, error)
	RegenerateHandoverOTP(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.AdoptionApplication, error)

	// CompleteHandover checks otp, marks the pet adopted, registers it to the adopter
	// and issues the certificate.
	CompleteHandover(ctx context.Context, actor *Actor, id uuid.UUID, otp string) (*entity.AdoptionApplication, error)

	// ListCertificates returns every issued certificate, newest first.
	ListCertificates(ctx context.Context) ([]*entity.AdoptionApplication, error)

	// VerifyCertificate looks up the application a certificate number was issued for.
	VerifyCertificate(ctx context.Context, number string) (*ApplicationView, error)
}
